package repository

import (
	"context"

	"apnrghor-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	// SetRole updates role and apartment reference in a single write.
	// apartmentID is nil when demoting back to a plain user.
	SetRole(ctx context.Context, userID int32, role domain.UserRole, apartmentID *int32) error
	ListByRole(ctx context.Context, role domain.UserRole) ([]domain.User, error)
	CountByRole(ctx context.Context, role domain.UserRole) (int32, error)
}

type ApartmentRepository interface {
	Create(ctx context.Context, apartment *domain.Apartment) error
	GetByID(ctx context.Context, id int32) (*domain.Apartment, error)
	// List returns one page of available apartments with rent within
	// [minRent, maxRent] plus the total count matching the filter.
	// maxRent <= 0 means unbounded.
	List(ctx context.Context, page, limit, minRent, maxRent int32) ([]domain.Apartment, int32, error)
	SetAvailability(ctx context.Context, id int32, available bool) error
	Count(ctx context.Context) (int32, error)
	CountAvailable(ctx context.Context) (int32, error)
	// ListOrphanedUnavailable returns ids of unavailable apartments with no
	// live agreement referencing them. Used by the reconciler.
	ListOrphanedUnavailable(ctx context.Context) ([]int32, error)
}

type AgreementRepository interface {
	Create(ctx context.Context, agreement *domain.Agreement) error
	GetByID(ctx context.Context, id int32) (*domain.Agreement, error)
	GetByEmail(ctx context.Context, email string) (*domain.Agreement, error)
	GetCheckedByEmail(ctx context.Context, email string) (*domain.Agreement, error)
	ListByStatus(ctx context.Context, status domain.AgreementStatus) ([]domain.Agreement, error)
	SetStatus(ctx context.Context, id int32, status domain.AgreementStatus) error
	Delete(ctx context.Context, id int32) error
	// DeleteStaleChecked removes checked agreements whose user no longer
	// holds the member role. Returns the number of rows removed.
	DeleteStaleChecked(ctx context.Context) (int64, error)
}

type CouponRepository interface {
	Create(ctx context.Context, coupon *domain.Coupon) error
	GetByCode(ctx context.Context, code string) (*domain.Coupon, error)
	List(ctx context.Context) ([]domain.Coupon, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, payment *domain.Payment) error
	ListByEmail(ctx context.Context, email string) ([]domain.Payment, error)
	// CouponUsedBy reports whether a payment for this email already
	// recorded the given coupon code.
	CouponUsedBy(ctx context.Context, email, code string) (bool, error)
}

type AnnouncementRepository interface {
	Create(ctx context.Context, announcement *domain.Announcement) error
	List(ctx context.Context) ([]domain.Announcement, error)
}
