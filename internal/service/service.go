package service

import (
	"context"
	"io"

	"apnrghor-backend/internal/domain"
)

type AgreementService interface {
	// SubmitApplication inserts a pending agreement for the applicant and
	// marks the referenced apartment unavailable. One live agreement per
	// email.
	SubmitApplication(ctx context.Context, application *domain.Agreement) (*domain.Agreement, error)
	ListPending(ctx context.Context) ([]domain.Agreement, error)
	// Accept marks the agreement checked and promotes the applicant to
	// member, stamping the apartment reference onto the user record.
	Accept(ctx context.Context, agreementID int32, email string) error
	// Reject restores the referenced apartment's availability and removes
	// the agreement.
	Reject(ctx context.Context, agreementID int32) error
	// RemoveMember frees the member's stored apartment (no-op when none)
	// and resets the role to user.
	RemoveMember(ctx context.Context, userID int32) error
	GetActiveAgreement(ctx context.Context, email string) (*domain.Agreement, error)
}

// DashboardStats aggregates counts for the admin dashboard.
type DashboardStats struct {
	TotalUsers            int32  `json:"total_users"`
	TotalMembers          int32  `json:"total_members"`
	TotalApartments       int32  `json:"total_apartments"`
	AvailableApartments   int32  `json:"available_apartments"`
	UnavailableApartments int32  `json:"unavailable_apartments"`
	AvailablePercentage   string `json:"available_percentage"`
	UnavailablePercentage string `json:"unavailable_percentage"`
}

type ApartmentService interface {
	// ListApartments returns one page of available apartments within the
	// rent bounds plus the total page count.
	ListApartments(ctx context.Context, page, limit, minRent, maxRent int32) ([]domain.Apartment, int32, error)
	GetDashboardStats(ctx context.Context) (*DashboardStats, error)
}

// PhotoUpload carries a multipart photo part through to the image store.
type PhotoUpload struct {
	Filename    string
	ContentType string
	Data        io.Reader
}

type UserService interface {
	GetUser(ctx context.Context, email string) (*domain.User, error)
	ListMembers(ctx context.Context) ([]domain.User, error)
	// CreateUser registers a user on first sign-in. An already-registered
	// email short-circuits and returns created=false. photo may be nil;
	// googlePhotoURL is the fallback avatar.
	CreateUser(ctx context.Context, name, email, googlePhotoURL string, photo *PhotoUpload) (*domain.User, bool, error)
}

// PaymentIntentResult is the caller-visible outcome of an intent creation.
// An invalid coupon yields Success=false with no provider call and no
// history record, rather than an error.
type PaymentIntentResult struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	ClientSecret string `json:"clientSecret,omitempty"`
	Amount       int32  `json:"amount,omitempty"`
	Discount     int32  `json:"discount,omitempty"`
}

// CouponValidation reports whether a coupon code may be applied and why not.
type CouponValidation struct {
	Valid    bool   `json:"valid"`
	Discount int32  `json:"discount"`
	Reason   string `json:"reason,omitempty"` // "not found", "expired", "already used"
}

type PaymentService interface {
	CreatePaymentIntent(ctx context.Context, agreementID int32, month, couponCode string) (*PaymentIntentResult, error)
	ValidateCoupon(ctx context.Context, email, code string) (*CouponValidation, error)
	// GetPaymentHistory returns the email's payments ordered by year then
	// calendar month.
	GetPaymentHistory(ctx context.Context, email string) ([]domain.Payment, error)
}

type CouponService interface {
	ListCoupons(ctx context.Context) ([]domain.Coupon, error)
	AddCoupon(ctx context.Context, coupon *domain.Coupon) error
}

type AnnouncementService interface {
	ListAnnouncements(ctx context.Context) ([]domain.Announcement, error)
	CreateAnnouncement(ctx context.Context, announcement *domain.Announcement) error
}

type EmailService interface {
	SendAgreementAccepted(ctx context.Context, email, name, apartmentNo, blockName string) error
	SendAgreementRejected(ctx context.Context, email, name string) error
}
