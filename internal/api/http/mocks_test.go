package http_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"apnrghor-backend/internal/domain"
	"apnrghor-backend/internal/service"
)

// MockUserRepo backs the admin guard's role lookup.
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) SetRole(ctx context.Context, userID int32, role domain.UserRole, apartmentID *int32) error {
	args := m.Called(ctx, userID, role, apartmentID)
	return args.Error(0)
}
func (m *MockUserRepo) ListByRole(ctx context.Context, role domain.UserRole) ([]domain.User, error) {
	args := m.Called(ctx, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}
func (m *MockUserRepo) CountByRole(ctx context.Context, role domain.UserRole) (int32, error) {
	args := m.Called(ctx, role)
	return args.Get(0).(int32), args.Error(1)
}

// MockAgreementService
type MockAgreementService struct {
	mock.Mock
}

func (m *MockAgreementService) SubmitApplication(ctx context.Context, application *domain.Agreement) (*domain.Agreement, error) {
	args := m.Called(ctx, application)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Agreement), args.Error(1)
}
func (m *MockAgreementService) ListPending(ctx context.Context) ([]domain.Agreement, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Agreement), args.Error(1)
}
func (m *MockAgreementService) Accept(ctx context.Context, agreementID int32, email string) error {
	args := m.Called(ctx, agreementID, email)
	return args.Error(0)
}
func (m *MockAgreementService) Reject(ctx context.Context, agreementID int32) error {
	args := m.Called(ctx, agreementID)
	return args.Error(0)
}
func (m *MockAgreementService) RemoveMember(ctx context.Context, userID int32) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}
func (m *MockAgreementService) GetActiveAgreement(ctx context.Context, email string) (*domain.Agreement, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Agreement), args.Error(1)
}

// MockApartmentService
type MockApartmentService struct {
	mock.Mock
}

func (m *MockApartmentService) ListApartments(ctx context.Context, page, limit, minRent, maxRent int32) ([]domain.Apartment, int32, error) {
	args := m.Called(ctx, page, limit, minRent, maxRent)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int32), args.Error(2)
	}
	return args.Get(0).([]domain.Apartment), args.Get(1).(int32), args.Error(2)
}
func (m *MockApartmentService) GetDashboardStats(ctx context.Context) (*service.DashboardStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.DashboardStats), args.Error(1)
}

// MockUserService
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetUser(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) ListMembers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}
func (m *MockUserService) CreateUser(ctx context.Context, name, email, googlePhotoURL string, photo *service.PhotoUpload) (*domain.User, bool, error) {
	args := m.Called(ctx, name, email, googlePhotoURL, photo)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*domain.User), args.Bool(1), args.Error(2)
}

// MockPaymentService
type MockPaymentService struct {
	mock.Mock
}

func (m *MockPaymentService) CreatePaymentIntent(ctx context.Context, agreementID int32, month, couponCode string) (*service.PaymentIntentResult, error) {
	args := m.Called(ctx, agreementID, month, couponCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.PaymentIntentResult), args.Error(1)
}
func (m *MockPaymentService) ValidateCoupon(ctx context.Context, email, code string) (*service.CouponValidation, error) {
	args := m.Called(ctx, email, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.CouponValidation), args.Error(1)
}
func (m *MockPaymentService) GetPaymentHistory(ctx context.Context, email string) ([]domain.Payment, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

// MockCouponService
type MockCouponService struct {
	mock.Mock
}

func (m *MockCouponService) ListCoupons(ctx context.Context) ([]domain.Coupon, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Coupon), args.Error(1)
}
func (m *MockCouponService) AddCoupon(ctx context.Context, coupon *domain.Coupon) error {
	args := m.Called(ctx, coupon)
	return args.Error(0)
}

// MockAnnouncementService
type MockAnnouncementService struct {
	mock.Mock
}

func (m *MockAnnouncementService) ListAnnouncements(ctx context.Context) ([]domain.Announcement, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Announcement), args.Error(1)
}
func (m *MockAnnouncementService) CreateAnnouncement(ctx context.Context, announcement *domain.Announcement) error {
	args := m.Called(ctx, announcement)
	return args.Error(0)
}
