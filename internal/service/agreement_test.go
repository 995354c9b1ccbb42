package service_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"apnrghor-backend/internal/domain"
	"apnrghor-backend/internal/service"
)

func newAgreementService() (service.AgreementService, *MockAgreementRepo, *MockApartmentRepo, *MockUserRepo, *MockEmailService) {
	agreementRepo := new(MockAgreementRepo)
	apartmentRepo := new(MockApartmentRepo)
	userRepo := new(MockUserRepo)
	emailSvc := new(MockEmailService)
	svc := service.NewAgreementService(agreementRepo, apartmentRepo, userRepo, emailSvc)
	return svc, agreementRepo, apartmentRepo, userRepo, emailSvc
}

func TestAgreementService_SubmitApplication(t *testing.T) {
	ctx := context.Background()

	application := &domain.Agreement{
		Name:        "Tenant",
		Email:       "tenant@test.com",
		ApartmentID: 7,
		FloorNo:     3,
		BlockName:   "B",
		ApartmentNo: "B-301",
		Rent:        1200,
	}

	t.Run("Success", func(t *testing.T) {
		svc, agreementRepo, apartmentRepo, _, _ := newAgreementService()

		agreementRepo.On("GetByEmail", ctx, "tenant@test.com").Return(nil, sql.ErrNoRows)
		apartmentRepo.On("GetByID", ctx, int32(7)).Return(&domain.Apartment{ID: 7, Available: true, Rent: 1200}, nil)
		apartmentRepo.On("SetAvailability", ctx, int32(7), false).Return(nil)
		agreementRepo.On("Create", ctx, mock.AnythingOfType("*domain.Agreement")).Return(nil)

		app := *application
		result, err := svc.SubmitApplication(ctx, &app)
		assert.NoError(t, err)
		assert.Equal(t, domain.AgreementStatusPending, result.Status)
		apartmentRepo.AssertCalled(t, "SetAvailability", ctx, int32(7), false)
	})

	t.Run("DuplicateApplication", func(t *testing.T) {
		svc, agreementRepo, apartmentRepo, _, _ := newAgreementService()

		agreementRepo.On("GetByEmail", ctx, "tenant@test.com").Return(&domain.Agreement{ID: 1, Email: "tenant@test.com"}, nil)

		app := *application
		result, err := svc.SubmitApplication(ctx, &app)
		assert.ErrorIs(t, err, service.ErrDuplicateApplication)
		assert.Nil(t, result)
		// No writes on a duplicate application.
		apartmentRepo.AssertNotCalled(t, "SetAvailability", mock.Anything, mock.Anything, mock.Anything)
		agreementRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("ApartmentNotFound", func(t *testing.T) {
		svc, agreementRepo, apartmentRepo, _, _ := newAgreementService()

		agreementRepo.On("GetByEmail", ctx, "tenant@test.com").Return(nil, sql.ErrNoRows)
		apartmentRepo.On("GetByID", ctx, int32(7)).Return(nil, sql.ErrNoRows)

		app := *application
		_, err := svc.SubmitApplication(ctx, &app)
		assert.ErrorIs(t, err, service.ErrNotFound)
	})

	t.Run("MissingFields", func(t *testing.T) {
		svc, _, _, _, _ := newAgreementService()

		_, err := svc.SubmitApplication(ctx, &domain.Agreement{Email: "tenant@test.com"})
		assert.ErrorIs(t, err, service.ErrValidation)
	})
}

func TestAgreementService_Accept(t *testing.T) {
	ctx := context.Background()

	agreement := &domain.Agreement{
		ID:          4,
		Name:        "Tenant",
		Email:       "tenant@test.com",
		ApartmentID: 7,
		ApartmentNo: "B-301",
		BlockName:   "B",
		Status:      domain.AgreementStatusPending,
	}

	t.Run("Success", func(t *testing.T) {
		svc, agreementRepo, _, userRepo, emailSvc := newAgreementService()

		agreementRepo.On("GetByID", ctx, int32(4)).Return(agreement, nil)
		agreementRepo.On("SetStatus", ctx, int32(4), domain.AgreementStatusChecked).Return(nil)
		userRepo.On("GetByEmail", ctx, "tenant@test.com").Return(&domain.User{ID: 2, Email: "tenant@test.com", Name: "Tenant", Role: domain.UserRoleUser}, nil)
		userRepo.On("SetRole", ctx, int32(2), domain.UserRoleMember, mock.AnythingOfType("*int32")).Return(nil)
		emailSvc.On("SendAgreementAccepted", ctx, "tenant@test.com", "Tenant", "B-301", "B").Return(nil)

		err := svc.Accept(ctx, 4, "tenant@test.com")
		assert.NoError(t, err)

		// The user record receives the apartment reference.
		call := userRepo.Calls[len(userRepo.Calls)-1]
		apartmentID := call.Arguments.Get(3).(*int32)
		assert.Equal(t, int32(7), *apartmentID)
	})

	t.Run("AgreementNotFound", func(t *testing.T) {
		svc, agreementRepo, _, userRepo, _ := newAgreementService()

		agreementRepo.On("GetByID", ctx, int32(99)).Return(nil, sql.ErrNoRows)

		err := svc.Accept(ctx, 99, "tenant@test.com")
		assert.ErrorIs(t, err, service.ErrNotFound)
		userRepo.AssertNotCalled(t, "SetRole", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("EmailFailureDoesNotFailAccept", func(t *testing.T) {
		svc, agreementRepo, _, userRepo, emailSvc := newAgreementService()

		agreementRepo.On("GetByID", ctx, int32(4)).Return(agreement, nil)
		agreementRepo.On("SetStatus", ctx, int32(4), domain.AgreementStatusChecked).Return(nil)
		userRepo.On("GetByEmail", ctx, "tenant@test.com").Return(&domain.User{ID: 2, Email: "tenant@test.com", Name: "Tenant"}, nil)
		userRepo.On("SetRole", ctx, int32(2), domain.UserRoleMember, mock.AnythingOfType("*int32")).Return(nil)
		emailSvc.On("SendAgreementAccepted", ctx, "tenant@test.com", "Tenant", "B-301", "B").Return(assert.AnError)

		err := svc.Accept(ctx, 4, "tenant@test.com")
		assert.NoError(t, err)
	})
}

func TestAgreementService_Reject(t *testing.T) {
	ctx := context.Background()

	agreement := &domain.Agreement{
		ID:          4,
		Name:        "Tenant",
		Email:       "tenant@test.com",
		ApartmentID: 7,
		Status:      domain.AgreementStatusPending,
	}

	t.Run("Success", func(t *testing.T) {
		svc, agreementRepo, apartmentRepo, _, emailSvc := newAgreementService()

		agreementRepo.On("GetByID", ctx, int32(4)).Return(agreement, nil)
		apartmentRepo.On("SetAvailability", ctx, int32(7), true).Return(nil)
		agreementRepo.On("Delete", ctx, int32(4)).Return(nil)
		emailSvc.On("SendAgreementRejected", ctx, "tenant@test.com", "Tenant").Return(nil)

		err := svc.Reject(ctx, 4)
		assert.NoError(t, err)
		apartmentRepo.AssertCalled(t, "SetAvailability", ctx, int32(7), true)
		agreementRepo.AssertCalled(t, "Delete", ctx, int32(4))
	})

	t.Run("NotFound", func(t *testing.T) {
		svc, agreementRepo, apartmentRepo, _, _ := newAgreementService()

		agreementRepo.On("GetByID", ctx, int32(99)).Return(nil, sql.ErrNoRows)

		err := svc.Reject(ctx, 99)
		assert.ErrorIs(t, err, service.ErrNotFound)
		apartmentRepo.AssertNotCalled(t, "SetAvailability", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestAgreementService_RemoveMember(t *testing.T) {
	ctx := context.Background()

	t.Run("WithApartment", func(t *testing.T) {
		svc, _, apartmentRepo, userRepo, _ := newAgreementService()

		apartmentID := int32(7)
		userRepo.On("GetByID", ctx, int32(2)).Return(&domain.User{ID: 2, Role: domain.UserRoleMember, ApartmentID: &apartmentID}, nil)
		apartmentRepo.On("SetAvailability", ctx, int32(7), true).Return(nil)
		userRepo.On("SetRole", ctx, int32(2), domain.UserRoleUser, (*int32)(nil)).Return(nil)

		err := svc.RemoveMember(ctx, 2)
		assert.NoError(t, err)
		apartmentRepo.AssertCalled(t, "SetAvailability", ctx, int32(7), true)
	})

	t.Run("WithoutApartment", func(t *testing.T) {
		svc, _, apartmentRepo, userRepo, _ := newAgreementService()

		userRepo.On("GetByID", ctx, int32(3)).Return(&domain.User{ID: 3, Role: domain.UserRoleMember}, nil)
		userRepo.On("SetRole", ctx, int32(3), domain.UserRoleUser, (*int32)(nil)).Return(nil)

		// No apartment reference: availability untouched, role still reset.
		err := svc.RemoveMember(ctx, 3)
		assert.NoError(t, err)
		apartmentRepo.AssertNotCalled(t, "SetAvailability", mock.Anything, mock.Anything, mock.Anything)
		userRepo.AssertCalled(t, "SetRole", ctx, int32(3), domain.UserRoleUser, (*int32)(nil))
	})
}

func TestAgreementService_GetActiveAgreement(t *testing.T) {
	ctx := context.Background()

	t.Run("Found", func(t *testing.T) {
		svc, agreementRepo, _, _, _ := newAgreementService()

		agreementRepo.On("GetCheckedByEmail", ctx, "tenant@test.com").Return(&domain.Agreement{ID: 4, Status: domain.AgreementStatusChecked}, nil)

		agreement, err := svc.GetActiveAgreement(ctx, "tenant@test.com")
		assert.NoError(t, err)
		assert.NotNil(t, agreement)
	})

	t.Run("Empty", func(t *testing.T) {
		svc, agreementRepo, _, _, _ := newAgreementService()

		agreementRepo.On("GetCheckedByEmail", ctx, "nobody@test.com").Return(nil, sql.ErrNoRows)

		agreement, err := svc.GetActiveAgreement(ctx, "nobody@test.com")
		assert.NoError(t, err)
		assert.Nil(t, agreement)
	})
}
