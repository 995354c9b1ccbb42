package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"apnrghor-backend/internal/domain"
	"apnrghor-backend/internal/logger"
	"apnrghor-backend/internal/repository"
)

type agreementService struct {
	agreementRepo repository.AgreementRepository
	apartmentRepo repository.ApartmentRepository
	userRepo      repository.UserRepository
	emailSvc      EmailService
}

func NewAgreementService(
	agreementRepo repository.AgreementRepository,
	apartmentRepo repository.ApartmentRepository,
	userRepo repository.UserRepository,
	emailSvc EmailService,
) AgreementService {
	return &agreementService{
		agreementRepo: agreementRepo,
		apartmentRepo: apartmentRepo,
		userRepo:      userRepo,
		emailSvc:      emailSvc,
	}
}

func (s *agreementService) SubmitApplication(ctx context.Context, application *domain.Agreement) (*domain.Agreement, error) {
	if application.Email == "" || application.Name == "" || application.ApartmentID == 0 {
		return nil, fmt.Errorf("%w: name, email and apartment reference are required", ErrValidation)
	}

	existing, err := s.agreementRepo.GetByEmail(ctx, application.Email)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateApplication
	}

	apartment, err := s.apartmentRepo.GetByID(ctx, application.ApartmentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("apartment %d: %w", application.ApartmentID, ErrNotFound)
		}
		return nil, err
	}

	// Two independent writes; the reconciler repairs a partial failure.
	if err := s.apartmentRepo.SetAvailability(ctx, apartment.ID, false); err != nil {
		return nil, err
	}

	application.Status = domain.AgreementStatusPending
	if err := s.agreementRepo.Create(ctx, application); err != nil {
		logger.Error("agreement insert failed after availability update", "apartment_id", apartment.ID, "error", err)
		return nil, err
	}

	return application, nil
}

func (s *agreementService) ListPending(ctx context.Context) ([]domain.Agreement, error) {
	return s.agreementRepo.ListByStatus(ctx, domain.AgreementStatusPending)
}

func (s *agreementService) Accept(ctx context.Context, agreementID int32, email string) error {
	agreement, err := s.agreementRepo.GetByID(ctx, agreementID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("agreement %d: %w", agreementID, ErrNotFound)
		}
		return err
	}

	if err := s.agreementRepo.SetStatus(ctx, agreement.ID, domain.AgreementStatusChecked); err != nil {
		return err
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("user %s: %w", email, ErrNotFound)
		}
		return err
	}

	apartmentID := agreement.ApartmentID
	if err := s.userRepo.SetRole(ctx, user.ID, domain.UserRoleMember, &apartmentID); err != nil {
		// The agreement is already checked at this point; no rollback.
		logger.Error("role promotion failed after agreement update", "agreement_id", agreement.ID, "user_id", user.ID, "error", err)
		return err
	}

	if err := s.emailSvc.SendAgreementAccepted(ctx, user.Email, user.Name, agreement.ApartmentNo, agreement.BlockName); err != nil {
		logger.Warn("acceptance email not sent", "email", user.Email, "error", err)
	}

	return nil
}

func (s *agreementService) Reject(ctx context.Context, agreementID int32) error {
	agreement, err := s.agreementRepo.GetByID(ctx, agreementID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("agreement %d: %w", agreementID, ErrNotFound)
		}
		return err
	}

	if err := s.apartmentRepo.SetAvailability(ctx, agreement.ApartmentID, true); err != nil {
		return err
	}

	if err := s.agreementRepo.Delete(ctx, agreement.ID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("agreement %d: %w", agreementID, ErrNotFound)
		}
		return err
	}

	if err := s.emailSvc.SendAgreementRejected(ctx, agreement.Email, agreement.Name); err != nil {
		logger.Warn("rejection email not sent", "email", agreement.Email, "error", err)
	}

	return nil
}

func (s *agreementService) RemoveMember(ctx context.Context, userID int32) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("user %d: %w", userID, ErrNotFound)
		}
		return err
	}

	// Users without a stored apartment reference still get their role reset.
	if user.ApartmentID != nil {
		if err := s.apartmentRepo.SetAvailability(ctx, *user.ApartmentID, true); err != nil {
			return err
		}
	}

	return s.userRepo.SetRole(ctx, user.ID, domain.UserRoleUser, nil)
}

func (s *agreementService) GetActiveAgreement(ctx context.Context, email string) (*domain.Agreement, error) {
	agreement, err := s.agreementRepo.GetCheckedByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return agreement, nil
}
