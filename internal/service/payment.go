package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"apnrghor-backend/internal/domain"
	"apnrghor-backend/internal/gateway"
	"apnrghor-backend/internal/logger"
	"apnrghor-backend/internal/repository"
	"apnrghor-backend/internal/utils"
)

const (
	couponReasonNotFound    = "not found"
	couponReasonExpired     = "expired"
	couponReasonAlreadyUsed = "already used"
)

type paymentService struct {
	paymentRepo   repository.PaymentRepository
	agreementRepo repository.AgreementRepository
	couponRepo    repository.CouponRepository
	gateway       gateway.PaymentGateway
}

func NewPaymentService(
	paymentRepo repository.PaymentRepository,
	agreementRepo repository.AgreementRepository,
	couponRepo repository.CouponRepository,
	paymentGateway gateway.PaymentGateway,
) PaymentService {
	return &paymentService{
		paymentRepo:   paymentRepo,
		agreementRepo: agreementRepo,
		couponRepo:    couponRepo,
		gateway:       paymentGateway,
	}
}

func (s *paymentService) CreatePaymentIntent(ctx context.Context, agreementID int32, month, couponCode string) (*PaymentIntentResult, error) {
	if !utils.IsValidMonth(month) {
		return nil, fmt.Errorf("%w: unknown month %q", ErrValidation, month)
	}

	agreement, err := s.agreementRepo.GetByID(ctx, agreementID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("agreement %d: %w", agreementID, ErrNotFound)
		}
		return nil, err
	}

	amount := agreement.Rent
	var discount int32
	if couponCode != "" {
		coupon, err := s.couponRepo.GetByCode(ctx, couponCode)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				// Caller-visible failure, not an error. No intent, no record.
				return &PaymentIntentResult{Success: false, Message: "Invalid coupon code"}, nil
			}
			return nil, err
		}
		discount = coupon.Discount
		amount = utils.ApplyDiscount(agreement.Rent, discount)
	}

	intent, err := s.gateway.CreatePaymentIntent(ctx, &gateway.PaymentIntentRequest{
		Amount:        int64(amount) * 100, // provider works in the smallest unit
		Description:   fmt.Sprintf("Rent for apartment %s, %s", agreement.ApartmentNo, month),
		CustomerEmail: agreement.Email,
		Metadata: map[string]string{
			"agreement_id": fmt.Sprintf("%d", agreement.ID),
			"month":        month,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	// Recorded optimistically; the provider has not confirmed capture yet.
	payment := &domain.Payment{
		Name:        agreement.Name,
		Email:       agreement.Email,
		AgreementID: agreement.ID,
		Amount:      amount,
		Month:       month,
		Year:        int32(time.Now().Year()),
		Coupon:      couponCode,
		Discount:    discount,
	}
	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		logger.Error("payment history insert failed after intent creation", "agreement_id", agreement.ID, "error", err)
		return nil, err
	}

	message := fmt.Sprintf("Payment intent created for %s", month)
	if discount > 0 {
		message = fmt.Sprintf("Payment intent created for %s with %d%% discount applied", month, discount)
	}
	return &PaymentIntentResult{
		Success:      true,
		Message:      message,
		ClientSecret: intent.ClientSecret,
		Amount:       amount,
		Discount:     discount,
	}, nil
}

func (s *paymentService) ValidateCoupon(ctx context.Context, email, code string) (*CouponValidation, error) {
	if code == "" {
		return nil, fmt.Errorf("%w: coupon code is required", ErrValidation)
	}

	coupon, err := s.couponRepo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &CouponValidation{Valid: false, Reason: couponReasonNotFound}, nil
		}
		return nil, err
	}

	if coupon.ExpiresOn != nil {
		expires, err := time.Parse("2006-01-02", *coupon.ExpiresOn)
		if err == nil && time.Now().After(expires.AddDate(0, 0, 1)) {
			return &CouponValidation{Valid: false, Reason: couponReasonExpired}, nil
		}
	}

	used, err := s.paymentRepo.CouponUsedBy(ctx, email, code)
	if err != nil {
		return nil, err
	}
	if used {
		return &CouponValidation{Valid: false, Reason: couponReasonAlreadyUsed}, nil
	}

	return &CouponValidation{Valid: true, Discount: coupon.Discount}, nil
}

func (s *paymentService) GetPaymentHistory(ctx context.Context, email string) ([]domain.Payment, error) {
	payments, err := s.paymentRepo.ListByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	utils.SortPaymentsChronologically(payments)
	return payments, nil
}
