package service

import (
	"context"
	"fmt"

	"apnrghor-backend/internal/domain"
	"apnrghor-backend/internal/repository"
)

type couponService struct {
	couponRepo repository.CouponRepository
}

func NewCouponService(couponRepo repository.CouponRepository) CouponService {
	return &couponService{couponRepo: couponRepo}
}

func (s *couponService) ListCoupons(ctx context.Context) ([]domain.Coupon, error) {
	return s.couponRepo.List(ctx)
}

func (s *couponService) AddCoupon(ctx context.Context, coupon *domain.Coupon) error {
	if coupon.Code == "" {
		return fmt.Errorf("%w: coupon code is required", ErrValidation)
	}
	if coupon.Discount <= 0 || coupon.Discount > 100 {
		return fmt.Errorf("%w: discount must be between 1 and 100", ErrValidation)
	}
	return s.couponRepo.Create(ctx, coupon)
}
