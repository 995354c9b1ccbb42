package service

import (
	"context"

	"apnrghor-backend/internal/domain"
	"apnrghor-backend/internal/repository"
	"apnrghor-backend/internal/utils"
)

const (
	DefaultPage  = 1
	DefaultLimit = 6
)

type apartmentService struct {
	apartmentRepo repository.ApartmentRepository
	userRepo      repository.UserRepository
}

func NewApartmentService(apartmentRepo repository.ApartmentRepository, userRepo repository.UserRepository) ApartmentService {
	return &apartmentService{apartmentRepo: apartmentRepo, userRepo: userRepo}
}

func (s *apartmentService) ListApartments(ctx context.Context, page, limit, minRent, maxRent int32) ([]domain.Apartment, int32, error) {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if minRent < 0 {
		minRent = 0
	}

	apartments, total, err := s.apartmentRepo.List(ctx, page, limit, minRent, maxRent)
	if err != nil {
		return nil, 0, err
	}

	totalPages := (total + limit - 1) / limit
	return apartments, totalPages, nil
}

func (s *apartmentService) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	totalUsers, err := s.userRepo.CountByRole(ctx, domain.UserRoleUser)
	if err != nil {
		return nil, err
	}
	totalMembers, err := s.userRepo.CountByRole(ctx, domain.UserRoleMember)
	if err != nil {
		return nil, err
	}
	totalApartments, err := s.apartmentRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	available, err := s.apartmentRepo.CountAvailable(ctx)
	if err != nil {
		return nil, err
	}

	unavailable := totalApartments - available
	return &DashboardStats{
		TotalUsers:            totalUsers,
		TotalMembers:          totalMembers,
		TotalApartments:       totalApartments,
		AvailableApartments:   available,
		UnavailableApartments: unavailable,
		AvailablePercentage:   utils.FormatPercent(available, totalApartments),
		UnavailablePercentage: utils.FormatPercent(unavailable, totalApartments),
	}, nil
}
