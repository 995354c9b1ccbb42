package service

import (
	"context"
	"fmt"

	"apnrghor-backend/internal/domain"
	"apnrghor-backend/internal/repository"
)

type announcementService struct {
	announcementRepo repository.AnnouncementRepository
}

func NewAnnouncementService(announcementRepo repository.AnnouncementRepository) AnnouncementService {
	return &announcementService{announcementRepo: announcementRepo}
}

func (s *announcementService) ListAnnouncements(ctx context.Context) ([]domain.Announcement, error) {
	return s.announcementRepo.List(ctx)
}

func (s *announcementService) CreateAnnouncement(ctx context.Context, announcement *domain.Announcement) error {
	if announcement.Title == "" || announcement.Description == "" {
		return fmt.Errorf("%w: title and description are required", ErrValidation)
	}
	return s.announcementRepo.Create(ctx, announcement)
}
