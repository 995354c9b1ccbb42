package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"apnrghor-backend/internal/domain"
	"apnrghor-backend/internal/logger"
	"apnrghor-backend/internal/repository"
	"apnrghor-backend/internal/storage"
)

const profilePhotoFolder = "user_profiles"

type userService struct {
	userRepo repository.UserRepository
	storage  storage.StorageInterface
}

func NewUserService(userRepo repository.UserRepository, storageSvc storage.StorageInterface) UserService {
	return &userService{userRepo: userRepo, storage: storageSvc}
}

func (s *userService) GetUser(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("user %s: %w", email, ErrNotFound)
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) ListMembers(ctx context.Context) ([]domain.User, error) {
	return s.userRepo.ListByRole(ctx, domain.UserRoleMember)
}

func (s *userService) CreateUser(ctx context.Context, name, email, googlePhotoURL string, photo *PhotoUpload) (*domain.User, bool, error) {
	if email == "" || name == "" {
		return nil, false, fmt.Errorf("%w: name and email are required", ErrValidation)
	}

	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, false, err
	}
	if existing != nil {
		return existing, false, nil
	}

	photoURL := googlePhotoURL
	photoID := ""
	if photo != nil {
		logger.ExternalServiceCall("storage", "Upload", "filename", photo.Filename)
		result, err := s.storage.Upload(ctx, profilePhotoFolder, photo.Filename, photo.ContentType, photo.Data)
		logger.ExternalServiceResult("storage", "Upload", err)
		if err != nil {
			return nil, false, fmt.Errorf("%w: photo upload: %v", ErrUpstream, err)
		}
		photoURL = result.SecureURL
		photoID = result.PublicID
	}

	user := &domain.User{
		Name:     name,
		Email:    email,
		PhotoURL: photoURL,
		PhotoID:  photoID,
		Role:     domain.UserRoleUser,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, false, err
	}
	return user, true, nil
}
