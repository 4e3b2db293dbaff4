package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/vedran77/quill/internal/domain"
	"github.com/vedran77/quill/internal/repository"
	"github.com/vedran77/quill/pkg/validator"
)

type ProfileService struct {
	userRepo repository.UserRepository
}

func NewProfileService(userRepo repository.UserRepository) *ProfileService {
	return &ProfileService{userRepo: userRepo}
}

type CreateProfileInput struct {
	Username string `json:"username"`
	Bio      string `json:"bio"`
}

type UpdateBioInput struct {
	Bio string `json:"bio"`
}

// CreateProfile creates the profile of the calling identity.
func (s *ProfileService) CreateProfile(ctx context.Context, input CreateProfileInput) (*domain.User, error) {
	callerID, err := callerFrom(ctx)
	if err != nil {
		return nil, err
	}

	if err := validationError(validator.ValidateProfile(input.Username, input.Bio)); err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:       callerID,
		Username: validator.Normalize(input.Username),
		Bio:      input.Bio,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, ErrProfileExists
		}
		return nil, fmt.Errorf("creating profile: %w", err)
	}

	return user, nil
}

// GetProfile returns nil when no profile exists for userID.
func (s *ProfileService) GetProfile(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

// UpdateBio overwrites the bio of the caller's own profile.
func (s *ProfileService) UpdateBio(ctx context.Context, input UpdateBioInput) error {
	callerID, err := callerFrom(ctx)
	if err != nil {
		return err
	}

	if err := validationError(validator.ValidateBio(input.Bio)); err != nil {
		return err
	}

	if err := s.userRepo.UpdateBio(ctx, callerID, input.Bio); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrProfileNotFound
		}
		return fmt.Errorf("updating bio: %w", err)
	}
	return nil
}
