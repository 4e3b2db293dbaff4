package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/vedran77/quill/internal/domain"
)

// =============================================================================
// Mock repositories
// =============================================================================

var errBackend = errors.New("backend down")

type mockUserRepository struct {
	createFunc    func(ctx context.Context, user *domain.User) error
	getByIDFunc   func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	updateBioFunc func(ctx context.Context, id uuid.UUID, bio string) error
}

func (m *mockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, user)
	}
	return errors.New("not implemented")
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, errors.New("not implemented")
}

func (m *mockUserRepository) UpdateBio(ctx context.Context, id uuid.UUID, bio string) error {
	if m.updateBioFunc != nil {
		return m.updateBioFunc(ctx, id, bio)
	}
	return errors.New("not implemented")
}

type mockRatingRepository struct {
	upsertFunc  func(ctx context.Context, postID int64, rating domain.Rating) error
	summaryFunc func(ctx context.Context, postID int64) (*domain.RatingSummary, error)
}

func (m *mockRatingRepository) Upsert(ctx context.Context, postID int64, rating domain.Rating) error {
	if m.upsertFunc != nil {
		return m.upsertFunc(ctx, postID, rating)
	}
	return errors.New("not implemented")
}

func (m *mockRatingRepository) ListByPost(ctx context.Context, postID int64) ([]domain.Rating, error) {
	return nil, errors.New("not implemented")
}

func (m *mockRatingRepository) Summary(ctx context.Context, postID int64) (*domain.RatingSummary, error) {
	if m.summaryFunc != nil {
		return m.summaryFunc(ctx, postID)
	}
	return nil, errors.New("not implemented")
}

// =============================================================================
// Tests
// =============================================================================

func TestCreateProfileWrapsBackendError(t *testing.T) {
	svc := NewProfileService(&mockUserRepository{
		createFunc: func(ctx context.Context, user *domain.User) error { return errBackend },
	})

	_, err := svc.CreateProfile(as(uuid.New()), CreateProfileInput{Username: "alice"})
	if !errors.Is(err, errBackend) {
		t.Fatalf("error = %v, want wrapped backend error", err)
	}
	if errors.Is(err, ErrAlreadyExists) || errors.Is(err, ErrInvalidArgument) {
		t.Errorf("backend error classified as a domain error: %v", err)
	}
}

func TestUpdateBioValidatesBeforeWriting(t *testing.T) {
	called := false
	svc := NewProfileService(&mockUserRepository{
		updateBioFunc: func(ctx context.Context, id uuid.UUID, bio string) error {
			called = true
			return nil
		},
	})

	err := svc.UpdateBio(as(uuid.New()), UpdateBioInput{Bio: strings.Repeat("x", 2000)})
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("error = %v, want ErrInvalidArgument", err)
	}
	if called {
		t.Error("repository written despite invalid input")
	}
}

func TestRatePostValidatesBeforeWriting(t *testing.T) {
	called := false
	svc := NewRatingService(&mockRatingRepository{
		upsertFunc: func(ctx context.Context, postID int64, rating domain.Rating) error {
			called = true
			return nil
		},
	}, nil, nil)

	if err := svc.RatePost(as(uuid.New()), 1, RatePostInput{Value: 9}); !errors.Is(err, ErrInvalidRating) {
		t.Fatalf("error = %v, want ErrInvalidRating", err)
	}
	if called {
		t.Error("repository written despite invalid rating")
	}
}

func TestRatePostSucceedsWhenSummaryFails(t *testing.T) {
	svc := NewRatingService(&mockRatingRepository{
		upsertFunc:  func(ctx context.Context, postID int64, rating domain.Rating) error { return nil },
		summaryFunc: func(ctx context.Context, postID int64) (*domain.RatingSummary, error) { return nil, errBackend },
	}, nil, nil)

	if err := svc.RatePost(as(uuid.New()), 1, RatePostInput{Value: 3}); err != nil {
		t.Errorf("RatePost() error = %v, want nil once the rating is stored", err)
	}
}
