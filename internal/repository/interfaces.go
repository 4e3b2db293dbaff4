package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/vedran77/quill/internal/domain"
)

var (
	// ErrConflict is returned when a write would violate a uniqueness constraint.
	ErrConflict = errors.New("repository: conflict")
	// ErrNotFound is returned by writes whose target row does not exist.
	ErrNotFound = errors.New("repository: not found")
)

// Every method is atomic with respect to concurrent callers. Lookups return
// (nil, nil) when nothing matches.

type UserRepository interface {
	// Create inserts user, failing with ErrConflict if the ID is taken.
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	// UpdateBio fails with ErrNotFound if no user has the given ID.
	UpdateBio(ctx context.Context, id uuid.UUID, bio string) error
}

type PostRepository interface {
	// Create stores post and sets post.ID to a freshly allocated identifier.
	Create(ctx context.Context, post *domain.Post) error
	GetByID(ctx context.Context, id int64) (*domain.Post, error)
	// List and ListByAuthor return posts in creation order.
	List(ctx context.Context) ([]domain.Post, error)
	ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]domain.Post, error)
}

type RatingRepository interface {
	// Upsert records rating for the post, replacing an earlier rating by the
	// same user. It fails with ErrNotFound if the post does not exist.
	Upsert(ctx context.Context, postID int64, rating domain.Rating) error
	ListByPost(ctx context.Context, postID int64) ([]domain.Rating, error)
	Summary(ctx context.Context, postID int64) (*domain.RatingSummary, error)
}
