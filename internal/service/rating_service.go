package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/vedran77/quill/internal/domain"
	"github.com/vedran77/quill/internal/repository"
)

type RatingService struct {
	ratingRepo repository.RatingRepository
	postRepo   repository.PostRepository
	notifier   Notifier
}

func NewRatingService(ratingRepo repository.RatingRepository, postRepo repository.PostRepository, notifier Notifier) *RatingService {
	return &RatingService{
		ratingRepo: ratingRepo,
		postRepo:   postRepo,
		notifier:   notifierOrNoop(notifier),
	}
}

type RatePostInput struct {
	Value int `json:"value"`
}

// RatePost records the caller's rating of a post, replacing any earlier
// rating by the same caller. Authors may rate their own posts.
func (s *RatingService) RatePost(ctx context.Context, postID int64, input RatePostInput) error {
	callerID, err := callerFrom(ctx)
	if err != nil {
		return err
	}

	if !domain.ValidRating(input.Value) {
		return ErrInvalidRating
	}

	err = s.ratingRepo.Upsert(ctx, postID, domain.Rating{UserID: callerID, Value: input.Value})
	if errors.Is(err, repository.ErrNotFound) {
		return ErrPostNotFound
	}
	if err != nil {
		return fmt.Errorf("rating post: %w", err)
	}

	summary, err := s.ratingRepo.Summary(ctx, postID)
	if err != nil {
		// The rating is committed; only the live update is lost.
		slog.Warn("rating summary for notification failed", "post_id", postID, "error", err)
		return nil
	}
	s.notifier.NotifyRatingChanged(summary)
	return nil
}

// GetPostRatings returns one rating per distinct rater. It fails with
// ErrPostNotFound for unknown posts and returns an empty slice for posts
// nobody has rated.
func (s *RatingService) GetPostRatings(ctx context.Context, postID int64) ([]domain.Rating, error) {
	if err := s.requirePost(ctx, postID); err != nil {
		return nil, err
	}
	return s.ratingRepo.ListByPost(ctx, postID)
}

// GetAggregatedRating returns the mean rating of a post, or nil when the post
// has no ratings. Unknown posts fail with ErrPostNotFound.
func (s *RatingService) GetAggregatedRating(ctx context.Context, postID int64) (*float64, error) {
	summary, err := s.GetRatingSummary(ctx, postID)
	if err != nil {
		return nil, err
	}
	return summary.Average(), nil
}

func (s *RatingService) GetRatingSummary(ctx context.Context, postID int64) (*domain.RatingSummary, error) {
	if err := s.requirePost(ctx, postID); err != nil {
		return nil, err
	}
	return s.ratingRepo.Summary(ctx, postID)
}

func (s *RatingService) requirePost(ctx context.Context, postID int64) error {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}
	return nil
}
