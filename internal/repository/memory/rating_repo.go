package memory

import (
	"context"

	"github.com/vedran77/quill/internal/domain"
	"github.com/vedran77/quill/internal/repository"
)

type RatingRepo struct {
	store *Store
}

func NewRatingRepo(store *Store) *RatingRepo {
	return &RatingRepo{store: store}
}

func (r *RatingRepo) Upsert(ctx context.Context, postID int64, rating domain.Rating) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.post(postID); !ok {
		return repository.ErrNotFound
	}

	key := ratingKey{postID: postID, userID: rating.UserID}
	if i, ok := r.store.ratingIdx[key]; ok {
		r.store.ratings[postID][i].Value = rating.Value
		return nil
	}
	r.store.ratingIdx[key] = len(r.store.ratings[postID])
	r.store.ratings[postID] = append(r.store.ratings[postID], rating)
	return nil
}

func (r *RatingRepo) ListByPost(ctx context.Context, postID int64) ([]domain.Rating, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	ratings := make([]domain.Rating, len(r.store.ratings[postID]))
	copy(ratings, r.store.ratings[postID])
	return ratings, nil
}

func (r *RatingRepo) Summary(ctx context.Context, postID int64) (*domain.RatingSummary, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	summary := &domain.RatingSummary{PostID: postID}
	for _, rt := range r.store.ratings[postID] {
		summary.Count++
		summary.Sum += int64(rt.Value)
	}
	return summary, nil
}
