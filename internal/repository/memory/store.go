// Package memory is an in-process implementation of the repository
// interfaces. A single Store owns all state; the repos returned by
// NewUserRepo, NewPostRepo and NewRatingRepo are views that share its lock,
// so every operation runs under one coarse exclusive section.
package memory

import (
	"sync"

	"github.com/google/uuid"
	"github.com/vedran77/quill/internal/domain"
)

type ratingKey struct {
	postID int64
	userID uuid.UUID
}

type Store struct {
	mu sync.RWMutex

	users map[uuid.UUID]domain.User

	// posts is in creation order; post IDs are 1-based positions in it.
	posts    []domain.Post
	byAuthor map[uuid.UUID][]int64

	// ratings keeps raters in first-rated order per post; ratingIdx points
	// into it so an upsert never appends a second entry for a rater.
	ratings   map[int64][]domain.Rating
	ratingIdx map[ratingKey]int
}

func NewStore() *Store {
	return &Store{
		users:     make(map[uuid.UUID]domain.User),
		byAuthor:  make(map[uuid.UUID][]int64),
		ratings:   make(map[int64][]domain.Rating),
		ratingIdx: make(map[ratingKey]int),
	}
}

// post returns the post with the given ID. Caller must hold s.mu.
func (s *Store) post(id int64) (domain.Post, bool) {
	if id < 1 || id > int64(len(s.posts)) {
		return domain.Post{}, false
	}
	return s.posts[id-1], true
}
