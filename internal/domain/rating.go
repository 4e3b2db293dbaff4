package domain

import (
	"github.com/google/uuid"
)

const (
	MinRating = 1
	MaxRating = 5
)

type Rating struct {
	UserID uuid.UUID `json:"user_id"`
	Value  int       `json:"value"`
}

// ValidRating reports whether v lies in [MinRating, MaxRating].
func ValidRating(v int) bool {
	return v >= MinRating && v <= MaxRating
}

// RatingSummary is the per-post aggregate the mean is derived from.
type RatingSummary struct {
	PostID int64 `json:"post_id"`
	Count  int64 `json:"count"`
	Sum    int64 `json:"-"`
}

// Average returns the arithmetic mean of the ratings, or nil when there are none.
func (s RatingSummary) Average() *float64 {
	if s.Count == 0 {
		return nil
	}
	avg := float64(s.Sum) / float64(s.Count)
	return &avg
}
