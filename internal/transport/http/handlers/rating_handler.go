package handlers

import (
	"net/http"

	"github.com/vedran77/quill/internal/service"
)

type RatingHandler struct {
	ratingService *service.RatingService
}

func NewRatingHandler(ratingService *service.RatingService) *RatingHandler {
	return &RatingHandler{ratingService: ratingService}
}

type aggregatedRatingResponse struct {
	PostID  int64    `json:"post_id"`
	Average *float64 `json:"average"`
	Count   int64    `json:"count"`
}

func (h *RatingHandler) Rate(w http.ResponseWriter, r *http.Request) {
	postID, ok := parsePostID(w, r)
	if !ok {
		return
	}

	var input service.RatePostInput
	if !decodeJSON(w, r, &input) {
		return
	}

	if err := h.ratingService.RatePost(r.Context(), postID, input); err != nil {
		writeServiceError(w, r, "rate post", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *RatingHandler) List(w http.ResponseWriter, r *http.Request) {
	postID, ok := parsePostID(w, r)
	if !ok {
		return
	}

	ratings, err := h.ratingService.GetPostRatings(r.Context(), postID)
	if err != nil {
		writeServiceError(w, r, "list ratings", err)
		return
	}

	writeJSON(w, http.StatusOK, ratings)
}

func (h *RatingHandler) Aggregate(w http.ResponseWriter, r *http.Request) {
	postID, ok := parsePostID(w, r)
	if !ok {
		return
	}

	summary, err := h.ratingService.GetRatingSummary(r.Context(), postID)
	if err != nil {
		writeServiceError(w, r, "aggregate rating", err)
		return
	}

	writeJSON(w, http.StatusOK, aggregatedRatingResponse{
		PostID:  postID,
		Average: summary.Average(),
		Count:   summary.Count,
	})
}
