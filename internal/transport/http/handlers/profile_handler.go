package handlers

import (
	"net/http"

	"github.com/vedran77/quill/internal/service"
)

type ProfileHandler struct {
	profileService *service.ProfileService
	postService    *service.PostService
}

func NewProfileHandler(profileService *service.ProfileService, postService *service.PostService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService, postService: postService}
}

func (h *ProfileHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input service.CreateProfileInput
	if !decodeJSON(w, r, &input) {
		return
	}

	user, err := h.profileService.CreateProfile(r.Context(), input)
	if err != nil {
		writeServiceError(w, r, "create profile", err)
		return
	}

	writeJSON(w, http.StatusCreated, user)
}

func (h *ProfileHandler) UpdateBio(w http.ResponseWriter, r *http.Request) {
	var input service.UpdateBioInput
	if !decodeJSON(w, r, &input) {
		return
	}

	if err := h.profileService.UpdateBio(r.Context(), input); err != nil {
		writeServiceError(w, r, "update bio", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUserID(w, r)
	if !ok {
		return
	}

	user, err := h.profileService.GetProfile(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, "get profile", err)
		return
	}
	if user == nil {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "Profile not found")
		return
	}

	writeJSON(w, http.StatusOK, user)
}

func (h *ProfileHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseUserID(w, r)
	if !ok {
		return
	}

	posts, err := h.postService.GetUserPosts(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, "list user posts", err)
		return
	}

	writeJSON(w, http.StatusOK, posts)
}
