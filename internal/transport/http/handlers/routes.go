package handlers

import (
	"net/http"
)

type Handlers struct {
	Identity *IdentityHandler
	Profile  *ProfileHandler
	Post     *PostHandler
	Rating   *RatingHandler
}

// Register mounts the API on mux. auth guards every write route.
func Register(mux *http.ServeMux, h Handlers, auth func(http.Handler) http.Handler) {
	// Public
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	mux.HandleFunc("POST /api/v1/identities", h.Identity.Create)

	// Profiles
	mux.Handle("POST /api/v1/profile", auth(http.HandlerFunc(h.Profile.Create)))
	mux.Handle("PATCH /api/v1/profile", auth(http.HandlerFunc(h.Profile.UpdateBio)))
	mux.HandleFunc("GET /api/v1/users/{id}", h.Profile.Get)
	mux.HandleFunc("GET /api/v1/users/{id}/posts", h.Profile.ListPosts)

	// Posts
	mux.Handle("POST /api/v1/posts", auth(http.HandlerFunc(h.Post.Create)))
	mux.HandleFunc("GET /api/v1/posts", h.Post.List)
	mux.HandleFunc("GET /api/v1/posts/{id}", h.Post.Get)

	// Ratings
	mux.Handle("PUT /api/v1/posts/{id}/rating", auth(http.HandlerFunc(h.Rating.Rate)))
	mux.HandleFunc("GET /api/v1/posts/{id}/rating", h.Rating.Aggregate)
	mux.HandleFunc("GET /api/v1/posts/{id}/ratings", h.Rating.List)
}
