package handlers

import (
	"net/http"

	"github.com/vedran77/quill/internal/service"
)

type PostHandler struct {
	postService *service.PostService
}

func NewPostHandler(postService *service.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input service.CreatePostInput
	if !decodeJSON(w, r, &input) {
		return
	}

	post, err := h.postService.CreatePost(r.Context(), input)
	if err != nil {
		writeServiceError(w, r, "create post", err)
		return
	}

	writeJSON(w, http.StatusCreated, post)
}

func (h *PostHandler) List(w http.ResponseWriter, r *http.Request) {
	posts, err := h.postService.GetAllPosts(r.Context())
	if err != nil {
		writeServiceError(w, r, "list posts", err)
		return
	}

	writeJSON(w, http.StatusOK, posts)
}

func (h *PostHandler) Get(w http.ResponseWriter, r *http.Request) {
	postID, ok := parsePostID(w, r)
	if !ok {
		return
	}

	post, err := h.postService.GetPost(r.Context(), postID)
	if err != nil {
		writeServiceError(w, r, "get post", err)
		return
	}
	if post == nil {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "Post not found")
		return
	}

	writeJSON(w, http.StatusOK, post)
}
