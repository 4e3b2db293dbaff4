package handlers

import (
	"net/http"

	"github.com/vedran77/quill/internal/service"
)

type IdentityHandler struct {
	identityService *service.IdentityService
}

func NewIdentityHandler(identityService *service.IdentityService) *IdentityHandler {
	return &IdentityHandler{identityService: identityService}
}

func (h *IdentityHandler) Create(w http.ResponseWriter, r *http.Request) {
	resp, err := h.identityService.NewIdentity(r.Context())
	if err != nil {
		writeServiceError(w, r, "new identity", err)
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}
