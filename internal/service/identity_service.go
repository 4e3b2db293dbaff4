package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/vedran77/quill/internal/identity"
)

// IdentityService mints caller identities. It stands in for an external
// identity provider during development: each call yields a new opaque
// identity and a bearer token proving it.
type IdentityService struct {
	issuer *identity.Issuer
}

func NewIdentityService(issuer *identity.Issuer) *IdentityService {
	return &IdentityService{issuer: issuer}
}

type IdentityResponse struct {
	UserID      uuid.UUID `json:"user_id"`
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
}

func (s *IdentityService) NewIdentity(ctx context.Context) (*IdentityResponse, error) {
	id := uuid.New()
	token, expiresAt, err := s.issuer.Issue(id)
	if err != nil {
		return nil, fmt.Errorf("generating token: %w", err)
	}
	return &IdentityResponse{UserID: id, AccessToken: token, ExpiresAt: expiresAt}, nil
}
