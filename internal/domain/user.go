package domain

import (
	"github.com/google/uuid"
)

// User is a profile keyed by the identity of the caller that created it.
type User struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Bio      string    `json:"bio"`
}
