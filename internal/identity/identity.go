// Package identity carries the resolved caller identity through a request.
//
// Write operations never take an explicit actor parameter. Transports
// authenticate the caller and attach it with WithCaller; services read it
// back with CallerFrom.
package identity

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

const callerKey contextKey = "caller_id"

// WithCaller returns a copy of ctx carrying id as the calling identity.
func WithCaller(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, callerKey, id)
}

// CallerFrom extracts the calling identity. The nil UUID is never a caller.
func CallerFrom(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(callerKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}
