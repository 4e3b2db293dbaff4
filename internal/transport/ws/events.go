package ws

import (
	"encoding/json"
	"time"

	"github.com/vedran77/quill/internal/domain"
)

// Event types - Client → Server
const (
	EventTypePostSubscribe   = "post.subscribe"
	EventTypePostUnsubscribe = "post.unsubscribe"
	EventTypePing            = "ping"
)

// Event types - Server → Client
const (
	EventTypePostNew       = "post.new"
	EventTypeRatingUpdated = "rating.updated"
	EventTypePong          = "pong"
	EventTypeError         = "error"
)

// Event is the envelope for all WebSocket messages.
type Event struct {
	Type      string          `json:"type"`
	PostID    *int64          `json:"post_id,omitempty"`
	Payload   json.RawMessage `json:"payload,omitempty"`
	Timestamp int64           `json:"ts,omitempty"`
}

// --- Client → Server payloads ---

type PostPayload struct {
	PostID int64 `json:"post_id"`
}

// --- Server → Client payloads ---

type PostNewPayload struct {
	domain.Post
}

type RatingUpdatedPayload struct {
	PostID  int64    `json:"post_id"`
	Average *float64 `json:"average"`
	Count   int64    `json:"count"`
}

type ErrorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NewEvent creates a server→client event with the current timestamp.
func NewEvent(eventType string, postID *int64, payload any) (*Event, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return &Event{
		Type:      eventType,
		PostID:    postID,
		Payload:   data,
		Timestamp: time.Now().Unix(),
	}, nil
}
