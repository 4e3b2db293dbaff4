package ws

import (
	"log/slog"

	"github.com/vedran77/quill/internal/domain"
)

// HubNotifier implements service.Notifier using the WebSocket Hub.
type HubNotifier struct {
	hub *Hub
}

func NewHubNotifier(hub *Hub) *HubNotifier {
	return &HubNotifier{hub: hub}
}

func (n *HubNotifier) NotifyNewPost(post *domain.Post) {
	evt, err := NewEvent(EventTypePostNew, &post.ID, PostNewPayload{Post: *post})
	if err != nil {
		slog.Error("ws notifier: marshal error", "error", err)
		return
	}
	n.hub.Broadcast(nil, evt)
}

func (n *HubNotifier) NotifyRatingChanged(summary *domain.RatingSummary) {
	postID := summary.PostID
	evt, err := NewEvent(EventTypeRatingUpdated, &postID, RatingUpdatedPayload{
		PostID:  postID,
		Average: summary.Average(),
		Count:   summary.Count,
	})
	if err != nil {
		slog.Error("ws notifier: marshal error", "error", err)
		return
	}
	n.hub.Broadcast(&postID, evt)
}
