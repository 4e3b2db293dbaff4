package ws

import (
	"context"
	"encoding/json"
	"log/slog"
)

// Hub tracks connected clients and fans events out to them. All client
// bookkeeping happens on the Run goroutine.
type Hub struct {
	clients map[*Client]struct{}

	register   chan *Client
	unregister chan *Client
	broadcast  chan *broadcastMsg
}

type broadcastMsg struct {
	// postID limits delivery to subscribers of that post; nil means everyone.
	postID *int64
	data   []byte
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan *broadcastMsg, 256),
	}
}

// Run is the Hub's event loop. It returns when ctx is cancelled, dropping
// every client.
func (h *Hub) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			for client := range h.clients {
				h.drop(client)
			}
			return nil

		case client := <-h.register:
			h.clients[client] = struct{}{}
			slog.Debug("ws hub: client connected", "caller", client.callerID, "total", len(h.clients))

		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				h.drop(client)
				slog.Debug("ws hub: client disconnected", "caller", client.callerID, "total", len(h.clients))
			}

		case msg := <-h.broadcast:
			for client := range h.clients {
				if msg.postID != nil && !client.IsSubscribed(*msg.postID) {
					continue
				}
				select {
				case client.send <- msg.data:
				default:
					// Client buffer full - disconnect
					h.drop(client)
				}
			}
		}
	}
}

func (h *Hub) drop(client *Client) {
	delete(h.clients, client)
	close(client.done)
}

// Broadcast queues event for delivery. A nil postID reaches every client.
// It never blocks; events are dropped when the queue is full.
func (h *Hub) Broadcast(postID *int64, event *Event) {
	data, err := json.Marshal(event)
	if err != nil {
		slog.Error("ws hub: marshal error", "error", err)
		return
	}
	select {
	case h.broadcast <- &broadcastMsg{postID: postID, data: data}:
	default:
		slog.Warn("ws hub: broadcast queue full, dropping event", "type", event.Type)
	}
}
