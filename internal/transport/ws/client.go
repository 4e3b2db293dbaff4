package ws

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"
)

const (
	writeWait      = 10 * time.Second
	pingInterval   = 30 * time.Second
	maxMessageSize = 4096
	sendBufSize    = 256
)

// Client represents a single WebSocket connection. callerID is uuid.Nil for
// anonymous readers.
type Client struct {
	hub      *Hub
	conn     *websocket.Conn
	callerID uuid.UUID

	// subscribedPosts tracks which posts this client wants rating updates for.
	subscribedPosts map[int64]struct{}
	mu              sync.RWMutex

	send chan []byte
	// done is closed by the hub when it drops the client; send is never
	// closed so direct replies cannot panic.
	done chan struct{}
}

func NewClient(hub *Hub, conn *websocket.Conn, callerID uuid.UUID) *Client {
	conn.SetReadLimit(maxMessageSize)
	return &Client{
		hub:             hub,
		conn:            conn,
		callerID:        callerID,
		subscribedPosts: make(map[int64]struct{}),
		send:            make(chan []byte, sendBufSize),
		done:            make(chan struct{}),
	}
}

func (c *Client) IsSubscribed(postID int64) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.subscribedPosts[postID]
	return ok
}

func (c *Client) Subscribe(postID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.subscribedPosts[postID] = struct{}{}
}

func (c *Client) Unsubscribe(postID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.subscribedPosts, postID)
}

// ReadPump reads client events until the connection or ctx ends.
func (c *Client) ReadPump(ctx context.Context) {
	defer func() {
		select {
		case c.hub.unregister <- c:
		case <-c.done:
		case <-ctx.Done():
		}
		c.conn.Close(websocket.StatusNormalClosure, "")
	}()

	for {
		var event Event
		err := wsjson.Read(ctx, c.conn, &event)
		if err != nil {
			if websocket.CloseStatus(err) != -1 {
				slog.Debug("ws: client disconnected", "caller", c.callerID)
			} else if ctx.Err() == nil {
				slog.Warn("ws: read error", "caller", c.callerID, "error", err)
			}
			return
		}

		c.handleEvent(&event)
	}
}

// WritePump writes queued events and keeps the connection alive with pings.
// It exits when the hub drops the client.
func (c *Client) WritePump(ctx context.Context) {
	ticker := time.NewTicker(pingInterval)
	defer func() {
		ticker.Stop()
		c.conn.Close(websocket.StatusNormalClosure, "")
	}()

	for {
		select {
		case <-c.done:
			return

		case message := <-c.send:
			wctx, cancel := context.WithTimeout(ctx, writeWait)
			err := c.conn.Write(wctx, websocket.MessageText, message)
			cancel()
			if err != nil {
				slog.Warn("ws: write error", "caller", c.callerID, "error", err)
				return
			}

		case <-ticker.C:
			pctx, cancel := context.WithTimeout(ctx, writeWait)
			err := c.conn.Ping(pctx)
			cancel()
			if err != nil {
				slog.Debug("ws: ping error", "caller", c.callerID, "error", err)
				return
			}
		}
	}
}

func (c *Client) handleEvent(event *Event) {
	switch event.Type {
	case EventTypePostSubscribe, EventTypePostUnsubscribe:
		var p PostPayload
		if err := json.Unmarshal(event.Payload, &p); err != nil || p.PostID < 1 {
			c.sendError("INVALID_PAYLOAD", "invalid "+event.Type+" payload")
			return
		}
		if event.Type == EventTypePostSubscribe {
			c.Subscribe(p.PostID)
		} else {
			c.Unsubscribe(p.PostID)
		}

	case EventTypePing:
		c.sendEvent(&Event{Type: EventTypePong})

	default:
		c.sendError("UNKNOWN_EVENT", "unknown event type: "+event.Type)
	}
}

func (c *Client) sendError(code, message string) {
	evt, err := NewEvent(EventTypeError, nil, ErrorPayload{Code: code, Message: message})
	if err != nil {
		return
	}
	c.sendEvent(evt)
}

func (c *Client) sendEvent(evt *Event) {
	data, err := json.Marshal(evt)
	if err != nil {
		return
	}
	select {
	case <-c.done:
	case c.send <- data:
	default:
	}
}
