package ws

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"nhooyr.io/websocket"
)

// TokenParser resolves an identity token to a caller.
type TokenParser interface {
	Parse(token string) (uuid.UUID, error)
}

// ServeWS returns an HTTP handler that upgrades to WebSocket.
// Reads are public, so ?token=xxx is optional (WebSocket can't send
// headers); a token that is present must be valid.
func ServeWS(hub *Hub, tokens TokenParser, allowedOrigin string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		callerID := uuid.Nil
		if tokenStr := r.URL.Query().Get("token"); tokenStr != "" {
			id, err := tokens.Parse(tokenStr)
			if err != nil {
				http.Error(w, "invalid token", http.StatusUnauthorized)
				return
			}
			callerID = id
		}

		opts := &websocket.AcceptOptions{}
		if allowedOrigin == "*" {
			opts.InsecureSkipVerify = true
		} else {
			opts.OriginPatterns = []string{allowedOrigin}
		}

		conn, err := websocket.Accept(w, r, opts)
		if err != nil {
			slog.Warn("ws: accept error", "error", err)
			return
		}

		// The request context is cancelled once this handler returns, so the
		// pumps run on a context detached from it.
		ctx := context.WithoutCancel(r.Context())

		client := NewClient(hub, conn, callerID)
		select {
		case hub.register <- client:
		case <-r.Context().Done():
			conn.Close(websocket.StatusGoingAway, "")
			return
		}

		go client.WritePump(ctx)
		go client.ReadPump(ctx)
	}
}
