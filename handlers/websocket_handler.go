package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"partyboard/realtime"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// The gateway and its pages share an origin; tighten this when a
		// separate asset host is introduced.
		return true
	},
}

// WebSocketHandler attaches scoreboard viewers to the refetch-signal hub.
// Viewers get typed nudges only, never score payloads.
type WebSocketHandler struct {
	hub      *realtime.Hub
	listener *realtime.Listener
	logger   *slog.Logger
}

func NewWebSocketHandler(hub *realtime.Hub, listener *realtime.Listener, logger *slog.Logger) *WebSocketHandler {
	return &WebSocketHandler{hub: hub, listener: listener, logger: logger}
}

// ServeWs handles GET /ws/tournaments/{tournamentID}. The room id is the
// tournament id; joining also points the upstream listener at that
// tournament so backend events reach this room.
func (h *WebSocketHandler) ServeWs(w http.ResponseWriter, r *http.Request) {
	tournamentID := chi.URLParam(r, "tournamentID")
	if tournamentID == "" {
		http.Error(w, "missing tournamentID", http.StatusBadRequest)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed",
			slog.String("tournament_id", tournamentID),
			slog.Any("error", err))
		return
	}

	h.listener.EnsureRoom(context.Background(), tournamentID)
	realtime.NewHubClient(h.hub, conn, tournamentID)

	h.logger.Info("scoreboard viewer connected", slog.String("room", tournamentID))
}
