package realtime

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	hubWriteWait      = 10 * time.Second
	hubPongWait       = 60 * time.Second
	hubPingPeriod     = (hubPongWait * 9) / 10
	hubMaxMessageSize = 512
)

// Signal is the only thing the hub ever sends to browsers: a typed nudge
// to refetch. It deliberately carries no data payload, keeping the server
// as the single source of truth.
type Signal struct {
	Type string `json:"type"`
	Room string `json:"room,omitempty"`
}

// Hub relays refetch signals to connected browsers, grouped by tournament
// room. Browsers viewing a scoreboard join the room for that tournament
// and get poked whenever the gateway learns something changed.
type Hub struct {
	register   chan *HubClient
	unregister chan *HubClient

	mu     sync.RWMutex
	rooms  map[string]map[*HubClient]bool
	logger *slog.Logger
}

func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		register:   make(chan *HubClient),
		unregister: make(chan *HubClient),
		rooms:      make(map[string]map[*HubClient]bool),
		logger:     logger,
	}
}

// Run owns the room membership maps. Call it once in its own goroutine.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			if _, ok := h.rooms[client.room]; !ok {
				h.rooms[client.room] = make(map[*HubClient]bool)
			}
			h.rooms[client.room][client] = true
			h.logger.Info("viewer joined room",
				slog.String("room", client.room),
				slog.Int("viewers", len(h.rooms[client.room])))
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			if clients, ok := h.rooms[client.room]; ok {
				if _, present := clients[client]; present {
					client.closeSend()
					delete(clients, client)
					if len(clients) == 0 {
						delete(h.rooms, client.room)
					}
					h.logger.Info("viewer left room", slog.String("room", client.room))
				}
			}
			h.mu.Unlock()
		}
	}
}

// SignalRoom nudges every viewer of the given tournament room. Slow
// viewers whose buffers are full simply miss this signal; the next one
// will reach them.
func (h *Hub) SignalRoom(room, eventType string) {
	raw, err := json.Marshal(Signal{Type: eventType, Room: room})
	if err != nil {
		h.logger.Error("failed to marshal signal", slog.Any("error", err))
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for client := range h.rooms[room] {
		select {
		case client.send <- raw:
		default:
		}
	}
}

// HubClient is one browser connection attached to a room.
type HubClient struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte
	room string

	closeOnce sync.Once
}

// NewHubClient wraps an upgraded connection, registers it with the hub
// and starts its pumps.
func NewHubClient(h *Hub, conn *websocket.Conn, room string) *HubClient {
	c := &HubClient{
		hub:  h,
		conn: conn,
		send: make(chan []byte, 16),
		room: room,
	}
	h.register <- c
	go c.writePump()
	go c.readPump()
	return c
}

func (c *HubClient) closeSend() {
	c.closeOnce.Do(func() { close(c.send) })
}

// readPump drains (and discards) anything the browser sends. Its real job
// is detecting disconnects and keeping the pong deadline fresh.
func (c *HubClient) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()
	c.conn.SetReadLimit(hubMaxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(hubPongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(hubPongWait))
		return nil
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (c *HubClient) writePump() {
	ticker := time.NewTicker(hubPingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()
	for {
		select {
		case msg, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(hubWriteWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(hubWriteWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
