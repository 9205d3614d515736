package realtime

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// ConnState is what the header badge shows for the upstream connection.
type ConnState string

const (
	StateConnecting   ConnState = "connecting"
	StateConnected    ConnState = "connected"
	StateDisconnected ConnState = "disconnected"
	StateOffline      ConnState = "offline"
)

const (
	listenerWriteWait    = 10 * time.Second
	listenerPongWait     = 60 * time.Second
	listenerPingPeriod   = (listenerPongWait * 9) / 10
	maxReconnectAttempts = 5
	reconnectBaseDelay   = time.Second
)

// updateEvents are the backend event names that mean "state changed".
// Any of them triggers the same debounced refetch; payloads are never
// read as data.
var updateEvents = map[string]bool{
	"leaderboardUpdated": true,
	"scoreUpdated":       true,
	"tournamentUpdated":  true,
	"update":             true,
}

// Message is the wire shape of the backend's socket frames. Payload is
// kept only for the join frame the listener itself sends.
type Message struct {
	Type    string `json:"type"`
	Payload string `json:"payload,omitempty"`
}

// Listener holds one upstream socket to the backend. It joins a room
// keyed by the active tournament id and converts update events into
// debounced refetch callbacks. Reconnection is bounded; once attempts are
// exhausted the state goes Offline and stays there until the next Join.
type Listener struct {
	url      string
	logger   *slog.Logger
	debounce *Debouncer
	onState  func(ConnState)

	mu     sync.Mutex
	room   string
	state  ConnState
	cancel context.CancelFunc
}

// NewListener builds a listener that calls refetch (debounced by window)
// whenever the backend signals a change. onState may be nil.
func NewListener(socketURL string, window time.Duration, refetch func(), onState func(ConnState), logger *slog.Logger) *Listener {
	l := &Listener{
		url:     socketURL,
		logger:  logger,
		onState: onState,
		state:   StateDisconnected,
	}
	l.debounce = NewDebouncer(window, refetch)
	return l
}

// State returns the current connection state.
func (l *Listener) State() ConnState {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// Room returns the tournament room the listener is joined to.
func (l *Listener) Room() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.room
}

// Join switches the listener to the given tournament room and (re)opens
// the upstream connection. A previous connection for another room is torn
// down first.
func (l *Listener) Join(parent context.Context, tournamentID string) {
	l.mu.Lock()
	l.room = tournamentID
	if l.cancel != nil {
		l.cancel()
	}
	ctx, cancel := context.WithCancel(parent)
	l.cancel = cancel
	l.mu.Unlock()

	go l.run(ctx)
}

// EnsureRoom joins the given tournament room unless the listener is
// already on it with a live connect cycle. Opening a console or
// scoreboard page calls this, so the upstream follows whatever tournament
// is being watched.
func (l *Listener) EnsureRoom(parent context.Context, tournamentID string) {
	l.mu.Lock()
	already := l.room == tournamentID && l.cancel != nil && l.state != StateOffline
	l.mu.Unlock()
	if already {
		return
	}
	l.Join(parent, tournamentID)
}

// Close tears down the upstream connection and cancels pending refetches.
func (l *Listener) Close() {
	l.mu.Lock()
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
	l.mu.Unlock()
	l.debounce.Stop()
}

func (l *Listener) setState(s ConnState) {
	l.mu.Lock()
	changed := l.state != s
	l.state = s
	l.mu.Unlock()
	if changed && l.onState != nil {
		l.onState(s)
	}
}

// run owns the connect/read/reconnect cycle for one Join call.
func (l *Listener) run(ctx context.Context) {
	attempts := 0
	for {
		if ctx.Err() != nil {
			return
		}
		l.setState(StateConnecting)

		conn, err := l.dial(ctx)
		if err != nil {
			attempts++
			l.logger.Warn("socket connection failed",
				slog.Int("attempt", attempts),
				slog.Any("error", err))
			if attempts >= maxReconnectAttempts {
				// Stale data stays on screen; only the badge goes dark.
				l.setState(StateOffline)
				return
			}
			l.setState(StateDisconnected)
			select {
			case <-ctx.Done():
				return
			case <-time.After(reconnectBaseDelay * time.Duration(attempts)):
			}
			continue
		}

		attempts = 0
		l.setState(StateConnected)

		// The room is re-read here, not captured at connect time, so a
		// reconnect always joins the tournament that is active NOW.
		room := l.Room()
		if err := l.sendJoin(conn, room); err != nil {
			l.logger.Warn("failed to join tournament room",
				slog.String("room", room), slog.Any("error", err))
			conn.Close()
			continue
		}
		l.logger.Info("joined tournament room", slog.String("room", room))

		l.readLoop(ctx, conn)
		l.setState(StateDisconnected)
	}
}

func (l *Listener) dial(ctx context.Context) (*websocket.Conn, error) {
	dialer := websocket.Dialer{HandshakeTimeout: 10 * time.Second}
	conn, _, err := dialer.DialContext(ctx, l.url, nil)
	if err != nil {
		return nil, err
	}
	return conn, nil
}

func (l *Listener) sendJoin(conn *websocket.Conn, room string) error {
	conn.SetWriteDeadline(time.Now().Add(listenerWriteWait))
	return conn.WriteJSON(Message{Type: "joinTournament", Payload: room})
}

// readLoop reads frames until the connection drops or ctx is canceled.
// Frames with a known update type trigger the debounced refetch; anything
// else is ignored.
func (l *Listener) readLoop(ctx context.Context, conn *websocket.Conn) {
	defer conn.Close()

	done := make(chan struct{})
	defer close(done)
	go l.pingLoop(ctx, conn, done)

	conn.SetReadDeadline(time.Now().Add(listenerPongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(listenerPongWait))
		return nil
	})

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				l.logger.Warn("socket read failed", slog.Any("error", err))
			}
			return
		}

		var msg Message
		if err := json.Unmarshal(raw, &msg); err != nil {
			continue
		}
		if updateEvents[msg.Type] {
			l.debounce.Trigger()
		}
	}
}

func (l *Listener) pingLoop(ctx context.Context, conn *websocket.Conn, done <-chan struct{}) {
	ticker := time.NewTicker(listenerPingPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			conn.Close()
			return
		case <-done:
			return
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(listenerWriteWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
