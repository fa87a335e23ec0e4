// Package realtime pushes menu change notices to connected websocket clients.
package realtime

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"slices"
	"sync/atomic"
	"time"

	"menuboard/config"
	"menuboard/internal/domain/service"

	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// MessageTypeMenuUpdated is the type of every notice sent to clients.
const MessageTypeMenuUpdated = "menu.updated"

const (
	defaultWriteTimeout = 10 * time.Second
	defaultPingInterval = 30 * time.Second
	clientBufferSize    = 16
	maxClientMessage    = 512
)

// ErrDisabled is returned by ServeWS when the realtime feed is switched off.
var ErrDisabled = errors.New("realtime menu feed is disabled")

// ClientCounter observes the number of connected clients.
type ClientCounter interface {
	SetRealtimeClients(n int)
}

// Message is the JSON notice written to clients.
type Message struct {
	Type   string             `json:"type"`
	Change service.MenuChange `json:"change"`
	SentAt time.Time          `json:"sentAt"`
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub owns the set of connected clients. Only the Run goroutine touches the set.
type Hub struct {
	enabled      bool
	upgrader     websocket.Upgrader
	writeTimeout time.Duration
	pingInterval time.Duration
	counter      ClientCounter
	logger       *slog.Logger

	register   chan *client
	unregister chan *client
	broadcast  chan []byte
	done       chan struct{}
	clients    atomic.Int64
}

// Params holds dependencies for the Hub, injected by Fx.
type Params struct {
	fx.In

	Lc      fx.Lifecycle
	Config  *config.Config
	Logger  *slog.Logger
	Counter ClientCounter `optional:"true"`
}

// New creates the hub and ties its loop to the application lifecycle.
func New(params Params) *Hub {
	hub := NewHub(params.Config.Realtime, params.Counter, params.Logger)
	if !hub.enabled {
		params.Logger.Info("Realtime menu feed disabled")

		return hub
	}

	ctx, cancel := context.WithCancel(context.Background())
	params.Lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go hub.Run(ctx)

			return nil
		},
		OnStop: func(context.Context) error {
			cancel()

			return nil
		},
	})

	return hub
}

// NewHub builds a hub from cfg. A nil cfg or Enabled=false yields a disabled hub.
func NewHub(cfg *config.RealtimeConfig, counter ClientCounter, logger *slog.Logger) *Hub {
	hub := &Hub{
		writeTimeout: defaultWriteTimeout,
		pingInterval: defaultPingInterval,
		counter:      counter,
		logger:       logger,
		register:     make(chan *client),
		unregister:   make(chan *client),
		broadcast:    make(chan []byte, clientBufferSize),
		done:         make(chan struct{}),
	}
	if cfg == nil {
		return hub
	}

	hub.enabled = cfg.Enabled
	if cfg.WriteTimeout > 0 {
		hub.writeTimeout = cfg.WriteTimeout
	}
	if cfg.PingInterval > 0 {
		hub.pingInterval = cfg.PingInterval
	}
	hub.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     originChecker(cfg.AllowedOrigins),
	}

	return hub
}

// originChecker allows the listed origins; "*" allows any. An empty list keeps the same-origin rule.
func originChecker(allowed []string) func(r *http.Request) bool {
	if len(allowed) == 0 {
		return nil
	}
	if slices.Contains(allowed, "*") {
		return func(*http.Request) bool { return true }
	}

	return func(r *http.Request) bool {
		return slices.Contains(allowed, r.Header.Get("Origin"))
	}
}

// Run serves registrations and broadcasts until ctx is done, then closes every client.
func (h *Hub) Run(ctx context.Context) {
	clients := make(map[*client]struct{})
	defer func() {
		close(h.done)
		for c := range clients {
			close(c.send)
		}
		h.setClients(0)
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case c := <-h.register:
			clients[c] = struct{}{}
			h.setClients(len(clients))
			h.logger.Debug("Realtime client connected", slog.Int("clients", len(clients)))

		case c := <-h.unregister:
			if _, ok := clients[c]; ok {
				delete(clients, c)
				close(c.send)
				h.setClients(len(clients))
			}

		case message := <-h.broadcast:
			for c := range clients {
				select {
				case c.send <- message:
				default:
					// Slow client; drop it rather than stall the others.
					delete(clients, c)
					close(c.send)
				}
			}
			h.setClients(len(clients))
		}
	}
}

func (h *Hub) setClients(n int) {
	h.clients.Store(int64(n))
	if h.counter != nil {
		h.counter.SetRealtimeClients(n)
	}
}

// Clients returns the number of connected clients.
func (h *Hub) Clients() int {
	return int(h.clients.Load())
}

// NotifyMenuChanged queues a menu.updated notice for every client. It never blocks past ctx.
func (h *Hub) NotifyMenuChanged(ctx context.Context, change service.MenuChange) {
	if !h.enabled {
		return
	}

	payload, err := json.Marshal(Message{Type: MessageTypeMenuUpdated, Change: change, SentAt: time.Now().UTC()})
	if err != nil {
		h.logger.Warn("Failed to encode menu change", slog.Any("error", err))

		return
	}

	select {
	case h.broadcast <- payload:
	case <-h.done:
	case <-ctx.Done():
		h.logger.Warn("Menu change notice dropped", slog.String("kind", change.Kind), slog.String("action", change.Action))
	}
}

// ServeWS upgrades the request and keeps the connection until the client leaves or the hub stops.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) error {
	if !h.enabled {
		return ErrDisabled
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return errors.Wrap(err, "websocket upgrade failed")
	}

	c := &client{conn: conn, send: make(chan []byte, clientBufferSize)}
	select {
	case h.register <- c:
	case <-h.done:
		conn.Close()

		return nil
	}

	go h.writePump(c)
	h.readPump(c)

	return nil
}

// readPump discards client frames and unregisters the client once the connection drops.
func (h *Hub) readPump(c *client) {
	defer func() {
		select {
		case h.unregister <- c:
		case <-h.done:
		}
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxClientMessage)
	_ = c.conn.SetReadDeadline(time.Now().Add(2 * h.pingInterval))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(2 * h.pingInterval))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) writePump(c *client) {
	ticker := time.NewTicker(h.pingInterval)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(h.writeTimeout))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseGoingAway, ""))

				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(h.writeTimeout))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
