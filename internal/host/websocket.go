package host

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// broadcastInterval matches fight-club-go's WebSocketHub broadcast
// loop cadence: 10 snapshots/sec is plenty for a spectator view and
// keeps the teacher's own choice rather than inventing a new one.
const broadcastInterval = 100 * time.Millisecond

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true }, // reference shell, not production-hardened
}

// wsHub fans out snapshot broadcasts to every connected client and
// relays inbound input-frame messages back to the Server. Adapted
// from fight-club-go's WebSocketHub: same register/unregister/
// broadcast channel trio, minus the per-IP connection limiter and
// DoS-specific rejection metrics, since this shell is a reference
// implementation, not the production-hardened original.
type wsHub struct {
	mu      sync.RWMutex
	clients map[*websocket.Conn]struct{}

	broadcast  chan []byte
	register   chan *websocket.Conn
	unregister chan *websocket.Conn

	metrics *metrics
}

func newWSHub(m *metrics) *wsHub {
	return &wsHub{
		clients:    make(map[*websocket.Conn]struct{}),
		broadcast:  make(chan []byte, 256),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
		metrics:    m,
	}
}

// run services the hub's channels until ctxDone is closed.
func (h *wsHub) run(ctxDone <-chan struct{}) {
	for {
		select {
		case <-ctxDone:
			h.mu.Lock()
			for conn := range h.clients {
				conn.Close()
			}
			h.clients = make(map[*websocket.Conn]struct{})
			h.mu.Unlock()
			return

		case conn := <-h.register:
			h.mu.Lock()
			h.clients[conn] = struct{}{}
			h.metrics.wsConnActive.Set(float64(len(h.clients)))
			h.mu.Unlock()

		case conn := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				conn.Close()
			}
			h.metrics.wsConnActive.Set(float64(len(h.clients)))
			h.mu.Unlock()

		case msg := <-h.broadcast:
			h.mu.RLock()
			for conn := range h.clients {
				if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
					go func(c *websocket.Conn) { h.unregister <- c }(conn)
				}
			}
			h.mu.RUnlock()
			h.metrics.wsMessagesOut.Inc()
		}
	}
}

// send enqueues msg for broadcast, dropping it under backpressure
// rather than blocking the caller (fight-club-go's Broadcast does the
// same: "Channel full, skip").
func (h *wsHub) send(msg []byte) {
	select {
	case h.broadcast <- msg:
	default:
	}
}

func (h *wsHub) clientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// handleConn upgrades the request and pumps inbound input-frame
// messages to onInput until the connection closes.
func (h *wsHub) handleConn(onInput func(wireInputFrame)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Printf("host: websocket upgrade failed: %v", err)
			return
		}
		h.register <- conn

		defer func() { h.unregister <- conn }()
		for {
			_, data, err := conn.ReadMessage()
			if err != nil {
				return
			}
			var frame wireInputFrame
			if err := json.Unmarshal(data, &frame); err != nil {
				continue
			}
			onInput(frame)
		}
	}
}
