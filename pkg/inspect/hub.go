package inspect

import (
	"context"
	"net/http"
	"sync"

	"github.com/cespare/xxhash"
	"github.com/gorilla/websocket"
	"github.com/thelolagemann/gbmmu/pkg/log"
)

// Hub broadcasts snapshots to every connected websocket client.
// Unchanged snapshots are not sent again, and a client that connects
// late is sent the latest snapshot of every window.
type Hub struct {
	clients map[*client]bool
	latest  map[uint16][]byte

	register, unregister chan *client
	broadcast            chan message
	done                 chan struct{}

	// guards hashes, which Publish uses to skip unchanged windows
	mu     sync.Mutex
	hashes map[uint16]uint64

	quality int
	log     log.Logger
}

type message struct {
	start uint16
	data  []byte
}

// HubOpt configures a Hub.
type HubOpt func(h *Hub)

// WithCompression brotli compresses every snapshot at the given
// quality (0-11).
func WithCompression(quality int) HubOpt {
	return func(h *Hub) {
		h.quality = quality
	}
}

// WithLogger sets the logger used by the hub.
func WithLogger(l log.Logger) HubOpt {
	return func(h *Hub) {
		h.log = l
	}
}

// NewHub returns a new Hub. Run must be called for it to serve
// clients.
func NewHub(opts ...HubOpt) *Hub {
	h := &Hub{
		clients:    map[*client]bool{},
		latest:     map[uint16][]byte{},
		register:   make(chan *client),
		unregister: make(chan *client),
		broadcast:  make(chan message, 64),
		done:       make(chan struct{}),
		hashes:     map[uint16]uint64{},
		quality:    -1,
		log:        log.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024 * 16,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Handler returns the http.Handler that upgrades clients to a
// websocket connection.
func (h *Hub) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			h.log.Errorf("inspect: upgrading %s: %v", r.RemoteAddr, err)
			return
		}

		c := &client{hub: h, conn: conn, send: make(chan []byte, 64)}
		select {
		case h.register <- c:
		case <-h.done:
			conn.Close()
			return
		}

		go c.writePump()
		go c.readPump()
	})
}

// Run serves clients until ctx is cancelled.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case c := <-h.register:
			h.clients[c] = true
			h.log.Debugf("inspect: client %s connected", c.conn.RemoteAddr())

			// synchronize the connecting client
			for _, msg := range h.latest {
				c.send <- msg
			}
		case c := <-h.unregister:
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.send)
				h.log.Debugf("inspect: client %s disconnected", c.conn.RemoteAddr())
			}
		case msg := <-h.broadcast:
			h.latest[msg.start] = msg.data
			for c := range h.clients {
				select {
				case c.send <- msg.data:
				default:
					// client is too slow to keep up
					close(c.send)
					delete(h.clients, c)
				}
			}
		case <-ctx.Done():
			for c := range h.clients {
				close(c.send)
				delete(h.clients, c)
			}
			return
		}
	}
}

// Publish queues every snapshot that has changed since it was last
// published, and returns the number queued. Snapshots are dropped if
// the hub is not keeping up, and will be retried on the next Publish.
func (h *Hub) Publish(snapshots []Snapshot) int {
	h.mu.Lock()
	defer h.mu.Unlock()

	queued := 0
	for _, s := range snapshots {
		hash := xxhash.Sum64(s.Data)
		if prev, ok := h.hashes[s.Start]; ok && prev == hash {
			continue
		}

		data, err := encode(s, h.quality)
		if err != nil {
			h.log.Errorf("inspect: encoding %s: %v", s.Name, err)
			continue
		}

		select {
		case h.broadcast <- message{start: s.Start, data: data}:
			h.hashes[s.Start] = hash
			queued++
		default:
		}
	}
	return queued
}
