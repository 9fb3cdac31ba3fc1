// Package live pushes full collection snapshots to websocket subscribers.
// Mirroring the store contract the UI was built against, a subscriber gets
// the complete current contents of its collection on connect and again after
// every create, update or delete — never an incremental diff.
package live

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"bullion-backend/internal/metrics"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// SnapshotFunc loads the full current contents of a collection, newest first.
type SnapshotFunc func(ctx context.Context) (interface{}, error)

type client struct {
	id      string
	conn    *websocket.Conn
	writeMu sync.Mutex // gorilla conns do not allow concurrent writers
}

type Hub struct {
	mu        sync.Mutex
	clients   map[string]map[*client]bool // collection -> subscribers
	snapshots map[string]SnapshotFunc
}

// envelope is the wire frame sent to subscribers
type envelope struct {
	Collection string      `json:"collection"`
	Data       interface{} `json:"data"`
	SentAt     time.Time   `json:"sent_at"`
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

const writeTimeout = 10 * time.Second

func NewHub() *Hub {
	return &Hub{
		clients:   make(map[string]map[*client]bool),
		snapshots: make(map[string]SnapshotFunc),
	}
}

// RegisterCollection makes a collection subscribable
func (h *Hub) RegisterCollection(name string, load SnapshotFunc) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.snapshots[name] = load
}

// Subscribe upgrades the request to a websocket and registers it for the
// collection named in the query string. Registration happens before the
// initial snapshot is sent, so a write landing in between produces an extra
// full snapshot rather than a lost one.
func (h *Hub) Subscribe(w http.ResponseWriter, r *http.Request) {
	collection := r.URL.Query().Get("collection")

	h.mu.Lock()
	load, ok := h.snapshots[collection]
	h.mu.Unlock()
	if !ok {
		http.Error(w, "unknown collection", http.StatusBadRequest)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[Live] upgrade failed: %v", err)
		return
	}

	c := &client{id: uuid.NewString(), conn: conn}

	h.mu.Lock()
	if h.clients[collection] == nil {
		h.clients[collection] = make(map[*client]bool)
	}
	h.clients[collection][c] = true
	h.mu.Unlock()

	metrics.LiveSubscribers.WithLabelValues(collection).Inc()

	data, err := load(r.Context())
	if err != nil {
		log.Printf("[Live] initial snapshot of %s failed: %v", collection, err)
		h.drop(collection, c)
		return
	}
	if err := h.send(c, collection, data); err != nil {
		h.drop(collection, c)
		return
	}

	log.Printf("[Live] client %s subscribed to %s", c.id, collection)

	// Reader loop exists only to detect the close; subscribers never send
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				h.drop(collection, c)
				return
			}
		}
	}()
}

// CollectionChanged re-delivers the full collection contents to every
// subscriber of that collection. Implements services.ChangeNotifier.
func (h *Hub) CollectionChanged(collection string) {
	go h.broadcast(collection)
}

func (h *Hub) broadcast(collection string) {
	h.mu.Lock()
	load, ok := h.snapshots[collection]
	subscribers := make([]*client, 0, len(h.clients[collection]))
	for c := range h.clients[collection] {
		subscribers = append(subscribers, c)
	}
	h.mu.Unlock()

	if !ok || len(subscribers) == 0 {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	data, err := load(ctx)
	if err != nil {
		log.Printf("[Live] snapshot of %s failed: %v", collection, err)
		return
	}

	for _, c := range subscribers {
		if err := h.send(c, collection, data); err != nil {
			h.drop(collection, c)
		}
	}
}

func (h *Hub) send(c *client, collection string, data interface{}) error {
	payload, err := json.Marshal(envelope{Collection: collection, Data: data, SentAt: time.Now()})
	if err != nil {
		return err
	}
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	return c.conn.WriteMessage(websocket.TextMessage, payload)
}

func (h *Hub) drop(collection string, c *client) {
	h.mu.Lock()
	if subs, ok := h.clients[collection]; ok && subs[c] {
		delete(subs, c)
		metrics.LiveSubscribers.WithLabelValues(collection).Dec()
		log.Printf("[Live] client %s unsubscribed from %s", c.id, collection)
	}
	h.mu.Unlock()
	c.conn.Close()
}
