package live

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

type fakeStore struct {
	mu    sync.Mutex
	items []string
}

func (s *fakeStore) load(ctx context.Context) (interface{}, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.items))
	copy(out, s.items)
	return out, nil
}

func (s *fakeStore) add(item string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, item)
}

type frame struct {
	Collection string   `json:"collection"`
	Data       []string `json:"data"`
}

func dial(t *testing.T, srv *httptest.Server, collection string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "?collection=" + collection
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	return conn
}

func readFrame(t *testing.T, conn *websocket.Conn) frame {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	_, payload, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	var f frame
	if err := json.Unmarshal(payload, &f); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	return f
}

func TestSubscribeSendsInitialSnapshot(t *testing.T) {
	store := &fakeStore{items: []string{"first", "second"}}
	hub := NewHub()
	hub.RegisterCollection("things", store.load)

	srv := httptest.NewServer(http.HandlerFunc(hub.Subscribe))
	defer srv.Close()

	conn := dial(t, srv, "things")
	defer conn.Close()

	f := readFrame(t, conn)
	if f.Collection != "things" {
		t.Errorf("collection = %q, want things", f.Collection)
	}
	if len(f.Data) != 2 || f.Data[0] != "first" {
		t.Errorf("unexpected initial snapshot %v", f.Data)
	}
}

func TestCollectionChangedRedeliversFullSnapshot(t *testing.T) {
	store := &fakeStore{items: []string{"first"}}
	hub := NewHub()
	hub.RegisterCollection("things", store.load)

	srv := httptest.NewServer(http.HandlerFunc(hub.Subscribe))
	defer srv.Close()

	conn := dial(t, srv, "things")
	defer conn.Close()
	readFrame(t, conn) // initial snapshot

	store.add("second")
	hub.CollectionChanged("things")

	f := readFrame(t, conn)
	if len(f.Data) != 2 {
		t.Fatalf("redelivery carried %d items, want the full collection of 2", len(f.Data))
	}
}

func TestSubscribeUnknownCollection(t *testing.T) {
	hub := NewHub()

	srv := httptest.NewServer(http.HandlerFunc(hub.Subscribe))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "?collection=nope"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err == nil {
		conn.Close()
		t.Fatal("expected handshake to fail for unknown collection")
	}
}

func TestCollectionChangedWithoutSubscribers(t *testing.T) {
	store := &fakeStore{items: []string{"first"}}
	hub := NewHub()
	hub.RegisterCollection("things", store.load)

	// Must not panic or block.
	hub.CollectionChanged("things")
	hub.CollectionChanged("unregistered")
}
