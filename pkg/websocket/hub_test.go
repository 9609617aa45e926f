package websocket

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"quiz-embed/internal/models"
)

func newTestHub(t *testing.T) (*Hub, *httptest.Server) {
	t.Helper()

	hub := NewHub()
	go hub.Run()

	router := mux.NewRouter()
	router.HandleFunc("/ws/quizzes/{quiz_id}", hub.HandleWebSocket)
	server := httptest.NewServer(router)

	t.Cleanup(func() {
		hub.Stop()
		server.Close()
	})
	return hub, server
}

func dial(t *testing.T, server *httptest.Server, path string) *websocket.Conn {
	t.Helper()

	url := "ws" + strings.TrimPrefix(server.URL, "http") + path
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial %s: %v", path, err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func waitForClients(t *testing.T, hub *Hub, quizID uint, want int) {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if hub.ClientCount(quizID) == want {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("quiz %d has %d clients, want %d", quizID, hub.ClientCount(quizID), want)
}

func TestBroadcastResponseReachesOnlyItsRoom(t *testing.T) {
	hub, server := newTestHub(t)

	watcher := dial(t, server, "/ws/quizzes/1")
	other := dial(t, server, "/ws/quizzes/2")
	waitForClients(t, hub, 1, 1)
	waitForClients(t, hub, 2, 1)

	choice := uint(5)
	hub.BroadcastResponse(1, &models.Response{ID: 42, QuizID: 1, ChoiceID: &choice, SessionID: "s1"})

	watcher.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := watcher.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	var msg struct {
		Type string          `json:"type"`
		Data models.Response `json:"data"`
	}
	if err := json.Unmarshal(data, &msg); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if msg.Type != MessageTypeResponse || msg.Data.ID != 42 || msg.Data.SessionID != "s1" {
		t.Fatalf("unexpected message: %s", data)
	}

	other.SetReadDeadline(time.Now().Add(200 * time.Millisecond))
	if _, _, err := other.ReadMessage(); err == nil {
		t.Fatalf("dashboard of another quiz received the response")
	}
}

func TestClientLeavingEmptiesRoom(t *testing.T) {
	hub, server := newTestHub(t)

	conn := dial(t, server, "/ws/quizzes/3")
	waitForClients(t, hub, 3, 1)

	conn.Close()
	waitForClients(t, hub, 3, 0)
}

func TestHandleWebSocketRejectsBadID(t *testing.T) {
	_, server := newTestHub(t)

	resp, err := http.Get(server.URL + "/ws/quizzes/abc")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestBroadcastAfterStopDoesNotBlock(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	hub.Stop()

	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			hub.BroadcastResponse(1, &models.Response{QuizID: 1})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("broadcast blocked after Stop")
	}
}
