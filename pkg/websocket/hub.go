package websocket

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"sync"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"quiz-embed/internal/models"
)

// Message is the envelope of everything the server pushes to dashboards.
type Message struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

const MessageTypeResponse = "response"

// upgrader configures the WebSocket connection upgrade. Dashboards may be
// hosted anywhere, matching the CORS policy of the HTTP API.
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type roomMessage struct {
	quizID  uint
	payload []byte
}

// Hub fans recorded responses out to the dashboards watching each quiz.
// Room membership is only mutated by the Run goroutine.
type Hub struct {
	rooms      map[uint]map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan roomMessage
	done       chan struct{}
	stopOnce   sync.Once
	mu         sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		rooms:      make(map[uint]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan roomMessage, 64),
		done:       make(chan struct{}),
	}
}

// Run owns the rooms until Stop is called.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			room, ok := h.rooms[client.quizID]
			if !ok {
				room = make(map[*Client]bool)
				h.rooms[client.quizID] = room
			}
			room[client] = true
			log.Printf("Dashboard %p subscribed to quiz %d (%d watching)", client, client.quizID, len(room))
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			h.removeLocked(client)
			h.mu.Unlock()

		case msg := <-h.broadcast:
			h.mu.Lock()
			for client := range h.rooms[msg.quizID] {
				select {
				case client.send <- msg.payload:
				default:
					log.Printf("Send channel full for dashboard %p; dropping it", client)
					h.removeLocked(client)
				}
			}
			h.mu.Unlock()

		case <-h.done:
			h.mu.Lock()
			for _, room := range h.rooms {
				for client := range room {
					h.removeLocked(client)
				}
			}
			h.mu.Unlock()
			return
		}
	}
}

func (h *Hub) removeLocked(client *Client) {
	room, ok := h.rooms[client.quizID]
	if !ok || !room[client] {
		return
	}
	delete(room, client)
	close(client.send)
	if len(room) == 0 {
		delete(h.rooms, client.quizID)
	}
	log.Printf("Dashboard %p left quiz %d", client, client.quizID)
}

// Stop disconnects every dashboard and ends Run.
func (h *Hub) Stop() {
	h.stopOnce.Do(func() { close(h.done) })
}

// ClientCount reports how many dashboards watch a quiz.
func (h *Hub) ClientCount(quizID uint) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[quizID])
}

// BroadcastMessage marshals the message and queues it for the quiz room.
func (h *Hub) BroadcastMessage(quizID uint, messageType string, data interface{}) {
	payload, err := json.Marshal(Message{Type: messageType, Data: data})
	if err != nil {
		log.Printf("Error marshaling %s message: %v", messageType, err)
		return
	}

	select {
	case h.broadcast <- roomMessage{quizID: quizID, payload: payload}:
	case <-h.done:
	}
}

func (h *Hub) BroadcastResponse(quizID uint, response *models.Response) {
	h.BroadcastMessage(quizID, MessageTypeResponse, response)
}

// HandleWebSocket upgrades the request and subscribes it to one quiz.
func (h *Hub) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	quizID, err := strconv.ParseUint(mux.Vars(r)["quiz_id"], 10, 64)
	if err != nil || quizID == 0 {
		http.Error(w, "invalid quiz id", http.StatusBadRequest)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade error: %v", err)
		return
	}

	client := NewClient(h, conn, uint(quizID))
	select {
	case h.register <- client:
	case <-h.done:
		conn.Close()
		return
	}

	go client.writePump()
	go client.readPump()
}
