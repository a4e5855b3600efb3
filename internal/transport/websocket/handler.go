package websocket

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
)

// Handler serves the read-only spectator endpoints.
type Handler struct {
	ConnManager *ConnectionManager
	Upgrader    websocket.Upgrader
}

func NewHandler(cm *ConnectionManager) *Handler {
	return &Handler{
		ConnManager: cm,
		Upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// Routes registers the spectator endpoints on a new router.
func (h *Handler) Routes() *mux.Router {
	router := mux.NewRouter()
	router.HandleFunc("/ws/watch", h.HandleWebSocket).Methods(http.MethodGet)
	router.HandleFunc("/api/state", h.HandleState).Methods(http.MethodGet)
	return router
}

// HandleWebSocket upgrades the connection and keeps it registered until the spectator leaves.
func (h *Handler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := h.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[WATCH] Upgrade error: %v", err)
		return
	}

	if !h.ConnManager.AddConnection(conn) {
		conn.Close()
		return
	}
	log.Printf("[WATCH] Spectator connected from %s", conn.RemoteAddr())

	defer func() {
		log.Printf("[WATCH] Spectator %s left", conn.RemoteAddr())
		h.ConnManager.RemoveConnection(conn)
	}()

	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	// spectators cannot play; anything they send is discarded
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("[WATCH] Spectator disconnected unexpectedly: %v", err)
			}
			return
		}
	}
}

// HandleState returns the latest broadcast as JSON, or 204 before the first round.
func (h *Handler) HandleState(w http.ResponseWriter, r *http.Request) {
	msg, ok := h.ConnManager.Latest()
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(msg)
}
