package websocket

import (
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 30 * time.Second
	sendBuffer = 64
)

// spectator is one watching connection. Messages are queued on send and
// written by a single goroutine so they keep their order.
type spectator struct {
	conn *websocket.Conn
	send chan ServerMessage
}

// ConnectionManager tracks spectator connections and fans messages out to them.
type ConnectionManager struct {
	spectators map[*websocket.Conn]*spectator
	last       *ServerMessage
	closed     bool
	mu         sync.RWMutex
}

func NewConnectionManager() *ConnectionManager {
	return &ConnectionManager{
		spectators: make(map[*websocket.Conn]*spectator),
	}
}

// AddConnection registers conn and queues the latest state for it, so a
// spectator joining mid-round sees the board straight away.
func (cm *ConnectionManager) AddConnection(conn *websocket.Conn) bool {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if cm.closed {
		return false
	}

	s := &spectator{conn: conn, send: make(chan ServerMessage, sendBuffer)}
	cm.spectators[conn] = s

	snapshot := ServerMessage{Type: "snapshot"}
	if cm.last != nil {
		snapshot = *cm.last
		snapshot.Type = "snapshot"
	}
	s.send <- snapshot

	go cm.writePump(s)
	return true
}

// RemoveConnection closes conn and stops its writer.
func (cm *ConnectionManager) RemoveConnection(conn *websocket.Conn) {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	cm.removeLocked(conn)
}

// removeLocked removes a spectator without acquiring the lock (caller must hold it)
func (cm *ConnectionManager) removeLocked(conn *websocket.Conn) {
	if s, exists := cm.spectators[conn]; exists {
		close(s.send)
		delete(cm.spectators, conn)
	}
}

// BroadcastMessage queues message for every spectator and remembers it as the latest state.
// Spectators whose queue is full are dropped rather than stalling the game.
func (cm *ConnectionManager) BroadcastMessage(message ServerMessage) {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if cm.closed {
		return
	}
	cm.last = &message

	for conn, s := range cm.spectators {
		select {
		case s.send <- message:
		default:
			log.Printf("[WATCH] Dropping slow spectator %s", conn.RemoteAddr())
			cm.removeLocked(conn)
		}
	}
}

// Latest returns the last broadcast message, if any.
func (cm *ConnectionManager) Latest() (ServerMessage, bool) {
	cm.mu.RLock()
	defer cm.mu.RUnlock()

	if cm.last == nil {
		return ServerMessage{}, false
	}
	return *cm.last, true
}

// Count is the number of connected spectators.
func (cm *ConnectionManager) Count() int {
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	return len(cm.spectators)
}

// CloseAll disconnects everyone; later broadcasts are ignored.
func (cm *ConnectionManager) CloseAll() {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	cm.closed = true
	for conn := range cm.spectators {
		cm.removeLocked(conn)
	}
}

func (cm *ConnectionManager) writePump(s *spectator) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		s.conn.Close()
	}()

	for {
		select {
		case message, ok := <-s.send:
			s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				s.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, "session over"))
				return
			}
			if err := s.conn.WriteJSON(message); err != nil {
				log.Printf("[WATCH] Write error: %v", err)
				cm.RemoveConnection(s.conn)
				return
			}
		case <-ticker.C:
			s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				cm.RemoveConnection(s.conn)
				return
			}
		}
	}
}
