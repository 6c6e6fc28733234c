package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/ayusman/mudra/internal/gesture"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow local connections
	},
}

// CursorSocket streams cursor samples to a single WebSocket peer. A new
// connection replaces the previous one; nothing sent by the peer is ever
// interpreted. It implements app.Sink.
type CursorSocket struct {
	mu   sync.Mutex
	peer *websocket.Conn
}

// NewCursorSocket creates a CursorSocket with no peer attached.
func NewCursorSocket() *CursorSocket {
	return &CursorSocket{}
}

// ServeHTTP handles WebSocket upgrade requests. The handler blocks for the
// lifetime of the connection, draining reads so a departed peer is noticed.
func (s *CursorSocket) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade error: %v", err)
		return
	}

	s.mu.Lock()
	if s.peer != nil {
		s.peer.Close()
	}
	s.peer = conn
	s.mu.Unlock()

	log.Printf("Cursor peer connected: %s", r.RemoteAddr)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	s.detach(conn)
	log.Printf("Cursor peer disconnected: %s", r.RemoteAddr)
}

// Publish sends one cursor sample as a JSON text message to the attached
// peer. With no peer it is a silent no-op. A failed write detaches the peer
// and returns the error; the caller's loop continues.
func (s *CursorSocket) Publish(sample gesture.CursorSample) error {
	s.mu.Lock()
	conn := s.peer
	s.mu.Unlock()

	if conn == nil {
		return nil
	}

	msg, err := json.Marshal(sample)
	if err != nil {
		return fmt.Errorf("marshal cursor sample: %w", err)
	}

	if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
		s.detach(conn)
		return fmt.Errorf("write cursor sample: %w", err)
	}

	return nil
}

// Attached reports whether a peer is currently connected.
func (s *CursorSocket) Attached() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.peer != nil
}

// detach clears the peer slot if conn still occupies it and closes conn.
func (s *CursorSocket) detach(conn *websocket.Conn) {
	s.mu.Lock()
	if s.peer == conn {
		s.peer = nil
	}
	s.mu.Unlock()
	conn.Close()
}
