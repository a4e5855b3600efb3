package websocket

import (
	"context"
	"log"
	"net/http"
)

// Server exposes the spectator feed over HTTP.
type Server struct {
	ConnManager *ConnectionManager
	srv         *http.Server
}

func NewServer(addr string, cm *ConnectionManager) *Server {
	return &Server{
		ConnManager: cm,
		srv: &http.Server{
			Addr:    addr,
			Handler: NewHandler(cm).Routes(),
		},
	}
}

func (s *Server) Start() {
	go func() {
		log.Printf("[WATCH] Spectator feed listening on %s", s.srv.Addr)
		if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("[WATCH] Server error: %v", err)
		}
	}()
}

// Shutdown disconnects spectators and stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.ConnManager.CloseAll()
	return s.srv.Shutdown(ctx)
}
