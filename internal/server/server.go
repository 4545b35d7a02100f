// Package server exposes the calendar assistant over HTTP with the JSON
// contract the browser calendar UI consumes.
package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/JIYUNNNNNN/schedule/internal/assistant"
)

// Server wires the assistant behind the HTTP surface. One instance per
// process; handlers keep no state of their own.
type Server struct {
	assistant       *assistant.Assistant
	server          *http.Server
	port            int
	upstreamTimeout time.Duration
	startTime       time.Time
}

func New(a *assistant.Assistant, port int, upstreamTimeout time.Duration) *Server {
	if upstreamTimeout <= 0 {
		upstreamTimeout = 10 * time.Second
	}
	return &Server{
		assistant:       a,
		port:            port,
		upstreamTimeout: upstreamTimeout,
		startTime:       time.Now(),
	}
}

// Start blocks serving HTTP until the listener fails or Stop is called.
func (s *Server) Start() error {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/status", s.handleStatus)
	mux.HandleFunc("/api/chat", s.handleChat)
	mux.HandleFunc("/api/events", s.handleEvents)
	mux.HandleFunc("/api/add-event", s.handleAddEvent)
	mux.HandleFunc("/api/update-event/", s.handleUpdateEvent)
	mux.HandleFunc("/api/delete-event-by-title", s.handleDeleteByTitle)
	mux.HandleFunc("/api/delete-event/", s.handleDeleteEvent)

	s.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", s.port),
		Handler:      corsMiddleware(mux),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log.Printf("starting schedule server on http://localhost:%d", s.port)
	return s.server.ListenAndServe()
}

// Stop shuts the server down, letting in-flight requests finish.
func (s *Server) Stop() error {
	if s.server == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// opCtx bounds one request's outbound dependency calls so a stuck
// upstream fails the request instead of hanging it.
func (s *Server) opCtx(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), s.upstreamTimeout)
}

// corsMiddleware allows the browser UI, served from a different origin,
// to call the API.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"uptime": time.Since(s.startTime).Round(time.Second).String(),
	})
}
