// SPDX-License-Identifier: EPL-2.0

package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/ik5/audcut"
	"github.com/ik5/audcut/audio"
)

const (
	// DefaultAddr is used when Config.Addr is empty.
	DefaultAddr = ":8940"

	// DefaultMaxUploadBytes caps a single upload when Config.MaxUploadBytes is 0.
	DefaultMaxUploadBytes = 256 << 20

	shutdownTimeout = 5 * time.Second
)

// Config holds server configuration
type Config struct {
	Addr           string
	MaxUploadBytes int64
	Debug          bool
}

// Server exposes the edit pipeline over HTTP and websocket sessions.
type Server struct {
	config   Config
	serverID string
	registry *audio.Registry

	// WebSocket upgrader
	upgrader websocket.Upgrader

	// HTTP server
	httpServer *http.Server
	mux        *http.ServeMux

	// Session management
	sessions   map[string]*session
	sessionsMu sync.RWMutex

	// Control
	stopChan   chan struct{}
	stopOnce   sync.Once // Ensure Stop() is only called once
	shutdownMu sync.RWMutex
	isShutdown bool
	wg         sync.WaitGroup
}

// New creates a new server instance
func New(config Config) *Server {
	if config.Addr == "" {
		config.Addr = DefaultAddr
	}
	if config.MaxUploadBytes <= 0 {
		config.MaxUploadBytes = DefaultMaxUploadBytes
	}

	s := &Server{
		config:   config,
		serverID: uuid.New().String(),
		registry: audcut.DefaultRegistry(),
		mux:      http.NewServeMux(),
		upgrader: websocket.Upgrader{
			// Browsers upload from whatever page hosts the editor.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		sessions: make(map[string]*session),
		stopChan: make(chan struct{}),
	}

	s.mux.HandleFunc("/edit", s.handleEdit)
	s.mux.HandleFunc("/formats", s.handleFormats)
	s.mux.HandleFunc("/ws", s.handleWebSocket)

	return s
}

// Handler returns the HTTP handler serving every endpoint.
func (s *Server) Handler() http.Handler {
	return s.mux
}

// Sessions returns the number of open websocket sessions.
func (s *Server) Sessions() int {
	s.sessionsMu.RLock()
	defer s.sessionsMu.RUnlock()

	return len(s.sessions)
}

// Start listens on Config.Addr and blocks until Stop is called or the
// listener fails.
func (s *Server) Start() error {
	log.Printf("Server starting (ID: %s)", s.serverID)
	log.Printf("Listening on %s", s.config.Addr)

	s.httpServer = &http.Server{
		Addr:              s.config.Addr,
		Handler:           s.mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Run server in goroutine
	errChan := make(chan error, 1)
	go func() {
		if err := s.httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	var serverErr error
	select {
	case <-s.stopChan:
		log.Printf("Server shutting down...")
	case err := <-errChan:
		log.Printf("HTTP server error: %v", err)
		serverErr = err
	}

	// Mark server as shutting down to reject new connections
	s.shutdownMu.Lock()
	s.isShutdown = true
	s.shutdownMu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	}

	// Hijacked websocket connections are not closed by Shutdown.
	s.closeSessions()

	s.wg.Wait()
	log.Printf("Server stopped cleanly")

	if serverErr != nil {
		return fmt.Errorf("HTTP server failed: %w", serverErr)
	}
	return nil
}

// Stop stops the server
func (s *Server) Stop() {
	s.stopOnce.Do(func() {
		close(s.stopChan)
	})
}

func (s *Server) shuttingDown() bool {
	s.shutdownMu.RLock()
	defer s.shutdownMu.RUnlock()

	return s.isShutdown
}

// track counts a new connection for Start to wait on. It refuses once
// shutdown has begun, so wg.Add never races wg.Wait.
func (s *Server) track() bool {
	s.shutdownMu.RLock()
	defer s.shutdownMu.RUnlock()

	if s.isShutdown {
		return false
	}
	s.wg.Add(1)
	return true
}

// addSession registers sess unless shutdown has begun. Registration and
// closeSessions share sessionsMu, so every registered session gets closed.
func (s *Server) addSession(sess *session) bool {
	s.sessionsMu.Lock()
	defer s.sessionsMu.Unlock()

	if s.shuttingDown() {
		return false
	}
	s.sessions[sess.id] = sess
	return true
}

func (s *Server) closeSessions() {
	s.sessionsMu.RLock()
	defer s.sessionsMu.RUnlock()

	for _, sess := range s.sessions {
		sess.conn.Close()
	}
}

func (s *Server) debugf(format string, args ...any) {
	if s.config.Debug {
		log.Printf("[DEBUG] "+format, args...)
	}
}
