package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/fieldwatch-dev/fieldwatch/pkg/observe"
)

// Server is the HTTP/WebSocket control server for an observed universe.
type Server struct {
	reg    *observe.Registry
	hub    *Hub
	config *ServerConfig

	router     chi.Router
	upgrader   websocket.Upgrader
	httpServer *http.Server
	logger     *slog.Logger
}

// New creates a control server over reg. A nil config uses defaults.
//
// New does not touch the registry's listener; wire srv.Hub() into the
// listener chain yourself (see the package documentation).
func New(reg *observe.Registry, config *ServerConfig) *Server {
	config = config.withDefaults()

	s := &Server{
		reg:    reg,
		hub:    NewHub(),
		config: config,
		logger: config.Logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     config.CheckOrigin,
		},
	}

	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Get("/healthz", s.handleHealthz)
	r.Get("/metrics", promhttp.Handler().ServeHTTP)
	r.Get("/api/snapshot", s.handleSnapshot)
	r.Post("/api/update", s.handleUpdate)
	r.Get("/live", s.handleLive)
	s.router = r

	return s
}

// Hub returns the server's listener. Install it (usually fanned out with
// other sinks) as the registry's active listener.
func (s *Server) Hub() *Hub {
	return s.hub
}

// Handler returns the server's HTTP handler, for mounting under an
// existing router or for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run starts the server and blocks until SIGINT/SIGTERM or a listen
// error, then shuts down gracefully.
func (s *Server) Run() error {
	s.httpServer = &http.Server{
		Addr:              s.config.Address,
		Handler:           s.router,
		ReadHeaderTimeout: s.config.ReadHeaderTimeout,
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("control server starting", "address", s.config.Address)
		errCh <- s.httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil

	case <-shutdown:
		s.logger.Info("shutting down...")
		return s.Shutdown(context.Background())
	}
}

// Shutdown gracefully stops the HTTP server and disconnects all
// WebSocket clients.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.config.ShutdownTimeout)
	defer cancel()

	s.hub.mu.Lock()
	for c := range s.hub.clients {
		c.drop()
	}
	s.hub.mu.Unlock()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			s.logger.Error("shutdown error", "error", err)
			return err
		}
	}

	s.logger.Info("control server stopped")
	return nil
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

// handleSnapshot broadcasts the whole observed universe, then returns the
// hub's latest (path, value) pairs. The broadcast also reaches every
// other listener in the chain, which is the point: "tell me everything
// right now" is an observable event.
func (s *Server) handleSnapshot(w http.ResponseWriter, _ *http.Request) {
	s.reg.NotifyAll()
	writeJSON(w, http.StatusOK, s.hub.Snapshot())
}

func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	var cmd Update
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	found, err := s.reg.UpdateByPath(cmd.Path, cmd.Value)
	switch {
	case !found:
		writeJSON(w, http.StatusNotFound, map[string]string{
			"error": observe.ErrPathNotFound.Error(),
			"path":  cmd.Path,
		})
	case err != nil:
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{
			"error": err.Error(),
			"path":  cmd.Path,
		})
	default:
		w.WriteHeader(http.StatusNoContent)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
