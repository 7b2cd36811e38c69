package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/haguru/docgate/internal/interfaces"
)

var (
	ReadTimeout  = 10 * time.Second
	WriteTimeout = 30 * time.Second
	IdleTimeout  = 60 * time.Second
)

type Server struct {
	Port        string
	Host        string
	server      *http.Server
	mux         *http.ServeMux
	middlewares []func(http.Handler) http.Handler
	Logger      interfaces.Logger
}

// NewServer creates a new Server instance with the specified host and port.
func NewServer(host, port string, logger interfaces.Logger) interfaces.Server {
	mux := http.NewServeMux()
	s := &Server{
		Host:   host,
		Port:   port,
		mux:    mux,
		Logger: logger,
	}
	s.server = &http.Server{
		Addr:         host + ":" + port,
		ReadTimeout:  ReadTimeout,
		WriteTimeout: WriteTimeout,
		IdleTimeout:  IdleTimeout,
	}

	return s
}

// AddRoute adds a new route to the server.
// The handler function will be called when the route is accessed.
func (s *Server) AddRoute(route string, handler func(w http.ResponseWriter, r *http.Request)) error {
	if route == "" || handler == nil {
		return fmt.Errorf("invalid route %q", route)
	}
	s.mux.HandleFunc(route, handler)
	s.Logger.Info("Route added", "route", route)
	return nil
}

// Use appends a middleware. The first one registered is the outermost.
func (s *Server) Use(middleware func(http.Handler) http.Handler) {
	s.middlewares = append(s.middlewares, middleware)
}

// Handler returns the route multiplexer wrapped in the registered middlewares.
func (s *Server) Handler() http.Handler {
	var handler http.Handler = s.mux
	for i := len(s.middlewares) - 1; i >= 0; i-- {
		handler = s.middlewares[i](handler)
	}
	return handler
}

// ListenAndServe starts the HTTP server and listens for incoming requests.
// It returns nil once the server has been shut down.
func (s *Server) ListenAndServe() error {
	s.Logger.Info("Starting server", "host", s.Host, "port", s.Port)
	s.server.Handler = s.Handler()
	err := s.server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		s.Logger.Error("Failed to start server", "error", err)
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown stops accepting connections and waits for in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	s.Logger.Info("Shutting down server")
	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	return nil
}
