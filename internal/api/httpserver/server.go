// Package httpserver wraps net/http server lifecycle with the timeouts
// from the server config.
package httpserver

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/nbportal/portal/internal/config"
)

// Server owns the listening HTTP server.
type Server struct {
	srv *http.Server
}

// New builds a server for the configured host and port.
func New(cfg config.ServerConfig, handler http.Handler) *Server {
	return &Server{
		srv: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
			Handler:      handler,
			ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
			WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
		},
	}
}

// Addr returns the configured listen address.
func (s *Server) Addr() string { return s.srv.Addr }

// Start blocks serving requests until the server is shut down.
func (s *Server) Start() error {
	return s.srv.ListenAndServe()
}

// Shutdown stops the server, waiting for in-flight requests up to the
// context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
