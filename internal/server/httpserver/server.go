package httpserver

import (
	"context"
	"net/http"
	"time"

	"custdesk/internal/logging"
	"custdesk/internal/server/customers"
	"custdesk/internal/server/users"
)

// Server wraps the HTTP server setup.
type Server struct {
	httpServer *http.Server
	logger     logging.Logger
}

// New builds a Server with the API routes wired to the given services.
func New(addr string, logger logging.Logger, userService *users.Service, customerService *customers.Service, secretKey, allowedOrigin string) *Server {
	router := buildRouter(logger, userService, customerService, []byte(secretKey), allowedOrigin)

	httpSrv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return &Server{
		httpServer: httpSrv,
		logger:     logger,
	}
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
