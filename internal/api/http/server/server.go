package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

// HTTPServer wraps an Echo instance with address and lifecycle methods.
type HTTPServer struct {
	echo *echo.Echo
	addr string
}

// NewHTTPServer creates an HTTPServer with the given Echo instance and address.
func NewHTTPServer(e *echo.Echo, addr string) *HTTPServer {
	return &HTTPServer{echo: e, addr: addr}
}

// Start starts serving on the configured address. It returns nil after a
// graceful shutdown.
func (s *HTTPServer) Start() error {
	err := s.echo.Start(s.addr)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Stop gracefully stops the server.
func (s *HTTPServer) Stop(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

// Address returns the configured listen address.
func (s *HTTPServer) Address() string {
	return s.addr
}
