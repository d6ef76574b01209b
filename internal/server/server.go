package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-broadcast-datafeed/internal/logger"
)

type server struct {
	httpServer *httpServer
	listener   net.Listener
	logger     *logger.Logger
}

// NewServer binds address and prepares handler to be served on it.
func NewServer(handler http.Handler, address string, logger *logger.Logger) (Server, error) {
	if address == "" {
		return nil, errNoAddress
	}

	l, err := net.Listen("tcp", address)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", address, err)
	}

	logger.Info().Str("address", l.Addr().String()).Msg("creating new server...")
	return &server{
		httpServer: newHTTPServer(handler, address, logger),
		listener:   l,
		logger:     logger,
	}, nil
}

// Addr returns the bound address, useful when listening on port 0.
func Addr(s Server) string {
	if srv, ok := s.(*server); ok {
		return srv.listener.Addr().String()
	}
	return ""
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := s.Run(ctx); err != nil {
		s.logger.Error().Err(err).Msg("error running server")
	}
}

func (s *server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	s.logger.Info().Msg("Launching HTTP server")
	go func() {
		errCh <- s.httpServer.serve(s.listener)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.Shutdown()
	s.logger.Info().Msg("server Shutdown gracefully")

	return <-errCh
}

func (s *server) Shutdown() {
	s.httpServer.Shutdown()
}
