package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/AntonStoeckl/cashback-ledger-go/ledger/promadapters"
)

const readHeaderTimeout = 5 * time.Second

type metricsServer struct {
	server *http.Server
	addr   string
	done   chan error
}

// startMetricsServer binds addr synchronously, so a busy port fails the session before it starts.
func startMetricsServer(addr string, gatherer prometheus.Gatherer, logger *slog.Logger) (*metricsServer, error) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("metrics server: %w", err)
	}

	s := &metricsServer{
		server: &http.Server{
			Handler:           promadapters.NewRouter(gatherer),
			ReadHeaderTimeout: readHeaderTimeout,
		},
		addr: listener.Addr().String(),
		done: make(chan error, 1),
	}

	go func() {
		serveErr := s.server.Serve(listener)
		if errors.Is(serveErr, http.ErrServerClosed) {
			serveErr = nil
		}
		if serveErr != nil {
			logger.Error("metrics server stopped", "error", serveErr.Error())
		}
		s.done <- serveErr
	}()

	logger.Info("serving metrics", slog.String("addr", s.addr))

	return s, nil
}

func (s *metricsServer) shutdown(ctx context.Context) error {
	if err := s.server.Shutdown(ctx); err != nil {
		return err
	}

	return <-s.done
}
