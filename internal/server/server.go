package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/Lutefd/currency-conversion/internal/client"
	"github.com/Lutefd/currency-conversion/internal/commons"
	"github.com/Lutefd/currency-conversion/internal/discovery"
	"github.com/Lutefd/currency-conversion/internal/logger"
	"github.com/Lutefd/currency-conversion/internal/metrics"
	"github.com/Lutefd/currency-conversion/internal/service"
)

type Server struct {
	port     int
	router   http.Handler
	config   Config
	registry discovery.Registry
	metrics  *metrics.UpstreamMetrics
}

// Config is the subset of process configuration the HTTP server needs.
type Config = commons.Config

// NewServer wires both conversion endpoints. The direct endpoint calls
// config.ExchangeBaseURL; the proxied one resolves config.ExchangeServiceName
// through registry on every request.
func NewServer(config Config, registry discovery.Registry, opts ...client.Option) *Server {
	server := &Server{
		port:     int(config.ServerPort),
		config:   config,
		registry: registry,
		metrics:  metrics.NewUpstreamMetrics(),
	}

	clientOpts := append([]client.Option{
		client.WithTimeout(config.UpstreamTimeout),
		client.WithRecorder(server.metrics),
	}, opts...)

	restClient := client.NewRestClient(config.ExchangeBaseURL, clientOpts...)
	proxyClient := client.NewProxyClient(config.ExchangeServiceName, registry, discovery.NewRoundRobin(), clientOpts...)

	server.registerRoutes(
		service.NewConversionService(restClient, commons.MechanismRestTemplate),
		service.NewConversionService(proxyClient, commons.MechanismFeign),
	)
	return server
}

func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) Start(ctx context.Context) error {
	logger.Infof("Starting server on port %d", s.port)
	ch := make(chan error, 1)
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.port),
		Handler:      s.router,
		IdleTimeout:  commons.ServerIdleTimeout,
		ReadTimeout:  commons.ServerReadTimeout,
		WriteTimeout: commons.ServerWriteTimeout,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			ch <- fmt.Errorf("failed to start server: %w", err)
		}
		close(ch)
	}()

	select {
	case err := <-ch:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), commons.ServerShutdownTimeout)
		defer cancel()

		logger.Info("Shutting down server")
		return server.Shutdown(shutdownCtx)
	}
}
