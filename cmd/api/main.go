package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Lutefd/currency-conversion/internal/commons"
	"github.com/Lutefd/currency-conversion/internal/discovery"
	"github.com/Lutefd/currency-conversion/internal/logger"
	"github.com/Lutefd/currency-conversion/internal/repository"
	"github.com/Lutefd/currency-conversion/internal/server"
	"github.com/joho/godotenv"
)

func main() {
	godotenv.Load(".env")
	config, err := commons.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, config); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, config commons.Config) error {
	if config.PostgresConn != "" {
		if err := initLogSink(ctx, config.PostgresConn); err != nil {
			return err
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), commons.LoggerShutdownTimeout)
			defer cancel()
			if err := logger.Shutdown(shutdownCtx); err != nil {
				log.Printf("Error shutting down logger: %v", err)
			}
		}()
	}

	registry, closeRegistry, err := newRegistry(config)
	if err != nil {
		return err
	}
	defer closeRegistry()

	srv := server.NewServer(config, registry)
	return srv.Start(ctx)
}

func initLogSink(ctx context.Context, connURL string) error {
	logRepo, err := repository.NewPostgresLogRepository(ctx, connURL, nil)
	if err != nil {
		return fmt.Errorf("failed to initialize log repository: %w", err)
	}
	if err := logger.NewPartitionManager(logRepo).Start(ctx); err != nil {
		logRepo.Close()
		return fmt.Errorf("failed to start partition manager: %w", err)
	}
	logger.InitLogger(logRepo, commons.LogSource)
	return nil
}

func newRegistry(config commons.Config) (discovery.Registry, func(), error) {
	switch config.RegistryMode {
	case commons.RegistryModeRedis:
		registry, err := discovery.NewRedisRegistry(config.RedisAddr, config.RedisPass)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize registry: %w", err)
		}
		return registry, func() {
			if err := registry.Close(); err != nil {
				logger.Errorf("Error closing registry: %v", err)
			}
		}, nil
	default:
		logger.Infof("Using static registry for %s with %d instance(s)", config.ExchangeServiceName, len(config.ExchangeInstances))
		return discovery.NewStaticRegistryFromURLs(config.ExchangeServiceName, config.ExchangeInstances), func() {}, nil
	}
}
