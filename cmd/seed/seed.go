package main

import (
	"context"
	"fmt"
	"log"

	"github.com/Lutefd/currency-conversion/internal/commons"
	"github.com/Lutefd/currency-conversion/internal/discovery"
	"github.com/Lutefd/currency-conversion/internal/model"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

type instanceRegistry interface {
	Register(ctx context.Context, instance model.ServiceInstance) error
	Close() error
}

type dependencies struct {
	loadEnv     func(...string) error
	loadConfig  func() (commons.RegistryConfig, error)
	newRegistry func(addr, password string) (instanceRegistry, error)
	newUUID     func() uuid.UUID
}

func main() {
	deps := dependencies{
		loadEnv:    godotenv.Load,
		loadConfig: commons.LoadRegistryConfig,
		newRegistry: func(addr, password string) (instanceRegistry, error) {
			return discovery.NewRedisRegistry(addr, password)
		},
		newUUID: uuid.New,
	}

	if err := run(context.Background(), deps); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, deps dependencies) error {
	deps.loadEnv()

	config, err := deps.loadConfig()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	registry, err := deps.newRegistry(config.RedisAddr, config.RedisPass)
	if err != nil {
		return fmt.Errorf("error connecting to registry: %w", err)
	}
	defer registry.Close()

	for _, baseURL := range config.Instances {
		instance := model.ServiceInstance{
			ID:          deps.newUUID().String(),
			ServiceName: config.ServiceName,
			BaseURL:     baseURL,
		}
		if err := registry.Register(ctx, instance); err != nil {
			return fmt.Errorf("error registering %s: %w", baseURL, err)
		}
		log.Printf("registered %s as %s/%s", baseURL, instance.ServiceName, instance.ID)
	}

	return nil
}
