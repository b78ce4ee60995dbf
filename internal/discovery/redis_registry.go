package discovery

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Lutefd/currency-conversion/internal/model"
	"github.com/redis/go-redis/v9"
)

const registryKeyPrefix = "registry:"

// RedisRegistry keeps the instances of a service in the hash
// registry:<service>, one field per instance id holding the instance JSON.
type RedisRegistry struct {
	client *redis.Client
}

func NewRedisRegistry(addr, password string) (*RedisRegistry, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	_, err := client.Ping(context.Background()).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisRegistry{client: client}, nil
}

func registryKey(serviceName string) string {
	return registryKeyPrefix + serviceName
}

func (r *RedisRegistry) Register(ctx context.Context, instance model.ServiceInstance) error {
	payload, err := json.Marshal(instance)
	if err != nil {
		return fmt.Errorf("failed to encode instance %s: %w", instance.ID, err)
	}
	if err := r.client.HSet(ctx, registryKey(instance.ServiceName), instance.ID, payload).Err(); err != nil {
		return fmt.Errorf("failed to register instance %s: %w", instance.ID, err)
	}
	return nil
}

func (r *RedisRegistry) Deregister(ctx context.Context, serviceName, instanceID string) error {
	if err := r.client.HDel(ctx, registryKey(serviceName), instanceID).Err(); err != nil {
		return fmt.Errorf("failed to deregister instance %s: %w", instanceID, err)
	}
	return nil
}

// Instances returns the registered instances of serviceName. Entries that
// cannot be decoded are skipped. An expired deadline is reported as
// model.ErrUpstreamTimeout, a canceled ctx as context.Canceled, and any other
// Redis failure as model.ErrUpstreamUnavailable.
func (r *RedisRegistry) Instances(ctx context.Context, serviceName string) ([]model.ServiceInstance, error) {
	entries, err := r.client.HGetAll(ctx, registryKey(serviceName)).Result()
	switch {
	case err == nil:
	case errors.Is(err, context.DeadlineExceeded):
		return nil, fmt.Errorf("%w: failed to read registry: %v", model.ErrUpstreamTimeout, err)
	case errors.Is(err, context.Canceled):
		return nil, fmt.Errorf("failed to read registry: %w", err)
	default:
		return nil, fmt.Errorf("%w: failed to read registry: %v", model.ErrUpstreamUnavailable, err)
	}

	instances := make([]model.ServiceInstance, 0, len(entries))
	for id, raw := range entries {
		var instance model.ServiceInstance
		if err := json.Unmarshal([]byte(raw), &instance); err != nil || instance.BaseURL == "" {
			continue
		}
		instance.ID = id
		instance.ServiceName = serviceName
		instances = append(instances, instance)
	}
	return instances, nil
}

func (r *RedisRegistry) Close() error {
	return r.client.Close()
}
