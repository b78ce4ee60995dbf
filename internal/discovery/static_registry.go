package discovery

import (
	"context"
	"sync"

	"github.com/Lutefd/currency-conversion/internal/model"
)

// StaticRegistry is an in-memory registry, usually filled from configuration.
type StaticRegistry struct {
	mu        sync.RWMutex
	instances map[string]map[string]model.ServiceInstance
}

func NewStaticRegistry() *StaticRegistry {
	return &StaticRegistry{
		instances: make(map[string]map[string]model.ServiceInstance),
	}
}

// NewStaticRegistryFromURLs registers every base URL under serviceName, using
// the URL itself as the instance id.
func NewStaticRegistryFromURLs(serviceName string, baseURLs []string) *StaticRegistry {
	registry := NewStaticRegistry()
	for _, baseURL := range baseURLs {
		registry.Register(model.ServiceInstance{
			ID:          baseURL,
			ServiceName: serviceName,
			BaseURL:     baseURL,
		})
	}
	return registry
}

func (r *StaticRegistry) Register(instance model.ServiceInstance) {
	r.mu.Lock()
	defer r.mu.Unlock()

	byID, ok := r.instances[instance.ServiceName]
	if !ok {
		byID = make(map[string]model.ServiceInstance)
		r.instances[instance.ServiceName] = byID
	}
	byID[instance.ID] = instance
}

func (r *StaticRegistry) Deregister(serviceName, instanceID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.instances[serviceName], instanceID)
}

// Instances returns the instances registered under serviceName. A done ctx
// yields its error unwrapped.
func (r *StaticRegistry) Instances(ctx context.Context, serviceName string) ([]model.ServiceInstance, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	instances := make([]model.ServiceInstance, 0, len(r.instances[serviceName]))
	for _, instance := range r.instances[serviceName] {
		instances = append(instances, instance)
	}
	return instances, nil
}
