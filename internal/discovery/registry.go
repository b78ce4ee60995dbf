// Package discovery resolves logical service names to registered instances
// and picks one instance per call.
package discovery

import (
	"context"

	"github.com/Lutefd/currency-conversion/internal/model"
)

type Registry interface {
	Instances(ctx context.Context, serviceName string) ([]model.ServiceInstance, error)
}

type Balancer interface {
	Choose(instances []model.ServiceInstance) (model.ServiceInstance, error)
}
