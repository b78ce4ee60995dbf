package client

import (
	"context"
	"fmt"
	"time"

	"github.com/Lutefd/currency-conversion/internal/discovery"
	"github.com/Lutefd/currency-conversion/internal/model"
)

const MechanismProxy = "proxy"

// ProxyClient calls the exchange service by logical name. Each call lists the
// instances registered under serviceName and lets the balancer pick one, so
// no address is ever fixed in the client.
type ProxyClient struct {
	serviceName string
	registry    discovery.Registry
	balancer    discovery.Balancer
	options
}

func NewProxyClient(serviceName string, registry discovery.Registry, balancer discovery.Balancer, opts ...Option) *ProxyClient {
	return &ProxyClient{
		serviceName: serviceName,
		registry:    registry,
		balancer:    balancer,
		options:     newOptions(opts),
	}
}

func (p *ProxyClient) RetrieveExchangeValue(ctx context.Context, from, to string) (*model.ExchangeQuote, error) {
	start := time.Now()
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	quote, err := p.retrieve(ctx, from, to)
	p.observe(MechanismProxy, err, start)
	return quote, err
}

func (p *ProxyClient) retrieve(ctx context.Context, from, to string) (*model.ExchangeQuote, error) {
	instance, err := p.resolve(ctx)
	if err != nil {
		return nil, err
	}

	quote, err := fetchExchangeValue(ctx, p.httpClient, instance.BaseURL, from, to)
	if err != nil {
		return nil, fmt.Errorf("instance %s of %s: %w", instance.ID, p.serviceName, err)
	}
	return quote, nil
}

func (p *ProxyClient) resolve(ctx context.Context) (model.ServiceInstance, error) {
	instances, err := p.registry.Instances(ctx, p.serviceName)
	if err != nil {
		return model.ServiceInstance{}, fmt.Errorf("failed to resolve %s: %w", p.serviceName, err)
	}

	instance, err := p.balancer.Choose(instances)
	if err != nil {
		return model.ServiceInstance{}, fmt.Errorf("failed to resolve %s: %w", p.serviceName, err)
	}
	return instance, nil
}
