package discovery_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Lutefd/currency-conversion/internal/discovery"
	"github.com/Lutefd/currency-conversion/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticRegistry_FromURLs(t *testing.T) {
	registry := discovery.NewStaticRegistryFromURLs("currency-exchange", []string{"http://localhost:8000", "http://localhost:8001"})

	instances, err := registry.Instances(context.Background(), "currency-exchange")
	require.NoError(t, err)
	assert.ElementsMatch(t, []model.ServiceInstance{
		{ID: "http://localhost:8000", ServiceName: "currency-exchange", BaseURL: "http://localhost:8000"},
		{ID: "http://localhost:8001", ServiceName: "currency-exchange", BaseURL: "http://localhost:8001"},
	}, instances)

	instances, err = registry.Instances(context.Background(), "unknown")
	require.NoError(t, err)
	assert.Empty(t, instances)
}

func TestStaticRegistry_RegisterDeregister(t *testing.T) {
	registry := discovery.NewStaticRegistry()
	instance := model.ServiceInstance{ID: "exchange-1", ServiceName: "currency-exchange", BaseURL: "http://10.0.0.1:8000"}

	registry.Register(instance)
	registry.Register(instance)

	instances, err := registry.Instances(context.Background(), "currency-exchange")
	require.NoError(t, err)
	assert.Equal(t, []model.ServiceInstance{instance}, instances)

	registry.Deregister("currency-exchange", "exchange-1")
	registry.Deregister("currency-exchange", "missing")
	registry.Deregister("unknown", "exchange-1")

	instances, err = registry.Instances(context.Background(), "currency-exchange")
	require.NoError(t, err)
	assert.Empty(t, instances)
}

func TestStaticRegistry_CanceledContext(t *testing.T) {
	registry := discovery.NewStaticRegistryFromURLs("currency-exchange", []string{"http://localhost:8000"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := registry.Instances(ctx, "currency-exchange")

	assert.True(t, errors.Is(err, context.Canceled))
	assert.False(t, errors.Is(err, model.ErrUpstreamUnavailable))
}
