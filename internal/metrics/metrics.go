package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/Lutefd/currency-conversion/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	OutcomeSuccess     = "success"
	OutcomeUnavailable = "unavailable"
	OutcomeFault       = "fault"
	OutcomeTimeout     = "timeout"
	OutcomeCanceled    = "canceled"
	OutcomeError       = "error"
)

// Recorder receives one observation per outbound exchange call.
type Recorder interface {
	ObserveUpstreamCall(mechanism string, err error, duration time.Duration)
}

type UpstreamMetrics struct {
	registry *prometheus.Registry

	UpstreamCallsTotal   *prometheus.CounterVec
	UpstreamCallDuration *prometheus.HistogramVec
}

// NewUpstreamMetrics registers its collectors on a private registry so that
// several instances can coexist, e.g. in tests.
func NewUpstreamMetrics() *UpstreamMetrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &UpstreamMetrics{
		registry: registry,
		UpstreamCallsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "currency_exchange_calls_total",
				Help: "Outbound calls to the currency exchange service by mechanism and outcome",
			},
			[]string{"mechanism", "outcome"},
		),
		UpstreamCallDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "currency_exchange_call_duration_seconds",
				Help:    "Duration of outbound calls to the currency exchange service",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"mechanism"},
		),
	}
}

func (m *UpstreamMetrics) ObserveUpstreamCall(mechanism string, err error, duration time.Duration) {
	m.UpstreamCallsTotal.WithLabelValues(mechanism, Outcome(err)).Inc()
	m.UpstreamCallDuration.WithLabelValues(mechanism).Observe(duration.Seconds())
}

func (m *UpstreamMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeSuccess
	case errors.Is(err, model.ErrUpstreamUnavailable):
		return OutcomeUnavailable
	case errors.Is(err, model.ErrUpstreamFault):
		return OutcomeFault
	case errors.Is(err, model.ErrUpstreamTimeout):
		return OutcomeTimeout
	case errors.Is(err, context.Canceled):
		return OutcomeCanceled
	default:
		return OutcomeError
	}
}
