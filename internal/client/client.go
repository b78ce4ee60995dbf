// Package client calls the currency exchange service, either at a fixed base
// address or through service discovery.
package client

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/Lutefd/currency-conversion/internal/commons"
	"github.com/Lutefd/currency-conversion/internal/metrics"
	"github.com/Lutefd/currency-conversion/internal/model"
	"github.com/shopspring/decimal"
)

const exchangePathTemplate = "%s/currency-exchange/from/%s/to/%s"

type ExchangeClient interface {
	RetrieveExchangeValue(ctx context.Context, from, to string) (*model.ExchangeQuote, error)
}

type options struct {
	httpClient *http.Client
	timeout    time.Duration
	recorder   metrics.Recorder
}

type Option func(*options)

func WithHTTPClient(c *http.Client) Option {
	return func(o *options) {
		o.httpClient = c
	}
}

// WithTimeout bounds every call, including instance resolution for the proxy.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		o.timeout = d
	}
}

func WithRecorder(r metrics.Recorder) Option {
	return func(o *options) {
		o.recorder = r
	}
}

func newOptions(opts []Option) options {
	o := options{
		httpClient: &http.Client{},
		timeout:    commons.DefaultUpstreamTimeout,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o options) observe(mechanism string, err error, start time.Time) {
	if o.recorder != nil {
		o.recorder.ObserveUpstreamCall(mechanism, err, time.Since(start))
	}
}

type exchangeValueResponse struct {
	ID                 int64               `json:"id"`
	From               string              `json:"from"`
	To                 string              `json:"to"`
	ConversionMultiple decimal.NullDecimal `json:"conversionMultiple"`
	Environment        string              `json:"environment"`
}

func exchangeURL(baseURL, from, to string) string {
	return fmt.Sprintf(exchangePathTemplate, baseURL, url.PathEscape(from), url.PathEscape(to))
}

func classifyTransportError(err error) error {
	var netErr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w: %v", model.ErrUpstreamTimeout, err)
	case errors.As(err, &netErr) && netErr.Timeout():
		return fmt.Errorf("%w: %v", model.ErrUpstreamTimeout, err)
	case errors.Is(err, context.Canceled):
		return fmt.Errorf("request canceled: %w", err)
	default:
		return fmt.Errorf("%w: %v", model.ErrUpstreamUnavailable, err)
	}
}
