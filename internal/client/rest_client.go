package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Lutefd/currency-conversion/internal/model"
)

const MechanismDirect = "direct"

// RestClient calls the exchange service at a fixed base address.
type RestClient struct {
	baseURL string
	options
}

func NewRestClient(baseURL string, opts ...Option) *RestClient {
	return &RestClient{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		options: newOptions(opts),
	}
}

func (c *RestClient) RetrieveExchangeValue(ctx context.Context, from, to string) (*model.ExchangeQuote, error) {
	start := time.Now()
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	quote, err := fetchExchangeValue(ctx, c.httpClient, c.baseURL, from, to)
	c.observe(MechanismDirect, err, start)
	return quote, err
}

func fetchExchangeValue(ctx context.Context, httpClient *http.Client, baseURL, from, to string) (*model.ExchangeQuote, error) {
	url := exchangeURL(baseURL, from, to)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", model.ErrUpstreamUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, classifyTransportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("%w: %s returned status code %d", model.ErrUpstreamFault, url, resp.StatusCode)
	}

	var body exchangeValueResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		if ctx.Err() != nil {
			return nil, classifyTransportError(ctx.Err())
		}
		return nil, fmt.Errorf("%w: failed to decode response: %v", model.ErrUpstreamFault, err)
	}
	if !body.ConversionMultiple.Valid {
		return nil, fmt.Errorf("%w: response is missing conversionMultiple", model.ErrUpstreamFault)
	}
	if !model.WithinBounds(body.ConversionMultiple.Decimal) {
		return nil, fmt.Errorf("%w: conversionMultiple is out of range", model.ErrUpstreamFault)
	}

	return &model.ExchangeQuote{
		ID:                 body.ID,
		From:               body.From,
		To:                 body.To,
		ConversionMultiple: body.ConversionMultiple.Decimal,
		Environment:        body.Environment,
	}, nil
}
