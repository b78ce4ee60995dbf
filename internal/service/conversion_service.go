package service

import (
	"context"
	"fmt"

	"github.com/Lutefd/currency-conversion/internal/client"
	"github.com/Lutefd/currency-conversion/internal/model"
	"github.com/shopspring/decimal"
)

// ConversionService turns an exchange rate from the upstream into a quote for
// the requested quantity. mechanism is appended to the upstream environment
// so callers can tell which client produced the answer.
type ConversionService struct {
	exchange  client.ExchangeClient
	mechanism string
}

func NewConversionService(exchange client.ExchangeClient, mechanism string) *ConversionService {
	return &ConversionService{
		exchange:  exchange,
		mechanism: mechanism,
	}
}

func (s *ConversionService) Convert(ctx context.Context, from, to string, quantity decimal.Decimal) (model.ExchangeQuote, error) {
	if quantity.IsNegative() {
		return model.ExchangeQuote{}, fmt.Errorf("%w: quantity must be non-negative", model.ErrInvalidInput)
	}

	rate, err := s.exchange.RetrieveExchangeValue(ctx, from, to)
	if err != nil {
		return model.ExchangeQuote{}, fmt.Errorf("failed to retrieve exchange value %s->%s: %w", from, to, err)
	}

	return model.NewExchangeQuote(*rate, from, to, quantity, s.mechanism), nil
}
