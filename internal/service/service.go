package service

import (
	"context"

	"github.com/Lutefd/currency-conversion/internal/model"
	"github.com/shopspring/decimal"
)

type ConversionServiceInterface interface {
	Convert(ctx context.Context, from, to string, quantity decimal.Decimal) (model.ExchangeQuote, error)
}
