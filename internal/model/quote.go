package model

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// MaxDecimalMagnitude bounds both the digit count and the exponent of decimals
// accepted from callers and from the exchange service. Rendering a decimal
// expands its exponent into digits.
const MaxDecimalMagnitude = 64

type ExchangeQuote struct {
	ID                    int64           `json:"id"`
	From                  string          `json:"from"`
	To                    string          `json:"to"`
	Quantity              decimal.Decimal `json:"quantity"`
	ConversionMultiple    decimal.Decimal `json:"conversionMultiple"`
	TotalCalculatedAmount decimal.Decimal `json:"totalCalculatedAmount"`
	Environment           string          `json:"environment"`
}

// MarshalJSON writes the decimal fields as JSON numbers keeping their scale,
// so 65.00 stays 65.00 on the wire.
func (q ExchangeQuote) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID                    int64       `json:"id"`
		From                  string      `json:"from"`
		To                    string      `json:"to"`
		Quantity              json.Number `json:"quantity"`
		ConversionMultiple    json.Number `json:"conversionMultiple"`
		TotalCalculatedAmount json.Number `json:"totalCalculatedAmount"`
		Environment           string      `json:"environment"`
	}{
		ID:                    q.ID,
		From:                  q.From,
		To:                    q.To,
		Quantity:              scaledNumber(q.Quantity),
		ConversionMultiple:    scaledNumber(q.ConversionMultiple),
		TotalCalculatedAmount: scaledNumber(q.TotalCalculatedAmount),
		Environment:           q.Environment,
	})
}

func scaledNumber(d decimal.Decimal) json.Number {
	if exp := d.Exponent(); exp < 0 {
		return json.Number(d.StringFixed(-exp))
	}
	return json.Number(d.String())
}

// WithinBounds reports whether d has at most MaxDecimalMagnitude digits and an
// exponent of at most MaxDecimalMagnitude in absolute value.
func WithinBounds(d decimal.Decimal) bool {
	exp := d.Exponent()
	if exp > MaxDecimalMagnitude || exp < -MaxDecimalMagnitude {
		return false
	}
	return d.NumDigits() <= MaxDecimalMagnitude
}

// NewExchangeQuote composes the response for a conversion request out of the
// upstream rate record. from, to and quantity always come from the caller.
func NewExchangeQuote(rate ExchangeQuote, from, to string, quantity decimal.Decimal, mechanism string) ExchangeQuote {
	return ExchangeQuote{
		ID:                    rate.ID,
		From:                  from,
		To:                    to,
		Quantity:              quantity,
		ConversionMultiple:    rate.ConversionMultiple,
		TotalCalculatedAmount: quantity.Mul(rate.ConversionMultiple),
		Environment:           rate.Environment + " " + mechanism,
	}
}

func ParseQuantity(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, fmt.Errorf("%w: quantity is required", ErrInvalidInput)
	}
	quantity, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: quantity %s is not a decimal number", ErrInvalidInput, raw)
	}
	if !WithinBounds(quantity) {
		return decimal.Zero, fmt.Errorf("%w: quantity is out of range", ErrInvalidInput)
	}
	if quantity.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: quantity must be non-negative", ErrInvalidInput)
	}
	return quantity, nil
}
