package output

import (
	"context"

	"currency-assistant/internal/domain"

	"github.com/shopspring/decimal"
)

// CurrencyManagerClient interface - Output port
// Defines what the conversation engine needs from the currency-manager service.
// Errors are ErrCurrencyExists, ErrCurrencyNotFound, ErrInvalidRequest or
// ErrServiceUnavailable, wrapped.
type CurrencyManagerClient interface {
	Load(ctx context.Context, currencyName string, rate decimal.Decimal) error
	UpdateCurrency(ctx context.Context, currencyName string, rate decimal.Decimal) error
	DeleteCurrency(ctx context.Context, currencyName string) error
}

// CurrencyDataClient interface - Output port
// Defines what the conversation engine needs from the data-manager service
type CurrencyDataClient interface {
	ListCurrencies(ctx context.Context) ([]domain.CurrencyResponse, error)
	// Convert returns the converted amount, ErrCurrencyNotFound when the currency is gone
	Convert(ctx context.Context, currencyName string, amount decimal.Decimal) (decimal.Decimal, error)
}
