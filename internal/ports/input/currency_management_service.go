package input

import (
	"context"

	"currency-assistant/internal/domain"
)

// CurrencyManagementService interface - Input port (use case)
// Defines the write side of the rate table. Identifiers are matched case-insensitively.
type CurrencyManagementService interface {
	// Load inserts a new currency, ErrCurrencyExists when the identifier is taken
	Load(ctx context.Context, request domain.CurrencyRequest) (*domain.CurrencyResponse, error)
	// UpdateCurrency changes the rate of a stored currency, ErrCurrencyNotFound when absent
	UpdateCurrency(ctx context.Context, request domain.CurrencyRequest) (*domain.CurrencyResponse, error)
	// DeleteCurrency removes a stored currency, ErrCurrencyNotFound when absent
	DeleteCurrency(ctx context.Context, currencyName string) error
	Exists(ctx context.Context, currencyName string) (bool, error)
	// Health checks the rate table is reachable
	Health(ctx context.Context) error
}
