package output

import (
	"context"

	"currency-assistant/internal/domain"

	"github.com/shopspring/decimal"
)

// CurrencyRepository interface - Output port
// Defines what the application needs from the rate table.
// All identifier lookups are case-insensitive.
type CurrencyRepository interface {
	Exists(ctx context.Context, currencyName string) (bool, error)
	// Insert stores a new row atomically, ErrCurrencyExists when the identifier is taken
	Insert(ctx context.Context, currencyName string, rate decimal.Decimal) (*domain.Currency, error)
	// Update changes the rate, ErrCurrencyNotFound when no row matched
	Update(ctx context.Context, currencyName string, rate decimal.Decimal) (*domain.Currency, error)
	// Delete removes the row, ErrCurrencyNotFound when no row matched
	Delete(ctx context.Context, currencyName string) error
	// List returns every row ordered by name
	List(ctx context.Context) ([]domain.Currency, error)
	// FindByName returns ErrCurrencyNotFound when no row matched
	FindByName(ctx context.Context, currencyName string) (*domain.Currency, error)
	// Ping checks the database connection
	Ping(ctx context.Context) error
}
