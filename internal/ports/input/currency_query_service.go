package input

import (
	"context"

	"currency-assistant/internal/domain"
)

// CurrencyQueryService interface - Input port (use case)
// Read-only side of the rate table
type CurrencyQueryService interface {
	// ListCurrencies returns every stored currency ordered by name
	ListCurrencies(ctx context.Context) ([]domain.CurrencyResponse, error)
	// Convert multiplies the amount by the rate stored at call time
	Convert(ctx context.Context, request domain.ConvertRequest) (*domain.ConvertResponse, error)
	// Health checks the rate table is reachable
	Health(ctx context.Context) error
}
