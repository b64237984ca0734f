package application

import (
	"context"
	"fmt"

	"currency-assistant/internal/domain"
	"currency-assistant/internal/ports/input"
	"currency-assistant/internal/ports/output"
)

// Compile-time check to ensure CurrencyQueryService implements input.CurrencyQueryService
var _ input.CurrencyQueryService = (*CurrencyQueryService)(nil)

// CurrencyQueryService struct - Application service for read-only access to the rate table
type CurrencyQueryService struct {
	repo output.CurrencyRepository
}

// NewCurrencyQueryService func - Creates new currency query service
func NewCurrencyQueryService(repo output.CurrencyRepository) *CurrencyQueryService {
	return &CurrencyQueryService{
		repo: repo,
	}
}

// ListCurrencies func - Use case: every currency ordered by name
func (s *CurrencyQueryService) ListCurrencies(ctx context.Context) ([]domain.CurrencyResponse, error) {
	currencies, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]domain.CurrencyResponse, 0, len(currencies))
	for i := range currencies {
		response = append(response, currencies[i].ToCurrencyResponse())
	}
	return response, nil
}

// Convert func - Use case: amount in base currency, using the rate stored right now
func (s *CurrencyQueryService) Convert(ctx context.Context, request domain.ConvertRequest) (*domain.ConvertResponse, error) {
	name, err := validateName(request.CurrencyName)
	if err != nil {
		return nil, err
	}
	if !request.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", domain.ErrInvalidRequest)
	}
	if err := domain.CheckDecimalBounds(request.Amount); err != nil {
		return nil, fmt.Errorf("%w: amount: %v", domain.ErrInvalidRequest, err)
	}

	currency, err := s.repo.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}

	return &domain.ConvertResponse{
		CurrencyName:    currency.CurrencyName,
		Amount:          request.Amount,
		ConvertedAmount: domain.ConvertAmount(request.Amount, currency.Rate),
	}, nil
}

// Health func - Checks the rate table is reachable
func (s *CurrencyQueryService) Health(ctx context.Context) error {
	return s.repo.Ping(ctx)
}
