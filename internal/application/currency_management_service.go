package application

import (
	"context"
	"fmt"
	"unicode/utf8"

	"currency-assistant/internal/domain"
	"currency-assistant/internal/ports/input"
	"currency-assistant/internal/ports/output"

	"github.com/sirupsen/logrus"
)

// Compile-time check to ensure CurrencyManagementService implements input.CurrencyManagementService
var _ input.CurrencyManagementService = (*CurrencyManagementService)(nil)

// CurrencyManagementService struct - Application service owning writes to the rate table
type CurrencyManagementService struct {
	repo output.CurrencyRepository
}

// NewCurrencyManagementService func - Creates new currency management service
func NewCurrencyManagementService(repo output.CurrencyRepository) *CurrencyManagementService {
	return &CurrencyManagementService{
		repo: repo,
	}
}

// Load func - Use case: add a currency. The repository insert is atomic, so two
// concurrent loads of one name end in exactly one success.
func (s *CurrencyManagementService) Load(ctx context.Context, request domain.CurrencyRequest) (*domain.CurrencyResponse, error) {
	name, err := validateCurrency(request)
	if err != nil {
		return nil, err
	}

	currency, err := s.repo.Insert(ctx, name, request.Rate)
	if err != nil {
		return nil, err
	}

	logrus.Infof("Currency %s loaded with rate %s", currency.CurrencyName, currency.Rate.String())
	response := currency.ToCurrencyResponse()
	return &response, nil
}

// UpdateCurrency func - Use case: change the rate of a stored currency
func (s *CurrencyManagementService) UpdateCurrency(ctx context.Context, request domain.CurrencyRequest) (*domain.CurrencyResponse, error) {
	name, err := validateCurrency(request)
	if err != nil {
		return nil, err
	}

	currency, err := s.repo.Update(ctx, name, request.Rate)
	if err != nil {
		return nil, err
	}

	logrus.Infof("Currency %s updated to rate %s", currency.CurrencyName, currency.Rate.String())
	response := currency.ToCurrencyResponse()
	return &response, nil
}

// DeleteCurrency func - Use case: remove a currency
func (s *CurrencyManagementService) DeleteCurrency(ctx context.Context, currencyName string) error {
	name, err := validateName(currencyName)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, name); err != nil {
		return err
	}

	logrus.Infof("Currency %s deleted", name)
	return nil
}

// Exists func - Use case: case-insensitive membership check
func (s *CurrencyManagementService) Exists(ctx context.Context, currencyName string) (bool, error) {
	name, err := validateName(currencyName)
	if err != nil {
		return false, err
	}
	return s.repo.Exists(ctx, name)
}

// Health func - Checks the rate table is reachable
func (s *CurrencyManagementService) Health(ctx context.Context) error {
	return s.repo.Ping(ctx)
}

func validateName(currencyName string) (string, error) {
	name := domain.NormalizeCurrencyName(currencyName)
	if name == "" {
		return "", fmt.Errorf("%w: currency_name is empty", domain.ErrInvalidRequest)
	}
	if utf8.RuneCountInString(name) > domain.MaxCurrencyNameLength {
		return "", fmt.Errorf("%w: currency_name is longer than %d characters", domain.ErrInvalidRequest, domain.MaxCurrencyNameLength)
	}
	return name, nil
}

func validateCurrency(request domain.CurrencyRequest) (string, error) {
	name, err := validateName(request.CurrencyName)
	if err != nil {
		return "", err
	}
	if !request.Rate.IsPositive() {
		return "", fmt.Errorf("%w: rate must be positive", domain.ErrInvalidRequest)
	}
	if err := domain.CheckDecimalBounds(request.Rate); err != nil {
		return "", fmt.Errorf("%w: rate: %v", domain.ErrInvalidRequest, err)
	}
	return name, nil
}
