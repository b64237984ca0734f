package http

import (
	"context"

	"currency-assistant/internal/domain"
)

// MockCurrencyManagementService implements input.CurrencyManagementService for testing
type MockCurrencyManagementService struct {
	LoadFunc           func(ctx context.Context, request domain.CurrencyRequest) (*domain.CurrencyResponse, error)
	UpdateCurrencyFunc func(ctx context.Context, request domain.CurrencyRequest) (*domain.CurrencyResponse, error)
	DeleteCurrencyFunc func(ctx context.Context, currencyName string) error
	HealthFunc         func(ctx context.Context) error

	LastRequest *domain.CurrencyRequest
	LastName    string
}

func (m *MockCurrencyManagementService) Load(ctx context.Context, request domain.CurrencyRequest) (*domain.CurrencyResponse, error) {
	m.LastRequest = &request
	if m.LoadFunc != nil {
		return m.LoadFunc(ctx, request)
	}
	return &domain.CurrencyResponse{CurrencyName: domain.NormalizeCurrencyName(request.CurrencyName), Rate: request.Rate}, nil
}

func (m *MockCurrencyManagementService) UpdateCurrency(ctx context.Context, request domain.CurrencyRequest) (*domain.CurrencyResponse, error) {
	m.LastRequest = &request
	if m.UpdateCurrencyFunc != nil {
		return m.UpdateCurrencyFunc(ctx, request)
	}
	return &domain.CurrencyResponse{CurrencyName: domain.NormalizeCurrencyName(request.CurrencyName), Rate: request.Rate}, nil
}

func (m *MockCurrencyManagementService) DeleteCurrency(ctx context.Context, currencyName string) error {
	m.LastName = currencyName
	if m.DeleteCurrencyFunc != nil {
		return m.DeleteCurrencyFunc(ctx, currencyName)
	}
	return nil
}

func (m *MockCurrencyManagementService) Exists(ctx context.Context, currencyName string) (bool, error) {
	return false, nil
}

func (m *MockCurrencyManagementService) Health(ctx context.Context) error {
	if m.HealthFunc != nil {
		return m.HealthFunc(ctx)
	}
	return nil
}

// MockCurrencyQueryService implements input.CurrencyQueryService for testing
type MockCurrencyQueryService struct {
	ListCurrenciesFunc func(ctx context.Context) ([]domain.CurrencyResponse, error)
	ConvertFunc        func(ctx context.Context, request domain.ConvertRequest) (*domain.ConvertResponse, error)
	HealthFunc         func(ctx context.Context) error

	LastConvert *domain.ConvertRequest
}

func (m *MockCurrencyQueryService) ListCurrencies(ctx context.Context) ([]domain.CurrencyResponse, error) {
	if m.ListCurrenciesFunc != nil {
		return m.ListCurrenciesFunc(ctx)
	}
	return nil, nil
}

func (m *MockCurrencyQueryService) Convert(ctx context.Context, request domain.ConvertRequest) (*domain.ConvertResponse, error) {
	m.LastConvert = &request
	if m.ConvertFunc != nil {
		return m.ConvertFunc(ctx, request)
	}
	return nil, domain.ErrCurrencyNotFound
}

func (m *MockCurrencyQueryService) Health(ctx context.Context) error {
	if m.HealthFunc != nil {
		return m.HealthFunc(ctx)
	}
	return nil
}

// MockLineWebhookService implements input.LineWebhookService for testing
type MockLineWebhookService struct {
	HandleWebhookFunc func(ctx context.Context, request domain.LineWebhookRequest) error

	LastRequest *domain.LineWebhookRequest
}

func (m *MockLineWebhookService) HandleWebhook(ctx context.Context, request domain.LineWebhookRequest) error {
	m.LastRequest = &request
	if m.HandleWebhookFunc != nil {
		return m.HandleWebhookFunc(ctx, request)
	}
	return nil
}
