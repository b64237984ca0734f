package currencyapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"currency-assistant/configs"
	"currency-assistant/internal/domain"
	"currency-assistant/internal/ports/output"

	"github.com/shopspring/decimal"
)

// Compile-time check to ensure DataClientAdapter implements output.CurrencyDataClient
var _ output.CurrencyDataClient = (*DataClientAdapter)(nil)

type currencyItem struct {
	CurrencyName string          `json:"currency_name"`
	Rate         decimal.Decimal `json:"rate"`
}

type convertBody struct {
	ConvertedAmount *decimal.Decimal `json:"converted_amount"`
}

// DataClientAdapter struct - Output adapter for the data-manager service
type DataClientAdapter struct {
	*client
}

// NewDataClientAdapter func - Creates new data-manager client adapter
func NewDataClientAdapter(config configs.Service) *DataClientAdapter {
	return &DataClientAdapter{client: newClient("data-manager", config)}
}

// ListCurrencies - GET /currencies
func (a *DataClientAdapter) ListCurrencies(ctx context.Context) ([]domain.CurrencyResponse, error) {
	var items []currencyItem
	if err := a.do(ctx, http.MethodGet, "/currencies", nil, &items, nil); err != nil {
		return nil, err
	}

	currencies := make([]domain.CurrencyResponse, 0, len(items))
	for _, item := range items {
		currencies = append(currencies, domain.CurrencyResponse{
			CurrencyName: item.CurrencyName,
			Rate:         item.Rate,
		})
	}
	return currencies, nil
}

// Convert - GET /convert, the service reads the rate at call time
func (a *DataClientAdapter) Convert(ctx context.Context, currencyName string, amount decimal.Decimal) (decimal.Decimal, error) {
	query := url.Values{}
	query.Set("currency_name", currencyName)
	query.Set("amount", amount.String())

	var body convertBody
	err := a.do(ctx, http.MethodGet, "/convert?"+query.Encode(), nil, &body, map[int]error{
		http.StatusNotFound:            domain.ErrCurrencyNotFound,
		http.StatusUnprocessableEntity: domain.ErrInvalidRequest,
	})
	if err != nil {
		return decimal.Zero, err
	}
	if body.ConvertedAmount == nil {
		return decimal.Zero, fmt.Errorf("%w: response without converted_amount", domain.ErrServiceUnavailable)
	}
	return *body.ConvertedAmount, nil
}
