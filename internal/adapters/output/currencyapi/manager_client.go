package currencyapi

import (
	"context"
	"encoding/json"
	"net/http"

	"currency-assistant/configs"
	"currency-assistant/internal/domain"
	"currency-assistant/internal/ports/output"

	"github.com/shopspring/decimal"
)

// Compile-time check to ensure ManagerClientAdapter implements output.CurrencyManagerClient
var _ output.CurrencyManagerClient = (*ManagerClientAdapter)(nil)

type currencyPayload struct {
	CurrencyName string      `json:"currency_name"`
	Rate         json.Number `json:"rate,omitempty"`
}

type messageBody struct {
	Message string `json:"message"`
}

// ManagerClientAdapter struct - Output adapter for the currency-manager service
type ManagerClientAdapter struct {
	*client
}

// NewManagerClientAdapter func - Creates new currency-manager client adapter
func NewManagerClientAdapter(config configs.Service) *ManagerClientAdapter {
	return &ManagerClientAdapter{client: newClient("currency-manager", config)}
}

// Load - POST /load, 400 means the currency is already stored
func (a *ManagerClientAdapter) Load(ctx context.Context, currencyName string, rate decimal.Decimal) error {
	payload := currencyPayload{CurrencyName: currencyName, Rate: json.Number(rate.String())}
	return a.do(ctx, http.MethodPost, "/load", payload, &messageBody{}, map[int]error{
		http.StatusBadRequest:          domain.ErrCurrencyExists,
		http.StatusUnprocessableEntity: domain.ErrInvalidRequest,
	})
}

// UpdateCurrency - POST /update_currency
func (a *ManagerClientAdapter) UpdateCurrency(ctx context.Context, currencyName string, rate decimal.Decimal) error {
	payload := currencyPayload{CurrencyName: currencyName, Rate: json.Number(rate.String())}
	return a.do(ctx, http.MethodPost, "/update_currency", payload, &messageBody{}, map[int]error{
		http.StatusNotFound:            domain.ErrCurrencyNotFound,
		http.StatusUnprocessableEntity: domain.ErrInvalidRequest,
	})
}

// DeleteCurrency - POST /delete
func (a *ManagerClientAdapter) DeleteCurrency(ctx context.Context, currencyName string) error {
	payload := currencyPayload{CurrencyName: currencyName}
	return a.do(ctx, http.MethodPost, "/delete", payload, &messageBody{}, map[int]error{
		http.StatusNotFound:            domain.ErrCurrencyNotFound,
		http.StatusUnprocessableEntity: domain.ErrInvalidRequest,
	})
}
