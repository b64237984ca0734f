package http

import (
	"encoding/json"
	"net/http"

	"currency-assistant/internal/domain"
)

var (
	// Success response
	Success = Status{Code: http.StatusOK, Message: []string{"Success"}}
	// InternalServerError response
	InternalServerError = Status{Code: http.StatusInternalServerError, Message: []string{"Internal Server Error"}}
)

// ResponseBody struct - health check wrapper
type ResponseBody struct {
	Status Status      `json:"status,omitempty"`
	Data   interface{} `json:"data,omitempty"`
}

// Status struct
type Status struct {
	Code    int      `json:"code,omitempty"`
	Message []string `json:"message,omitempty"`
}

type (
	// MessageResponse struct - success body of the management endpoints
	MessageResponse struct {
		Message string `json:"message"`
	}

	// ErrorResponse struct - error body of the currency endpoints
	ErrorResponse struct {
		Detail string `json:"detail"`
	}

	// CurrencyResponse struct - HTTP response DTO for a single currency
	CurrencyResponse struct {
		CurrencyName string      `json:"currency_name"`
		Rate         json.Number `json:"rate" swaggertype:"number"`
	}

	// ConvertResponse struct - HTTP response DTO for /convert
	ConvertResponse struct {
		CurrencyName    string      `json:"currency_name"`
		Amount          json.Number `json:"amount" swaggertype:"number"`
		ConvertedAmount json.Number `json:"converted_amount" swaggertype:"number"`
	}
)

func toCurrencyResponse(currency domain.CurrencyResponse) CurrencyResponse {
	return CurrencyResponse{
		CurrencyName: currency.CurrencyName,
		Rate:         json.Number(currency.Rate.String()),
	}
}

func toConvertResponse(result *domain.ConvertResponse) ConvertResponse {
	return ConvertResponse{
		CurrencyName:    result.CurrencyName,
		Amount:          json.Number(result.Amount.String()),
		ConvertedAmount: json.Number(domain.FormatMoney(result.ConvertedAmount)),
	}
}
