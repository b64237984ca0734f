package http

import "github.com/shopspring/decimal"

type (
	// CurrencyRequest struct - HTTP request DTO for /load and /update_currency
	CurrencyRequest struct {
		CurrencyName string           `json:"currency_name" validate:"required,max=64" form:"currency_name"`
		Rate         *decimal.Decimal `json:"rate" validate:"required" form:"rate"`
	}

	// DeleteCurrencyRequest struct - HTTP request DTO for /delete
	DeleteCurrencyRequest struct {
		CurrencyName string `json:"currency_name" validate:"required,max=64" form:"currency_name"`
	}

	// ConvertQuery struct - HTTP query DTO for /convert
	ConvertQuery struct {
		CurrencyName string `json:"currency_name" validate:"required,max=64" query:"currency_name"`
		Amount       string `json:"amount" validate:"required" query:"amount"`
	}
)
