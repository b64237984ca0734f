package http

import (
	"currency-assistant/internal/domain"
	"currency-assistant/internal/ports/input"
	"currency-assistant/pkg/validator"

	"github.com/gofiber/fiber/v2"
)

// CurrencyDataHandler struct - Primary/Driving adapter for the data-manager service
type CurrencyDataHandler struct {
	srv       input.CurrencyQueryService
	validator validator.Validator
}

// NewCurrencyDataHandler func - Creates new data-manager HTTP handler
func NewCurrencyDataHandler(srv input.CurrencyQueryService) *CurrencyDataHandler {
	return &CurrencyDataHandler{
		srv:       srv,
		validator: validator.New(),
	}
}

// HealthCheck func
// @Summary Health check
// @Tags Data manager
// @Produce json
// @Success 200 {object} ResponseBody
// @Failure 500 {object} ResponseBody
// @Router /health [get]
func (hdl *CurrencyDataHandler) HealthCheck(c *fiber.Ctx) error {
	return healthCheck(c, hdl.srv)
}

// GetCurrencies godoc
// @Summary List currencies
// @Description Every stored currency with its rate, ordered by name
// @Tags Data manager
// @Produce json
// @Success 200 {array} CurrencyResponse
// @Failure 500 {object} ErrorResponse
// @Router /currencies [get]
func (hdl *CurrencyDataHandler) GetCurrencies(c *fiber.Ctx) error {
	currencies, err := hdl.srv.ListCurrencies(c.UserContext())
	if err != nil {
		return errorResponse(c, err)
	}

	data := make([]CurrencyResponse, 0, len(currencies))
	for _, currency := range currencies {
		data = append(data, toCurrencyResponse(currency))
	}
	return c.Status(fiber.StatusOK).JSON(data)
}

// Convert godoc
// @Summary Convert amount
// @Description Converts an amount of the currency into the base currency using the current rate
// @Tags Data manager
// @Produce json
// @param currency_name query string true "currency name"
// @param amount query number true "amount"
// @Success 200 {object} ConvertResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /convert [get]
func (hdl *CurrencyDataHandler) Convert(c *fiber.Ctx) error {
	var query ConvertQuery
	if err := c.QueryParser(&query); err != nil {
		return unprocessable(c, err)
	}
	if err := hdl.validator.ValidateStruct(query); err != nil {
		return unprocessable(c, err)
	}
	amount, err := domain.ParseDecimal(query.Amount)
	if err != nil {
		return unprocessable(c, err)
	}

	result, err := hdl.srv.Convert(c.UserContext(), domain.ConvertRequest{
		CurrencyName: query.CurrencyName,
		Amount:       amount,
	})
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(toConvertResponse(result))
}
