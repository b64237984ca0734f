package http

import (
	"fmt"

	"currency-assistant/internal/domain"
	"currency-assistant/internal/ports/input"
	"currency-assistant/pkg/validator"

	"github.com/gofiber/fiber/v2"
)

// CurrencyManagerHandler struct - Primary/Driving adapter for the currency-manager service
type CurrencyManagerHandler struct {
	srv       input.CurrencyManagementService
	validator validator.Validator
}

// NewCurrencyManagerHandler func - Creates new currency-manager HTTP handler
func NewCurrencyManagerHandler(srv input.CurrencyManagementService) *CurrencyManagerHandler {
	return &CurrencyManagerHandler{
		srv:       srv,
		validator: validator.New(),
	}
}

// HealthCheck func
// @Summary Health check
// @Tags Currency manager
// @Produce json
// @Success 200 {object} ResponseBody
// @Failure 500 {object} ResponseBody
// @Router /health [get]
func (hdl *CurrencyManagerHandler) HealthCheck(c *fiber.Ctx) error {
	return healthCheck(c, hdl.srv)
}

// Load godoc
// @Summary Load currency
// @Description Stores a new currency with its rate to the base currency
// @Tags Currency manager
// @Accept application/json
// @Produce json
// @param Load body CurrencyRequest true "Load"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /load [post]
func (hdl *CurrencyManagerHandler) Load(c *fiber.Ctx) error {
	request, err := hdl.parseCurrencyRequest(c)
	if err != nil {
		return unprocessable(c, err)
	}

	response, err := hdl.srv.Load(c.UserContext(), request)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(MessageResponse{
		Message: fmt.Sprintf("Currency %s loaded successfully", response.CurrencyName),
	})
}

// UpdateCurrency godoc
// @Summary Update currency
// @Description Changes the rate of a stored currency
// @Tags Currency manager
// @Accept application/json
// @Produce json
// @param UpdateCurrency body CurrencyRequest true "UpdateCurrency"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /update_currency [post]
func (hdl *CurrencyManagerHandler) UpdateCurrency(c *fiber.Ctx) error {
	request, err := hdl.parseCurrencyRequest(c)
	if err != nil {
		return unprocessable(c, err)
	}

	response, err := hdl.srv.UpdateCurrency(c.UserContext(), request)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(MessageResponse{
		Message: fmt.Sprintf("Currency %s updated successfully", response.CurrencyName),
	})
}

// DeleteCurrency godoc
// @Summary Delete currency
// @Tags Currency manager
// @Accept application/json
// @Produce json
// @param DeleteCurrency body DeleteCurrencyRequest true "DeleteCurrency"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /delete [post]
func (hdl *CurrencyManagerHandler) DeleteCurrency(c *fiber.Ctx) error {
	var request DeleteCurrencyRequest
	if err := c.BodyParser(&request); err != nil {
		return unprocessable(c, err)
	}
	if err := hdl.validator.ValidateStruct(request); err != nil {
		return unprocessable(c, err)
	}

	name := domain.NormalizeCurrencyName(request.CurrencyName)
	if err := hdl.srv.DeleteCurrency(c.UserContext(), name); err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(MessageResponse{
		Message: fmt.Sprintf("Currency %s deleted successfully", name),
	})
}

func (hdl *CurrencyManagerHandler) parseCurrencyRequest(c *fiber.Ctx) (domain.CurrencyRequest, error) {
	var request CurrencyRequest
	if err := c.BodyParser(&request); err != nil {
		return domain.CurrencyRequest{}, err
	}
	if err := hdl.validator.ValidateStruct(request); err != nil {
		return domain.CurrencyRequest{}, err
	}
	return domain.CurrencyRequest{
		CurrencyName: request.CurrencyName,
		Rate:         *request.Rate,
	}, nil
}
