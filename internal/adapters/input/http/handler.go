package http

import (
	"context"
	"errors"

	"currency-assistant/internal/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type healthChecker interface {
	Health(ctx context.Context) error
}

func healthCheck(c *fiber.Ctx, checker healthChecker) error {
	if err := checker.Health(c.UserContext()); err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusInternalServerError).JSON(ResponseBody{Status: InternalServerError})
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: ""})
}

// errorStatus maps domain errors to the status code and detail of the currency API
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrCurrencyExists):
		return fiber.StatusBadRequest, "Currency already exists"
	case errors.Is(err, domain.ErrCurrencyNotFound):
		return fiber.StatusNotFound, "Currency not found"
	case errors.Is(err, domain.ErrInvalidRequest), errors.Is(err, domain.ErrInvalidNumber):
		return fiber.StatusUnprocessableEntity, err.Error()
	default:
		return fiber.StatusInternalServerError, "Internal Server Error"
	}
}

func errorResponse(c *fiber.Ctx, err error) error {
	status, detail := errorStatus(err)
	if status == fiber.StatusInternalServerError {
		logrus.Errorln(err)
	} else {
		logrus.Warnf("%s %s: %v", c.Method(), c.Path(), err)
	}
	return c.Status(status).JSON(ErrorResponse{Detail: detail})
}

func unprocessable(c *fiber.Ctx, err error) error {
	logrus.Warnf("%s %s: %v", c.Method(), c.Path(), err)
	return c.Status(fiber.StatusUnprocessableEntity).JSON(ErrorResponse{Detail: err.Error()})
}
