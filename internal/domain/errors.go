package domain

import "errors"

// Currency error types

var (
	// ErrInvalidNumber indicates user input that is not a usable decimal number
	ErrInvalidNumber = errors.New("invalid number")

	// ErrCurrencyExists indicates an insert of an identifier that is already stored
	ErrCurrencyExists = errors.New("currency already exists")

	// ErrCurrencyNotFound indicates an operation on an unknown identifier
	ErrCurrencyNotFound = errors.New("currency not found")

	// ErrServiceUnavailable indicates a backend service that could not be reached
	// or answered with an unexpected status
	ErrServiceUnavailable = errors.New("currency service unavailable")

	// ErrInvalidRequest indicates an invalid request was made (4xx client errors)
	ErrInvalidRequest = errors.New("invalid request")

	// ErrDatabaseUnavailable indicates a missing database handle
	ErrDatabaseUnavailable = errors.New("database unavailable")
)
