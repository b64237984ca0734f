package domain

import (
	"fmt"
	"math/big"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	// MoneyPlaces is the number of fraction digits shown for converted amounts
	MoneyPlaces = 2
	// MaxIntegerDigits and MaxFractionDigits match the numeric(20,6) rate column
	MaxIntegerDigits  = 14
	MaxFractionDigits = 6

	// text longer than this is rejected before parsing
	maxNumberInputLength = 64
	// a coefficient within the column bounds never needs more bits than this
	maxCoefficientBits = 128
)

// plainNumber allows an optional sign, digits and one optional "." or "," fraction.
// Exponent notation ("1e5") is not accepted.
var plainNumber = regexp.MustCompile(`^[+-]?[0-9]+(?:[.,][0-9]+)?$`)

var ten = big.NewInt(10)

// ParseDecimal parses user supplied numeric text. Both "90.5" and "90,5" are
// accepted; exponents and values outside the column bounds wrap ErrInvalidNumber.
func ParseDecimal(input string) (decimal.Decimal, error) {
	text := strings.TrimSpace(input)
	if text == "" {
		return decimal.Zero, fmt.Errorf("%w: empty input", ErrInvalidNumber)
	}
	if len(text) > maxNumberInputLength || !plainNumber.MatchString(text) {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidNumber, input)
	}
	text = strings.Replace(text, ",", ".", 1)
	value, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidNumber, input)
	}
	if err := CheckDecimalBounds(value); err != nil {
		return decimal.Zero, err
	}
	return value, nil
}

// ParsePositiveDecimal is ParseDecimal restricted to values greater than zero
func ParsePositiveDecimal(input string) (decimal.Decimal, error) {
	value, err := ParseDecimal(input)
	if err != nil {
		return decimal.Zero, err
	}
	if !value.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: %s is not positive", ErrInvalidNumber, value.String())
	}
	return value, nil
}

// CheckDecimalBounds rejects values with more than MaxIntegerDigits integer or
// MaxFractionDigits fraction digits. Trailing fraction zeros do not count.
// It never formats the value, so huge exponents are rejected cheaply.
func CheckDecimalBounds(value decimal.Decimal) error {
	coefficient := new(big.Int).Abs(value.Coefficient())
	if coefficient.Sign() == 0 {
		return nil
	}
	if coefficient.BitLen() > maxCoefficientBits {
		return fmt.Errorf("%w: too many digits", ErrInvalidNumber)
	}

	exp := int64(value.Exponent())
	remainder := new(big.Int)
	for {
		quotient, r := new(big.Int).QuoRem(coefficient, ten, remainder)
		if r.Sign() != 0 {
			break
		}
		coefficient = quotient
		exp++
	}

	digits := int64(len(coefficient.String()))
	if exp < -MaxFractionDigits {
		return fmt.Errorf("%w: more than %d fraction digits", ErrInvalidNumber, MaxFractionDigits)
	}
	if digits+exp > MaxIntegerDigits {
		return fmt.Errorf("%w: more than %d integer digits", ErrInvalidNumber, MaxIntegerDigits)
	}
	return nil
}

// ConvertAmount returns amount*rate rounded half away from zero to MoneyPlaces
func ConvertAmount(amount, rate decimal.Decimal) decimal.Decimal {
	return amount.Mul(rate).Round(MoneyPlaces)
}

// FormatMoney renders a converted amount with exactly MoneyPlaces digits
func FormatMoney(value decimal.Decimal) string {
	return value.StringFixed(MoneyPlaces)
}
