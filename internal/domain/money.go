package domain

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	CurrencySymbol = "€"

	// Decimal exponent bounds of a float64, normals down to subnormals.
	maxAmountExponent = 308
	minAmountExponent = -324
)

var (
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrAmountOutOfRange = errors.New("amount out of range")
)

// ParseAmount coerces a command-line value into a decimal. Sign is not
// constrained; magnitude must fit a float64.
func ParseAmount(raw string) (decimal.Decimal, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return decimal.Decimal{}, ErrInvalidAmount
	}
	value = strings.TrimPrefix(value, "+")

	amount, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Decimal{}, ErrInvalidAmount
	}
	if err := ValidateAmountRange(amount); err != nil {
		return decimal.Decimal{}, err
	}
	if amount.IsZero() {
		return decimal.Zero, nil
	}
	return amount, nil
}

// ValidateAmountRange rejects values whose decimal exponent lies outside
// what a float64 can hold. Exponent-form input such as 1e50000000 would
// otherwise be written out digit by digit.
func ValidateAmountRange(amount decimal.Decimal) error {
	if amount.IsZero() {
		return nil
	}

	adjusted := int64(amount.Exponent()) + int64(amount.NumDigits()) - 1
	if adjusted > maxAmountExponent || adjusted < minAmountExponent {
		return ErrAmountOutOfRange
	}
	return nil
}

// FormatAmount renders the shortest decimal form that parses back to the
// same value ("12.50" becomes "12.5").
func FormatAmount(amount decimal.Decimal) string {
	return amount.String()
}

func FormatAmountFixed(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}

func FormatMoney(amount decimal.Decimal) string {
	return FormatAmountFixed(amount) + CurrencySymbol
}
