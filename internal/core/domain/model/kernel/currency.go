package kernel

import (
	"fmt"
	"strings"

	"shootdesk/internal/pkg/errs"
	"shootdesk/internal/pkg/guard"
)

// ErrCurrencyIsNotConstructed is returned when attempting to use an
// improperly initialized Currency. Currencies must be created via NewCurrency.
var ErrCurrencyIsNotConstructed = errs.NewValueIsRequiredError(
	"currency must be created via NewCurrency constructor")

// Currency is a three-letter uppercase currency code value object, carried
// by shoot orders to price their tasks. The code is normalized to uppercase
// on construction; anything that is not exactly three ASCII letters fails
// validation.
type Currency struct {
	code  string
	guard guard.ConstructorGuard
}

// NewCurrency creates a Currency from a code such as "AUD" or "usd".
func NewCurrency(code string) (Currency, error) {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	if len(normalized) != 3 {
		return Currency{}, errs.NewValueIsInvalidErrorWithCause("currency",
			fmt.Errorf("%q is not a 3-letter code", code))
	}
	for _, r := range normalized {
		if r < 'A' || r > 'Z' {
			return Currency{}, errs.NewValueIsInvalidErrorWithCause("currency",
				fmt.Errorf("%q is not a 3-letter code", code))
		}
	}

	return Currency{
		code:  normalized,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate checks if the Currency was properly constructed via NewCurrency.
func (c Currency) Validate() error {
	return c.guard.Validate(ErrCurrencyIsNotConstructed)
}

// Code returns the uppercase three-letter code.
func (c Currency) Code() string {
	return c.code
}

// IsEqual compares two currencies by code.
func (c Currency) IsEqual(other Currency) bool {
	return c.code == other.code
}

// String implements fmt.Stringer.
func (c Currency) String() string {
	return c.code
}
