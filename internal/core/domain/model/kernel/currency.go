package kernel

import (
	"fmt"

	"ticketing/internal/pkg/errs"
)

// Currency identifies the settlement currency of prices and discounts.
// All orders settle in a single currency; the value object exists so that
// money amounts never travel without their unit.
type Currency string

// JPY is the settlement currency of the ticketing system.
// Amounts are integral yen, so no fractional representation is needed.
const JPY Currency = "JPY"

// Validate checks that the currency is one the system can settle in.
func (c Currency) Validate() error {
	if c != JPY {
		return errs.NewValueIsInvalidErrorWithCause(
			"priceCurrency",
			fmt.Errorf("%s is not a supported settlement currency", string(c)),
		)
	}
	return nil
}

// String returns the ISO 4217 code of the currency.
func (c Currency) String() string {
	return string(c)
}
