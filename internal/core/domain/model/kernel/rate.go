package kernel

import (
	"fmt"

	"cargo/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

const ratePlaces = 2

// Rate is an amount of currency per kilogram, used both for the tariff and
// for customer discounts. The zero value is a valid zero rate.
type Rate struct {
	perKg decimal.Decimal
}

// NewRate validates a non-negative per-kilogram amount with at most two decimals.
func NewRate(perKg decimal.Decimal) (Rate, error) {
	if perKg.IsNegative() {
		return Rate{}, errs.NewValueIsInvalidErrorWithCause("rate", fmt.Errorf("%s is negative", perKg))
	}
	if !perKg.Equal(perKg.Truncate(ratePlaces)) {
		return Rate{}, errs.NewValueIsInvalidErrorWithCause(
			"rate",
			fmt.Errorf("%s has more than %d decimal places", perKg, ratePlaces),
		)
	}
	return Rate{perKg: perKg}, nil
}

// RateFromInt builds a whole-currency rate, e.g. the configured tariff.
func RateFromInt(perKg int64) (Rate, error) {
	return NewRate(decimal.NewFromInt(perKg))
}

// Charge returns weight*rate rounded half away from zero to whole currency units.
func (r Rate) Charge(w Weight) int64 {
	return w.Decimal().Mul(r.perKg).Round(0).IntPart()
}

// Decimal returns the amount per kilogram.
func (r Rate) Decimal() decimal.Decimal {
	return r.perKg
}

// IsZero reports a zero rate.
func (r Rate) IsZero() bool {
	return r.perKg.IsZero()
}

// String formats the rate with two decimals, e.g. "500.00".
func (r Rate) String() string {
	return r.perKg.StringFixed(ratePlaces)
}
