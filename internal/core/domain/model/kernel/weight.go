package kernel

import (
	"fmt"

	"cargo/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

const weightPlaces = 3

// maxParcelWeight matches the numeric(6,3) column of a single parcel.
var maxParcelWeight = decimal.RequireFromString("999.999")

// Weight is a non-negative mass in kilograms with gram precision.
// The zero value is a valid zero weight.
type Weight struct {
	kg decimal.Decimal
}

// NewWeight validates a parcel weight.
func NewWeight(kg decimal.Decimal) (Weight, error) {
	if kg.IsNegative() || kg.GreaterThan(maxParcelWeight) {
		return Weight{}, errs.NewValueIsOutOfRangeError("weight", kg.String(), "0", maxParcelWeight.String())
	}
	if !kg.Equal(kg.Truncate(weightPlaces)) {
		return Weight{}, errs.NewValueIsInvalidErrorWithCause(
			"weight",
			fmt.Errorf("%s has more than %d decimal places", kg, weightPlaces),
		)
	}
	return Weight{kg: kg}, nil
}

// NewTotalWeight validates an aggregated weight, e.g. a stored receipt
// total. Totals are not bounded by the single parcel limit.
func NewTotalWeight(kg decimal.Decimal) (Weight, error) {
	if kg.IsNegative() {
		return Weight{}, errs.NewValueIsOutOfRangeError("total weight", kg.String(), "0", "unbounded")
	}
	if !kg.Equal(kg.Truncate(weightPlaces)) {
		return Weight{}, errs.NewValueIsInvalidErrorWithCause(
			"total weight",
			fmt.Errorf("%s has more than %d decimal places", kg, weightPlaces),
		)
	}
	return Weight{kg: kg}, nil
}

// WeightFromString parses a decimal kilogram value such as "2.5".
func WeightFromString(s string) (Weight, error) {
	kg, err := decimal.NewFromString(s)
	if err != nil {
		return Weight{}, errs.NewValueIsInvalidErrorWithCause("weight", err)
	}
	return NewWeight(kg)
}

// Add sums two weights. Totals are not bounded by the single parcel limit.
func (w Weight) Add(other Weight) Weight {
	return Weight{kg: w.kg.Add(other.kg)}
}

// Decimal returns the weight in kilograms.
func (w Weight) Decimal() decimal.Decimal {
	return w.kg
}

// IsZero reports a weight of exactly 0 kg.
func (w Weight) IsZero() bool {
	return w.kg.IsZero()
}

// String formats the weight with three decimals, e.g. "2.500".
// This is also the API wire format.
func (w Weight) String() string {
	return w.kg.StringFixed(weightPlaces)
}

// IsEqual compares numerically, so 2.5 equals 2.500.
func (w Weight) IsEqual(other Weight) bool {
	return w.kg.Equal(other.kg)
}
