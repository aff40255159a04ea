package kernel_test

import (
	"testing"

	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWeight(t *testing.T) {
	t.Run("should accept gram precision", func(t *testing.T) {
		w, err := kernel.WeightFromString("2.125")

		require.NoError(t, err)
		assert.Equal(t, "2.125", w.String())
	})

	t.Run("should accept zero", func(t *testing.T) {
		w, err := kernel.NewWeight(decimal.Zero)

		require.NoError(t, err)
		assert.True(t, w.IsZero())
	})

	t.Run("should reject negative weight", func(t *testing.T) {
		_, err := kernel.WeightFromString("-0.5")

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should reject weight above column limit", func(t *testing.T) {
		_, err := kernel.WeightFromString("1000")

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should reject sub-gram precision", func(t *testing.T) {
		_, err := kernel.WeightFromString("1.0001")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject garbage", func(t *testing.T) {
		_, err := kernel.WeightFromString("heavy")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestNewTotalWeight(t *testing.T) {
	w, err := kernel.NewTotalWeight(decimal.RequireFromString("1500.250"))
	require.NoError(t, err)
	assert.Equal(t, "1500.250", w.String())

	_, err = kernel.NewTotalWeight(decimal.RequireFromString("-1"))
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestWeight_Add(t *testing.T) {
	a, _ := kernel.WeightFromString("2.0")
	b, _ := kernel.WeightFromString("3.0")

	sum := a.Add(b)

	assert.Equal(t, "5.000", sum.String())
	assert.Equal(t, "2.000", a.String(), "operands are immutable")
}

func TestRate_Charge(t *testing.T) {
	testCases := []struct {
		name     string
		weight   string
		rate     string
		expected int64
	}{
		{"whole kilograms", "5.0", "1000", 5000},
		{"discount on whole kilograms", "5.0", "200", 1000},
		{"rounds half away from zero", "0.5", "1", 1},
		{"rounds down below half", "1.234", "1", 1},
		{"fractional rate", "2.5", "150.50", 376},
		{"zero weight", "0", "1000", 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w, err := kernel.WeightFromString(tc.weight)
			require.NoError(t, err)
			r, err := kernel.NewRate(decimal.RequireFromString(tc.rate))
			require.NoError(t, err)

			assert.Equal(t, tc.expected, r.Charge(w))
		})
	}
}

func TestNewRate(t *testing.T) {
	t.Run("should reject negative rate", func(t *testing.T) {
		_, err := kernel.NewRate(decimal.NewFromInt(-1))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject more than two decimals", func(t *testing.T) {
		_, err := kernel.NewRate(decimal.RequireFromString("0.001"))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should build from integer tariff", func(t *testing.T) {
		r, err := kernel.RateFromInt(1000)

		require.NoError(t, err)
		assert.Equal(t, "1000.00", r.String())
	})
}
