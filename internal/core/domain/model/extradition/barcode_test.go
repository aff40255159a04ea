package extradition_test

import (
	"testing"
	"time"

	"cargo/internal/core/domain/model/extradition"
	"cargo/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPackageBarcode(t *testing.T) {
	testCases := []struct {
		seq      int64
		expected string
	}{
		{1, "PKG-000001"},
		{42, "PKG-000042"},
		{999999, "PKG-999999"},
		{1000000, "PKG-1000000"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			b, err := extradition.NewPackageBarcode(tc.seq)

			require.NoError(t, err)
			assert.Equal(t, tc.expected, b.String())
		})
	}

	t.Run("should reject non positive sequence", func(t *testing.T) {
		_, err := extradition.NewPackageBarcode(0)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestNewHandoverBarcode(t *testing.T) {
	issuedAt := time.Date(2025, 4, 2, 23, 4, 5, 0, time.FixedZone("ALMT", 5*60*60))
	random := uuid.MustParse("a1b2c3d4-e5f6-4789-8abc-def012345678")

	b := extradition.NewHandoverBarcode(issuedAt, random)

	assert.Equal(t, "EP20250402180405A1B2C3D4E5F6", b.String())
	assert.LessOrEqual(t, len(b.String()), extradition.MaxBarcodeLength)

	parsed, err := extradition.ParseBarcode(b.String())
	require.NoError(t, err)
	assert.Equal(t, b, parsed)
}

func TestParseBarcode(t *testing.T) {
	t.Run("should accept package barcode", func(t *testing.T) {
		b, err := extradition.ParseBarcode(" PKG-000007 ")

		require.NoError(t, err)
		assert.Equal(t, "PKG-000007", b.String())
	})

	t.Run("should reject empty", func(t *testing.T) {
		_, err := extradition.ParseBarcode("  ")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject unknown format", func(t *testing.T) {
		_, err := extradition.ParseBarcode("EP20250402-180405-A1B2C3D4E5F6")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
