package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"cargo/internal/core/domain/services"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockSequence struct {
	mock.Mock
}

func (m *mockSequence) NextPackageNumber(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func TestBarcodeIssuer_NextPackageBarcode(t *testing.T) {
	ctx := context.Background()
	issuer := services.NewBarcodeIssuer()

	t.Run("should format sequence value", func(t *testing.T) {
		seq := &mockSequence{}
		seq.On("NextPackageNumber", ctx).Return(int64(12), nil).Once()

		b, err := issuer.NextPackageBarcode(ctx, seq)

		require.NoError(t, err)
		assert.Equal(t, "PKG-000012", b.String())
		seq.AssertExpectations(t)
	})

	t.Run("should wrap sequence failure", func(t *testing.T) {
		seq := &mockSequence{}
		seqErr := errors.New("connection reset")
		seq.On("NextPackageNumber", ctx).Return(int64(0), seqErr).Once()

		_, err := issuer.NextPackageBarcode(ctx, seq)

		require.ErrorIs(t, err, seqErr)
	})
}

func TestBarcodeIssuer_NextHandoverBarcode(t *testing.T) {
	clock := func() time.Time { return time.Date(2025, 4, 2, 18, 4, 5, 0, time.UTC) }
	ids := []uuid.UUID{
		uuid.MustParse("00000000-0000-4000-8000-000000000001"),
		uuid.MustParse("0a0b0c0d-0e0f-4000-8000-000000000002"),
	}
	next := 0
	random := func() uuid.UUID {
		id := ids[next]
		next++
		return id
	}
	issuer := services.NewBarcodeIssuerWith(clock, random)

	first := issuer.NextHandoverBarcode()
	second := issuer.NextHandoverBarcode()

	assert.Equal(t, "EP20250402180405000000000000", first.String())
	assert.Equal(t, "EP202504021804050A0B0C0D0E0F", second.String())
	assert.NotEqual(t, first, second)
}
