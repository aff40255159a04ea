package services

import (
	"context"
	"fmt"
	"time"

	"cargo/internal/core/domain/model/extradition"
	"cargo/internal/core/ports"

	"github.com/google/uuid"
)

// BarcodeIssuer produces package barcodes.
//
// Bulk barcodes come from a database sequence so concurrent issuers never
// compute the same number. Handover barcodes are time and random based; the
// unique index on the barcode column catches the unlikely duplicate.
type BarcodeIssuer struct {
	clock  func() time.Time
	random func() uuid.UUID
}

// NewBarcodeIssuer creates an issuer on the wall clock and random UUIDs.
//
// Returns:
//   - BarcodeIssuer: safe for concurrent use
//
// Example:
//
//	issuer := NewBarcodeIssuer()
//	barcode, err := issuer.NextPackageBarcode(ctx, uow.BarcodeSequence())
//	if err != nil {
//	    return err
//	}
func NewBarcodeIssuer() BarcodeIssuer {
	return BarcodeIssuer{clock: time.Now, random: uuid.New}
}

// NewBarcodeIssuerWith replaces the clock and randomness, for tests.
func NewBarcodeIssuerWith(clock func() time.Time, random func() uuid.UUID) BarcodeIssuer {
	return BarcodeIssuer{clock: clock, random: random}
}

// NextPackageBarcode draws the next bulk barcode from the sequence.
func (b BarcodeIssuer) NextPackageBarcode(ctx context.Context, seq ports.BarcodeSequence) (extradition.Barcode, error) {
	n, err := seq.NextPackageNumber(ctx)
	if err != nil {
		return extradition.Barcode{}, fmt.Errorf("failed to draw package number: %w", err)
	}
	return extradition.NewPackageBarcode(n)
}

// NextHandoverBarcode builds a fresh per-code handover barcode.
func (b BarcodeIssuer) NextHandoverBarcode() extradition.Barcode {
	return extradition.NewHandoverBarcode(b.clock(), b.random())
}
