package ports

import (
	"context"

	"cargo/internal/core/domain/model/extradition"
)

// ExtraditionRepository persists handovers and the packages they issue.
type ExtraditionRepository interface {
	AddExtradition(ctx context.Context, e *extradition.Extradition) error

	// AddPackage inserts a package with its track code set. Returns
	// ErrBarcodeCollision when the barcode is taken.
	AddPackage(ctx context.Context, p *extradition.Package) error

	GetExtradition(ctx context.Context, id int64) (*extradition.Extradition, error)

	// GetPackageByBarcode loads a package with its track codes.
	GetPackageByBarcode(ctx context.Context, barcode extradition.Barcode) (*extradition.Package, error)
}

// BarcodeSequence hands out monotonically increasing package numbers.
// Numbers are never reused, even when the drawing transaction rolls back.
type BarcodeSequence interface {
	NextPackageNumber(ctx context.Context) (int64, error)
}
