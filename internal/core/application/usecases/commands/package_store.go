package commands

import (
	"context"
	"errors"
	"fmt"

	"cargo/internal/core/domain/model/extradition"
	"cargo/internal/core/ports"
)

// DefaultBarcodeAttempts bounds how often a colliding barcode is redrawn.
const DefaultBarcodeAttempts = 5

type packageStore interface {
	SavePointer
	ExtraditionRepoFactory
}

// storePackage inserts the package and redraws its barcode while the store
// reports a collision. Each attempt runs in its own savepoint, so a collision
// leaves the surrounding transaction usable.
func storePackage(
	ctx context.Context,
	uow packageStore,
	pkg *extradition.Package,
	next func() (extradition.Barcode, error),
	attempts int,
	scope string,
) (*extradition.Package, error) {
	if attempts <= 0 {
		attempts = DefaultBarcodeAttempts
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if attempt > 1 {
			barcode, err := next()
			if err != nil {
				return nil, err
			}
			pkg = pkg.WithBarcode(barcode)
		}

		savepoint := fmt.Sprintf("%s_barcode_%d", scope, attempt)
		if err := uow.SavePoint(ctx, savepoint); err != nil {
			return nil, err
		}

		err := uow.ExtraditionRepository().AddPackage(ctx, pkg)
		if err == nil {
			return pkg, nil
		}
		if !errors.Is(err, ports.ErrBarcodeCollision) {
			return nil, err
		}

		lastErr = err
		if rbErr := uow.RollbackTo(ctx, savepoint); rbErr != nil {
			return nil, rbErr
		}
	}

	return nil, fmt.Errorf("%w after %d attempts: %w", ErrIssuanceFailed, attempts, lastErr)
}
