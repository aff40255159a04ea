package ports

import (
	"context"

	"cargo/internal/core/domain/model/receipt"
)

// ReceiptRepository persists receipts together with their items.
type ReceiptRepository interface {
	// Add inserts the receipt and one item per billed code. Returns
	// ErrTrackCodeBilled when any code was billed concurrently.
	Add(ctx context.Context, r *receipt.Receipt) error

	// Update writes the payment state. Totals and items are never rewritten.
	Update(ctx context.Context, r *receipt.Receipt) error

	Get(ctx context.Context, id int64) (*receipt.Receipt, error)

	// GetForUpdate loads and locks the receipt row.
	GetForUpdate(ctx context.Context, id int64) (*receipt.Receipt, error)
}
