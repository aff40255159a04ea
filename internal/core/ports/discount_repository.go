package ports

import (
	"context"

	"cargo/internal/core/domain/model/discount"
	"cargo/internal/core/domain/model/kernel"
)

type DiscountRepository interface {
	Add(ctx context.Context, d *discount.Discount) error
	Update(ctx context.Context, d *discount.Discount) error
	Get(ctx context.Context, id int64) (*discount.Discount, error)

	// LockActive locks the user's active discounts.
	LockActive(ctx context.Context, userID kernel.UUID) ([]*discount.Discount, error)
}
