package commands

import (
	"context"
	"fmt"
	"time"

	"cargo/internal/core/domain/model/discount"
	"cargo/internal/pkg/errs"
)

// CreateDiscountCommandHandler stores a new discount for an existing customer.
type CreateDiscountCommandHandler struct {
	uowFactory DiscountUoWFactory
}

// NewCreateDiscountCommandHandler creates the handler.
// Requires a DiscountUoWFactory for transactional persistence.
func NewCreateDiscountCommandHandler(uowFactory DiscountUoWFactory) CreateDiscountCommandHandler {
	return CreateDiscountCommandHandler{uowFactory: uowFactory}
}

// Handle stores the discount and returns its id.
func (h *CreateDiscountCommandHandler) Handle(ctx context.Context, cmd CreateDiscountCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	d, err := discount.NewDiscount(cmd.UserID(), cmd.AmountPerKg(), cmd.IsTemporary(), cmd.Comment(), time.Now().UTC())
	if err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	exists, err := uow.UserDirectory().Exists(ctx, cmd.UserID())
	if err != nil {
		return 0, fmt.Errorf("failed to look up user: %w", err)
	}
	if !exists {
		return 0, errs.NewObjectNotFoundError("user", cmd.UserID().String())
	}

	if err = uow.DiscountRepository().Add(ctx, d); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return d.ID(), nil
}
