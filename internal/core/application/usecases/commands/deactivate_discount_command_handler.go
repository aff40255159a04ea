package commands

import "context"

// DeactivateDiscountCommandHandler turns a discount off.
type DeactivateDiscountCommandHandler struct {
	uowFactory DiscountUoWFactory
}

func NewDeactivateDiscountCommandHandler(uowFactory DiscountUoWFactory) DeactivateDiscountCommandHandler {
	return DeactivateDiscountCommandHandler{uowFactory: uowFactory}
}

// Handle turns the discount off. Deactivating twice fails with
// discount.ErrAlreadyInactive.
func (h *DeactivateDiscountCommandHandler) Handle(ctx context.Context, cmd DeactivateDiscountCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.DiscountRepository()
	d, err := repo.Get(ctx, cmd.DiscountID())
	if err != nil {
		return err
	}

	if err = d.Deactivate(); err != nil {
		return err
	}

	if err = repo.Update(ctx, d); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
