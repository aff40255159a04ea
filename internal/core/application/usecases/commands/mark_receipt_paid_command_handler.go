package commands

import (
	"context"
	"time"
)

// MarkReceiptPaidCommandHandler settles a receipt. A paid receipt fails with
// receipt.ErrAlreadyPaid and keeps its totals.
type MarkReceiptPaidCommandHandler struct {
	uowFactory BillingUoWFactory
}

// NewMarkReceiptPaidCommandHandler creates a handler for receipt payments.
func NewMarkReceiptPaidCommandHandler(uowFactory BillingUoWFactory) MarkReceiptPaidCommandHandler {
	return MarkReceiptPaidCommandHandler{uowFactory: uowFactory}
}

// Handle locks the receipt and records the payment.
// Returns receipt.ErrAlreadyPaid when the receipt was settled before.
func (h *MarkReceiptPaidCommandHandler) Handle(ctx context.Context, cmd MarkReceiptPaidCommand) error {
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

	repo := uow.ReceiptRepository()
	r, err := repo.GetForUpdate(ctx, cmd.ReceiptID())
	if err != nil {
		return err
	}

	if err = r.MarkPaid(cmd.PaymentReference(), time.Now().UTC()); err != nil {
		return err
	}

	if err = repo.Update(ctx, r); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
