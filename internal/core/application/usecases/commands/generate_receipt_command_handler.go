package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/core/domain/model/notification"
	"cargo/internal/core/domain/model/receipt"
	"cargo/internal/core/domain/services"
	"cargo/internal/core/ports"
	"cargo/internal/pkg/errs"
)

// GenerateReceiptResult summarizes a written receipt.
type GenerateReceiptResult struct {
	ReceiptID      int64
	ItemCount      int
	TotalWeight    kernel.Weight
	TotalPrice     int64
	PaymentLink    string
	DiscountID     *int64
	UnweighedCodes []string
}

// GenerateReceiptCommandHandler aggregates a customer's billable parcels into
// a receipt.
//
// The owner's active discounts and billable codes are locked for the rest of
// the transaction, so two concurrent generations for the same customer
// serialize. The second one then either finds nothing left to bill or hits
// the unique index on receipt items and fails with ErrTrackCodeAlreadyBilled.
type GenerateReceiptCommandHandler struct {
	uowFactory   BillingUoWFactory
	pricer       services.ReceiptPricer
	paymentLinks PaymentLinks
	sink         ports.NotificationSink
	logger       *slog.Logger
}

// NewGenerateReceiptCommandHandler creates the billing handler.
//
// Parameters:
//   - uowFactory: transactional access to codes, discounts and receipts
//   - pricer: combines the tariff with the customer discount
//   - paymentLinks: payment URL per pickup point
//   - sink: receives the receipt notification after commit
//   - logger: reports notification failures
func NewGenerateReceiptCommandHandler(
	uowFactory BillingUoWFactory,
	pricer services.ReceiptPricer,
	paymentLinks PaymentLinks,
	sink ports.NotificationSink,
	logger *slog.Logger,
) GenerateReceiptCommandHandler {
	return GenerateReceiptCommandHandler{
		uowFactory:   uowFactory,
		pricer:       pricer,
		paymentLinks: paymentLinks,
		sink:         sink,
		logger:       logger.With("component", "generate_receipt"),
	}
}

// Handle bills the owner's delivered or ready codes that no receipt covers
// yet, in one transaction. Unweighed codes are listed on the receipt but
// not charged. Returns ErrNoEligibleParcels when nothing can be billed.
func (h *GenerateReceiptCommandHandler) Handle(ctx context.Context, cmd GenerateReceiptCommand) (GenerateReceiptResult, error) {
	if err := cmd.Validate(); err != nil {
		return GenerateReceiptResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return GenerateReceiptResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	owner := cmd.OwnerID()
	exists, err := uow.UserDirectory().Exists(ctx, owner)
	if err != nil {
		return GenerateReceiptResult{}, fmt.Errorf("failed to look up owner: %w", err)
	}
	if !exists {
		return GenerateReceiptResult{}, errs.NewObjectNotFoundError("user", owner.String())
	}

	now := time.Now().UTC()

	discounts, err := uow.DiscountRepository().LockActive(ctx, owner)
	if err != nil {
		return GenerateReceiptResult{}, fmt.Errorf("failed to lock discounts: %w", err)
	}

	codes, err := uow.TrackCodeRepository().LockBillable(ctx, owner, now)
	if err != nil {
		return GenerateReceiptResult{}, fmt.Errorf("failed to lock billable codes: %w", err)
	}
	if len(codes) == 0 {
		return GenerateReceiptResult{}, fmt.Errorf("customer %s: %w", owner, ErrNoEligibleParcels)
	}

	tariff, chosen := h.pricer.Tariff(owner, discounts)
	link := h.paymentLinks.For(cmd.PickupPoint())

	r, err := receipt.NewReceipt(owner, codes, tariff, cmd.PickupPoint(), link, now)
	if err != nil {
		return GenerateReceiptResult{}, err
	}

	if err = uow.ReceiptRepository().Add(ctx, r); err != nil {
		if errors.Is(err, ports.ErrTrackCodeBilled) {
			return GenerateReceiptResult{}, fmt.Errorf("customer %s: %w", owner, ErrTrackCodeAlreadyBilled)
		}
		return GenerateReceiptResult{}, fmt.Errorf("failed to store receipt: %w", err)
	}

	consumed, err := h.pricer.Consume(chosen)
	if err != nil {
		return GenerateReceiptResult{}, err
	}
	if consumed {
		if err = uow.DiscountRepository().Update(ctx, chosen); err != nil {
			return GenerateReceiptResult{}, fmt.Errorf("failed to consume discount: %w", err)
		}
	}

	uow.Stage(notification.ReceiptIssued(owner, r.ID(), r.TotalPrice(), r.PaymentLink()))

	if err = uow.Commit(ctx); err != nil {
		return GenerateReceiptResult{}, err
	}

	if unweighed := r.UnweighedCodes(); len(unweighed) > 0 {
		h.logger.WarnContext(ctx, "Receipt billed parcels without weight",
			"receipt_id", r.ID(), "user_id", owner.String(), "codes", unweighed)
	}
	dispatch(ctx, h.sink, h.logger, uow.Staged())

	result := GenerateReceiptResult{
		ReceiptID:      r.ID(),
		ItemCount:      len(r.Items()),
		TotalWeight:    r.TotalWeight(),
		TotalPrice:     r.TotalPrice(),
		PaymentLink:    r.PaymentLink(),
		UnweighedCodes: r.UnweighedCodes(),
	}
	if chosen != nil {
		id := chosen.ID()
		result.DiscountID = &id
	}
	return result, nil
}
