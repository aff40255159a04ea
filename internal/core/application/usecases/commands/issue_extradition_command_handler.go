package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"cargo/internal/core/domain/model/extradition"
	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/core/domain/model/notification"
	"cargo/internal/core/domain/model/trackcode"
	"cargo/internal/core/domain/services"
	"cargo/internal/core/ports"
	"cargo/internal/pkg/errs"
)

// IssuedPackage pairs a handed over code with its handover barcode.
type IssuedPackage struct {
	Code    string
	Barcode string
}

// IssueExtraditionResult reports a per-code handover.
type IssueExtraditionResult struct {
	ExtraditionID int64
	Issued        []IssuedPackage
	Succeeded     int
	Failed        int
	Warnings      []string
}

// IssueExtraditionCommandHandler performs a per-code handover.
//
// The extradition record is written first and always commits. Every code is
// then processed inside its own savepoint: a code that is unknown, belongs to
// somebody else or is not deliverable is rolled back alone and reported as a
// warning, the remaining codes are still handed over.
type IssueExtraditionCommandHandler struct {
	uowFactory ExtraditionUoWFactory
	issuer     services.BarcodeIssuer
	attempts   int
	sink       ports.NotificationSink
	logger     *slog.Logger
}

// NewIssueExtraditionCommandHandler creates a handler for per-code handovers.
func NewIssueExtraditionCommandHandler(
	uowFactory ExtraditionUoWFactory,
	issuer services.BarcodeIssuer,
	attempts int,
	sink ports.NotificationSink,
	logger *slog.Logger,
) IssueExtraditionCommandHandler {
	return IssueExtraditionCommandHandler{
		uowFactory: uowFactory,
		issuer:     issuer,
		attempts:   attempts,
		sink:       sink,
		logger:     logger.With("component", "issue_extradition"),
	}
}

// Handle hands over each listed code in its own savepoint. Codes that fail
// are reported in the result and do not abort the rest.
func (h *IssueExtraditionCommandHandler) Handle(ctx context.Context, cmd IssueExtraditionCommand) (IssueExtraditionResult, error) {
	var result IssueExtraditionResult
	if err := cmd.Validate(); err != nil {
		return result, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return result, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	recipient := cmd.RecipientID()
	exists, err := uow.UserDirectory().Exists(ctx, recipient)
	if err != nil {
		return result, fmt.Errorf("failed to look up recipient: %w", err)
	}
	if !exists {
		return result, errs.NewObjectNotFoundError("user", recipient.String())
	}

	now := time.Now().UTC()
	e, err := extradition.NewExtradition(recipient, cmd.OperatorID(), cmd.PickupPoint(), cmd.Comment(), now)
	if err != nil {
		return result, err
	}

	if id := cmd.ReceiptID(); id != nil {
		warning, attachErr := h.attachReceipt(ctx, uow.ReceiptRepository(), e, *id)
		if attachErr != nil {
			return result, attachErr
		}
		if warning != "" {
			result.Warnings = append(result.Warnings, warning)
		}
	}

	if err = uow.ExtraditionRepository().AddExtradition(ctx, e); err != nil {
		return result, fmt.Errorf("failed to store extradition: %w", err)
	}
	result.ExtraditionID = e.ID()

	for i, code := range cmd.Codes() {
		scope := fmt.Sprintf("line_%d", i)
		if err = uow.SavePoint(ctx, scope); err != nil {
			return IssueExtraditionResult{}, err
		}

		pkg, lineErr := h.issueCode(ctx, uow, e, code, now, scope)
		if lineErr != nil {
			if rbErr := uow.RollbackTo(ctx, scope); rbErr != nil {
				return IssueExtraditionResult{}, rbErr
			}
			result.Failed++
			result.Warnings = append(result.Warnings, lineWarning(code, lineErr))
			continue
		}

		result.Succeeded++
		result.Issued = append(result.Issued, IssuedPackage{Code: code, Barcode: pkg.Barcode().String()})
	}

	if err = uow.Commit(ctx); err != nil {
		return IssueExtraditionResult{}, err
	}

	h.logger.InfoContext(ctx, "Extradition issued",
		"extradition_id", e.ID(), "user_id", recipient.String(),
		"succeeded", result.Succeeded, "failed", result.Failed,
		"operator_id", operatorLabel(cmd.OperatorID()))
	dispatch(ctx, h.sink, h.logger, uow.Staged())

	return result, nil
}

// attachReceipt links the receipt when it exists and belongs to the
// recipient. Otherwise the extradition goes on without it and a warning is
// returned.
func (h *IssueExtraditionCommandHandler) attachReceipt(
	ctx context.Context,
	receipts ports.ReceiptRepository,
	e *extradition.Extradition,
	receiptID int64,
) (string, error) {
	r, err := receipts.Get(ctx, receiptID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return fmt.Sprintf("receipt %d not found", receiptID), nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to load receipt %d: %w", receiptID, err)
	}
	if !r.Owner().IsEqual(e.Recipient()) {
		return fmt.Sprintf("receipt %d belongs to another customer", receiptID), nil
	}
	e.AttachReceipt(receiptID)
	return "", nil
}

func (h *IssueExtraditionCommandHandler) issueCode(
	ctx context.Context,
	uow ExtraditionUoW,
	e *extradition.Extradition,
	code string,
	now time.Time,
	scope string,
) (*extradition.Package, error) {
	trackCodes := uow.TrackCodeRepository()
	tc, err := trackCodes.LockByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if !tc.IsOwnedBy(e.Recipient()) {
		return nil, ErrTrackCodeOfAnotherCustomer
	}

	if err = tc.Claim(now); err != nil {
		return nil, err
	}
	if err = trackCodes.Update(ctx, tc); err != nil {
		return nil, err
	}

	extraditionID := e.ID()
	pkg, err := extradition.NewPackage(
		h.issuer.NextHandoverBarcode(), e.Recipient(), []*trackcode.TrackCode{tc}, &extraditionID, e.Comment(), now,
	)
	if err != nil {
		return nil, err
	}
	pkg.Issue(now)

	next := func() (extradition.Barcode, error) {
		return h.issuer.NextHandoverBarcode(), nil
	}
	pkg, err = storePackage(ctx, uow, pkg, next, h.attempts, scope)
	if err != nil {
		return nil, err
	}

	uow.Stage(notification.CodeHandedOver(tc.Owner(), tc.Code(), e.PickupPoint(), pkg.Barcode().String()))
	return pkg, nil
}

func operatorLabel(id *kernel.UUID) string {
	if id == nil {
		return ""
	}
	return id.String()
}
