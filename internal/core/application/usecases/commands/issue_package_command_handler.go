package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"cargo/internal/core/domain/model/extradition"
	"cargo/internal/core/domain/model/notification"
	"cargo/internal/core/domain/services"
	"cargo/internal/core/ports"
	"cargo/internal/pkg/errs"
)

// IssuePackageResult describes the issued bulk package.
type IssuePackageResult struct {
	PackageID int64
	Barcode   string
	Count     int
}

// IssuePackageCommandHandler performs a bulk handover: every ready code of
// the customer is claimed and wrapped in one package, all or nothing.
type IssuePackageCommandHandler struct {
	uowFactory ExtraditionUoWFactory
	issuer     services.BarcodeIssuer
	attempts   int
	sink       ports.NotificationSink
	logger     *slog.Logger
}

// NewIssuePackageCommandHandler creates a handler for bulk package issuance.
// maxAttempts bounds the retries on a barcode collision.
func NewIssuePackageCommandHandler(
	uowFactory ExtraditionUoWFactory,
	issuer services.BarcodeIssuer,
	attempts int,
	sink ports.NotificationSink,
	logger *slog.Logger,
) IssuePackageCommandHandler {
	return IssuePackageCommandHandler{
		uowFactory: uowFactory,
		issuer:     issuer,
		attempts:   attempts,
		sink:       sink,
		logger:     logger.With("component", "issue_package"),
	}
}

// Handle packs every ready code of the customer into one package.
// Returns ErrNothingToIssue when the customer has no ready codes.
func (h *IssuePackageCommandHandler) Handle(ctx context.Context, cmd IssuePackageCommand) (IssuePackageResult, error) {
	if err := cmd.Validate(); err != nil {
		return IssuePackageResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return IssuePackageResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	customer := cmd.CustomerID()
	exists, err := uow.UserDirectory().Exists(ctx, customer)
	if err != nil {
		return IssuePackageResult{}, fmt.Errorf("failed to look up customer: %w", err)
	}
	if !exists {
		return IssuePackageResult{}, errs.NewObjectNotFoundError("user", customer.String())
	}

	trackCodes := uow.TrackCodeRepository()
	codes, err := trackCodes.LockReady(ctx, customer)
	if err != nil {
		return IssuePackageResult{}, fmt.Errorf("failed to lock ready codes: %w", err)
	}
	if len(codes) == 0 {
		return IssuePackageResult{}, fmt.Errorf("customer %s: %w", customer, ErrNothingToIssue)
	}

	now := time.Now().UTC()
	for _, tc := range codes {
		if err = tc.Claim(now); err != nil {
			return IssuePackageResult{}, err
		}
	}
	if err = trackCodes.UpdateStatuses(ctx, codes); err != nil {
		return IssuePackageResult{}, fmt.Errorf("failed to claim codes: %w", err)
	}

	next := func() (extradition.Barcode, error) {
		return h.issuer.NextPackageBarcode(ctx, uow.BarcodeSequence())
	}
	barcode, err := next()
	if err != nil {
		return IssuePackageResult{}, err
	}

	pkg, err := extradition.NewPackage(barcode, customer, codes, nil, cmd.Comment(), now)
	if err != nil {
		return IssuePackageResult{}, err
	}
	pkg.Issue(now)

	pkg, err = storePackage(ctx, uow, pkg, next, h.attempts, "bulk")
	if err != nil {
		return IssuePackageResult{}, err
	}

	uow.Stage(notification.PackageIssued(customer, len(codes), cmd.PickupPoint()))

	if err = uow.Commit(ctx); err != nil {
		return IssuePackageResult{}, err
	}

	h.logger.InfoContext(ctx, "Package issued",
		"barcode", pkg.Barcode().String(), "user_id", customer.String(),
		"count", len(codes), "operator_id", operatorLabel(cmd.OperatorID()))
	dispatch(ctx, h.sink, h.logger, uow.Staged())

	return IssuePackageResult{
		PackageID: pkg.ID(),
		Barcode:   pkg.Barcode().String(),
		Count:     len(codes),
	}, nil
}
