package commands

import (
	"errors"
	"strings"

	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/pkg/errs"
	"cargo/internal/pkg/guard"
)

var ErrGenerateReceiptCommandIsNotConstructed = errors.New(
	"GenerateReceiptCommand must be created via NewGenerateReceiptCommand constructor",
)

// GenerateReceiptCommand bills every eligible parcel of one customer.
//
// Example:
//
//	cmd, err := NewGenerateReceiptCommand(customerID, "Almaty-1")
//	if err != nil {
//	    return err
//	}
//	result, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, ErrNoEligibleParcels) {
//	    // nothing to bill yet
//	}
type GenerateReceiptCommand struct { //nolint:recvcheck //using for validation
	ownerID     kernel.UUID
	pickupPoint string

	guard guard.ConstructorGuard
}

// NewGenerateReceiptCommand creates the command. pickupPoint is optional.
func NewGenerateReceiptCommand(ownerID kernel.UUID, pickupPoint string) (GenerateReceiptCommand, error) {
	if err := ownerID.Validate(); err != nil {
		return GenerateReceiptCommand{}, errs.NewValueIsRequiredErrorWithCause("owner", err)
	}
	pickupPoint = strings.TrimSpace(pickupPoint)
	if err := checkLength("pickup point", pickupPoint, MaxPickupPointLength); err != nil {
		return GenerateReceiptCommand{}, err
	}

	return GenerateReceiptCommand{
		ownerID:     ownerID,
		pickupPoint: pickupPoint,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrGenerateReceiptCommandIsNotConstructed otherwise.
func (c GenerateReceiptCommand) Validate() error {
	return c.guard.Validate(ErrGenerateReceiptCommandIsNotConstructed)
}

// OwnerID returns the customer being billed.
func (c GenerateReceiptCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

// PickupPoint returns the trimmed pickup point, possibly empty.
func (c GenerateReceiptCommand) PickupPoint() string {
	return c.pickupPoint
}
