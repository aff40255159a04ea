package commands

import (
	"errors"

	"cargo/internal/pkg/errs"
	"cargo/internal/pkg/guard"
)

var ErrDeactivateDiscountCommandIsNotConstructed = errors.New(
	"DeactivateDiscountCommand must be created via NewDeactivateDiscountCommand constructor",
)

// DeactivateDiscountCommand turns off a standing or unused temporary discount.
type DeactivateDiscountCommand struct { //nolint:recvcheck //using for validation
	discountID int64

	guard guard.ConstructorGuard
}

// NewDeactivateDiscountCommand requires a positive discount id.
func NewDeactivateDiscountCommand(discountID int64) (DeactivateDiscountCommand, error) {
	if discountID <= 0 {
		return DeactivateDiscountCommand{}, errs.NewValueIsRequiredError("discount id")
	}
	return DeactivateDiscountCommand{discountID: discountID, guard: guard.NewConstructorGuard()}, nil
}

func (c DeactivateDiscountCommand) Validate() error {
	return c.guard.Validate(ErrDeactivateDiscountCommandIsNotConstructed)
}

func (c DeactivateDiscountCommand) DiscountID() int64 {
	return c.discountID
}
