package commands

import (
	"errors"
	"strings"

	"cargo/internal/core/domain/model/discount"
	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/pkg/errs"
	"cargo/internal/pkg/guard"
)

var ErrCreateDiscountCommandIsNotConstructed = errors.New(
	"CreateDiscountCommand must be created via NewCreateDiscountCommand constructor",
)

// CreateDiscountCommand grants a customer a per-kilogram discount.
type CreateDiscountCommand struct { //nolint:recvcheck //using for validation
	userID      kernel.UUID
	amountPerKg kernel.Rate
	temporary   bool
	comment     string

	guard guard.ConstructorGuard
}

// NewCreateDiscountCommand validates the user and the amount.
// The amount must be positive and fit the stored column, see discount.MaxAmountPerKg.
func NewCreateDiscountCommand(
	userID kernel.UUID,
	amountPerKg kernel.Rate,
	temporary bool,
	comment string,
) (CreateDiscountCommand, error) {
	cmd := CreateDiscountCommand{
		temporary: temporary,
		comment:   strings.TrimSpace(comment),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setAmount(amountPerKg),
	); err != nil {
		return CreateDiscountCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDiscountCommand) Validate() error {
	return c.guard.Validate(ErrCreateDiscountCommandIsNotConstructed)
}

// UserID returns the customer receiving the discount.
func (c CreateDiscountCommand) UserID() kernel.UUID {
	return c.userID
}

// AmountPerKg returns the reduction per kilogram.
func (c CreateDiscountCommand) AmountPerKg() kernel.Rate {
	return c.amountPerKg
}

// IsTemporary reports whether one receipt consumes the discount.
func (c CreateDiscountCommand) IsTemporary() bool {
	return c.temporary
}

func (c CreateDiscountCommand) Comment() string {
	return c.comment
}

func (c *CreateDiscountCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("user", err)
	}
	c.userID = userID
	return nil
}

func (c *CreateDiscountCommand) setAmount(amount kernel.Rate) error {
	if amount.IsZero() {
		return errs.NewValueIsRequiredError("amount per kg")
	}
	if amount.Decimal().GreaterThan(discount.MaxAmountPerKg) {
		return errs.NewValueIsOutOfRangeError("amount per kg", amount.String(), "0.01", discount.MaxAmountPerKg.StringFixed(2))
	}
	c.amountPerKg = amount
	return nil
}
