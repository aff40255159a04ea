package discount

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/pkg/errs"
	"cargo/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// MaxAmountPerKg is the largest amount the amount_per_kg column can hold.
var MaxAmountPerKg = decimal.RequireFromString("9999.99")

var (
	// ErrDiscountIsNotConstructed is returned by Validate for literal Discount values.
	ErrDiscountIsNotConstructed = errors.New("Discount must be created via NewDiscount or RestoreDiscount")

	// ErrAlreadyInactive is returned when deactivating a discount twice.
	ErrAlreadyInactive = errors.New("discount is already inactive")
)

// Discount is a per-kilogram price reduction granted to one customer.
//
// A standing discount applies to every receipt until an operator turns it
// off. A temporary discount is consumed by the first receipt it applies to.
type Discount struct {
	id          int64
	userID      kernel.UUID
	amountPerKg kernel.Rate
	isTemporary bool
	active      bool
	comment     string
	createdAt   time.Time

	guard guard.ConstructorGuard
}

// NewDiscount creates an active discount for the customer.
func NewDiscount(userID kernel.UUID, amountPerKg kernel.Rate, isTemporary bool, comment string, now time.Time) (*Discount, error) {
	if err := userID.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("user", err)
	}
	if amountPerKg.IsZero() {
		return nil, errs.NewValueIsInvalidErrorWithCause("amount per kg", fmt.Errorf("must be greater than 0"))
	}
	if amountPerKg.Decimal().GreaterThan(MaxAmountPerKg) {
		return nil, errs.NewValueIsOutOfRangeError("amount per kg", amountPerKg.String(), "0.01", MaxAmountPerKg.StringFixed(2))
	}

	return &Discount{
		userID:      userID,
		amountPerKg: amountPerKg,
		isTemporary: isTemporary,
		active:      true,
		comment:     strings.TrimSpace(comment),
		createdAt:   now,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// RestoreDiscount rebuilds a persisted discount.
func RestoreDiscount(
	id int64,
	userID kernel.UUID,
	amountPerKg kernel.Rate,
	isTemporary bool,
	active bool,
	comment string,
	createdAt time.Time,
) (*Discount, error) {
	if err := userID.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("user", err)
	}

	return &Discount{
		id:          id,
		userID:      userID,
		amountPerKg: amountPerKg,
		isTemporary: isTemporary,
		active:      active,
		comment:     comment,
		createdAt:   createdAt,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the discount was created through NewDiscount or RestoreDiscount.
//
// Returns:
//   - nil if the discount is valid
//   - ErrDiscountIsNotConstructed otherwise
func (d *Discount) Validate() error {
	if d == nil {
		return ErrDiscountIsNotConstructed
	}
	return d.guard.Validate(ErrDiscountIsNotConstructed)
}

// Deactivate turns the discount off. Inactive discounts never apply again.
func (d *Discount) Deactivate() error {
	if !d.active {
		return fmt.Errorf("discount %d: %w", d.id, ErrAlreadyInactive)
	}
	d.active = false
	return nil
}

// AppliesTo reports whether the discount may price a receipt of the user.
func (d *Discount) AppliesTo(userID kernel.UUID) bool {
	return d.active && d.userID.IsEqual(userID)
}

// ID returns the database identifier.
func (d *Discount) ID() int64 { return d.id }

// AssignID is called by the repository once the store generated the identifier.
func (d *Discount) AssignID(id int64) { d.id = id }

// User returns the customer the discount is granted to.
func (d *Discount) User() kernel.UUID { return d.userID }

// AmountPerKg returns the reduction subtracted from the tariff.
func (d *Discount) AmountPerKg() kernel.Rate { return d.amountPerKg }

// IsTemporary reports whether the first receipt consumes the discount.
func (d *Discount) IsTemporary() bool { return d.isTemporary }

// IsActive reports whether the discount still applies.
func (d *Discount) IsActive() bool { return d.active }

// Comment returns the operator note.
func (d *Discount) Comment() string { return d.comment }

// CreatedAt returns when the discount was granted.
func (d *Discount) CreatedAt() time.Time { return d.createdAt }
