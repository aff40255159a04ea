package receipt

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/core/domain/model/trackcode"
	"cargo/internal/pkg/errs"
	"cargo/internal/pkg/guard"
)

var (
	ErrReceiptIsNotConstructed = errors.New("Receipt must be created via NewReceipt or RestoreReceipt")

	// ErrAlreadyPaid is returned when settling a receipt twice.
	ErrAlreadyPaid = errors.New("receipt is already paid")

	// ErrNoItems is returned when a receipt would not bill any parcel.
	ErrNoItems = errors.New("receipt must contain at least one track code")
)

// Item links the receipt to exactly one billed track code.
type Item struct {
	TrackCodeID int64
	Code        string
	Weight      kernel.Weight
}

// Tariff carries the rates applied in one pricing pass.
type Tariff struct {
	UnitPrice kernel.Rate
	Discount  kernel.Rate
}

// Receipt is a billing statement aggregating a customer's deliverable parcels.
//
// Invariants:
//   - totalWeight is the sum of item weights (unweighed parcels count as zero)
//   - totalPrice = max(0, round(totalWeight*unit) - round(totalWeight*discount))
//   - once paid, nothing about the receipt changes anymore
type Receipt struct {
	id               int64
	ownerID          kernel.UUID
	createdAt        time.Time
	isPaid           bool
	paidAt           *time.Time
	paymentReference string
	totalWeight      kernel.Weight
	totalPrice       int64
	pickupPoint      string
	paymentLink      string
	items            []Item

	unweighed []string

	guard guard.ConstructorGuard
}

// NewReceipt bills the given codes of one owner. Every code must belong to
// the owner and be in a billable status.
func NewReceipt(
	ownerID kernel.UUID,
	codes []*trackcode.TrackCode,
	tariff Tariff,
	pickupPoint string,
	paymentLink string,
	now time.Time,
) (*Receipt, error) {
	if err := ownerID.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("owner", err)
	}
	if len(codes) == 0 {
		return nil, ErrNoItems
	}

	r := &Receipt{
		ownerID:     ownerID,
		createdAt:   now,
		pickupPoint: strings.TrimSpace(pickupPoint),
		paymentLink: strings.TrimSpace(paymentLink),
		items:       make([]Item, 0, len(codes)),
		guard:       guard.NewConstructorGuard(),
	}

	for _, tc := range codes {
		if err := tc.Validate(); err != nil {
			return nil, err
		}
		if !tc.IsOwnedBy(ownerID) {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				"track code", fmt.Errorf("%s does not belong to %s", tc.Code(), ownerID),
			)
		}
		if !tc.Status().IsBillable() {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				"track code", fmt.Errorf("%s is %s and cannot be billed", tc.Code(), tc.Status()),
			)
		}

		w, weighed := tc.BillableWeight()
		if !weighed {
			r.unweighed = append(r.unweighed, tc.Code())
		}
		r.items = append(r.items, Item{TrackCodeID: tc.ID(), Code: tc.Code(), Weight: w})
		r.totalWeight = r.totalWeight.Add(w)
	}

	r.totalPrice = Price(r.totalWeight, tariff)
	return r, nil
}

// Price applies the tariff to a total weight, never going below zero.
func Price(total kernel.Weight, tariff Tariff) int64 {
	price := tariff.UnitPrice.Charge(total) - tariff.Discount.Charge(total)
	return max(price, 0)
}

// RestoreReceipt rebuilds a persisted receipt.
func RestoreReceipt(
	id int64,
	ownerID kernel.UUID,
	createdAt time.Time,
	isPaid bool,
	paidAt *time.Time,
	paymentReference string,
	totalWeight kernel.Weight,
	totalPrice int64,
	pickupPoint string,
	paymentLink string,
	items []Item,
) (*Receipt, error) {
	if err := ownerID.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("owner", err)
	}
	if totalPrice < 0 {
		return nil, errs.NewValueIsOutOfRangeError("total price", totalPrice, 0, "unbounded")
	}

	return &Receipt{
		id:               id,
		ownerID:          ownerID,
		createdAt:        createdAt,
		isPaid:           isPaid,
		paidAt:           paidAt,
		paymentReference: paymentReference,
		totalWeight:      totalWeight,
		totalPrice:       totalPrice,
		pickupPoint:      pickupPoint,
		paymentLink:      paymentLink,
		items:            items,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

// Validate reports whether the receipt was built by NewReceipt or RestoreReceipt.
//
// Returns:
//   - nil for a constructed receipt
//   - ErrReceiptIsNotConstructed for a zero value
func (r *Receipt) Validate() error {
	if r == nil {
		return ErrReceiptIsNotConstructed
	}
	return r.guard.Validate(ErrReceiptIsNotConstructed)
}

// MarkPaid settles the receipt. Totals are never recomputed afterwards.
func (r *Receipt) MarkPaid(paymentReference string, now time.Time) error {
	if r.isPaid {
		return fmt.Errorf("receipt %d: %w", r.id, ErrAlreadyPaid)
	}
	r.isPaid = true
	r.paidAt = &now
	r.paymentReference = strings.TrimSpace(paymentReference)
	return nil
}

// ID returns the database identifier, 0 until the receipt is stored.
func (r *Receipt) ID() int64 { return r.id }

// AssignID is called by the repository once the store generated the identifier.
func (r *Receipt) AssignID(id int64) { r.id = id }

// Owner returns the billed customer.
func (r *Receipt) Owner() kernel.UUID { return r.ownerID }

// CreatedAt returns when the receipt was generated.
func (r *Receipt) CreatedAt() time.Time { return r.createdAt }

// IsPaid reports whether MarkPaid has been recorded.
func (r *Receipt) IsPaid() bool { return r.isPaid }

// PaidAt returns the payment time. Returns nil while unpaid.
func (r *Receipt) PaidAt() *time.Time { return r.paidAt }

// PaymentReference returns the operator supplied reference, possibly empty.
func (r *Receipt) PaymentReference() string { return r.paymentReference }

// TotalWeight returns the summed weight of all items.
func (r *Receipt) TotalWeight() kernel.Weight { return r.totalWeight }

// TotalPrice returns the amount due in whole currency units.
func (r *Receipt) TotalPrice() int64 { return r.totalPrice }

// PickupPoint returns where the customer collects the parcels.
func (r *Receipt) PickupPoint() string { return r.pickupPoint }

// PaymentLink returns the payment URL chosen for the pickup point.
func (r *Receipt) PaymentLink() string { return r.paymentLink }

// Items returns a copy of the billed track codes.
func (r *Receipt) Items() []Item {
	items := make([]Item, len(r.items))
	copy(items, r.items)
	return items
}

// UnweighedCodes lists codes billed at zero weight by this pricing pass.
// Only populated on receipts built by NewReceipt.
func (r *Receipt) UnweighedCodes() []string {
	return r.unweighed
}
