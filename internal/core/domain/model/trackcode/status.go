package trackcode

import (
	"fmt"

	"cargo/internal/pkg/errs"
)

// Status is the lifecycle state of a tracking code.
//
//	UserAdded ─> WarehouseCN ─> ShippedCN ─> Delivered ─> Ready ─> Claimed
//
// Operators may move a code between any of the first five states (they
// correct data entry mistakes), Claimed is terminal and is only reached
// through an extradition.
type Status int

const (
	// Unknown is the zero value; it only appears for unparseable stored data.
	Unknown Status = iota

	// UserAdded is the initial state after the owner registers the code.
	UserAdded

	// WarehouseCN means the parcel was received by the warehouse in China.
	WarehouseCN

	// ShippedCN means the parcel left the warehouse in China.
	ShippedCN

	// Delivered means the parcel was accepted by the sorting center and can be billed.
	Delivered

	// Ready means the parcel arrived at the pickup point.
	Ready

	// Claimed means the parcel was handed over to the recipient.
	Claimed
)

// All lists every valid status in lifecycle order.
func All() []Status {
	return []Status{UserAdded, WarehouseCN, ShippedCN, Delivered, Ready, Claimed}
}

// ParseStatus maps the persisted code back to a Status.
func ParseStatus(code string) (Status, error) {
	for _, s := range All() {
		if s.String() == code {
			return s, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", code))
}

// String returns the persisted code of the status.
func (s Status) String() string {
	switch s {
	case UserAdded:
		return "user_added"
	case WarehouseCN:
		return "warehouse_cn"
	case ShippedCN:
		return "shipped_cn"
	case Delivered:
		return "delivered"
	case Ready:
		return "ready"
	case Claimed:
		return "claimed"
	case Unknown:
		return "unknown"
	}
	return "unknown"
}

// Description is the human readable label shown to customers.
func (s Status) Description() string {
	switch s {
	case UserAdded:
		return "Added by customer"
	case WarehouseCN:
		return "Received at warehouse (China)"
	case ShippedCN:
		return "Shipped from warehouse (China)"
	case Delivered:
		return "Accepted by sorting center"
	case Ready:
		return "Delivered to pickup point"
	case Claimed:
		return "Handed over to recipient"
	case Unknown:
		return "Unknown"
	}
	return "Unknown"
}

// Validate rejects Unknown and out of range values.
func (s Status) Validate() error {
	if s < UserAdded || s > Claimed {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// IsBillable reports whether a code in this status may be aggregated into a receipt.
func (s Status) IsBillable() bool {
	return s == Delivered || s == Ready
}

// IsTerminal reports whether no further non-corrective transition is allowed.
func (s Status) IsTerminal() bool {
	return s == Claimed
}

// Advance validates an operator transition to next and returns next.
// Re-applying the current status is accepted.
func (s Status) Advance(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return Unknown, err
	}
	if s.IsTerminal() {
		return Unknown, errs.NewInvalidTransitionErrorWithCause(
			"track code", s.String(), next.String(), fmt.Errorf("%s is terminal", s),
		)
	}
	if next == Claimed {
		return Unknown, errs.NewInvalidTransitionErrorWithCause(
			"track code", s.String(), next.String(), fmt.Errorf("%s is reachable only through extradition", next),
		)
	}
	return next, nil
}

// Correct validates an authorized correction. It may leave Claimed but
// never enters it.
func (s Status) Correct(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return Unknown, err
	}
	if next == Claimed && s != Claimed {
		return Unknown, errs.NewInvalidTransitionErrorWithCause(
			"track code", s.String(), next.String(), fmt.Errorf("%s is reachable only through extradition", next),
		)
	}
	return next, nil
}

// Claim validates the extradition transition.
func (s Status) Claim() (Status, error) {
	if !s.IsBillable() {
		return Unknown, errs.NewInvalidTransitionErrorWithCause(
			"track code", s.String(), Claimed.String(), fmt.Errorf("%s is not eligible for handover", s),
		)
	}
	return Claimed, nil
}
