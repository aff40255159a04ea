package extradition

import (
	"errors"
	"strings"
	"time"

	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/pkg/errs"
	"cargo/internal/pkg/guard"
)

var ErrExtraditionIsNotConstructed = errors.New("Extradition must be created via NewExtradition or RestoreExtradition")

// Extradition records one handover session at a pickup point. Packages
// issued in per-code mode reference it.
type Extradition struct {
	id          int64
	recipientID kernel.UUID
	receiptID   *int64
	pickupPoint string
	issuedBy    *kernel.UUID
	confirmed   bool
	comment     string
	createdAt   time.Time

	guard guard.ConstructorGuard
}

// NewExtradition opens a confirmed handover for the recipient. issuedBy is
// the operator and may be nil for system initiated handovers.
func NewExtradition(recipientID kernel.UUID, issuedBy *kernel.UUID, pickupPoint, comment string, now time.Time) (*Extradition, error) {
	if err := recipientID.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("recipient", err)
	}
	pickupPoint = strings.TrimSpace(pickupPoint)
	if pickupPoint == "" {
		return nil, errs.NewValueIsRequiredError("pickup point")
	}

	return &Extradition{
		recipientID: recipientID,
		pickupPoint: pickupPoint,
		issuedBy:    issuedBy,
		confirmed:   true,
		comment:     strings.TrimSpace(comment),
		createdAt:   now,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// RestoreExtradition rebuilds a persisted extradition.
func RestoreExtradition(
	id int64,
	recipientID kernel.UUID,
	receiptID *int64,
	pickupPoint string,
	issuedBy *kernel.UUID,
	confirmed bool,
	comment string,
	createdAt time.Time,
) (*Extradition, error) {
	if err := recipientID.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("recipient", err)
	}

	return &Extradition{
		id:          id,
		recipientID: recipientID,
		receiptID:   receiptID,
		pickupPoint: pickupPoint,
		issuedBy:    issuedBy,
		confirmed:   confirmed,
		comment:     comment,
		createdAt:   createdAt,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the extradition was created through a constructor.
func (e *Extradition) Validate() error {
	if e == nil {
		return ErrExtraditionIsNotConstructed
	}
	return e.guard.Validate(ErrExtraditionIsNotConstructed)
}

// AttachReceipt links the receipt the recipient paid for this handover.
func (e *Extradition) AttachReceipt(receiptID int64) {
	e.receiptID = &receiptID
}

// ID returns the database identifier, 0 before AddExtradition.
func (e *Extradition) ID() int64 { return e.id }

// AssignID is called by the repository once the store generated the identifier.
func (e *Extradition) AssignID(id int64) { e.id = id }

// Recipient returns the customer the parcels were handed to.
func (e *Extradition) Recipient() kernel.UUID { return e.recipientID }

// ReceiptID returns the attached receipt, nil when none was presented.
func (e *Extradition) ReceiptID() *int64 { return e.receiptID }

// PickupPoint returns where the handover happened.
func (e *Extradition) PickupPoint() string { return e.pickupPoint }

// IssuedBy returns the operator, nil for handovers without one.
func (e *Extradition) IssuedBy() *kernel.UUID { return e.issuedBy }

// IsConfirmed reports whether the recipient confirmed the handover.
func (e *Extradition) IsConfirmed() bool { return e.confirmed }

// Comment returns the operator note.
func (e *Extradition) Comment() string { return e.comment }

// CreatedAt returns when the handover was recorded.
func (e *Extradition) CreatedAt() time.Time { return e.createdAt }
