package trackcode

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/pkg/errs"
	"cargo/internal/pkg/guard"
)

// MaxCodeLength is the width of the code column.
const MaxCodeLength = 100

var (
	// ErrTrackCodeIsNotConstructed is returned by Validate for literal TrackCode values.
	ErrTrackCodeIsNotConstructed = errors.New("TrackCode must be created via NewTrackCode or RestoreTrackCode")
)

// TrackCode is a customer's parcel identifier together with its lifecycle
// status. It is the aggregate root of the parcel pipeline.
//
// Invariants:
//   - code is non-empty, at most MaxCodeLength characters and never changes
//   - status is always a valid Status
//   - weight, once known, is non-negative
//   - every mutation refreshes updatedAt
type TrackCode struct {
	id          int64
	code        string
	status      Status
	ownerID     kernel.UUID
	description string
	weight      *kernel.Weight
	updatedAt   time.Time

	guard guard.ConstructorGuard
}

// NewTrackCode registers a code on behalf of its owner in UserAdded status.
// The id is assigned by the store on insert.
func NewTrackCode(code string, ownerID kernel.UUID, description string, now time.Time) (*TrackCode, error) {
	tc := &TrackCode{
		status:      UserAdded,
		description: strings.TrimSpace(description),
		updatedAt:   now,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		tc.setCode(code),
		tc.setOwner(ownerID),
	); err != nil {
		return nil, err
	}

	return tc, nil
}

// RestoreTrackCode rebuilds a persisted TrackCode.
func RestoreTrackCode(
	id int64,
	code string,
	status Status,
	ownerID kernel.UUID,
	description string,
	weight *kernel.Weight,
	updatedAt time.Time,
) (*TrackCode, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	tc := &TrackCode{
		id:          id,
		status:      status,
		description: description,
		weight:      weight,
		updatedAt:   updatedAt,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		tc.setCode(code),
		tc.setOwner(ownerID),
	); err != nil {
		return nil, err
	}

	return tc, nil
}

// Validate ensures the track code was created through NewTrackCode or
// RestoreTrackCode. Call it on values coming back from persistence.
func (t *TrackCode) Validate() error {
	if t == nil {
		return ErrTrackCodeIsNotConstructed
	}
	return t.guard.Validate(ErrTrackCodeIsNotConstructed)
}

// ID returns the database identifier. It is 0 for a code not yet stored.
func (t *TrackCode) ID() int64 {
	return t.id
}

// AssignID is called by the repository once the store generated the identifier.
func (t *TrackCode) AssignID(id int64) {
	t.id = id
}

// Code returns the carrier tracking number, trimmed.
func (t *TrackCode) Code() string {
	return t.code
}

// Status returns the current lifecycle status.
func (t *TrackCode) Status() Status {
	return t.status
}

// Owner returns the customer the parcel belongs to.
func (t *TrackCode) Owner() kernel.UUID {
	return t.ownerID
}

// Description returns the customer note, possibly empty.
func (t *TrackCode) Description() string {
	return t.description
}

// Weight returns nil while the parcel has not been weighed.
func (t *TrackCode) Weight() *kernel.Weight {
	return t.weight
}

// UpdatedAt returns the time of the last status or weight change.
func (t *TrackCode) UpdatedAt() time.Time {
	return t.updatedAt
}

// IsOwnedBy reports whether the code belongs to the given customer.
func (t *TrackCode) IsOwnedBy(userID kernel.UUID) bool {
	return t.ownerID.IsEqual(userID)
}

// Advance applies an operator status change. See Status.Advance.
func (t *TrackCode) Advance(next Status, now time.Time) error {
	newStatus, err := t.status.Advance(next)
	if err != nil {
		return fmt.Errorf("%s: %w", t.code, err)
	}
	t.status = newStatus
	t.updatedAt = now
	return nil
}

// Correct applies an authorized correction. See Status.Correct.
func (t *TrackCode) Correct(next Status, now time.Time) error {
	newStatus, err := t.status.Correct(next)
	if err != nil {
		return fmt.Errorf("%s: %w", t.code, err)
	}
	t.status = newStatus
	t.updatedAt = now
	return nil
}

// Claim moves the code to the terminal Claimed status during an extradition.
func (t *TrackCode) Claim(now time.Time) error {
	newStatus, err := t.status.Claim()
	if err != nil {
		return fmt.Errorf("%s: %w", t.code, err)
	}
	t.status = newStatus
	t.updatedAt = now
	return nil
}

// Weigh records the measured weight. Handed over parcels are frozen.
func (t *TrackCode) Weigh(w kernel.Weight, now time.Time) error {
	if t.status.IsTerminal() {
		return errs.NewValueIsInvalidErrorWithCause(
			"weight",
			fmt.Errorf("%s is already %s", t.code, t.status),
		)
	}
	t.weight = &w
	t.updatedAt = now
	return nil
}

// BillableWeight is the weight used for pricing; unweighed parcels count as zero.
func (t *TrackCode) BillableWeight() (kernel.Weight, bool) {
	if t.weight == nil {
		return kernel.Weight{}, false
	}
	return *t.weight, true
}

func (t *TrackCode) setCode(code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return errs.NewValueIsRequiredError("code")
	}
	if len(code) > MaxCodeLength {
		return errs.NewValueIsOutOfRangeError("code length", len(code), 1, MaxCodeLength)
	}
	t.code = code
	return nil
}

func (t *TrackCode) setOwner(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("owner", err)
	}
	t.ownerID = ownerID
	return nil
}
