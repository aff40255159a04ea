package extradition

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
	ErrPackageIsNotConstructed = errors.New("Package must be created via NewPackage or RestorePackage")

	// ErrEmptyPackage is returned when a package would hold no track codes.
	ErrEmptyPackage = errors.New("package must contain at least one track code")
)

// PackageItem is a track code held by a package.
type PackageItem struct {
	TrackCodeID int64
	Code        string
}

// Package is the unit physically handed over to a customer. A bulk package
// holds all of a customer's ready codes and has no extradition, a per-code
// package holds a single code and belongs to an extradition.
//
// Invariants:
//   - barcode never changes
//   - every code belongs to the package user and is claimed
//   - once issued, a package stays issued
type Package struct {
	id            int64
	barcode       Barcode
	userID        kernel.UUID
	extraditionID *int64
	items         []PackageItem
	comment       string
	createdAt     time.Time
	updatedAt     time.Time
	isIssued      bool

	guard guard.ConstructorGuard
}

// NewPackage wraps already claimed codes of one user into a package.
func NewPackage(
	barcode Barcode,
	userID kernel.UUID,
	codes []*trackcode.TrackCode,
	extraditionID *int64,
	comment string,
	now time.Time,
) (*Package, error) {
	if barcode.IsZero() {
		return nil, errs.NewValueIsRequiredError("barcode")
	}
	if err := userID.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("user", err)
	}
	if len(codes) == 0 {
		return nil, ErrEmptyPackage
	}

	items := make([]PackageItem, 0, len(codes))
	for _, tc := range codes {
		if err := tc.Validate(); err != nil {
			return nil, err
		}
		if !tc.IsOwnedBy(userID) {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				"track code", fmt.Errorf("%s does not belong to %s", tc.Code(), userID),
			)
		}
		if tc.Status() != trackcode.Claimed {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				"track code", fmt.Errorf("%s is %s, expected %s", tc.Code(), tc.Status(), trackcode.Claimed),
			)
		}
		items = append(items, PackageItem{TrackCodeID: tc.ID(), Code: tc.Code()})
	}

	return &Package{
		barcode:       barcode,
		userID:        userID,
		extraditionID: extraditionID,
		items:         items,
		comment:       strings.TrimSpace(comment),
		createdAt:     now,
		updatedAt:     now,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// RestorePackage rebuilds a persisted package.
func RestorePackage(
	id int64,
	barcode Barcode,
	userID kernel.UUID,
	extraditionID *int64,
	items []PackageItem,
	comment string,
	createdAt time.Time,
	updatedAt time.Time,
	isIssued bool,
) (*Package, error) {
	if barcode.IsZero() {
		return nil, errs.NewValueIsRequiredError("barcode")
	}
	if err := userID.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("user", err)
	}

	return &Package{
		id:            id,
		barcode:       barcode,
		userID:        userID,
		extraditionID: extraditionID,
		items:         items,
		comment:       comment,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isIssued:      isIssued,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the package was created through NewPackage or RestorePackage.
func (p *Package) Validate() error {
	if p == nil {
		return ErrPackageIsNotConstructed
	}
	return p.guard.Validate(ErrPackageIsNotConstructed)
}

// Issue marks the package as handed over. Repeated calls are no-ops.
func (p *Package) Issue(now time.Time) {
	if p.isIssued {
		return
	}
	p.isIssued = true
	p.updatedAt = now
}

// WithBarcode returns a copy carrying another barcode. Used when the store
// rejected the previous barcode before the package was ever persisted.
func (p *Package) WithBarcode(barcode Barcode) *Package {
	clone := *p
	clone.barcode = barcode
	clone.items = p.Items()
	return &clone
}

// ID returns the database identifier, 0 until stored.
func (p *Package) ID() int64 { return p.id }

// AssignID is called by the repository once the store generated the identifier.
func (p *Package) AssignID(id int64) { p.id = id }

// Barcode returns the label printed on the package.
func (p *Package) Barcode() Barcode { return p.barcode }

// User returns the customer the package is for.
func (p *Package) User() kernel.UUID { return p.userID }

// ExtraditionID returns the handover the package belongs to.
// Returns nil for packages issued in bulk.
func (p *Package) ExtraditionID() *int64 { return p.extraditionID }

// Comment returns the operator note.
func (p *Package) Comment() string { return p.comment }

// CreatedAt returns when the package was built.
func (p *Package) CreatedAt() time.Time { return p.createdAt }

// UpdatedAt returns the time of the last change, e.g. Issue.
func (p *Package) UpdatedAt() time.Time { return p.updatedAt }

// IsIssued reports whether the package left the warehouse.
func (p *Package) IsIssued() bool { return p.isIssued }

// Items returns a copy of the held track codes.
func (p *Package) Items() []PackageItem {
	items := make([]PackageItem, len(p.items))
	copy(items, p.items)
	return items
}
