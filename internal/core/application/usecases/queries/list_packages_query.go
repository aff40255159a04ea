package queries

import (
	"errors"
	"time"

	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/pkg/errs"
	"cargo/internal/pkg/guard"
)

var ErrListPackagesQueryIsNotConstructed = errors.New(
	"ListPackagesQuery must be created via NewListPackagesQuery constructor",
)

// MaxPackagesLimit caps a single listing.
const MaxPackagesLimit = 500

// ListPackagesQuery lists issued packages, newest first, optionally for a
// single customer.
type ListPackagesQuery struct {
	userID *kernel.UUID
	limit  int

	guard guard.ConstructorGuard
}

// NewListPackagesQuery bounds limit to 1..MaxPackagesLimit. A nil userID lists
// every customer.
func NewListPackagesQuery(userID *kernel.UUID, limit int) (ListPackagesQuery, error) {
	if userID != nil {
		if err := userID.Validate(); err != nil {
			return ListPackagesQuery{}, errs.NewValueIsInvalidErrorWithCause("user", err)
		}
	}
	if limit <= 0 || limit > MaxPackagesLimit {
		return ListPackagesQuery{}, errs.NewValueIsOutOfRangeError("limit", limit, 1, MaxPackagesLimit)
	}

	return ListPackagesQuery{userID: userID, limit: limit, guard: guard.NewConstructorGuard()}, nil
}

func (q ListPackagesQuery) Validate() error {
	return q.guard.Validate(ErrListPackagesQueryIsNotConstructed)
}

func (q ListPackagesQuery) UserID() *kernel.UUID {
	return q.userID
}

func (q ListPackagesQuery) Limit() int {
	return q.limit
}

// PackageView is one package with its codes.
type PackageView struct {
	ID            int64
	Barcode       string
	UserID        kernel.UUID
	Username      string
	ExtraditionID *int64
	IsIssued      bool
	Comment       string
	CreatedAt     time.Time
	Codes         []string
}
