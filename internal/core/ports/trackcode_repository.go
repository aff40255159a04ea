// Package ports defines the contracts between the parcel domain and its
// infrastructure: repositories, the barcode sequence, the user directory and
// the notification sink.
package ports

import (
	"context"
	"time"

	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/core/domain/model/trackcode"
)

// TrackCodeRepository persists track codes.
//
// Lock* methods take row locks (SELECT ... FOR UPDATE) that are held until
// the surrounding transaction ends, so they must run inside a unit of work.
type TrackCodeRepository interface {
	// Add inserts a new code. Returns ErrTrackCodeExists on duplicates.
	Add(ctx context.Context, tc *trackcode.TrackCode) error

	// Update writes status, weight, description and updated_at.
	Update(ctx context.Context, tc *trackcode.TrackCode) error

	// UpdateStatuses writes status and updated_at of many codes in as few
	// statements as possible.
	UpdateStatuses(ctx context.Context, codes []*trackcode.TrackCode) error

	Get(ctx context.Context, id int64) (*trackcode.TrackCode, error)

	// LockByCode loads a code by its value and locks it.
	LockByCode(ctx context.Context, code string) (*trackcode.TrackCode, error)

	// LockBillable locks the owner's delivered or ready codes that no receipt
	// has billed yet and that were last updated at or before asOf.
	LockBillable(ctx context.Context, ownerID kernel.UUID, asOf time.Time) ([]*trackcode.TrackCode, error)

	// LockReady locks the owner's codes waiting at the pickup point.
	LockReady(ctx context.Context, ownerID kernel.UUID) ([]*trackcode.TrackCode, error)
}
