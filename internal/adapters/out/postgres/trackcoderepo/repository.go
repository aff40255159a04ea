package trackcoderepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cargo/internal/adapters/out/postgres/pgerr"
	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/core/domain/model/trackcode"
	"cargo/internal/core/ports"
	"cargo/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const uniqueCodeIndex = "uq_track_codes_code"

// notBilled excludes codes that already have a receipt item.
const notBilled = "NOT EXISTS (SELECT 1 FROM receipt_items ri WHERE ri.track_code_id = track_codes.id)"

// GormTrackCodeRepository implements ports.TrackCodeRepository using GORM.
type GormTrackCodeRepository struct {
	db *gorm.DB
}

// NewGormTrackCodeRepository creates a repository on db, usually a transaction.
func NewGormTrackCodeRepository(db *gorm.DB) *GormTrackCodeRepository {
	return &GormTrackCodeRepository{db: db}
}

// Add inserts a new code and assigns the generated id.
func (r *GormTrackCodeRepository) Add(ctx context.Context, tc *trackcode.TrackCode) error {
	if err := tc.Validate(); err != nil {
		return err
	}

	dto := fromDomain(tc)
	if err := r.db.WithContext(ctx).Omit("ID").Create(&dto).Error; err != nil {
		if pgerr.IsUniqueViolation(err, uniqueCodeIndex) {
			return fmt.Errorf("%s: %w", tc.Code(), ports.ErrTrackCodeExists)
		}
		return err
	}

	tc.AssignID(dto.ID)
	return nil
}

// Update writes the mutable columns of an existing code.
func (r *GormTrackCodeRepository) Update(ctx context.Context, tc *trackcode.TrackCode) error {
	if err := tc.Validate(); err != nil {
		return err
	}

	dto := fromDomain(tc)
	result := r.db.WithContext(ctx).
		Model(&TrackCodeDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"status":      dto.Status,
			"description": dto.Description,
			"weight":      dto.Weight,
			"updated_at":  dto.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("track code", dto.ID)
	}
	return nil
}

type statusChange struct {
	status    string
	updatedAt time.Time
}

// UpdateStatuses issues one UPDATE per distinct (status, updated_at) pair,
// which is a single statement for a bulk claim.
func (r *GormTrackCodeRepository) UpdateStatuses(ctx context.Context, codes []*trackcode.TrackCode) error {
	groups := make(map[statusChange][]int64)
	order := make([]statusChange, 0, 1)
	for _, tc := range codes {
		if err := tc.Validate(); err != nil {
			return err
		}
		key := statusChange{status: tc.Status().String(), updatedAt: tc.UpdatedAt()}
		if _, ok := groups[key]; !ok {
			order = append(order, key)
		}
		groups[key] = append(groups[key], tc.ID())
	}

	for _, key := range order {
		ids := groups[key]
		result := r.db.WithContext(ctx).
			Model(&TrackCodeDTO{}).
			Where("id = ANY(?)", pq.Array(ids)).
			Updates(map[string]any{
				"status":     key.status,
				"updated_at": key.updatedAt,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected != int64(len(ids)) {
			return errs.NewObjectNotFoundError("track code", fmt.Sprintf("%d of %d", int64(len(ids))-result.RowsAffected, len(ids)))
		}
	}
	return nil
}

// Get loads a code by id without locking it.
func (r *GormTrackCodeRepository) Get(ctx context.Context, id int64) (*trackcode.TrackCode, error) {
	var dto TrackCodeDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("track code", id)
		}
		return nil, err
	}
	return toDomain(dto)
}

// LockByCode loads the code and holds its row lock until the transaction ends.
func (r *GormTrackCodeRepository) LockByCode(ctx context.Context, code string) (*trackcode.TrackCode, error) {
	var dto TrackCodeDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "code = ?", code).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("track code", code)
		}
		return nil, err
	}
	return toDomain(dto)
}

// LockBillable selects the owner's billable codes FOR UPDATE, so two
// concurrent receipts cannot claim the same code.
func (r *GormTrackCodeRepository) LockBillable(ctx context.Context, ownerID kernel.UUID, asOf time.Time) ([]*trackcode.TrackCode, error) {
	if err := ownerID.Validate(); err != nil {
		return nil, err
	}

	var dtos []TrackCodeDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("owner_id = ? AND status IN ? AND updated_at <= ?",
			ownerID.Bytes(),
			[]string{trackcode.Delivered.String(), trackcode.Ready.String()},
			asOf,
		).
		Where(notBilled).
		Order("id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}
	return toDomainList(dtos)
}

// LockReady selects the owner's ready codes FOR UPDATE.
func (r *GormTrackCodeRepository) LockReady(ctx context.Context, ownerID kernel.UUID) ([]*trackcode.TrackCode, error) {
	if err := ownerID.Validate(); err != nil {
		return nil, err
	}

	var dtos []TrackCodeDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("owner_id = ? AND status = ?", ownerID.Bytes(), trackcode.Ready.String()).
		Order("id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}
	return toDomainList(dtos)
}
