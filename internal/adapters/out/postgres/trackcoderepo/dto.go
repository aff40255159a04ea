// Package trackcoderepo persists track codes.
package trackcoderepo

import (
	"time"

	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/core/domain/model/trackcode"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TrackCodeDTO stores the status by its string code so the column stays
// readable and survives reordering of the Go enum.
type TrackCodeDTO struct {
	ID          int64               `gorm:"primaryKey;autoIncrement"`
	Code        string              `gorm:"type:varchar(100);not null;uniqueIndex:uq_track_codes_code"`
	Status      string              `gorm:"type:varchar(20);not null;index:idx_track_codes_owner_status,priority:2"`
	OwnerID     uuid.UUID           `gorm:"type:uuid;not null;index:idx_track_codes_owner_status,priority:1"`
	Description string              `gorm:"type:text;not null;default:''"`
	Weight      decimal.NullDecimal `gorm:"type:numeric(6,3)"`
	UpdatedAt   time.Time           `gorm:"not null;autoUpdateTime:false;index"`
}

func (TrackCodeDTO) TableName() string {
	return "track_codes"
}

func fromDomain(tc *trackcode.TrackCode) TrackCodeDTO {
	var weight decimal.NullDecimal
	if w := tc.Weight(); w != nil {
		weight = decimal.NewNullDecimal(w.Decimal())
	}

	return TrackCodeDTO{
		ID:          tc.ID(),
		Code:        tc.Code(),
		Status:      tc.Status().String(),
		OwnerID:     tc.Owner().Bytes(),
		Description: tc.Description(),
		Weight:      weight,
		UpdatedAt:   tc.UpdatedAt(),
	}
}

func toDomain(dto TrackCodeDTO) (*trackcode.TrackCode, error) {
	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	status, err := trackcode.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	var weight *kernel.Weight
	if dto.Weight.Valid {
		w, weightErr := kernel.NewWeight(dto.Weight.Decimal)
		if weightErr != nil {
			return nil, weightErr
		}
		weight = &w
	}

	return trackcode.RestoreTrackCode(dto.ID, dto.Code, status, ownerID, dto.Description, weight, dto.UpdatedAt)
}

func toDomainList(dtos []TrackCodeDTO) ([]*trackcode.TrackCode, error) {
	codes := make([]*trackcode.TrackCode, 0, len(dtos))
	for _, dto := range dtos {
		tc, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		codes = append(codes, tc)
	}
	return codes, nil
}
