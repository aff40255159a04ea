// Package extraditionrepo persists handovers, issued packages and the
// package barcode sequence.
package extraditionrepo

import (
	"time"

	"cargo/internal/core/domain/model/extradition"
	"cargo/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ExtraditionDTO is the extraditions row.
type ExtraditionDTO struct {
	ID          int64      `gorm:"primaryKey;autoIncrement"`
	UserID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	ReceiptID   *int64     `gorm:"index"`
	PickupPoint string     `gorm:"type:varchar(100);not null"`
	IssuedBy    *uuid.UUID `gorm:"type:uuid"`
	Confirmed   bool       `gorm:"not null"`
	Comment     string     `gorm:"type:text;not null;default:''"`
	CreatedAt   time.Time  `gorm:"not null;index"`
}

func (ExtraditionDTO) TableName() string {
	return "extraditions"
}

// PackageDTO is the extradition_packages row.
type PackageDTO struct {
	ID            int64     `gorm:"primaryKey;autoIncrement"`
	Barcode       string    `gorm:"type:varchar(32);not null;uniqueIndex:uq_extradition_packages_barcode"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;index"`
	ExtraditionID *int64    `gorm:"index"`
	Comment       string    `gorm:"type:text;not null;default:''"`
	IsIssued      bool      `gorm:"not null"`
	CreatedAt     time.Time `gorm:"not null;index"`
	UpdatedAt     time.Time `gorm:"not null;autoUpdateTime:false"`
}

func (PackageDTO) TableName() string {
	return "extradition_packages"
}

// PackageTrackCodeDTO is the many-to-many link between packages and codes.
type PackageTrackCodeDTO struct {
	PackageID   int64 `gorm:"primaryKey;autoIncrement:false"`
	TrackCodeID int64 `gorm:"primaryKey;autoIncrement:false;index"`
}

func (PackageTrackCodeDTO) TableName() string {
	return "extradition_package_track_codes"
}

func extraditionFromDomain(e *extradition.Extradition) ExtraditionDTO {
	var issuedBy *uuid.UUID
	if id := e.IssuedBy(); id != nil {
		raw := id.Bytes()
		issuedBy = &raw
	}

	return ExtraditionDTO{
		ID:          e.ID(),
		UserID:      e.Recipient().Bytes(),
		ReceiptID:   e.ReceiptID(),
		PickupPoint: e.PickupPoint(),
		IssuedBy:    issuedBy,
		Confirmed:   e.IsConfirmed(),
		Comment:     e.Comment(),
		CreatedAt:   e.CreatedAt(),
	}
}

func extraditionToDomain(dto ExtraditionDTO) (*extradition.Extradition, error) {
	recipient, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	var issuedBy *kernel.UUID
	if dto.IssuedBy != nil {
		operator, operatorErr := kernel.UUIDFromBytes((*dto.IssuedBy)[:])
		if operatorErr != nil {
			return nil, operatorErr
		}
		issuedBy = &operator
	}

	return extradition.RestoreExtradition(
		dto.ID, recipient, dto.ReceiptID, dto.PickupPoint, issuedBy, dto.Confirmed, dto.Comment, dto.CreatedAt,
	)
}

func packageFromDomain(p *extradition.Package) PackageDTO {
	return PackageDTO{
		ID:            p.ID(),
		Barcode:       p.Barcode().String(),
		UserID:        p.User().Bytes(),
		ExtraditionID: p.ExtraditionID(),
		Comment:       p.Comment(),
		IsIssued:      p.IsIssued(),
		CreatedAt:     p.CreatedAt(),
		UpdatedAt:     p.UpdatedAt(),
	}
}

func linksFromDomain(packageID int64, items []extradition.PackageItem) []PackageTrackCodeDTO {
	links := make([]PackageTrackCodeDTO, 0, len(items))
	for _, item := range items {
		links = append(links, PackageTrackCodeDTO{PackageID: packageID, TrackCodeID: item.TrackCodeID})
	}
	return links
}

// packageItemRow is a link joined with the code value.
type packageItemRow struct {
	TrackCodeID int64
	Code        string
}

func packageToDomain(dto PackageDTO, rows []packageItemRow) (*extradition.Package, error) {
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	barcode, err := extradition.ParseBarcode(dto.Barcode)
	if err != nil {
		return nil, err
	}

	items := make([]extradition.PackageItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, extradition.PackageItem{TrackCodeID: row.TrackCodeID, Code: row.Code})
	}

	return extradition.RestorePackage(
		dto.ID, barcode, userID, dto.ExtraditionID, items, dto.Comment, dto.CreatedAt, dto.UpdatedAt, dto.IsIssued,
	)
}
