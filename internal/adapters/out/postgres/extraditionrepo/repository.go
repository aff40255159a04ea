package extraditionrepo

import (
	"context"
	"errors"
	"fmt"

	"cargo/internal/adapters/out/postgres/pgerr"
	"cargo/internal/core/domain/model/extradition"
	"cargo/internal/core/ports"
	"cargo/internal/pkg/errs"

	"gorm.io/gorm"
)

const uniqueBarcodeIndex = "uq_extradition_packages_barcode"

// GormExtraditionRepository implements ports.ExtraditionRepository using GORM.
type GormExtraditionRepository struct {
	db *gorm.DB
}

// NewGormExtraditionRepository creates a new GORM extradition repository.
func NewGormExtraditionRepository(db *gorm.DB) *GormExtraditionRepository {
	return &GormExtraditionRepository{db: db}
}

// AddExtradition saves a handover record and assigns its id.
func (r *GormExtraditionRepository) AddExtradition(ctx context.Context, e *extradition.Extradition) error {
	if err := e.Validate(); err != nil {
		return err
	}

	dto := extraditionFromDomain(e)
	if err := r.db.WithContext(ctx).Omit("ID").Create(&dto).Error; err != nil {
		return err
	}

	e.AssignID(dto.ID)
	return nil
}

// AddPackage inserts the package row first so a taken barcode fails before
// any link is written. The caller owns the savepoint to recover from it.
func (r *GormExtraditionRepository) AddPackage(ctx context.Context, p *extradition.Package) error {
	if err := p.Validate(); err != nil {
		return err
	}

	db := r.db.WithContext(ctx)
	dto := packageFromDomain(p)
	if err := db.Omit("ID").Create(&dto).Error; err != nil {
		if pgerr.IsUniqueViolation(err, uniqueBarcodeIndex) {
			return fmt.Errorf("%s: %w", dto.Barcode, ports.ErrBarcodeCollision)
		}
		return err
	}

	links := linksFromDomain(dto.ID, p.Items())
	if len(links) > 0 {
		if err := db.Create(&links).Error; err != nil {
			return err
		}
	}

	p.AssignID(dto.ID)
	return nil
}

// GetExtradition retrieves a handover by id.
func (r *GormExtraditionRepository) GetExtradition(ctx context.Context, id int64) (*extradition.Extradition, error) {
	var dto ExtraditionDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("extradition", id)
		}
		return nil, err
	}
	return extraditionToDomain(dto)
}

// GetPackageByBarcode retrieves a package with its codes.
func (r *GormExtraditionRepository) GetPackageByBarcode(
	ctx context.Context,
	barcode extradition.Barcode,
) (*extradition.Package, error) {
	db := r.db.WithContext(ctx)

	var dto PackageDTO
	if err := db.First(&dto, "barcode = ?", barcode.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("package", barcode.String())
		}
		return nil, err
	}

	var rows []packageItemRow
	err := db.Table("extradition_package_track_codes pt").
		Select("pt.track_code_id, tc.code").
		Joins("JOIN track_codes tc ON tc.id = pt.track_code_id").
		Where("pt.package_id = ?", dto.ID).
		Order("tc.code").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	return packageToDomain(dto, rows)
}

// GormBarcodeSequence draws package numbers from a database sequence, so
// numbers stay unique across processes and are never reused after a
// rollback.
type GormBarcodeSequence struct {
	db *gorm.DB
}

// PackageBarcodeSequence is created by the migrator.
const PackageBarcodeSequence = "extradition_package_barcode_seq"

// NewGormBarcodeSequence wraps the package barcode sequence.
func NewGormBarcodeSequence(db *gorm.DB) *GormBarcodeSequence {
	return &GormBarcodeSequence{db: db}
}

// NextPackageNumber calls nextval, which is never rolled back, so numbers
// may have gaps but never repeat.
func (s *GormBarcodeSequence) NextPackageNumber(ctx context.Context) (int64, error) {
	var next int64
	if err := s.db.WithContext(ctx).Raw("SELECT nextval(?::regclass)", PackageBarcodeSequence).Scan(&next).Error; err != nil {
		return 0, fmt.Errorf("next package number: %w", err)
	}
	return next, nil
}
