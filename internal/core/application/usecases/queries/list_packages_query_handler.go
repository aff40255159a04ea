package queries

import (
	"context"

	"cargo/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// ListPackagesQueryHandler reads packages newest first.
type ListPackagesQueryHandler struct {
	db *gorm.DB
}

// NewListPackagesQueryHandler requires a GORM connection.
func NewListPackagesQueryHandler(db *gorm.DB) ListPackagesQueryHandler {
	return ListPackagesQueryHandler{db: db}
}

// Handle returns packages with their codes aggregated into one column, so a
// listing is a single round trip.
func (h ListPackagesQueryHandler) Handle(ctx context.Context, query ListPackagesQuery) ([]PackageView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			p.id,
			p.barcode,
			p.user_id,
			u.username,
			p.extradition_id,
			p.is_issued,
			p.comment,
			p.created_at,
			COALESCE(array_agg(tc.code ORDER BY tc.code) FILTER (WHERE tc.code IS NOT NULL), '{}') AS codes
		FROM extradition_packages p
		JOIN users u ON u.id = p.user_id
		LEFT JOIN extradition_package_track_codes pt ON pt.package_id = p.id
		LEFT JOIN track_codes tc ON tc.id = pt.track_code_id`
	args := make([]any, 0, 2)
	if userID := query.UserID(); userID != nil {
		sql += ` WHERE p.user_id = ?`
		args = append(args, userID.Bytes())
	}
	sql += `
		GROUP BY p.id, u.username
		ORDER BY p.created_at DESC, p.id DESC
		LIMIT ?`
	args = append(args, query.Limit())

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	packages := make([]PackageView, 0)
	for rows.Next() {
		var view PackageView
		var userID uuid.UUID
		var codes pq.StringArray

		err = rows.Scan(
			&view.ID,
			&view.Barcode,
			&userID,
			&view.Username,
			&view.ExtraditionID,
			&view.IsIssued,
			&view.Comment,
			&view.CreatedAt,
			&codes,
		)
		if err != nil {
			return nil, err
		}

		view.UserID, err = kernel.UUIDFromBytes(userID[:])
		if err != nil {
			return nil, err
		}
		view.Codes = []string(codes)
		packages = append(packages, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return packages, nil
}
