package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/docketwatch/docket-api/internal/models"
)

// DocketRepository persists docket records.
type DocketRepository struct {
	db *sqlx.DB
}

// NewDocketRepository constructs the repository.
func NewDocketRepository(db *sqlx.DB) *DocketRepository {
	return &DocketRepository{db: db}
}

// Upsert inserts or refreshes a docket record keyed on the docket string.
func (r *DocketRepository) Upsert(ctx context.Context, rec *models.DocketRecord) error {
	const query = `INSERT INTO dockets (term, number, kind, docket_str, case_type, case_name, current_status, raw, flags, updated_at)
VALUES (:term, :number, :kind, :docket_str, :case_type, :case_name, :current_status, :raw, :flags, :updated_at)
ON CONFLICT (docket_str)
DO UPDATE SET case_type = EXCLUDED.case_type, case_name = EXCLUDED.case_name,
              current_status = EXCLUDED.current_status, raw = EXCLUDED.raw,
              flags = EXCLUDED.flags, updated_at = EXCLUDED.updated_at`
	rec.UpdatedAt = time.Now().UTC()
	if _, err := r.db.NamedExecContext(ctx, query, rec); err != nil {
		return fmt.Errorf("upsert docket: %w", err)
	}
	return nil
}

// FindByDocketStr fetches one docket record.
func (r *DocketRepository) FindByDocketStr(ctx context.Context, docketStr string) (*models.DocketRecord, error) {
	const query = `SELECT id, term, number, kind, docket_str, case_type, case_name, current_status, raw, flags, updated_at
FROM dockets WHERE docket_str = $1`
	var rec models.DocketRecord
	if err := r.db.GetContext(ctx, &rec, query, docketStr); err != nil {
		return nil, err
	}
	return &rec, nil
}

// ListByTerm returns every docket record of a term in numeric order.
func (r *DocketRepository) ListByTerm(ctx context.Context, term int) ([]models.DocketRecord, error) {
	const query = `SELECT id, term, number, kind, docket_str, case_type, case_name, current_status, raw, flags, updated_at
FROM dockets WHERE term = $1 ORDER BY number ASC`
	var recs []models.DocketRecord
	if err := r.db.SelectContext(ctx, &recs, query, term); err != nil {
		return nil, fmt.Errorf("list dockets: %w", err)
	}
	return recs, nil
}
