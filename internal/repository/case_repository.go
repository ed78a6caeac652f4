package repository

import (
	"context"
	"database/sql"

	"github.com/adhikarnow/legal-service/internal/domain"
)

// CaseRepository defines persistence access for case records.
type CaseRepository interface {
	GetByCode(ctx context.Context, caseCode string) (*domain.Case, error)
}

type caseRepository struct {
	db *sql.DB
}

// NewCaseRepository returns a SQLite-backed implementation.
func NewCaseRepository(db *sql.DB) CaseRepository {
	return &caseRepository{db: db}
}

// GetByCode looks up a case by its public case code. The timeline comes back
// raw; decoding is the case service's job.
func (r *caseRepository) GetByCode(ctx context.Context, caseCode string) (*domain.Case, error) {
	const query = `
        SELECT id, case_code, subject, assigned_advocate, account_id, timeline, created_at
        FROM cases WHERE case_code = ?`

	var (
		record    domain.Case
		accountID sql.NullInt64
		timeline  []byte
	)
	if err := r.db.QueryRowContext(ctx, query, caseCode).Scan(
		&record.ID,
		&record.CaseCode,
		&record.Subject,
		&record.AssignedAdvocate,
		&accountID,
		&timeline,
		&record.CreatedAt,
	); err != nil {
		return nil, err
	}
	if accountID.Valid {
		record.AccountID = &accountID.Int64
	}
	record.TimelineRaw = timeline
	return &record, nil
}
