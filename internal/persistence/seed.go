package persistence

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/adhikarnow/legal-service/internal/domain"
)

// DemoCaseCode identifies the sample case available out of the box so the
// tracking page has something to show.
const DemoCaseCode = "ANOW-12345"

var demoTimeline = []domain.TimelineStage{
	{Status: "Case Filled", Date: "September 15, 2025", Icon: "fa-check", Completed: true},
	{Status: "Advocate Assigned", Date: "September 16, 2025", Icon: "fa-check", Completed: true},
	{Status: "First Consultation Held", Date: "September 18, 2025", Icon: "fa-gavel", Completed: false},
}

// Seed inserts the demo case if it is not present. The ON CONFLICT clause
// makes it safe to run on every startup.
func Seed(ctx context.Context, db *sql.DB, logger *zap.Logger) error {
	timeline, err := json.Marshal(demoTimeline)
	if err != nil {
		return fmt.Errorf("encode demo timeline: %w", err)
	}

	const query = `
        INSERT INTO cases (case_code, subject, assigned_advocate, account_id, timeline)
        VALUES (?, ?, ?, NULL, ?)
        ON CONFLICT(case_code) DO NOTHING`

	res, err := db.ExecContext(ctx, query, DemoCaseCode, "Tenant Eviction Notice", "Adv. Arjun Mehta", string(timeline))
	if err != nil {
		return fmt.Errorf("seed demo case: %w", err)
	}

	if inserted, err := res.RowsAffected(); err == nil && inserted > 0 {
		logger.Info("demo case seeded", zap.String("case_code", DemoCaseCode))
	}
	return nil
}
