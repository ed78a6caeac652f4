package domain

import "time"

// Question is a free-form legal question submitted for intake. Submissions
// are write-only: no exposed operation reads them back.
type Question struct {
	ID          int64
	Title       string
	Category    string
	Details     string
	IsAnonymous bool
	AccountID   *int64
	CreatedAt   time.Time
}
