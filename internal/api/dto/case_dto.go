package dto

import "github.com/adhikarnow/legal-service/internal/domain"

// CaseResponse is the case record returned to the tracking page. The
// snake_case keys are the wire contract the frontend reads.
type CaseResponse struct {
	ID               int64                  `json:"id"`
	CaseID           string                 `json:"case_id"`
	Subject          string                 `json:"subject"`
	AssignedAdvocate string                 `json:"assigned_advocate"`
	UserID           *int64                 `json:"user_id"`
	Timeline         []domain.TimelineStage `json:"timeline"`
}

// NewCaseResponse maps a domain case onto the wire shape.
func NewCaseResponse(record *domain.Case) CaseResponse {
	return CaseResponse{
		ID:               record.ID,
		CaseID:           record.CaseCode,
		Subject:          record.Subject,
		AssignedAdvocate: record.AssignedAdvocate,
		UserID:           record.AccountID,
		Timeline:         record.Timeline,
	}
}
