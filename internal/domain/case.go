package domain

import "time"

// TimelineStage is one progress entry on a case. Insertion order in the
// stored timeline is display order.
type TimelineStage struct {
	Status    string `json:"status"`
	Date      string `json:"date"`
	Icon      string `json:"icon"`
	Completed bool   `json:"completed"`
}

// Case is a tracked legal case. CaseCode is the human-shareable public
// identifier, distinct from the internal primary key.
type Case struct {
	ID               int64
	CaseCode         string
	Subject          string
	AssignedAdvocate string
	AccountID        *int64
	// TimelineRaw is the JSON blob exactly as stored; Timeline is its
	// decoded form, populated by the case service on lookup.
	TimelineRaw []byte
	Timeline    []TimelineStage
	CreatedAt   time.Time
}
