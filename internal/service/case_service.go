package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/adhikarnow/legal-service/internal/domain"
	"github.com/adhikarnow/legal-service/internal/repository"
	"github.com/adhikarnow/legal-service/pkg/httperr"
)

// CaseService resolves public case codes to case records.
type CaseService struct {
	cases repository.CaseRepository
}

// NewCaseService builds the service.
func NewCaseService(cases repository.CaseRepository) *CaseService {
	return &CaseService{cases: cases}
}

// Lookup fetches a case by its public code and decodes the stored timeline.
// A malformed timeline blob is an internal error, never a silently empty
// timeline.
func (s *CaseService) Lookup(ctx context.Context, caseCode string) (*domain.Case, error) {
	record, err := s.cases.GetByCode(ctx, caseCode)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, httperr.NotFound("Case not found.")
		}
		return nil, httperr.Internal(err)
	}

	var stages []domain.TimelineStage
	if err := json.Unmarshal(record.TimelineRaw, &stages); err != nil {
		return nil, httperr.Internal(fmt.Errorf("decode timeline for case %s: %w", caseCode, err))
	}
	record.Timeline = stages
	return record, nil
}
