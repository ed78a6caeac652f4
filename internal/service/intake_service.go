package service

import (
	"context"

	"github.com/adhikarnow/legal-service/internal/domain"
	"github.com/adhikarnow/legal-service/internal/repository"
	"github.com/adhikarnow/legal-service/pkg/httperr"
)

// IntakeService accepts legal question submissions. Anonymous submission is
// a first-class path; no owning account is required.
type IntakeService struct {
	questions repository.QuestionRepository
}

// QuestionInput describes a submission payload.
type QuestionInput struct {
	Title       string
	Category    string
	Details     string
	IsAnonymous bool
	AccountID   *int64
}

// NewIntakeService builds the service.
func NewIntakeService(questions repository.QuestionRepository) *IntakeService {
	return &IntakeService{questions: questions}
}

// Submit persists a question after required-field checks. There is no
// content moderation and no read path.
func (s *IntakeService) Submit(ctx context.Context, input QuestionInput) (*domain.Question, error) {
	if input.Title == "" || input.Category == "" || input.Details == "" {
		return nil, httperr.Validation("Title, category, and details are required.")
	}

	question := &domain.Question{
		Title:       input.Title,
		Category:    input.Category,
		Details:     input.Details,
		IsAnonymous: input.IsAnonymous,
		AccountID:   input.AccountID,
	}
	if err := s.questions.Create(ctx, question); err != nil {
		return nil, httperr.Internal(err)
	}
	return question, nil
}
