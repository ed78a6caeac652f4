package repository

import (
	"context"
	"database/sql"

	"github.com/adhikarnow/legal-service/internal/domain"
)

// QuestionRepository defines persistence access for question intake.
// Questions are write-only at this layer as well: nothing reads them back.
type QuestionRepository interface {
	Create(ctx context.Context, question *domain.Question) error
}

type questionRepository struct {
	db *sql.DB
}

// NewQuestionRepository returns a SQLite-backed implementation.
func NewQuestionRepository(db *sql.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) Create(ctx context.Context, question *domain.Question) error {
	const query = `
        INSERT INTO questions (title, category, details, is_anonymous, account_id)
        VALUES (?, ?, ?, ?, ?)`

	res, err := r.db.ExecContext(ctx, query,
		question.Title,
		question.Category,
		question.Details,
		question.IsAnonymous,
		question.AccountID,
	)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	question.ID = id
	return nil
}
