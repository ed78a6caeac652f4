package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/adhikarnow/legal-service/internal/repository"
)

func TestSubmitQuestion(t *testing.T) {
	t.Parallel()

	svc := NewIntakeService(repository.NewQuestionRepository(newTestDB(t)))
	ctx := context.Background()

	for _, anonymous := range []bool{true, false} {
		question, err := svc.Submit(ctx, QuestionInput{
			Title:       "Security deposit withheld",
			Category:    "Tenancy",
			Details:     "The landlord has not returned my deposit for 3 months.",
			IsAnonymous: anonymous,
		})
		require.NoError(t, err)
		require.NotZero(t, question.ID)
		require.Equal(t, anonymous, question.IsAnonymous)
		require.Nil(t, question.AccountID)
	}
}

func TestSubmitQuestion_Validation(t *testing.T) {
	t.Parallel()

	svc := NewIntakeService(repository.NewQuestionRepository(newTestDB(t)))
	ctx := context.Background()

	cases := []QuestionInput{
		{Title: "", Category: "Tenancy", Details: "d"},
		{Title: "t", Category: "", Details: "d"},
		{Title: "t", Category: "Tenancy", Details: ""},
	}
	for _, input := range cases {
		_, err := svc.Submit(ctx, input)
		appErr := requireStatus(t, err, http.StatusBadRequest)
		require.Equal(t, "Title, category, and details are required.", appErr.Message)
	}
}
