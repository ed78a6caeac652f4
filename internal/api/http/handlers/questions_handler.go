package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/adhikarnow/legal-service/internal/api/dto"
	"github.com/adhikarnow/legal-service/internal/service"
	"github.com/adhikarnow/legal-service/pkg/httperr"
)

// QuestionsHandler exposes the question intake endpoint.
type QuestionsHandler struct {
	intake *service.IntakeService
}

// NewQuestionsHandler constructs handler.
func NewQuestionsHandler(intakeService *service.IntakeService) *QuestionsHandler {
	return &QuestionsHandler{intake: intakeService}
}

// Submit handles POST /api/questions.
func (h *QuestionsHandler) Submit(c *fiber.Ctx) error {
	var req dto.SubmitQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return httperr.Validation("Invalid request body.")
	}

	question, err := h.intake.Submit(c.UserContext(), service.QuestionInput{
		Title:       req.Title,
		Category:    req.Category,
		Details:     req.Details,
		IsAnonymous: req.IsAnonymous,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message":    "Question submitted successfully!",
		"questionId": question.ID,
	})
}
