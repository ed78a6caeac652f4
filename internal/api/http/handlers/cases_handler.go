package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/adhikarnow/legal-service/internal/api/dto"
	"github.com/adhikarnow/legal-service/internal/service"
)

// CasesHandler exposes public case lookup.
type CasesHandler struct {
	cases *service.CaseService
}

// NewCasesHandler constructs handler.
func NewCasesHandler(caseService *service.CaseService) *CasesHandler {
	return &CasesHandler{cases: caseService}
}

// Get handles GET /api/case/:caseId.
func (h *CasesHandler) Get(c *fiber.Ctx) error {
	record, err := h.cases.Lookup(c.UserContext(), c.Params("caseId"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewCaseResponse(record))
}
