package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/adhikarnow/legal-service/internal/api/dto"
	"github.com/adhikarnow/legal-service/internal/notice"
	"github.com/adhikarnow/legal-service/internal/service"
)

// NoticesHandler exposes legal notice generation.
type NoticesHandler struct {
	notices *service.NoticeService
}

// NewNoticesHandler constructs handler.
func NewNoticesHandler(noticeService *service.NoticeService) *NoticesHandler {
	return &NoticesHandler{notices: noticeService}
}

// Generate handles POST /api/generate-notice.
func (h *NoticesHandler) Generate(c *fiber.Ctx) error {
	// Best-effort: an unreadable body degrades to an all-placeholder
	// notice rather than a client error.
	var req dto.GenerateNoticeRequest
	_ = c.BodyParser(&req)

	pdf, filename, err := h.notices.Generate(notice.Fields{
		SenderName:       req.SenderName,
		SenderFatherName: req.SenderFatherName,
		SenderAddress:    req.SenderAddress,
		RecipientName:    req.RecipientName,
		RecipientAddress: req.RecipientAddress,
		Reason:           req.Reason,
		Amount:           req.Amount,
	})
	if err != nil {
		return err
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s", filename))
	return c.Send(pdf)
}
