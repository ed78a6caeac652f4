package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/adhikarnow/legal-service/internal/api/dto"
	"github.com/adhikarnow/legal-service/internal/service"
	"github.com/adhikarnow/legal-service/pkg/httperr"
)

// AccountsHandler exposes signup and login endpoints.
type AccountsHandler struct {
	accounts *service.AccountService
}

// NewAccountsHandler constructs handler.
func NewAccountsHandler(accountService *service.AccountService) *AccountsHandler {
	return &AccountsHandler{accounts: accountService}
}

// Signup handles POST /api/signup.
func (h *AccountsHandler) Signup(c *fiber.Ctx) error {
	var req dto.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return httperr.Validation("Invalid request body.")
	}

	account, token, expiresAt, err := h.accounts.Register(c.UserContext(), req.Name, req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message": "User created successfully!",
		"userId":  account.ID,
		"auth":    dto.AuthResponse{Token: token, ExpiresAt: expiresAt},
	})
}

// Login handles POST /api/login.
func (h *AccountsHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return httperr.Validation("Invalid request body.")
	}

	account, token, expiresAt, err := h.accounts.Authenticate(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message": "Login successful!",
		"user":    dto.UserResponse{ID: account.ID, Name: account.Name},
		"auth":    dto.AuthResponse{Token: token, ExpiresAt: expiresAt},
	})
}
