package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/adhikarnow/legal-service/internal/api/http/handlers"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health    *handlers.HealthHandler
	Accounts  *handlers.AccountsHandler
	Questions *handlers.QuestionsHandler
	Cases     *handlers.CasesHandler
	Notices   *handlers.NoticesHandler
	// StaticDir serves the tracking page when non-empty.
	StaticDir string
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/", cfg.Health.Welcome)
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api")
	api.Post("/signup", cfg.Accounts.Signup)
	api.Post("/login", cfg.Accounts.Login)
	api.Post("/questions", cfg.Questions.Submit)
	api.Get("/case/:caseId", cfg.Cases.Get)
	api.Post("/generate-notice", cfg.Notices.Generate)

	if cfg.StaticDir != "" {
		app.Static("/track", cfg.StaticDir)
	}
}
