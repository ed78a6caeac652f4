package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/adhikarnow/legal-service/internal/api/http"
	"github.com/adhikarnow/legal-service/internal/api/http/handlers"
	"github.com/adhikarnow/legal-service/internal/config"
	"github.com/adhikarnow/legal-service/internal/observability"
	"github.com/adhikarnow/legal-service/internal/persistence"
	"github.com/adhikarnow/legal-service/internal/repository"
	"github.com/adhikarnow/legal-service/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, err := persistence.NewSQLite(cfg.SQLite, logger)
	if err != nil {
		logger.Fatal("failed to open sqlite", zap.Error(err))
	}
	defer store.Close()

	// Setup phase: schema and seed run to completion before the listener
	// starts, never interleaved with request handling.
	if cfg.SQLite.RunMigrations {
		if err := persistence.RunMigrations(ctx, store.DB, logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}
	if err := persistence.Seed(ctx, store.DB, logger); err != nil {
		logger.Fatal("failed to seed demo data", zap.Error(err))
	}

	accountRepo := repository.NewAccountRepository(store.DB)
	questionRepo := repository.NewQuestionRepository(store.DB)
	caseRepo := repository.NewCaseRepository(store.DB)

	accountService := service.NewAccountService(cfg.Auth, accountRepo)
	intakeService := service.NewIntakeService(questionRepo)
	caseService := service.NewCaseService(caseRepo)
	noticeService := service.NewNoticeService(nil)

	metrics := observability.NewMetrics()

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:    handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, store),
		Accounts:  handlers.NewAccountsHandler(accountService),
		Questions: handlers.NewQuestionsHandler(intakeService),
		Cases:     handlers.NewCasesHandler(caseService),
		Notices:   handlers.NewNoticesHandler(noticeService),
		StaticDir: "./web",
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
