package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	httptransport "github.com/adhikarnow/legal-service/internal/api/http"
	"github.com/adhikarnow/legal-service/internal/api/http/handlers"
	"github.com/adhikarnow/legal-service/internal/config"
	"github.com/adhikarnow/legal-service/internal/observability"
	"github.com/adhikarnow/legal-service/internal/persistence"
	"github.com/adhikarnow/legal-service/internal/repository"
	"github.com/adhikarnow/legal-service/internal/service"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	store, err := persistence.NewSQLite(config.SQLiteConfig{
		Path:          filepath.Join(t.TempDir(), "test.db"),
		BusyTimeoutMS: 5000,
	}, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(store.Close)

	ctx := context.Background()
	require.NoError(t, persistence.RunMigrations(ctx, store.DB, zap.NewNop()))
	require.NoError(t, persistence.Seed(ctx, store.DB, zap.NewNop()))

	authCfg := config.AuthConfig{JWTSecret: "test-secret", AccessTokenTTLMinutes: 60, BcryptCost: 4}
	accountService := service.NewAccountService(authCfg, repository.NewAccountRepository(store.DB))
	intakeService := service.NewIntakeService(repository.NewQuestionRepository(store.DB))
	caseService := service.NewCaseService(repository.NewCaseRepository(store.DB))
	noticeService := service.NewNoticeService(nil)

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, zap.NewNop(), observability.NewMetrics(), 5*time.Second)
	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:    handlers.NewHealthHandler("legal-service", "test", store),
		Accounts:  handlers.NewAccountsHandler(accountService),
		Questions: handlers.NewQuestionsHandler(intakeService),
		Cases:     handlers.NewCasesHandler(caseService),
		Notices:   handlers.NewNoticesHandler(noticeService),
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (*http.Response, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var decoded map[string]any
	if strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json") {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	}
	return resp, decoded
}

func TestWelcome(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)
	resp, body := doJSON(t, app, http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "Welcome to the AdhikarNOW Backend API!", body["message"])
}

func TestSignupAndLoginFlow(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)

	resp, body := doJSON(t, app, http.MethodPost, "/api/signup",
		map[string]any{"name": "A", "email": "a@x.com", "password": "p"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.Equal(t, "User created successfully!", body["message"])
	userID := body["userId"]
	require.NotNil(t, userID)
	auth, ok := body["auth"].(map[string]any)
	require.True(t, ok)
	require.NotEmpty(t, auth["token"])

	resp, body = doJSON(t, app, http.MethodPost, "/api/login",
		map[string]any{"email": "a@x.com", "password": "wrong"})
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	require.Equal(t, "Incorrect email or password.", body["error"])

	resp, body = doJSON(t, app, http.MethodPost, "/api/login",
		map[string]any{"email": "nobody@x.com", "password": "p"})
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	require.Equal(t, "Incorrect email or password.", body["error"])

	resp, body = doJSON(t, app, http.MethodPost, "/api/login",
		map[string]any{"email": "a@x.com", "password": "p"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "Login successful!", body["message"])
	user, ok := body["user"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "A", user["name"])
	require.Equal(t, userID, user["id"])
}

func TestSignup_Failures(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)

	resp, body := doJSON(t, app, http.MethodPost, "/api/signup",
		map[string]any{"name": "A", "email": "", "password": "p"})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Equal(t, "Name, email, and password are required.", body["error"])

	resp, _ = doJSON(t, app, http.MethodPost, "/api/signup",
		map[string]any{"name": "A", "email": "a@x.com", "password": "p"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body = doJSON(t, app, http.MethodPost, "/api/signup",
		map[string]any{"name": "B", "email": "a@x.com", "password": "q"})
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	require.Equal(t, "This email address is already registered.", body["error"])
}

func TestSubmitQuestion(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)

	resp, body := doJSON(t, app, http.MethodPost, "/api/questions",
		map[string]any{"title": "t", "category": "c", "details": "d", "isAnonymous": true})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.Equal(t, "Question submitted successfully!", body["message"])
	require.NotNil(t, body["questionId"])

	resp, body = doJSON(t, app, http.MethodPost, "/api/questions",
		map[string]any{"title": "t", "category": "", "details": "d"})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Equal(t, "Title, category, and details are required.", body["error"])
}

func TestGetCase(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)

	resp, body := doJSON(t, app, http.MethodGet, "/api/case/ANOW-12345", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "ANOW-12345", body["case_id"])
	require.Equal(t, "Tenant Eviction Notice", body["subject"])
	require.Equal(t, "Adv. Arjun Mehta", body["assigned_advocate"])

	timeline, ok := body["timeline"].([]any)
	require.True(t, ok)
	require.Len(t, timeline, 3)
	var completed int
	for _, raw := range timeline {
		stage, ok := raw.(map[string]any)
		require.True(t, ok)
		if stage["completed"] == true {
			completed++
		}
	}
	require.Equal(t, 2, completed)

	resp, body = doJSON(t, app, http.MethodGet, "/api/case/ANOW-00000", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.Equal(t, "Case not found.", body["error"])
}

func TestGenerateNotice(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)

	resp, _ := doJSON(t, app, http.MethodPost, "/api/generate-notice",
		map[string]any{"senderName": "Ravi Kumar", "amount": "50,000"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	disposition := resp.Header.Get("Content-Disposition")
	require.Regexp(t, `^attachment; filename=Legal_Notice_\d+\.pdf$`, disposition)

	pdf, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(pdf, []byte("%PDF")))
}

func TestGenerateNotice_EmptyBody(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)

	// no fields at all still yields a document
	req := httptest.NewRequest(http.MethodPost, "/api/generate-notice", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	pdf, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(pdf, []byte("%PDF")))
}

func TestHealth(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)

	resp, body := doJSON(t, app, http.MethodGet, "/health/live", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "alive", body["status"])

	resp, body = doJSON(t, app, http.MethodGet, "/health/ready", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "ready", body["status"])
}
