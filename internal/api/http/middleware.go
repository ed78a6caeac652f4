package http

import (
	"context"
	"errors"
	"runtime/debug"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"go.uber.org/zap"

	"github.com/adhikarnow/legal-service/internal/observability"
	"github.com/adhikarnow/legal-service/pkg/httperr"
)

// RegisterMiddlewares attaches global middlewares such as CORS, error
// handling and logging.
func RegisterMiddlewares(app *fiber.App, logger *zap.Logger, metrics *observability.Metrics, timeout time.Duration) {
	app.Use(cors.New())
	if timeout > 0 {
		app.Use(requestTimeoutMiddleware(timeout))
	}
	app.Use(observability.RequestLogger(logger, metrics))
	app.Use(errorHandlingMiddleware(logger, metrics))
}

func requestTimeoutMiddleware(timeout time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), timeout)
		defer cancel()
		c.SetUserContext(ctx)
		return c.Next()
	}
}

// errorHandlingMiddleware renders every failure as {"error": message} with
// the taxonomy status code.
func errorHandlingMiddleware(logger *zap.Logger, metrics *observability.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic recovered", zap.Any("panic", r), zap.ByteString("stack", debug.Stack()))
				err = httperr.Internal(nil)
			}
			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) {
				// router-level errors such as 404 for unmatched paths
				c.Status(fiberErr.Code)
				_ = c.JSON(fiber.Map{"error": fiberErr.Message})
				err = nil
				return
			}
			if err != nil {
				appErr := httperr.From(err)
				metrics.RecordError(c.Path(), c.Method(), appErr.Code)
				if appErr.Status >= 500 {
					logger.Error("request failed", zap.Error(appErr))
				}
				c.Status(appErr.Status)
				_ = c.JSON(fiber.Map{"error": appErr.Message})
				err = nil
			}
		}()
		return c.Next()
	}
}
