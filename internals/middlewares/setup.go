package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"hrms_backend/internals/middlewares/logger"
)

// SetupMiddlewares wires the shared middleware stack
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
