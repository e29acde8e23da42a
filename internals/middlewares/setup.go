package middlewares

import (
	"github.com/gofiber/fiber/v2"

	logger "schoolku_backend/internals/middlewares/logger"
)

// SetupMiddlewares memasang middleware dasar yang dipakai semua route.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
