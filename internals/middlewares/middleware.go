// middlewares/middleware.go

package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"quizku_backend/internals/middlewares/logger"
)

// SetupMiddlewares memasang middleware global (CORS, logger, recovery)
func SetupMiddlewares(app *fiber.App) {
	app.Use(CorsMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(RecoveryMiddleware())
}
