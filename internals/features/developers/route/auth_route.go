// internals/features/developers/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"quizku_backend/internals/configs"
	developerController "quizku_backend/internals/features/developers/controller"
	authMiddleware "quizku_backend/internals/middlewares/auth"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	authCtrl := developerController.NewAuthController(db)
	keyCtrl := developerController.NewApiKeyController(db)

	auth := app.Group("/auth")
	auth.Post("/register", authCtrl.Register)
	auth.Post("/login", authCtrl.Login)

	// pembuatan API key butuh identitas developer (management plane)
	auth.Post("/api-keys",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{Secret: configs.JWTSecret}),
		keyCtrl.CreateApiKey,
	)
}
