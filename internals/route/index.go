// internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"quizku_backend/internals/configs"
	developerRoute "quizku_backend/internals/features/developers/route"
	quizRepo "quizku_backend/internals/features/quizzes/repository"
	quizRoute "quizku_backend/internals/features/quizzes/route"
	userRoute "quizku_backend/internals/features/users/route"
	authMiddleware "quizku_backend/internals/middlewares/auth"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	store := quizRepo.NewGormStore(db)

	requireBearer := authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{Secret: configs.JWTSecret})
	requireApiKey := authMiddleware.ApiKeyAuth(db)

	// ===================== AUTH =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	developerRoute.AuthRoutes(app, db)

	// ===================== MANAGEMENT (bearer) =====================
	log.Println("[INFO] Setting up management routes...")
	quizRoute.QuizAdminRoutes(app, store, requireBearer)

	// ===================== CONSUMPTION (api key) =====================
	log.Println("[INFO] Setting up consumption routes...")
	quizRoute.QuizUserRoutes(app, store, requireApiKey)
	userRoute.EndUserRoutes(app, store, requireApiKey)
}
