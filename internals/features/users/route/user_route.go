// internals/features/users/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"

	quizRepo "quizku_backend/internals/features/quizzes/repository"
	userController "quizku_backend/internals/features/users/controller"
)

// Consumption plane (X-API-Key).
func EndUserRoutes(app *fiber.App, store quizRepo.Store, requireApiKey fiber.Handler) {
	ctrl := userController.NewEndUserController(store)

	app.Post("/users", requireApiKey, ctrl.CreateEndUser)
	app.Get("/users/:email/history", requireApiKey, ctrl.GetHistory)
}
