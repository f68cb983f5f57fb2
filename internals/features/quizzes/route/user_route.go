// internals/features/quizzes/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"

	quizController "quizku_backend/internals/features/quizzes/controller"
	"quizku_backend/internals/features/quizzes/repository"
)

// Consumption plane (X-API-Key).
func QuizUserRoutes(app *fiber.App, store repository.Store, requireApiKey fiber.Handler) {
	quizCtrl := quizController.NewQuizUserController(store)
	catCtrl := quizController.NewCategoryController(store)

	app.Get("/categories", requireApiKey, catCtrl.ListCategories)
	app.Get("/quizzes", requireApiKey, quizCtrl.ListQuizzes)
	// /random harus terdaftar sebelum /:id supaya tidak ketangkap param
	app.Get("/quizzes/random", requireApiKey, quizCtrl.GetRandomQuiz)
	app.Get("/quizzes/:id", requireApiKey, quizCtrl.GetQuiz)
	app.Post("/quizzes/:id/solve", requireApiKey, quizCtrl.SubmitAnswer)
}
