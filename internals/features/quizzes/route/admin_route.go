// internals/features/quizzes/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"

	quizController "quizku_backend/internals/features/quizzes/controller"
	"quizku_backend/internals/features/quizzes/repository"
)

// Management plane. requireBearer dipasang per route karena path-nya
// tumpang tindih dengan consumption plane (beda method, beda kredensial).
func QuizAdminRoutes(app *fiber.App, store repository.Store, requireBearer fiber.Handler) {
	quizCtrl := quizController.NewQuizAdminController(store)
	catCtrl := quizController.NewCategoryController(store)

	app.Post("/quizzes", requireBearer, quizCtrl.CreateQuiz)
	app.Put("/quizzes/:id", requireBearer, quizCtrl.UpdateQuiz)
	app.Delete("/quizzes/:id", requireBearer, quizCtrl.DeleteQuiz)
	app.Post("/categories", requireBearer, catCtrl.CreateCategory)
}
