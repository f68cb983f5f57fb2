// internals/features/quizzes/controller/quiz_admin_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"quizku_backend/internals/features/quizzes/dto"
	"quizku_backend/internals/features/quizzes/repository"
	"quizku_backend/internals/id"
)

// QuizAdminController: operasi management plane (bearer token).
type QuizAdminController struct {
	Store repository.Store
}

func NewQuizAdminController(store repository.Store) *QuizAdminController {
	return &QuizAdminController{Store: store}
}

var validate = validator.New()

// =============================
// ➕ Create Quiz
// =============================
func (ctrl *QuizAdminController) CreateQuiz(c *fiber.Ctx) error {
	var body dto.CreateQuizRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	quiz := dto.ToQuizModel(body)
	agg, err := ctrl.Store.CreateQuiz(c.UserContext(), quiz, body.Tags)
	if err != nil {
		log.Printf("[ERROR] create quiz: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create quiz")
	}

	return c.Status(fiber.StatusCreated).JSON(dto.ToQuizResponse(agg.Quiz, agg.Tags))
}

// =============================
// ✏️ Update Quiz (partial)
// =============================
func (ctrl *QuizAdminController) UpdateQuiz(c *fiber.Ctx) error {
	quizID, err := id.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid quiz id")
	}

	var body dto.UpdateQuizRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	agg, err := ctrl.Store.UpdateQuiz(c.UserContext(), quizID, repository.UpdatePatch{
		Title:      body.Title,
		CategoryID: body.CategoryID,
		Tags:       body.Tags,
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Quiz not found")
		}
		log.Printf("[ERROR] update quiz %s: %v", quizID, err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update quiz")
	}

	return c.Status(fiber.StatusOK).JSON(dto.ToQuizResponse(agg.Quiz, agg.Tags))
}

// =============================
// 🗑️ Delete Quiz
// =============================
func (ctrl *QuizAdminController) DeleteQuiz(c *fiber.Ctx) error {
	quizID, err := id.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid quiz id")
	}

	if err := ctrl.Store.DeleteQuiz(c.UserContext(), quizID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Quiz not found")
		}
		log.Printf("[ERROR] delete quiz %s: %v", quizID, err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete quiz")
	}

	return c.SendStatus(fiber.StatusNoContent)
}
