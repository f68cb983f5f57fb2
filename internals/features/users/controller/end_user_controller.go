// internals/features/users/controller/end_user_controller.go
package controller

import (
	"errors"
	"log"
	"net/url"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	quizRepo "quizku_backend/internals/features/quizzes/repository"
	"quizku_backend/internals/features/users/dto"
)

type EndUserController struct {
	Store quizRepo.Store
}

func NewEndUserController(store quizRepo.Store) *EndUserController {
	return &EndUserController{Store: store}
}

var validate = validator.New()

// =============================
// 📝 Register End User (idempotent)
// =============================
func (ctrl *EndUserController) CreateEndUser(c *fiber.Ctx) error {
	var body dto.CreateEndUserRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	user, err := ctrl.Store.CreateEndUser(c.UserContext(), body.Email)
	if err != nil {
		log.Printf("[ERROR] create end user: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to register user")
	}

	return c.Status(fiber.StatusCreated).JSON(dto.ToEndUserResponse(*user))
}

// =============================
// 📄 Answer History (terbaru dulu)
// =============================
func (ctrl *EndUserController) GetHistory(c *fiber.Ctx) error {
	email := c.Params("email")
	if decoded, err := url.PathUnescape(email); err == nil {
		email = decoded
	}

	user, err := ctrl.Store.FindEndUserByEmail(c.UserContext(), email)
	if err != nil {
		if errors.Is(err, quizRepo.ErrNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "User not found")
		}
		log.Printf("[ERROR] find end user: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch history")
	}

	history, err := ctrl.Store.ListHistory(c.UserContext(), user.ID)
	if err != nil {
		log.Printf("[ERROR] list history: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch history")
	}

	result := make([]dto.AnswerHistoryResponse, 0, len(history))
	for _, rec := range history {
		result = append(result, dto.ToAnswerHistoryResponse(rec))
	}
	return c.JSON(result)
}
