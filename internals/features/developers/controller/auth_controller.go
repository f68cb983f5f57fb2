// internals/features/developers/controller/auth_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"quizku_backend/internals/configs"
	"quizku_backend/internals/features/developers/dto"
	"quizku_backend/internals/features/developers/model"
	"quizku_backend/internals/features/developers/service"
	"quizku_backend/internals/id"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

var validate = validator.New()

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// =============================
// 📝 Register
// =============================
func (ac *AuthController) Register(c *fiber.Ctx) error {
	var body dto.RegisterRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	hash, err := service.HashPassword(body.Password)
	if err != nil {
		log.Printf("[ERROR] hash password: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to register")
	}

	developer := model.DeveloperModel{
		ID:           id.New(),
		Username:     body.Username,
		PasswordHash: hash,
	}
	if err := ac.DB.WithContext(c.UserContext()).Create(&developer).Error; err != nil {
		if isUniqueViolation(err) {
			return fiber.NewError(fiber.StatusConflict, "Username already taken")
		}
		log.Printf("[ERROR] create developer: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to register")
	}

	return c.Status(fiber.StatusOK).JSON(dto.ToDeveloperResponse(developer))
}

// =============================
// 🔑 Login
// =============================
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var body dto.LoginRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var developer model.DeveloperModel
	if err := ac.DB.WithContext(c.UserContext()).
		First(&developer, "username = ?", body.Username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// pesan sama dengan password salah, biar tidak bisa enumerasi username
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid credentials")
		}
		log.Printf("[ERROR] find developer: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to login")
	}

	if !service.VerifyPassword(developer.PasswordHash, body.Password) {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid credentials")
	}

	token, err := service.IssueToken(configs.JWTSecret, developer.Username, developer.ID)
	if err != nil {
		log.Printf("[ERROR] issue token: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to login")
	}

	return c.Status(fiber.StatusOK).JSON(dto.TokenResponse{Token: token})
}
