// internals/features/developers/controller/api_key_controller.go
package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"quizku_backend/internals/features/developers/dto"
	"quizku_backend/internals/features/developers/model"
	"quizku_backend/internals/features/developers/service"
	"quizku_backend/internals/id"
	authMiddleware "quizku_backend/internals/middlewares/auth"
)

type ApiKeyController struct {
	DB *gorm.DB
}

func NewApiKeyController(db *gorm.DB) *ApiKeyController {
	return &ApiKeyController{DB: db}
}

// =============================
// 🔐 Create API Key
// =============================
// Plaintext key cuma muncul di response ini, setelah itu tinggal hash-nya.
func (ctrl *ApiKeyController) CreateApiKey(c *fiber.Ctx) error {
	devStr, ok := c.Locals(authMiddleware.LocDeveloperID).(string)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid or missing token")
	}
	developerID, err := id.Parse(devStr)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid or missing token")
	}

	plaintext, hash, err := service.GenerateApiKey()
	if err != nil {
		log.Printf("[ERROR] generate api key: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create API key")
	}

	key := model.ApiKeyModel{
		ID:          id.New(),
		DeveloperID: developerID,
		KeyHash:     hash,
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Create(&key).Error; err != nil {
		log.Printf("[ERROR] store api key: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create API key")
	}

	return c.Status(fiber.StatusCreated).JSON(dto.ApiKeyResponse{
		ID:     key.ID,
		ApiKey: plaintext,
	})
}
