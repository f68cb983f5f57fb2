// internals/middlewares/auth/api_key_auth.go
package auth

import (
	"encoding/json"
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	developerModel "quizku_backend/internals/features/developers/model"
	developerService "quizku_backend/internals/features/developers/service"
	"quizku_backend/internals/id"
)

const LocApiKeyID = "api_key_id"

// ApiKeyAuth: middleware consumption plane. Header X-API-Key di-hash lalu
// di-lookup lewat unique index; setelah handler selesai, satu baris
// usage_logs ditulis best-effort (gagal nulis log tidak menggagalkan request).
func ApiKeyAuth(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		presented := strings.TrimSpace(c.Get("X-API-Key"))
		if presented == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid or missing API key")
		}

		var key developerModel.ApiKeyModel
		hash := developerService.HashApiKey(presented)
		if err := db.WithContext(c.UserContext()).
			Where("key_hash = ?", hash).
			First(&key).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusUnauthorized, "Invalid or missing API key")
			}
			log.Printf("[ERROR] api key lookup: %v", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
		}
		c.Locals(LocApiKeyID, key.ID)

		err := c.Next()

		status := c.Response().StatusCode()
		var fe *fiber.Error
		if errors.As(err, &fe) {
			status = fe.Code
		} else if err != nil {
			status = fiber.StatusInternalServerError
		}
		writeUsageLog(db, key.ID, c.Route().Path, status, c.IP(), string(c.Request().Header.UserAgent()))

		return err
	}
}

func writeUsageLog(db *gorm.DB, keyID id.ID, endpoint string, status int, ip, userAgent string) {
	meta, _ := json.Marshal(map[string]string{
		"ip":         ip,
		"user_agent": userAgent,
	})
	entry := developerModel.UsageLogModel{
		ID:         id.New(),
		ApiKeyID:   keyID,
		Endpoint:   endpoint,
		StatusCode: status,
		Meta:       datatypes.JSON(meta),
	}
	if err := db.Create(&entry).Error; err != nil {
		log.Printf("[WARNING] usage log gagal ditulis: %v", err)
	}
}
