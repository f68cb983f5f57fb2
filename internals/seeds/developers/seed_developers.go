package developers

import (
	"encoding/json"
	"log"
	"os"

	"gorm.io/gorm"

	"quizku_backend/internals/features/developers/model"
	developerService "quizku_backend/internals/features/developers/service"
	"quizku_backend/internals/id"
)

type DeveloperSeed struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func SeedDevelopersFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file developer:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal membaca file JSON: %v", err)
	}

	var inputs []DeveloperSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}

	for _, data := range inputs {
		var existing model.DeveloperModel
		if err := db.Where("username = ?", data.Username).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Developer '%s' sudah ada, dilewati.", data.Username)
			continue
		}

		hashed, err := developerService.HashPassword(data.Password)
		if err != nil {
			log.Printf("❌ Gagal hash password untuk '%s': %v", data.Username, err)
			continue
		}

		dev := model.DeveloperModel{
			ID:           id.New(),
			Username:     data.Username,
			PasswordHash: hashed,
		}
		if err := db.Create(&dev).Error; err != nil {
			log.Printf("❌ Gagal insert developer '%s': %v", data.Username, err)
			continue
		}
		log.Printf("✅ Developer '%s' berhasil di-seed.", data.Username)
	}
}
