package quizzes

import (
	"context"
	"encoding/json"
	"log"
	"os"

	"gorm.io/gorm"

	"quizku_backend/internals/features/quizzes/dto"
	"quizku_backend/internals/features/quizzes/model"
	"quizku_backend/internals/features/quizzes/repository"
	"quizku_backend/internals/id"
)

// QuizSeed memakai bentuk request yang sama dengan endpoint create,
// jadi file seed bisa ditulis persis seperti payload API.
type QuizSeed struct {
	Title     string                      `json:"title"`
	Category  string                      `json:"category"`
	Tags      []string                    `json:"tags"`
	Questions []dto.CreateQuestionRequest `json:"questions"`
}

func SeedQuizzesFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Membaca file quiz:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Gagal membaca file JSON: %v", err)
	}

	var inputs []QuizSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Fatalf("❌ Gagal decode JSON: %v", err)
	}

	store := repository.NewGormStore(db)
	ctx := context.Background()

	for _, data := range inputs {
		var existing model.QuizModel
		if err := db.Where("title = ?", data.Title).First(&existing).Error; err == nil {
			log.Printf("ℹ️ Quiz '%s' sudah ada, dilewati.", data.Title)
			continue
		}

		quiz := dto.ToQuizModel(dto.CreateQuizRequest{
			Title:     data.Title,
			Questions: data.Questions,
		})

		if data.Category != "" {
			cat := model.CategoryModel{Name: data.Category}
			if err := db.Where("name = ?", data.Category).First(&cat).Error; err != nil {
				cat = model.CategoryModel{ID: id.New(), Name: data.Category}
				if cerr := store.CreateCategory(ctx, &cat); cerr != nil {
					log.Printf("❌ Gagal seed kategori '%s': %v", data.Category, cerr)
					continue
				}
			}
			quiz.CategoryID = &cat.ID
		}

		if _, err := store.CreateQuiz(ctx, quiz, data.Tags); err != nil {
			log.Printf("❌ Gagal insert quiz '%s': %v", data.Title, err)
			continue
		}
		log.Printf("✅ Quiz '%s' berhasil di-seed.", data.Title)
	}
}
