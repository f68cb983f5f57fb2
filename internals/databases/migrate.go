package database

import (
	"log"

	"gorm.io/gorm"

	developerModel "quizku_backend/internals/features/developers/model"
	quizModel "quizku_backend/internals/features/quizzes/model"
	userModel "quizku_backend/internals/features/users/model"
)

// AutoMigrate membuat semua tabel + foreign key (termasuk ON DELETE CASCADE
// untuk questions/question_options/quiz_tags).
func AutoMigrate(db *gorm.DB) {
	if err := db.AutoMigrate(
		&developerModel.DeveloperModel{},
		&developerModel.ApiKeyModel{},
		&developerModel.UsageLogModel{},
		&userModel.EndUserModel{},
		&quizModel.CategoryModel{},
		&quizModel.TagModel{},
		&quizModel.QuizModel{},
		&quizModel.QuestionModel{},
		&quizModel.QuestionOptionModel{},
		&quizModel.QuizTagModel{},
		&userModel.UserAnswerModel{},
	); err != nil {
		log.Fatalf("❌ Gagal migrasi database: %v", err)
	}
	log.Println("✅ Migrasi database selesai.")
}
