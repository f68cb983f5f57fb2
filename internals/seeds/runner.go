package seeds

import (
	developers "quizku_backend/internals/seeds/developers"
	quizzes "quizku_backend/internals/seeds/quizzes"

	"gorm.io/gorm"
)

// RunAllSeeds mengisi data contoh untuk development. Jalan hanya kalau
// SEED_DATA=true; tiap seeder idempotent (skip baris yang sudah ada).
func RunAllSeeds(db *gorm.DB) {
	developers.SeedDevelopersFromJSON(db, "internals/seeds/developers/data_developers.json")
	quizzes.SeedQuizzesFromJSON(db, "internals/seeds/quizzes/data_quizzes.json")
}
