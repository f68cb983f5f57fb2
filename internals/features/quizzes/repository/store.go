// internals/features/quizzes/repository/store.go
package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"quizku_backend/internals/features/quizzes/model"
	userModel "quizku_backend/internals/features/users/model"
	"quizku_backend/internals/id"
)

var (
	// ErrNotFound: id tidak resolve ke baris yang ada (dipetakan ke 404).
	ErrNotFound = gorm.ErrRecordNotFound
	// ErrConflict: pelanggaran unique constraint (dipetakan ke 409).
	ErrConflict = errors.New("unique constraint violation")
)

// QuizAggregate: quiz + questions + options + nama tag (distinct, lewat join).
type QuizAggregate struct {
	Quiz model.QuizModel
	Tags []string
}

type ListFilter struct {
	CategoryID *id.ID
	ExcludeIDs []id.ID
	Page       int
	PerPage    int
}

// UpdatePatch: nil = field tidak dikirim, tidak diubah.
type UpdatePatch struct {
	Title      *string
	CategoryID *id.ID
	Tags       *[]string
}

// Store adalah mesin persistensi aggregate + operasi consumption plane.
// Controller hanya bicara lewat interface ini.
type Store interface {
	CreateQuiz(ctx context.Context, quiz model.QuizModel, tags []string) (*QuizAggregate, error)
	GetQuiz(ctx context.Context, quizID id.ID) (*QuizAggregate, error)
	ListQuizzes(ctx context.Context, f ListFilter) ([]QuizAggregate, error)
	UpdateQuiz(ctx context.Context, quizID id.ID, patch UpdatePatch) (*QuizAggregate, error)
	DeleteQuiz(ctx context.Context, quizID id.ID) error
	RandomQuiz(ctx context.Context, tag string, excludeUserID *id.ID) (*QuizAggregate, error)

	CreateCategory(ctx context.Context, cat *model.CategoryModel) error
	ListCategories(ctx context.Context, page, perPage int) ([]model.CategoryModel, error)

	FindOption(ctx context.Context, questionID, optionID id.ID) (*model.QuestionOptionModel, *model.QuestionModel, error)

	FindEndUserByEmail(ctx context.Context, email string) (*userModel.EndUserModel, error)
	CreateEndUser(ctx context.Context, email string) (*userModel.EndUserModel, error)
	RecordAnswer(ctx context.Context, rec *userModel.UserAnswerModel) error
	ListHistory(ctx context.Context, endUserID id.ID) ([]userModel.UserAnswerModel, error)
}
