package dto

import (
	"quizku_backend/internals/features/quizzes/model"
	"quizku_backend/internals/id"
)

// ============================
// Request DTO
// ============================
type CreateQuizRequest struct {
	Title      string                  `json:"title" validate:"required,min=1,max=255"`
	CategoryID *id.ID                  `json:"category_id"`
	Questions  []CreateQuestionRequest `json:"questions" validate:"required,min=1,dive"`
	Tags       []string                `json:"tags"`
}

type CreateQuestionRequest struct {
	Text        string                `json:"text" validate:"required"`
	Options     []CreateOptionRequest `json:"options" validate:"required,min=2,dive"`
	Explanation *string               `json:"explanation"`
}

type CreateOptionRequest struct {
	Text        string  `json:"text" validate:"required"`
	IsCorrect   bool    `json:"is_correct"`
	Description *string `json:"description"`
}

// UpdateQuizRequest: partial update — hanya field yang dikirim yang diubah.
// Tags (kalau ada) mengganti seluruh set, bukan merge.
type UpdateQuizRequest struct {
	Title      *string   `json:"title" validate:"omitempty,min=1,max=255"`
	CategoryID *id.ID    `json:"category_id"`
	Tags       *[]string `json:"tags"`
}

type SubmitAnswerRequest struct {
	QuestionID id.ID  `json:"question_id" validate:"required"`
	OptionID   id.ID  `json:"option_id" validate:"required"`
	UserEmail  string `json:"user_email" validate:"omitempty,email"`
}

// ============================
// Response DTO
// ============================
type QuizResponse struct {
	ID         id.ID              `json:"id"`
	Title      string             `json:"title"`
	CategoryID *id.ID             `json:"category_id"`
	Questions  []QuestionResponse `json:"questions"`
	Tags       []string           `json:"tags"`
}

type QuestionResponse struct {
	ID          id.ID            `json:"id"`
	Text        string           `json:"text"`
	Options     []OptionResponse `json:"options"`
	Explanation *string          `json:"explanation"`
}

// OptionResponse sengaja tidak punya field is_correct: flag grading tidak
// pernah keluar ke konsumen API.
type OptionResponse struct {
	ID          id.ID   `json:"id"`
	Text        string  `json:"text"`
	Description *string `json:"description"`
}

type AnswerResponse struct {
	Correct     bool    `json:"correct"`
	Message     string  `json:"message"`
	Explanation *string `json:"explanation,omitempty"`
}

// ============================
// Converter
// ============================
func ToQuizResponse(m model.QuizModel, tags []string) QuizResponse {
	questions := make([]QuestionResponse, 0, len(m.Questions))
	for _, q := range m.Questions {
		questions = append(questions, ToQuestionResponse(q))
	}
	if tags == nil {
		tags = []string{}
	}
	return QuizResponse{
		ID:         m.ID,
		Title:      m.Title,
		CategoryID: m.CategoryID,
		Questions:  questions,
		Tags:       tags,
	}
}

func ToQuestionResponse(m model.QuestionModel) QuestionResponse {
	options := make([]OptionResponse, 0, len(m.Options))
	for _, o := range m.Options {
		options = append(options, OptionResponse{
			ID:          o.ID,
			Text:        o.Text,
			Description: o.Description,
		})
	}
	return QuestionResponse{
		ID:          m.ID,
		Text:        m.Text,
		Options:     options,
		Explanation: m.Explanation,
	}
}

// ToQuizModel membangun aggregate baru lengkap dengan ID untuk semua level.
func ToQuizModel(req CreateQuizRequest) model.QuizModel {
	quizID := id.New()
	questions := make([]model.QuestionModel, 0, len(req.Questions))
	for _, q := range req.Questions {
		questionID := id.New()
		options := make([]model.QuestionOptionModel, 0, len(q.Options))
		for _, o := range q.Options {
			options = append(options, model.QuestionOptionModel{
				ID:          id.New(),
				QuestionID:  questionID,
				Text:        o.Text,
				IsCorrect:   o.IsCorrect,
				Description: o.Description,
			})
		}
		questions = append(questions, model.QuestionModel{
			ID:          questionID,
			QuizID:      quizID,
			Text:        q.Text,
			Explanation: q.Explanation,
			Options:     options,
		})
	}
	return model.QuizModel{
		ID:         quizID,
		Title:      req.Title,
		CategoryID: req.CategoryID,
		Questions:  questions,
	}
}
