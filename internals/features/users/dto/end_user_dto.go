package dto

import (
	"time"

	"quizku_backend/internals/features/users/model"
	"quizku_backend/internals/id"
)

type CreateEndUserRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type EndUserResponse struct {
	ID    id.ID  `json:"id"`
	Email string `json:"email"`
}

type AnswerHistoryResponse struct {
	QuizID     id.ID     `json:"quiz_id"`
	QuestionID id.ID     `json:"question_id"`
	OptionID   id.ID     `json:"option_id"`
	IsCorrect  bool      `json:"is_correct"`
	CreatedAt  time.Time `json:"created_at"`
}

func ToEndUserResponse(m model.EndUserModel) EndUserResponse {
	return EndUserResponse{
		ID:    m.ID,
		Email: m.Email,
	}
}

func ToAnswerHistoryResponse(m model.UserAnswerModel) AnswerHistoryResponse {
	return AnswerHistoryResponse{
		QuizID:     m.QuizID,
		QuestionID: m.QuestionID,
		OptionID:   m.OptionID,
		IsCorrect:  m.IsCorrect,
		CreatedAt:  m.CreatedAt,
	}
}
