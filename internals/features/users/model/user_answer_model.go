package model

import (
	"time"

	"quizku_backend/internals/id"
)

// UserAnswerModel: catatan append-only percobaan menjawab. Hanya ditulis
// kalau user_email yang dikirim resolve ke EndUser yang ada.
type UserAnswerModel struct {
	ID         id.ID     `gorm:"column:id;primaryKey;autoIncrement:false" json:"-"`
	EndUserID  id.ID     `gorm:"column:end_user_id;not null;index" json:"-"`
	QuizID     id.ID     `gorm:"column:quiz_id;not null;index" json:"quiz_id"`
	QuestionID id.ID     `gorm:"column:question_id;not null" json:"question_id"`
	OptionID   id.ID     `gorm:"column:option_id;not null" json:"option_id"`
	IsCorrect  bool      `gorm:"column:is_correct;not null" json:"is_correct"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (UserAnswerModel) TableName() string {
	return "user_answers"
}
