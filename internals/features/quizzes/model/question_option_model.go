package model

import (
	"quizku_backend/internals/id"
)

// QuestionOptionModel: IsCorrect hanya dipakai untuk grading di server,
// tidak pernah diserialisasi ke konsumen API.
type QuestionOptionModel struct {
	ID          id.ID   `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	QuestionID  id.ID   `gorm:"column:question_id;not null;index" json:"question_id"`
	Text        string  `gorm:"column:text;type:text;not null" json:"text"`
	IsCorrect   bool    `gorm:"column:is_correct;not null" json:"-"`
	Description *string `gorm:"column:description;type:text" json:"description"`
}

func (QuestionOptionModel) TableName() string {
	return "question_options"
}
