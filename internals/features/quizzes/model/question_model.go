package model

import (
	"quizku_backend/internals/id"
)

// QuestionModel: komposisi — tidak pernah hidup di luar quiz-nya.
type QuestionModel struct {
	ID          id.ID   `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	QuizID      id.ID   `gorm:"column:quiz_id;not null;index" json:"quiz_id"`
	Text        string  `gorm:"column:text;type:text;not null" json:"text"`
	Explanation *string `gorm:"column:explanation;type:text" json:"explanation"`

	Options []QuestionOptionModel `gorm:"foreignKey:QuestionID;references:ID;constraint:OnDelete:CASCADE" json:"options"`
}

func (QuestionModel) TableName() string {
	return "questions"
}
