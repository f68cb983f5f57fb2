package model

import (
	"quizku_backend/internals/id"
)

// QuizModel adalah root aggregate: quiz + questions + options disimpan dan
// dibaca sebagai satu kesatuan konsistensi.
type QuizModel struct {
	ID         id.ID  `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	Title      string `gorm:"column:title;type:varchar(255);not null" json:"title"`
	CategoryID *id.ID `gorm:"column:category_id" json:"category_id"`

	Questions []QuestionModel `gorm:"foreignKey:QuizID;references:ID;constraint:OnDelete:CASCADE" json:"questions"`
	Category  *CategoryModel  `gorm:"foreignKey:CategoryID;references:ID" json:"-"`
}

func (QuizModel) TableName() string {
	return "quizzes"
}
