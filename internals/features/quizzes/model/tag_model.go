package model

import (
	"quizku_backend/internals/id"
)

// TagModel: nama unik, upsert-by-name (insert yang kalah konflik memakai
// baris yang sudah ada).
type TagModel struct {
	ID   id.ID  `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	Name string `gorm:"column:name;type:varchar(64);uniqueIndex;not null" json:"name"`
}

func (TagModel) TableName() string {
	return "tags"
}

// QuizTagModel: join many-to-many quiz ↔ tag.
type QuizTagModel struct {
	QuizID id.ID `gorm:"column:quiz_id;primaryKey;autoIncrement:false"`
	TagID  id.ID `gorm:"column:tag_id;primaryKey;autoIncrement:false"`

	Quiz *QuizModel `gorm:"foreignKey:QuizID;references:ID;constraint:OnDelete:CASCADE"`
	Tag  *TagModel  `gorm:"foreignKey:TagID;references:ID;constraint:OnDelete:CASCADE"`
}

func (QuizTagModel) TableName() string {
	return "quiz_tags"
}
