package model

import (
	"quizku_backend/internals/id"
)

type CategoryModel struct {
	ID   id.ID  `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	Name string `gorm:"column:name;type:varchar(128);uniqueIndex;not null" json:"name"`
}

func (CategoryModel) TableName() string {
	return "categories"
}
