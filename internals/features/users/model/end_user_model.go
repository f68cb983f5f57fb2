package model

import (
	"quizku_backend/internals/id"
)

// EndUserModel: manusia yang mengerjakan quiz lewat consumption plane.
// Bukan Developer — dibuat implisit saat registrasi pertama.
type EndUserModel struct {
	ID    id.ID  `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	Email string `gorm:"column:email;type:varchar(255);uniqueIndex;not null" json:"email"`
}

func (EndUserModel) TableName() string {
	return "end_users"
}
