package model

import (
	"time"

	"quizku_backend/internals/id"
)

// DeveloperModel: akun management plane. Login menghasilkan bearer token.
type DeveloperModel struct {
	ID           id.ID     `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	Username     string    `gorm:"column:username;type:varchar(64);uniqueIndex;not null" json:"username"`
	PasswordHash string    `gorm:"column:password_hash;type:text;not null" json:"-"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (DeveloperModel) TableName() string {
	return "developers"
}
