package model

import (
	"time"

	"quizku_backend/internals/id"
)

// ApiKeyModel: kredensial consumption plane. Secret mentah tidak pernah
// disimpan, hanya SHA-256 hex-nya (lookup O(1) lewat unique index).
type ApiKeyModel struct {
	ID          id.ID     `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	DeveloperID id.ID     `gorm:"column:developer_id;not null;index" json:"developer_id"`
	KeyHash     string    `gorm:"column:key_hash;type:char(64);uniqueIndex;not null" json:"-"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	Developer *DeveloperModel `gorm:"foreignKey:DeveloperID;references:ID" json:"-"`
}

func (ApiKeyModel) TableName() string {
	return "api_keys"
}
