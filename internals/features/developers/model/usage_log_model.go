package model

import (
	"time"

	"gorm.io/datatypes"

	"quizku_backend/internals/id"
)

// UsageLogModel: audit trail append-only untuk setiap request consumption
// plane yang berhasil resolve API key. Penulisannya best-effort.
type UsageLogModel struct {
	ID         id.ID          `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	ApiKeyID   id.ID          `gorm:"column:api_key_id;not null;index" json:"api_key_id"`
	Endpoint   string         `gorm:"column:endpoint;type:varchar(128);not null" json:"endpoint"`
	StatusCode int            `gorm:"column:status_code;not null" json:"status_code"`
	Meta       datatypes.JSON `gorm:"column:meta" json:"meta,omitempty"`
	CreatedAt  time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (UsageLogModel) TableName() string {
	return "usage_logs"
}
