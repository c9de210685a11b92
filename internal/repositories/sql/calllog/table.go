package calllog

import (
	"time"

	"gorm.io/gorm"
)

const (
	tableName = "call_log"
	createdAt = "CreatedAt"
)

// Table is one upstream exchange. Tokens and payload bodies are never
// recorded here.
type Table struct {
	Id         uint   `gorm:"primaryKey;autoIncrement"`
	Operation  string `gorm:"not null"`
	Method     string `gorm:"not null"`
	Path       string `gorm:"not null"`
	StatusCode int    `gorm:"not null"`
	Outcome    string `gorm:"not null"`
	DurationMs int64  `gorm:"not null"`
	Operator   string `gorm:"not null"`
	CreatedAt  time.Time
}

func (Table) TableName() string {
	return tableName
}

func (Table) BeforeCreate(tx *gorm.DB) (err error) {
	tx.Statement.SetColumn(createdAt, time.Now())
	return
}
