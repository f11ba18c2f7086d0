package models

import (
	"time"

	"gorm.io/gorm"
)

// IncomeRecord 收入记录模型
type IncomeRecord struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	ProjectID uint           `json:"project_id" gorm:"index;not null"`
	Date      time.Time      `json:"date" gorm:"not null"`
	Amount    float64        `json:"amount" gorm:"type:decimal(10,2);not null"`
	Currency  string         `json:"currency" gorm:"size:8"`
	Source    string         `json:"source" gorm:"size:200"`
	Note      string         `json:"note" gorm:"type:text"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
	Project   Project        `json:"-" gorm:"foreignKey:ProjectID"`
}

func (IncomeRecord) TableName() string {
	return "income_records"
}
