package models

import (
	"time"

	"gorm.io/gorm"
)

// Project 项目模型，时间记录和收入记录都挂在项目下
type Project struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	Name        string         `json:"name" gorm:"size:100;uniqueIndex;not null"`
	Description string         `json:"description" gorm:"type:text"`
	Client      string         `json:"client" gorm:"size:100"`
	Notes       string         `json:"notes" gorm:"type:text"`
	HourlyRate  *float64       `json:"hourly_rate" gorm:"type:decimal(10,2)"` // 默认时薪（可选）
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName 设置表名
func (Project) TableName() string {
	return "projects"
}
