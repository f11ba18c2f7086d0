package models

import (
	"time"

	"gorm.io/gorm"
)

// TimeEntry 工时记录模型
// EndTime 为 nil 表示计时进行中，时长按当前时刻实时计算
type TimeEntry struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	ProjectID uint           `json:"project_id" gorm:"index;not null"`
	StartTime time.Time      `json:"start_time" gorm:"not null"`
	EndTime   *time.Time     `json:"end_time"`
	Note      string         `json:"note" gorm:"type:text"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
	Project   Project        `json:"-" gorm:"foreignKey:ProjectID"`
}

func (TimeEntry) TableName() string {
	return "time_entries"
}

// Running 是否计时中
func (e *TimeEntry) Running() bool {
	return e.EndTime == nil
}
