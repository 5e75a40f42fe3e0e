package model

import (
	"time"

	"gorm.io/gorm"
)

// Task 一个密室逃脱任务（一组题目）
type Task struct {
	gorm.Model
	Name         string     `gorm:"size:80;uniqueIndex;not null" json:"name"`
	Introduction string     `gorm:"type:text" json:"introduction"`
	ImagePath    string     `gorm:"size:255" json:"image_path,omitempty"`
	VideoPath    string     `gorm:"size:255" json:"video_path,omitempty"`
	VideoURL     string     `gorm:"size:500" json:"video_url,omitempty"`
	VideoType    string     `gorm:"size:20" json:"video_type,omitempty"` // 'local' 或 'youtube'
	PublishAt    *time.Time `json:"publish_at,omitempty"`
}

func (Task) TableName() string {
	return "tasks"
}
