package model

import "gorm.io/gorm"

// Student 学生账号（student_id 为对外业务主键，7位学号）
type Student struct {
	gorm.Model
	RealName  string `gorm:"size:80;not null" json:"real_name"`
	StudentID string `gorm:"size:20;uniqueIndex;not null" json:"student_id"`
	Username  string `gorm:"size:120;uniqueIndex;not null" json:"username"`
	Password  string `gorm:"size:255;not null" json:"-"`
}

func (Student) TableName() string {
	return "students"
}
