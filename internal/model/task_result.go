package model

import "time"

// StudentTaskResult 学生在一个任务上的聚合成绩。
// (student_id, task_id) 唯一，重复提交原地更新。
// student_name / task_name 是提交时刻的冗余快照，不做实时关联。
type StudentTaskResult struct {
	ID          uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	StudentID   string     `gorm:"size:20;not null;uniqueIndex:uq_student_task" json:"student_id"`
	StudentName string     `gorm:"size:80;not null" json:"student_name"`
	TaskID      uint       `gorm:"not null;uniqueIndex:uq_student_task" json:"task_id"`
	TaskName    string     `gorm:"size:80;not null" json:"task_name"`
	TotalScore  int        `gorm:"not null" json:"total_score"`
	StartedAt   *time.Time `json:"started_at,omitempty"`
	CompletedAt time.Time  `gorm:"not null" json:"completed_at"`
	CreatedAt   time.Time  `json:"-"`
	UpdatedAt   time.Time  `json:"-"`
}

func (StudentTaskResult) TableName() string {
	return "student_task_results"
}
