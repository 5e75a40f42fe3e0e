package model

import "time"

// StudentTaskProcess 答题中途的进度存档，提交成功后删除。
type StudentTaskProcess struct {
	ID                   uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	StudentID            string    `gorm:"size:20;not null;uniqueIndex:uq_student_task_process" json:"student_id"`
	StudentName          string    `gorm:"size:80;not null" json:"student_name"`
	TaskID               uint      `gorm:"not null;uniqueIndex:uq_student_task_process" json:"task_id"`
	TaskName             string    `gorm:"size:80;not null" json:"task_name"`
	CurrentQuestionIndex int       `gorm:"not null;default:0" json:"current_question_index"`
	AnswersJSON          string    `gorm:"type:text" json:"-"`
	SavedAt              time.Time `gorm:"not null" json:"saved_at"`
	UpdatedAt            time.Time `gorm:"not null" json:"updated_at"`
}

func (StudentTaskProcess) TableName() string {
	return "student_task_processes"
}
