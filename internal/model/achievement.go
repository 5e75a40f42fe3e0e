package model

import (
	"time"

	"gorm.io/gorm"
)

// 内置成就名，规则逻辑按名字挂接在 AchievementService 上
const (
	AchievementPerfectScore   = "Perfect Score"
	AchievementFastSolver     = "Fast Solver"
	AchievementAccuracyMaster = "Accuracy Master"
	AchievementQuizWarrior    = "Quiz Warrior"
)

// Achievement 成就定义。condition 仅为展示文案，不可执行。
type Achievement struct {
	gorm.Model
	Name      string `gorm:"size:80;uniqueIndex;not null" json:"name"`
	Condition string `gorm:"size:255;not null" json:"condition"`
}

func (Achievement) TableName() string {
	return "achievements"
}

// StudentAchievement 成就解锁记录，(student_id, achievement_id) 唯一，只插入一次。
type StudentAchievement struct {
	ID              uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	StudentID       string    `gorm:"size:20;not null;uniqueIndex:uq_student_achievement" json:"student_id"`
	StudentName     string    `gorm:"size:80;not null" json:"student_name"`
	AchievementID   uint      `gorm:"not null;uniqueIndex:uq_student_achievement" json:"achievement_id"`
	AchievementName string    `gorm:"size:80;not null" json:"achievement_name"`
	UnlockedAt      time.Time `gorm:"not null" json:"unlocked_at"`
}

func (StudentAchievement) TableName() string {
	return "student_achievements"
}
