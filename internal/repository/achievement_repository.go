package repository

import (
	"escape_room_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AchievementRepository struct {
	DB *gorm.DB
}

func NewAchievementRepository(db *gorm.DB) *AchievementRepository {
	return &AchievementRepository{DB: db}
}

func (r *AchievementRepository) FindAll() ([]model.Achievement, error) {
	var achievements []model.Achievement
	err := r.DB.Order("id").Find(&achievements).Error
	return achievements, err
}

func (r *AchievementRepository) FindByName(name string) (*model.Achievement, error) {
	var achievement model.Achievement
	err := r.DB.Where("name = ?", name).First(&achievement).Error
	if err != nil {
		return nil, err
	}
	return &achievement, nil
}

func (r *AchievementRepository) FindUnlocksByStudentID(studentID string) ([]model.StudentAchievement, error) {
	var unlocks []model.StudentAchievement
	err := r.DB.Where("student_id = ?", studentID).Find(&unlocks).Error
	return unlocks, err
}

// CreateUnlock 幂等地写入解锁记录。依赖 uq_student_achievement 唯一索引，
// 已解锁时不做任何事；返回值表示本次是否真的新解锁。
func (r *AchievementRepository) CreateUnlock(unlock *model.StudentAchievement) (bool, error) {
	tx := r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "student_id"}, {Name: "achievement_id"}},
		DoNothing: true,
	}).Create(unlock)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}
