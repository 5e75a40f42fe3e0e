package repository

import (
	"escape_room_backend/internal/model"

	"gorm.io/gorm"
)

type QuestionRepository struct {
	DB *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{DB: db}
}

func (r *QuestionRepository) FindByID(id uint) (*model.Question, error) {
	var question model.Question
	err := r.DB.First(&question, id).Error
	if err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *QuestionRepository) FindByTaskID(taskID uint) ([]model.Question, error) {
	var questions []model.Question
	err := r.DB.Where("task_id = ?", taskID).Order("id").Find(&questions).Error
	return questions, err
}

// MapByTaskID 以题目ID为键的查找表，供评分时按提交的题目ID检索
func (r *QuestionRepository) MapByTaskID(taskID uint) (map[uint]model.Question, error) {
	questions, err := r.FindByTaskID(taskID)
	if err != nil {
		return nil, err
	}
	m := make(map[uint]model.Question, len(questions))
	for _, q := range questions {
		m[q.ID] = q
	}
	return m, nil
}

func (r *QuestionRepository) CountByTaskID(taskID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Question{}).Where("task_id = ?", taskID).Count(&count).Error
	return count, err
}

type TaskQuestionStats struct {
	MaxScore      int
	QuestionCount int
}

// StatsByTaskID 任务的满分与题目数，成就结算时估算历史正确率用
func (r *QuestionRepository) StatsByTaskID(taskID uint) (TaskQuestionStats, error) {
	var stats TaskQuestionStats
	err := r.DB.Model(&model.Question{}).
		Where("task_id = ?", taskID).
		Select("COALESCE(SUM(score), 0) AS max_score, COUNT(*) AS question_count").
		Scan(&stats).Error
	return stats, err
}
