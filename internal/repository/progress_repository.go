package repository

import (
	"escape_room_backend/internal/model"

	"gorm.io/gorm"
)

type ProgressRepository struct {
	DB *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{DB: db}
}

func (r *ProgressRepository) FindByStudentAndTask(studentID string, taskID uint) (*model.StudentTaskProcess, error) {
	var process model.StudentTaskProcess
	err := r.DB.Where("student_id = ? AND task_id = ?", studentID, taskID).First(&process).Error
	if err != nil {
		return nil, err
	}
	return &process, nil
}

func (r *ProgressRepository) FindByStudentID(studentID string) ([]model.StudentTaskProcess, error) {
	var processes []model.StudentTaskProcess
	err := r.DB.Where("student_id = ?", studentID).Find(&processes).Error
	return processes, err
}

func (r *ProgressRepository) Create(process *model.StudentTaskProcess) error {
	return r.DB.Create(process).Error
}

func (r *ProgressRepository) Update(process *model.StudentTaskProcess) error {
	return r.DB.Save(process).Error
}

// DeleteByStudentAndTask 删除进度存档。记录不存在不算错误。
func (r *ProgressRepository) DeleteByStudentAndTask(studentID string, taskID uint) error {
	return r.DB.Where("student_id = ? AND task_id = ?", studentID, taskID).
		Delete(&model.StudentTaskProcess{}).Error
}
