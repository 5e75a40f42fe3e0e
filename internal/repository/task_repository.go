package repository

import (
	"escape_room_backend/internal/model"

	"gorm.io/gorm"
)

type TaskRepository struct {
	DB *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{DB: db}
}

func (r *TaskRepository) FindByID(id uint) (*model.Task, error) {
	var task model.Task
	err := r.DB.First(&task, id).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepository) FindAll() ([]model.Task, error) {
	var tasks []model.Task
	err := r.DB.Order("id").Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepository) Count() (int64, error) {
	var count int64
	err := r.DB.Model(&model.Task{}).Count(&count).Error
	return count, err
}
