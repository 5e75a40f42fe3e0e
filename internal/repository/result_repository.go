package repository

import (
	"escape_room_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ResultRepository struct {
	DB *gorm.DB
}

func NewResultRepository(db *gorm.DB) *ResultRepository {
	return &ResultRepository{DB: db}
}

// Upsert 原子地插入或更新 (student_id, task_id) 的成绩行。
// 依赖 uq_student_task 唯一索引，并发提交同一键时不会产生重复行。
// started_at 仅在本次提交携带了开始时间时才覆盖，缺省保留首次的值。
func (r *ResultRepository) Upsert(result *model.StudentTaskResult, hasStartedAt bool) error {
	assignments := []string{"student_name", "task_name", "total_score", "completed_at", "updated_at"}
	if hasStartedAt {
		assignments = append(assignments, "started_at")
	}
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "student_id"}, {Name: "task_id"}},
		DoUpdates: clause.AssignmentColumns(assignments),
	}).Create(result).Error
}

func (r *ResultRepository) FindByStudentID(studentID string) ([]model.StudentTaskResult, error) {
	var results []model.StudentTaskResult
	err := r.DB.Where("student_id = ?", studentID).Find(&results).Error
	return results, err
}

func (r *ResultRepository) FindByStudentIDOrdered(studentID string) ([]model.StudentTaskResult, error) {
	var results []model.StudentTaskResult
	err := r.DB.Where("student_id = ?", studentID).Order("completed_at desc").Find(&results).Error
	return results, err
}

func (r *ResultRepository) FindByTaskID(taskID uint) ([]model.StudentTaskResult, error) {
	var results []model.StudentTaskResult
	err := r.DB.Where("task_id = ?", taskID).Find(&results).Error
	return results, err
}

func (r *ResultRepository) FindAll() ([]model.StudentTaskResult, error) {
	var results []model.StudentTaskResult
	err := r.DB.Find(&results).Error
	return results, err
}

// CountDistinctStudents 至少完成过一个任务的学生数
func (r *ResultRepository) CountDistinctStudents() (int64, error) {
	var count int64
	err := r.DB.Model(&model.StudentTaskResult{}).
		Distinct("student_id").
		Count(&count).Error
	return count, err
}
