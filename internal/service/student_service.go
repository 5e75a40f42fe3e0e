package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"escape_room_backend/internal/repository"
	"escape_room_backend/internal/util"
	"escape_room_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	dashboardSummaryKey = "dashboard:summary"
	dashboardReportKey  = "dashboard:report"
	dashboardCacheTTL   = 2 * time.Minute
)

type StudentService struct {
	StudentRepo  *repository.StudentRepository
	TaskRepo     *repository.TaskRepository
	QuestionRepo *repository.QuestionRepository
	ResultRepo   *repository.ResultRepository
	ProgressRepo *repository.ProgressRepository
	Redis        *redis.Client
}

func NewStudentService(
	studentRepo *repository.StudentRepository,
	taskRepo *repository.TaskRepository,
	questionRepo *repository.QuestionRepository,
	resultRepo *repository.ResultRepository,
	progressRepo *repository.ProgressRepository,
	redisClient *redis.Client,
) *StudentService {
	return &StudentService{
		StudentRepo:  studentRepo,
		TaskRepo:     taskRepo,
		QuestionRepo: questionRepo,
		ResultRepo:   resultRepo,
		ProgressRepo: progressRepo,
		Redis:        redisClient,
	}
}

type StudentProfile struct {
	StudentID        string  `json:"student_id"`
	RealName         string  `json:"real_name"`
	CompletedTasks   int     `json:"completed_tasks"`
	TotalTasks       int64   `json:"total_tasks"`
	TotalScore       int     `json:"total_score"`
	CorrectEstimate  int     `json:"correct_estimate"`
	AnsweredEstimate int     `json:"answered_estimate"`
	Accuracy         float64 `json:"accuracy"`
}

// GetProfile 学生概况。正确率和成就结算用同一套比例折算口径。
func (s *StudentService) GetProfile(studentID string) (*StudentProfile, error) {
	student, err := s.StudentRepo.FindByStudentID(studentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrStudentNotFound
		}
		return nil, err
	}

	results, err := s.ResultRepo.FindByStudentID(student.StudentID)
	if err != nil {
		return nil, err
	}
	totalTasks, err := s.TaskRepo.Count()
	if err != nil {
		return nil, err
	}

	profile := &StudentProfile{
		StudentID:      student.StudentID,
		RealName:       student.RealName,
		CompletedTasks: len(results),
		TotalTasks:     totalTasks,
	}

	stats := make([]taskResultStat, 0, len(results))
	for _, result := range results {
		profile.TotalScore += result.TotalScore
		qs, err := s.QuestionRepo.StatsByTaskID(result.TaskID)
		if err != nil {
			return nil, err
		}
		stats = append(stats, taskResultStat{
			TotalScore:    result.TotalScore,
			MaxScore:      qs.MaxScore,
			QuestionCount: qs.QuestionCount,
		})
	}

	answered, correct := overallAccuracy(stats)
	profile.AnsweredEstimate = answered
	profile.CorrectEstimate = correct
	if answered > 0 {
		profile.Accuracy = float64(correct) / float64(answered)
	}
	return profile, nil
}

type HistoryEntry struct {
	TaskID      uint       `json:"task_id"`
	TaskName    string     `json:"task_name"`
	CourseType  string     `json:"course_type"`
	TotalScore  int        `json:"total_score"`
	MaxScore    int        `json:"max_score"`
	Percentage  float64    `json:"percentage"`
	StartedAt   *time.Time `json:"started_at,omitempty"`
	CompletedAt time.Time  `json:"completed_at"`
}

// GetHistory 学生的完成记录，按完成时间倒序
func (s *StudentService) GetHistory(studentID string) ([]HistoryEntry, error) {
	if _, err := s.StudentRepo.FindByStudentID(studentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrStudentNotFound
		}
		return nil, err
	}

	results, err := s.ResultRepo.FindByStudentIDOrdered(studentID)
	if err != nil {
		return nil, err
	}

	entries := make([]HistoryEntry, 0, len(results))
	for _, result := range results {
		qs, err := s.QuestionRepo.StatsByTaskID(result.TaskID)
		if err != nil {
			return nil, err
		}
		entry := HistoryEntry{
			TaskID:      result.TaskID,
			TaskName:    result.TaskName,
			CourseType:  courseTypeOf(result.TaskName),
			TotalScore:  result.TotalScore,
			MaxScore:    qs.MaxScore,
			StartedAt:   result.StartedAt,
			CompletedAt: result.CompletedAt,
		}
		if qs.MaxScore > 0 {
			entry.Percentage = float64(result.TotalScore) / float64(qs.MaxScore) * 100
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// courseTypeOf 按任务名推断学科归类，前端报表分组用
func courseTypeOf(taskName string) string {
	name := strings.ToLower(taskName)
	switch {
	case strings.Contains(name, "chemistry"), strings.Contains(name, "lab"):
		return "Chemistry"
	case strings.Contains(name, "math"), strings.Contains(name, "puzzle"):
		return "Mathematics"
	case strings.Contains(name, "physics"):
		return "Physics"
	case strings.Contains(name, "statistics"):
		return "Statistics"
	default:
		return "General"
	}
}

type TaskProgressEntry struct {
	TaskID               uint      `json:"task_id"`
	TaskName             string    `json:"task_name"`
	CurrentQuestionIndex int       `json:"current_question_index"`
	SavedAt              time.Time `json:"saved_at"`
}

// GetTaskProgress 学生所有未提交任务的进度存档
func (s *StudentService) GetTaskProgress(studentID string) ([]TaskProgressEntry, error) {
	if _, err := s.StudentRepo.FindByStudentID(studentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrStudentNotFound
		}
		return nil, err
	}

	processes, err := s.ProgressRepo.FindByStudentID(studentID)
	if err != nil {
		return nil, err
	}
	entries := make([]TaskProgressEntry, 0, len(processes))
	for _, p := range processes {
		entries = append(entries, TaskProgressEntry{
			TaskID:               p.TaskID,
			TaskName:             p.TaskName,
			CurrentQuestionIndex: p.CurrentQuestionIndex,
			SavedAt:              p.SavedAt,
		})
	}
	return entries, nil
}

type DashboardSummary struct {
	TotalStudents  int64 `json:"total_students"`
	TotalTasks     int64 `json:"total_tasks"`
	ActiveStudents int64 `json:"active_students"`
	Submissions    int   `json:"submissions"`
}

// GetDashboardSummary 教师端总览，Redis 短缓存
func (s *StudentService) GetDashboardSummary(ctx context.Context) (*DashboardSummary, error) {
	var summary DashboardSummary
	if s.cacheGet(ctx, dashboardSummaryKey, &summary) {
		return &summary, nil
	}

	var err error
	if summary.TotalStudents, err = s.StudentRepo.Count(); err != nil {
		return nil, err
	}
	if summary.TotalTasks, err = s.TaskRepo.Count(); err != nil {
		return nil, err
	}
	if summary.ActiveStudents, err = s.ResultRepo.CountDistinctStudents(); err != nil {
		return nil, err
	}
	results, err := s.ResultRepo.FindAll()
	if err != nil {
		return nil, err
	}
	summary.Submissions = len(results)

	s.cacheSet(ctx, dashboardSummaryKey, summary)
	return &summary, nil
}

type TaskReport struct {
	TaskID       uint    `json:"task_id"`
	TaskName     string  `json:"task_name"`
	Completions  int     `json:"completions"`
	AverageScore float64 `json:"average_score"`
	MaxScore     int     `json:"max_score"`
}

// GetDashboardReport 每个任务的完成人数与平均分
func (s *StudentService) GetDashboardReport(ctx context.Context) ([]TaskReport, error) {
	var report []TaskReport
	if s.cacheGet(ctx, dashboardReportKey, &report) {
		return report, nil
	}

	tasks, err := s.TaskRepo.FindAll()
	if err != nil {
		return nil, err
	}

	report = make([]TaskReport, 0, len(tasks))
	for _, task := range tasks {
		results, err := s.ResultRepo.FindByTaskID(task.ID)
		if err != nil {
			return nil, err
		}
		qs, err := s.QuestionRepo.StatsByTaskID(task.ID)
		if err != nil {
			return nil, err
		}
		entry := TaskReport{
			TaskID:   task.ID,
			TaskName: task.Name,
			MaxScore: qs.MaxScore,
		}
		if len(results) > 0 {
			sum := 0
			for _, r := range results {
				sum += r.TotalScore
			}
			entry.Completions = len(results)
			entry.AverageScore = float64(sum) / float64(len(results))
		}
		report = append(report, entry)
	}

	s.cacheSet(ctx, dashboardReportKey, report)
	return report, nil
}

func (s *StudentService) cacheGet(ctx context.Context, key string, out interface{}) bool {
	if s.Redis == nil {
		return false
	}
	cached, err := s.Redis.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			logger.Log.Warn("redis get failed", zap.String("key", key), zap.Error(err))
		}
		return false
	}
	return json.Unmarshal([]byte(cached), out) == nil
}

func (s *StudentService) cacheSet(ctx context.Context, key string, value interface{}) {
	if s.Redis == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := s.Redis.Set(ctx, key, data, dashboardCacheTTL).Err(); err != nil {
		logger.Log.Warn("redis set failed", zap.String("key", key), zap.Error(err))
	}
}
