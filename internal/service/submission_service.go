package service

import (
	"encoding/json"
	"errors"
	"sort"
	"strconv"
	"time"

	"escape_room_backend/internal/model"
	"escape_room_backend/internal/repository"
	"escape_room_backend/internal/util"
	"escape_room_backend/pkg/logger"
	"escape_room_backend/pkg/monitoring"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type SubmissionService struct {
	StudentRepo  *repository.StudentRepository
	TaskRepo     *repository.TaskRepository
	QuestionRepo *repository.QuestionRepository
	ProgressRepo *repository.ProgressRepository
	Achievement  *AchievementService
	DB           *gorm.DB
}

func NewSubmissionService(
	studentRepo *repository.StudentRepository,
	taskRepo *repository.TaskRepository,
	questionRepo *repository.QuestionRepository,
	progressRepo *repository.ProgressRepository,
	achievement *AchievementService,
	db *gorm.DB,
) *SubmissionService {
	return &SubmissionService{
		StudentRepo:  studentRepo,
		TaskRepo:     taskRepo,
		QuestionRepo: questionRepo,
		ProgressRepo: progressRepo,
		Achievement:  achievement,
		DB:           db,
	}
}

type SubmitRequest struct {
	StudentID string                     `json:"student_id"`
	Answers   map[string]json.RawMessage `json:"answers"`
	StartedAt string                     `json:"started_at"`
}

// QuestionResult 单题评分结果，只在响应里出现，不落库
type QuestionResult struct {
	QuestionID uint            `json:"question_id"`
	IsCorrect  bool            `json:"is_correct"`
	Score      int             `json:"score"`
	UserAnswer json.RawMessage `json:"user_answer"`
}

type SubmitResponse struct {
	TotalScore      int                    `json:"total_score"`
	NewAchievements []UnlockedAchievement  `json:"new_achievements"`
	CorrectAnswers  map[string]interface{} `json:"correct_answers"`
	Results         []QuestionResult       `json:"results"`
}

// Submit 对一次任务提交评分、落库并结算成就。
// 评分与成绩/成就写入在一个事务里，进度存档删除失败只记日志不影响结果。
func (s *SubmissionService) Submit(taskID uint, req SubmitRequest) (*SubmitResponse, error) {
	if req.Answers == nil || req.StudentID == "" {
		return nil, util.ErrInvalidSubmission
	}

	student, err := s.StudentRepo.FindByStudentID(req.StudentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrStudentNotFound
		}
		return nil, err
	}

	task, err := s.TaskRepo.FindByID(taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrTaskNotFound
		}
		return nil, err
	}

	questions, err := s.QuestionRepo.MapByTaskID(task.ID)
	if err != nil {
		return nil, err
	}

	graded := gradeAnswers(questions, req.Answers)
	startedAt := parseStartedAt(req.StartedAt)
	completedAt := time.Now().UTC()

	result := &model.StudentTaskResult{
		StudentID:   student.StudentID,
		StudentName: student.RealName,
		TaskID:      task.ID,
		TaskName:    task.Name,
		TotalScore:  graded.TotalScore,
		StartedAt:   startedAt,
		CompletedAt: completedAt,
	}

	var unlocked []UnlockedAchievement
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := repository.NewResultRepository(tx).Upsert(result, startedAt != nil); err != nil {
			return err
		}
		unlocked, err = s.Achievement.EvaluateOnSubmission(tx, student, SubmissionStats{
			CorrectCount:   graded.CorrectCount,
			QuestionsCount: graded.QuestionsCount,
			StartedAt:      startedAt,
			CompletedAt:    completedAt,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	monitoring.SubmissionsGraded.WithLabelValues(strconv.FormatUint(uint64(task.ID), 10)).Inc()

	// 进度存档删除是尽力而为：失败不能影响已评出的成绩返回
	if err := s.ProgressRepo.DeleteByStudentAndTask(student.StudentID, task.ID); err != nil {
		logger.Log.Warn("failed to delete progress record",
			zap.String("student_id", student.StudentID),
			zap.Uint("task_id", task.ID),
			zap.Error(err))
	}

	return &SubmitResponse{
		TotalScore:      graded.TotalScore,
		NewAchievements: unlocked,
		CorrectAnswers:  graded.CorrectAnswers,
		Results:         graded.Results,
	}, nil
}

type gradedSubmission struct {
	TotalScore     int
	CorrectCount   int
	QuestionsCount int
	CorrectAnswers map[string]interface{}
	Results        []QuestionResult
}

// gradeAnswers 对提交的每道题打分并汇总。纯函数。
// 任务里查不到的题目ID直接跳过（客户端可能引用已被删除的题），
// 类型数据损坏的题目同样跳过。
func gradeAnswers(questions map[uint]model.Question, answers map[string]json.RawMessage) gradedSubmission {
	graded := gradedSubmission{
		CorrectAnswers: make(map[string]interface{}),
	}

	for idStr, raw := range answers {
		question, ok := questions[util.MustParseUint(idStr)]
		if !ok {
			continue
		}
		variant, err := question.Variant()
		if err != nil {
			continue
		}

		graded.QuestionsCount++
		graded.CorrectAnswers[idStr] = variant.CanonicalAnswer()

		correct := EvaluateAnswer(variant, raw)
		score := 0
		if correct {
			score = question.Score
			graded.TotalScore += score
			graded.CorrectCount++
		}
		graded.Results = append(graded.Results, QuestionResult{
			QuestionID: question.ID,
			IsCorrect:  correct,
			Score:      score,
			UserAnswer: raw,
		})
	}

	sort.Slice(graded.Results, func(i, j int) bool {
		return graded.Results[i].QuestionID < graded.Results[j].QuestionID
	})
	return graded
}

// parseStartedAt 宽松解析开始时间，解析不了当没传处理
func parseStartedAt(value string) *time.Time {
	if value == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339, time.RFC3339Nano, "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, value); err == nil {
			utc := t.UTC()
			return &utc
		}
	}
	return nil
}
