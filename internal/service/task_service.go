package service

import (
	"encoding/json"
	"errors"
	"time"

	"escape_room_backend/internal/model"
	"escape_room_backend/internal/repository"
	"escape_room_backend/internal/util"

	"gorm.io/gorm"
)

type TaskService struct {
	TaskRepo     *repository.TaskRepository
	QuestionRepo *repository.QuestionRepository
	StudentRepo  *repository.StudentRepository
	ProgressRepo *repository.ProgressRepository
}

func NewTaskService(
	taskRepo *repository.TaskRepository,
	questionRepo *repository.QuestionRepository,
	studentRepo *repository.StudentRepository,
	progressRepo *repository.ProgressRepository,
) *TaskService {
	return &TaskService{
		TaskRepo:     taskRepo,
		QuestionRepo: questionRepo,
		StudentRepo:  studentRepo,
		ProgressRepo: progressRepo,
	}
}

func (s *TaskService) ListTasks() ([]model.Task, error) {
	return s.TaskRepo.FindAll()
}

func (s *TaskService) GetTask(id uint) (*model.Task, error) {
	task, err := s.TaskRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrTaskNotFound
		}
		return nil, err
	}
	return task, nil
}

// QuestionView 面向答题端的题目视图。只带作答需要的展示数据，
// 任何正确答案字段都不出现在这里。
type QuestionView struct {
	ID           uint              `json:"id"`
	Question     string            `json:"question"`
	QuestionType string            `json:"question_type"`
	Difficulty   string            `json:"difficulty"`
	Score        int               `json:"score"`
	Description  string            `json:"description,omitempty"`
	Choices      map[string]string `json:"choices,omitempty"`
	Options      []string          `json:"options,omitempty"`
	BlankCount   int               `json:"blank_count,omitempty"`
	Fragments    []string          `json:"fragments,omitempty"`
	LeftItems    []string          `json:"left_items,omitempty"`
	RightItems   []string          `json:"right_items,omitempty"`
}

// GetTaskQuestions 任务的题目列表（学生视图）。
// 类型数据损坏的题目跳过，与评分时的处理一致。
func (s *TaskService) GetTaskQuestions(taskID uint) ([]QuestionView, error) {
	if _, err := s.GetTask(taskID); err != nil {
		return nil, err
	}
	questions, err := s.QuestionRepo.FindByTaskID(taskID)
	if err != nil {
		return nil, err
	}

	views := make([]QuestionView, 0, len(questions))
	for i := range questions {
		q := &questions[i]
		variant, err := q.Variant()
		if err != nil {
			continue
		}
		view := QuestionView{
			ID:           q.ID,
			Question:     q.Question,
			QuestionType: variant.Kind(),
			Difficulty:   q.Difficulty,
			Score:        q.Score,
			Description:  q.Desc,
		}
		switch v := variant.(type) {
		case model.SingleChoice:
			view.Choices = v.Options
		case model.MultipleChoice:
			view.Options = v.Options
		case model.FillBlank:
			view.BlankCount = len(v.CorrectAnswers)
		case model.PuzzleGame:
			view.Fragments = v.Fragments
		case model.MatchingTask:
			view.LeftItems = v.LeftItems
			view.RightItems = v.RightItems
		}
		views = append(views, view)
	}
	return views, nil
}

type SaveProgressRequest struct {
	StudentID            string          `json:"student_id"`
	CurrentQuestionIndex int             `json:"current_question_index"`
	Answers              json.RawMessage `json:"answers"`
}

// SaveProgress 保存答题中途进度，同一 (student, task) 覆盖旧档
func (s *TaskService) SaveProgress(taskID uint, req SaveProgressRequest) error {
	if req.StudentID == "" {
		return util.ErrInvalidSubmission
	}
	student, err := s.StudentRepo.FindByStudentID(req.StudentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrStudentNotFound
		}
		return err
	}
	task, err := s.GetTask(taskID)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	process, err := s.ProgressRepo.FindByStudentAndTask(student.StudentID, task.ID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return s.ProgressRepo.Create(&model.StudentTaskProcess{
			StudentID:            student.StudentID,
			StudentName:          student.RealName,
			TaskID:               task.ID,
			TaskName:             task.Name,
			CurrentQuestionIndex: req.CurrentQuestionIndex,
			AnswersJSON:          string(req.Answers),
			SavedAt:              now,
		})
	}

	process.CurrentQuestionIndex = req.CurrentQuestionIndex
	process.AnswersJSON = string(req.Answers)
	process.SavedAt = now
	return s.ProgressRepo.Update(process)
}

type ProgressView struct {
	TaskID               uint            `json:"task_id"`
	CurrentQuestionIndex int             `json:"current_question_index"`
	Answers              json.RawMessage `json:"answers,omitempty"`
	SavedAt              time.Time       `json:"saved_at"`
}

func (s *TaskService) GetProgress(taskID uint, studentID string) (*ProgressView, error) {
	process, err := s.ProgressRepo.FindByStudentAndTask(studentID, taskID)
	if err != nil {
		return nil, err
	}
	return &ProgressView{
		TaskID:               process.TaskID,
		CurrentQuestionIndex: process.CurrentQuestionIndex,
		Answers:              json.RawMessage(process.AnswersJSON),
		SavedAt:              process.SavedAt,
	}, nil
}

func (s *TaskService) DeleteProgress(taskID uint, studentID string) error {
	return s.ProgressRepo.DeleteByStudentAndTask(studentID, taskID)
}

type CheckAnswerResult struct {
	QuestionID    uint        `json:"question_id"`
	IsCorrect     bool        `json:"is_correct"`
	CorrectAnswer interface{} `json:"correct_answer"`
}

// CheckSingleAnswer 单题即时判分，练习模式用，不落库不计成就
func (s *TaskService) CheckSingleAnswer(questionID uint, answer json.RawMessage) (*CheckAnswerResult, error) {
	question, err := s.QuestionRepo.FindByID(questionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuestionNotFound
		}
		return nil, err
	}
	variant, err := question.Variant()
	if err != nil {
		return nil, util.ErrQuestionNotFound
	}
	return &CheckAnswerResult{
		QuestionID:    question.ID,
		IsCorrect:     EvaluateAnswer(variant, answer),
		CorrectAnswer: variant.CanonicalAnswer(),
	}, nil
}
