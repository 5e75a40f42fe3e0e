package model

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// 支持的问题类型判别值，与 questions.question_type 列取值一致
const (
	QuestionSingleChoice   = "single_choice"
	QuestionMultipleChoice = "multiple_choice"
	QuestionFillBlank      = "fill_blank"
	QuestionPuzzleGame     = "puzzle_game"
	QuestionMatchingTask   = "matching_task"
)

// Question 题目。类型特定的正确性数据存放在 question_data（JSON），
// 单选题沿用历史遗留的 option_a..d / correct_answer 列。
type Question struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	TaskID       uint   `gorm:"index;not null" json:"task_id"`
	Question     string `gorm:"type:text;not null" json:"question"`
	QuestionType string `gorm:"size:50;not null;default:'single_choice'" json:"question_type"`
	QuestionData string `gorm:"type:text" json:"question_data,omitempty"`

	// 单选题历史列
	OptionA       string `gorm:"size:255" json:"option_a,omitempty"`
	OptionB       string `gorm:"size:255" json:"option_b,omitempty"`
	OptionC       string `gorm:"size:255" json:"option_c,omitempty"`
	OptionD       string `gorm:"size:255" json:"option_d,omitempty"`
	CorrectAnswer string `gorm:"size:1" json:"-"`

	Difficulty string    `gorm:"size:20;not null" json:"difficulty"`
	Score      int       `gorm:"not null" json:"score"`
	Desc       string    `gorm:"column:description;type:text" json:"description,omitempty"`
	CreatedBy  string    `gorm:"size:20" json:"created_by,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func (Question) TableName() string {
	return "questions"
}

// MatchPair 匹配题的一对 (左索引, 右索引)
type MatchPair struct {
	Left  int `json:"left"`
	Right int `json:"right"`
}

// QuestionVariant 按题型区分的正确性数据。
// CanonicalAnswer 返回评分后展示给前端复盘用的标准答案。
type QuestionVariant interface {
	Kind() string
	CanonicalAnswer() interface{}
}

type SingleChoice struct {
	Options map[string]string
	Correct string
}

func (SingleChoice) Kind() string { return QuestionSingleChoice }

func (v SingleChoice) CanonicalAnswer() interface{} { return v.Correct }

type MultipleChoice struct {
	Options        []string
	CorrectIndices []int
}

func (MultipleChoice) Kind() string { return QuestionMultipleChoice }

func (v MultipleChoice) CanonicalAnswer() interface{} { return v.CorrectIndices }

type FillBlank struct {
	CorrectAnswers []string
}

func (FillBlank) Kind() string { return QuestionFillBlank }

func (v FillBlank) CanonicalAnswer() interface{} { return v.CorrectAnswers }

type PuzzleGame struct {
	Solution  string
	Fragments []string
}

func (PuzzleGame) Kind() string { return QuestionPuzzleGame }

func (v PuzzleGame) CanonicalAnswer() interface{} { return v.Solution }

type MatchingTask struct {
	LeftItems      []string
	RightItems     []string
	CorrectMatches []MatchPair
}

func (MatchingTask) Kind() string { return QuestionMatchingTask }

func (v MatchingTask) CanonicalAnswer() interface{} { return v.CorrectMatches }

// question_data 的存储格式（与前端编辑器提交的字段名一致）
type questionData struct {
	Options         []string    `json:"options,omitempty"`
	CorrectAnswers  []int       `json:"correct_answers,omitempty"`
	BlankAnswers    []string    `json:"blank_answers,omitempty"`
	PuzzleSolution  string      `json:"puzzle_solution,omitempty"`
	PuzzleFragments []string    `json:"puzzle_fragments,omitempty"`
	LeftItems       []string    `json:"left_items,omitempty"`
	RightItems      []string    `json:"right_items,omitempty"`
	CorrectMatches  []MatchPair `json:"correct_matches,omitempty"`
}

// Variant 解码题目的类型特定数据。未知类型或数据损坏时返回错误，
// 评分流程对这类题目按不存在处理。
func (q *Question) Variant() (QuestionVariant, error) {
	switch q.QuestionType {
	case QuestionSingleChoice, "":
		correct := strings.ToUpper(q.CorrectAnswer)
		if correct == "" {
			return nil, fmt.Errorf("question %d: missing correct answer", q.ID)
		}
		return SingleChoice{
			Options: map[string]string{
				"A": q.OptionA,
				"B": q.OptionB,
				"C": q.OptionC,
				"D": q.OptionD,
			},
			Correct: correct,
		}, nil
	}

	var data questionData
	if err := json.Unmarshal([]byte(q.QuestionData), &data); err != nil {
		return nil, fmt.Errorf("question %d: invalid question_data: %w", q.ID, err)
	}

	switch q.QuestionType {
	case QuestionMultipleChoice:
		if len(data.Options) == 0 || len(data.CorrectAnswers) == 0 {
			return nil, fmt.Errorf("question %d: incomplete multiple choice data", q.ID)
		}
		return MultipleChoice{Options: data.Options, CorrectIndices: data.CorrectAnswers}, nil
	case QuestionFillBlank:
		if len(data.BlankAnswers) == 0 {
			return nil, fmt.Errorf("question %d: no blank answers", q.ID)
		}
		return FillBlank{CorrectAnswers: data.BlankAnswers}, nil
	case QuestionPuzzleGame:
		if data.PuzzleSolution == "" {
			return nil, fmt.Errorf("question %d: no puzzle solution", q.ID)
		}
		return PuzzleGame{Solution: data.PuzzleSolution, Fragments: data.PuzzleFragments}, nil
	case QuestionMatchingTask:
		if len(data.CorrectMatches) == 0 {
			return nil, fmt.Errorf("question %d: no correct matches", q.ID)
		}
		return MatchingTask{
			LeftItems:      data.LeftItems,
			RightItems:     data.RightItems,
			CorrectMatches: data.CorrectMatches,
		}, nil
	default:
		return nil, fmt.Errorf("question %d: unknown question type %q", q.ID, q.QuestionType)
	}
}
