package service

import (
	"testing"
	"time"
)

func TestIsPerfectScore(t *testing.T) {
	tests := []struct {
		name      string
		correct   int
		questions int
		want      bool
	}{
		{"all correct", 5, 5, true},
		{"one wrong", 4, 5, false},
		{"nothing answered", 0, 0, false},
		{"single question", 1, 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isPerfectScore(tt.correct, tt.questions); got != tt.want {
				t.Errorf("isPerfectScore(%d, %d) = %v, want %v", tt.correct, tt.questions, got, tt.want)
			}
		})
	}
}

func TestIsFastSolver(t *testing.T) {
	limit := 10 * time.Minute
	completed := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	elapsed := func(d time.Duration) *time.Time {
		t := completed.Add(-d)
		return &t
	}

	tests := []struct {
		name      string
		startedAt *time.Time
		want      bool
	}{
		{"well within limit", elapsed(3 * time.Minute), true},
		{"exactly at limit", elapsed(10 * time.Minute), true},
		{"over limit", elapsed(10*time.Minute + time.Second), false},
		{"no start time", nil, false},
		{"start after completion", elapsed(-1 * time.Minute), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isFastSolver(tt.startedAt, completed, limit); got != tt.want {
				t.Errorf("isFastSolver() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMeetsAccuracyTarget(t *testing.T) {
	tests := []struct {
		name  string
		stats []taskResultStat
		want  bool
	}{
		{
			"all perfect",
			[]taskResultStat{
				{TotalScore: 50, MaxScore: 50, QuestionCount: 5},
				{TotalScore: 30, MaxScore: 30, QuestionCount: 3},
			},
			true,
		},
		{
			"exactly ninety percent",
			[]taskResultStat{
				{TotalScore: 90, MaxScore: 100, QuestionCount: 10},
			},
			true,
		},
		{
			"below target",
			[]taskResultStat{
				{TotalScore: 40, MaxScore: 50, QuestionCount: 5},
			},
			false,
		},
		{
			"zero max score task is ignored",
			[]taskResultStat{
				{TotalScore: 0, MaxScore: 0, QuestionCount: 3},
				{TotalScore: 50, MaxScore: 50, QuestionCount: 5},
			},
			true,
		},
		{
			"no usable results",
			[]taskResultStat{
				{TotalScore: 0, MaxScore: 0, QuestionCount: 0},
			},
			false,
		},
		{"empty history", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := meetsAccuracyTarget(tt.stats, 0.90); got != tt.want {
				t.Errorf("meetsAccuracyTarget() = %v, want %v", got, tt.want)
			}
		})
	}
}

// 比例折算回题数时向下取整，宁可低估也不虚报
func TestOverallAccuracyRoundsDown(t *testing.T) {
	stats := []taskResultStat{
		// 25/30 的得分率折算到 3 题 → 2 题
		{TotalScore: 25, MaxScore: 30, QuestionCount: 3},
	}
	answered, correct := overallAccuracy(stats)
	if answered != 3 {
		t.Errorf("answered = %d, want 3", answered)
	}
	if correct != 2 {
		t.Errorf("correct = %d, want 2", correct)
	}
}

func TestIsQuizWarrior(t *testing.T) {
	tests := []struct {
		name      string
		completed int64
		total     int64
		minTotal  int
		want      bool
	}{
		{"all tasks done", 4, 4, 4, true},
		{"one task missing", 3, 4, 4, false},
		{"platform too small", 2, 2, 4, false},
		{"more tasks than minimum", 6, 6, 4, true},
		{"no tasks at all", 0, 0, 4, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isQuizWarrior(tt.completed, tt.total, tt.minTotal); got != tt.want {
				t.Errorf("isQuizWarrior(%d, %d, %d) = %v, want %v",
					tt.completed, tt.total, tt.minTotal, got, tt.want)
			}
		})
	}
}
