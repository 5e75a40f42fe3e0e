package service

import (
	"encoding/json"
	"testing"
	"time"

	"escape_room_backend/internal/model"
)

func labQuestions() map[uint]model.Question {
	return map[uint]model.Question{
		1: {
			ID: 1, QuestionType: model.QuestionSingleChoice,
			OptionA: "Nitrogen", OptionB: "Sodium", OptionC: "Neon", OptionD: "Nickel",
			CorrectAnswer: "B", Score: 10,
		},
		2: {
			ID: 2, QuestionType: model.QuestionMultipleChoice,
			QuestionData: `{"options":["Helium","Oxygen","Argon","Chlorine"],"correct_answers":[0,2]}`,
			Score:        15,
		},
		3: {
			ID: 3, QuestionType: model.QuestionFillBlank,
			QuestionData: `{"blank_answers":["oxygen"]}`,
			Score:        10,
		},
		4: {
			ID: 4, QuestionType: model.QuestionPuzzleGame,
			QuestionData: `{"puzzle_solution":"Na + Cl → NaCl","puzzle_fragments":["Na","+","Cl","→","NaCl"]}`,
			Score:        20,
		},
	}
}

func TestGradeAnswers(t *testing.T) {
	questions := labQuestions()
	answers := map[string]json.RawMessage{
		"1": json.RawMessage(`"b"`),
		"2": json.RawMessage(`[2,0]`),
		"3": json.RawMessage(`["Hydrogen"]`),
		"4": json.RawMessage(`["Na","+","Cl","->","NaCl"]`),
	}

	graded := gradeAnswers(questions, answers)

	if graded.QuestionsCount != 4 {
		t.Fatalf("QuestionsCount = %d, want 4", graded.QuestionsCount)
	}
	if graded.CorrectCount != 3 {
		t.Errorf("CorrectCount = %d, want 3", graded.CorrectCount)
	}
	if graded.TotalScore != 45 {
		t.Errorf("TotalScore = %d, want 45", graded.TotalScore)
	}

	if len(graded.Results) != 4 {
		t.Fatalf("len(Results) = %d, want 4", len(graded.Results))
	}
	for i := 1; i < len(graded.Results); i++ {
		if graded.Results[i-1].QuestionID >= graded.Results[i].QuestionID {
			t.Fatalf("results not sorted by question ID: %v then %v",
				graded.Results[i-1].QuestionID, graded.Results[i].QuestionID)
		}
	}

	for _, result := range graded.Results {
		wantCorrect := result.QuestionID != 3
		if result.IsCorrect != wantCorrect {
			t.Errorf("question %d: IsCorrect = %v, want %v", result.QuestionID, result.IsCorrect, wantCorrect)
		}
		if !result.IsCorrect && result.Score != 0 {
			t.Errorf("question %d: wrong answer scored %d", result.QuestionID, result.Score)
		}
	}

	if _, ok := graded.CorrectAnswers["4"]; !ok {
		t.Errorf("CorrectAnswers missing entry for question 4")
	}
}

func TestGradeAnswersSkipsUnknownQuestions(t *testing.T) {
	questions := labQuestions()
	answers := map[string]json.RawMessage{
		"1":   json.RawMessage(`"B"`),
		"99":  json.RawMessage(`"A"`),
		"abc": json.RawMessage(`"A"`),
	}

	graded := gradeAnswers(questions, answers)

	if graded.QuestionsCount != 1 {
		t.Errorf("QuestionsCount = %d, want 1", graded.QuestionsCount)
	}
	if graded.TotalScore != 10 {
		t.Errorf("TotalScore = %d, want 10", graded.TotalScore)
	}
	if len(graded.Results) != 1 {
		t.Errorf("len(Results) = %d, want 1", len(graded.Results))
	}
}

func TestGradeAnswersSkipsCorruptQuestionData(t *testing.T) {
	questions := map[uint]model.Question{
		1: {
			ID: 1, QuestionType: model.QuestionMultipleChoice,
			QuestionData: `not json`,
			Score:        15,
		},
	}
	answers := map[string]json.RawMessage{"1": json.RawMessage(`[0]`)}

	graded := gradeAnswers(questions, answers)

	if graded.QuestionsCount != 0 || graded.TotalScore != 0 {
		t.Errorf("corrupt question graded: count=%d score=%d", graded.QuestionsCount, graded.TotalScore)
	}
}

func TestGradeAnswersEmptySubmission(t *testing.T) {
	graded := gradeAnswers(labQuestions(), map[string]json.RawMessage{})

	if graded.TotalScore != 0 || graded.QuestionsCount != 0 {
		t.Errorf("empty submission graded: count=%d score=%d", graded.QuestionsCount, graded.TotalScore)
	}
	if len(graded.Results) != 0 {
		t.Errorf("len(Results) = %d, want 0", len(graded.Results))
	}
}

func TestParseStartedAt(t *testing.T) {
	tests := []struct {
		name  string
		value string
		ok    bool
	}{
		{"rfc3339", "2026-03-01T10:00:00Z", true},
		{"rfc3339 with offset", "2026-03-01T10:00:00+08:00", true},
		{"rfc3339 nano", "2026-03-01T10:00:00.123456789Z", true},
		{"no timezone", "2026-03-01T10:00:00", true},
		{"empty", "", false},
		{"garbage", "yesterday", false},
		{"date only", "2026-03-01", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseStartedAt(tt.value)
			if (got != nil) != tt.ok {
				t.Fatalf("parseStartedAt(%q) = %v, want parsed=%v", tt.value, got, tt.ok)
			}
		})
	}
}

func TestParseStartedAtNormalizesToUTC(t *testing.T) {
	got := parseStartedAt("2026-03-01T18:00:00+08:00")
	if got == nil {
		t.Fatal("expected parse to succeed")
	}
	want := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("parsed %v, want %v", got, want)
	}
}
