package model

import "testing"

func TestVariantSingleChoice(t *testing.T) {
	q := &Question{
		ID:            1,
		QuestionType:  QuestionSingleChoice,
		OptionA:       "Nitrogen",
		OptionB:       "Sodium",
		CorrectAnswer: "b",
	}

	variant, err := q.Variant()
	if err != nil {
		t.Fatalf("Variant() error: %v", err)
	}
	sc, ok := variant.(SingleChoice)
	if !ok {
		t.Fatalf("Variant() type = %T, want SingleChoice", variant)
	}
	if sc.Correct != "B" {
		t.Errorf("Correct = %q, want normalized %q", sc.Correct, "B")
	}
	if sc.Options["B"] != "Sodium" {
		t.Errorf("Options[B] = %q, want %q", sc.Options["B"], "Sodium")
	}
}

// 旧数据的 question_type 列可能为空，按单选处理
func TestVariantEmptyTypeDefaultsToSingleChoice(t *testing.T) {
	q := &Question{ID: 1, CorrectAnswer: "A"}

	variant, err := q.Variant()
	if err != nil {
		t.Fatalf("Variant() error: %v", err)
	}
	if variant.Kind() != QuestionSingleChoice {
		t.Errorf("Kind() = %q, want %q", variant.Kind(), QuestionSingleChoice)
	}
}

func TestVariantSingleChoiceMissingAnswer(t *testing.T) {
	q := &Question{ID: 1, QuestionType: QuestionSingleChoice}
	if _, err := q.Variant(); err == nil {
		t.Error("expected error for missing correct answer")
	}
}

func TestVariantDecoding(t *testing.T) {
	tests := []struct {
		name         string
		questionType string
		questionData string
		wantKind     string
		wantErr      bool
	}{
		{
			"multiple choice",
			QuestionMultipleChoice,
			`{"options":["Helium","Oxygen","Argon"],"correct_answers":[0,2]}`,
			QuestionMultipleChoice,
			false,
		},
		{
			"multiple choice without answers",
			QuestionMultipleChoice,
			`{"options":["Helium","Oxygen"]}`,
			"", true,
		},
		{
			"fill blank",
			QuestionFillBlank,
			`{"blank_answers":["oxygen","6"]}`,
			QuestionFillBlank,
			false,
		},
		{
			"fill blank empty",
			QuestionFillBlank,
			`{"blank_answers":[]}`,
			"", true,
		},
		{
			"puzzle game",
			QuestionPuzzleGame,
			`{"puzzle_solution":"Na + Cl → NaCl","puzzle_fragments":["Na","+","Cl","→","NaCl"]}`,
			QuestionPuzzleGame,
			false,
		},
		{
			"puzzle game without solution",
			QuestionPuzzleGame,
			`{"puzzle_fragments":["Na"]}`,
			"", true,
		},
		{
			"matching task",
			QuestionMatchingTask,
			`{"left_items":["Sodium"],"right_items":["Alkali metal"],"correct_matches":[{"left":0,"right":0}]}`,
			QuestionMatchingTask,
			false,
		},
		{
			"matching task without matches",
			QuestionMatchingTask,
			`{"left_items":["Sodium"],"right_items":["Alkali metal"]}`,
			"", true,
		},
		{
			"corrupt json",
			QuestionMultipleChoice,
			`{options`,
			"", true,
		},
		{
			"unknown type",
			"essay",
			`{}`,
			"", true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := &Question{ID: 7, QuestionType: tt.questionType, QuestionData: tt.questionData}
			variant, err := q.Variant()
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected decode error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Variant() error: %v", err)
			}
			if variant.Kind() != tt.wantKind {
				t.Errorf("Kind() = %q, want %q", variant.Kind(), tt.wantKind)
			}
		})
	}
}

func TestCanonicalAnswer(t *testing.T) {
	q := &Question{
		ID:           2,
		QuestionType: QuestionMatchingTask,
		QuestionData: `{"left_items":["Sodium","Chlorine"],"right_items":["Halogen","Alkali metal"],"correct_matches":[{"left":0,"right":1},{"left":1,"right":0}]}`,
	}
	variant, err := q.Variant()
	if err != nil {
		t.Fatalf("Variant() error: %v", err)
	}
	pairs, ok := variant.CanonicalAnswer().([]MatchPair)
	if !ok {
		t.Fatalf("CanonicalAnswer() type = %T, want []MatchPair", variant.CanonicalAnswer())
	}
	if len(pairs) != 2 || pairs[0] != (MatchPair{Left: 0, Right: 1}) {
		t.Errorf("unexpected canonical answer: %v", pairs)
	}
}
