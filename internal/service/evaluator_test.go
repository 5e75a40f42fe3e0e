package service

import (
	"encoding/json"
	"testing"

	"escape_room_backend/internal/model"
)

func TestEvaluateSingleChoice(t *testing.T) {
	variant := model.SingleChoice{
		Options: map[string]string{"A": "Nitrogen", "B": "Sodium", "C": "Neon", "D": "Nickel"},
		Correct: "B",
	}

	tests := []struct {
		name   string
		answer string
		want   bool
	}{
		{"correct uppercase", `"B"`, true},
		{"correct lowercase", `"b"`, true},
		{"wrong option", `"A"`, false},
		{"empty string", `""`, false},
		{"not a string", `2`, false},
		{"malformed json", `{`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EvaluateAnswer(variant, json.RawMessage(tt.answer)); got != tt.want {
				t.Errorf("EvaluateAnswer(%s) = %v, want %v", tt.answer, got, tt.want)
			}
		})
	}
}

func TestEvaluateMultipleChoice(t *testing.T) {
	variant := model.MultipleChoice{
		Options:        []string{"Helium", "Oxygen", "Argon", "Chlorine"},
		CorrectIndices: []int{0, 2},
	}

	tests := []struct {
		name   string
		answer string
		want   bool
	}{
		{"exact order", `[0,2]`, true},
		{"reversed order", `[2,0]`, true},
		{"subset", `[0]`, false},
		{"superset", `[0,2,3]`, false},
		{"disjoint", `[1,3]`, false},
		{"empty selection", `[]`, false},
		{"duplicate index", `[0,0]`, false},
		{"not an array", `"0,2"`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EvaluateAnswer(variant, json.RawMessage(tt.answer)); got != tt.want {
				t.Errorf("EvaluateAnswer(%s) = %v, want %v", tt.answer, got, tt.want)
			}
		})
	}
}

func TestEvaluateFillBlank(t *testing.T) {
	variant := model.FillBlank{CorrectAnswers: []string{"Oxygen", "6"}}

	tests := []struct {
		name   string
		answer string
		want   bool
	}{
		{"exact", `["Oxygen","6"]`, true},
		{"case insensitive", `["oxygen","6"]`, true},
		{"surrounding whitespace", `["  oxygen  ","6 "]`, true},
		{"one blank wrong", `["oxygen","7"]`, false},
		{"missing blank", `["oxygen"]`, false},
		{"extra blank", `["oxygen","6",""]`, false},
		{"swapped blanks", `["6","oxygen"]`, false},
		{"not an array", `"oxygen"`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EvaluateAnswer(variant, json.RawMessage(tt.answer)); got != tt.want {
				t.Errorf("EvaluateAnswer(%s) = %v, want %v", tt.answer, got, tt.want)
			}
		})
	}
}

func TestEvaluatePuzzleGame(t *testing.T) {
	tests := []struct {
		name     string
		solution string
		answer   string
		want     bool
	}{
		{"exact match", "Na + Cl → NaCl", `["Na","+","Cl","→","NaCl"]`, true},
		{"ascii arrow", "Na + Cl → NaCl", `["Na","+","Cl","->","NaCl"]`, true},
		{"double arrow", "Na + Cl → NaCl", `["Na","+","Cl","=>","NaCl"]`, true},
		{"equals sign", "Na + Cl → NaCl", `["Na","+","Cl","=","NaCl"]`, true},
		{"ascii solution, double arrow submission", "Na + Cl -> NaCl", `["Na","+","Cl","=>","NaCl"]`, true},
		{"spacing differences", "2 + 2 = 4", `["2","+","2","=","4"]`, true},
		{"case difference", "Open Sesame", `["open","sesame"]`, true},
		{"wrong fragment order", "Na + Cl → NaCl", `["NaCl","→","Na","+","Cl"]`, false},
		{"missing fragment", "Na + Cl → NaCl", `["Na","+","Cl"]`, false},
		{"empty submission", "Na + Cl → NaCl", `[]`, false},
		{"not an array", "Na + Cl → NaCl", `"Na + Cl → NaCl"`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			variant := model.PuzzleGame{Solution: tt.solution}
			if got := EvaluateAnswer(variant, json.RawMessage(tt.answer)); got != tt.want {
				t.Errorf("EvaluateAnswer(%s) = %v, want %v", tt.answer, got, tt.want)
			}
		})
	}
}

func TestEvaluateMatchingTask(t *testing.T) {
	variant := model.MatchingTask{
		LeftItems:  []string{"Sodium", "Chlorine"},
		RightItems: []string{"Halogen", "Alkali metal"},
		CorrectMatches: []model.MatchPair{
			{Left: 0, Right: 1},
			{Left: 1, Right: 0},
		},
	}

	tests := []struct {
		name   string
		answer string
		want   bool
	}{
		{"all pairs correct", `{"0":1,"1":0}`, true},
		{"one pair wrong", `{"0":0,"1":1}`, false},
		{"missing pair", `{"0":1}`, false},
		{"extra pair", `{"0":1,"1":0,"2":1}`, false},
		{"empty mapping", `{}`, false},
		{"not an object", `[[0,1],[1,0]]`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EvaluateAnswer(variant, json.RawMessage(tt.answer)); got != tt.want {
				t.Errorf("EvaluateAnswer(%s) = %v, want %v", tt.answer, got, tt.want)
			}
		})
	}
}
