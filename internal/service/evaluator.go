package service

import (
	"encoding/json"
	"sort"
	"strconv"
	"strings"

	"escape_room_backend/internal/model"
)

// 化学反应式里 -> / => / = 统一归一成的箭头
const canonicalArrow = "→"

var arrowReplacer = strings.NewReplacer("->", canonicalArrow, "=>", canonicalArrow, "=", canonicalArrow)

// EvaluateAnswer 判定一道题的提交答案是否正确。纯函数，对任意输入都只返回
// true/false：载荷形状不符合题型时按答错处理，不报错（宽容提交策略）。
func EvaluateAnswer(variant model.QuestionVariant, raw json.RawMessage) bool {
	switch v := variant.(type) {
	case model.SingleChoice:
		return evaluateSingleChoice(v, raw)
	case model.MultipleChoice:
		return evaluateMultipleChoice(v, raw)
	case model.FillBlank:
		return evaluateFillBlank(v, raw)
	case model.PuzzleGame:
		return evaluatePuzzleGame(v, raw)
	case model.MatchingTask:
		return evaluateMatchingTask(v, raw)
	default:
		return false
	}
}

func evaluateSingleChoice(v model.SingleChoice, raw json.RawMessage) bool {
	var selected string
	if err := json.Unmarshal(raw, &selected); err != nil {
		return false
	}
	return strings.ToUpper(selected) == v.Correct
}

// 多选题：提交的索引集合与正确集合完全一致，顺序无关，不给部分分
func evaluateMultipleChoice(v model.MultipleChoice, raw json.RawMessage) bool {
	var selected []int
	if err := json.Unmarshal(raw, &selected); err != nil {
		return false
	}
	if len(selected) != len(v.CorrectIndices) {
		return false
	}
	a := append([]int(nil), selected...)
	b := append([]int(nil), v.CorrectIndices...)
	sort.Ints(a)
	sort.Ints(b)
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// 填空题：空数一致，逐空去首尾空白、忽略大小写比较
func evaluateFillBlank(v model.FillBlank, raw json.RawMessage) bool {
	var answers []string
	if err := json.Unmarshal(raw, &answers); err != nil {
		return false
	}
	if len(answers) != len(v.CorrectAnswers) {
		return false
	}
	for i, answer := range answers {
		got := strings.ToLower(strings.TrimSpace(answer))
		want := strings.ToLower(strings.TrimSpace(v.CorrectAnswers[i]))
		if got != want {
			return false
		}
	}
	return true
}

// 拼图题：碎片按提交顺序用空格拼成候选串，依次尝试四种匹配，
// 任何一种命中即为正确：
//  1. 去首尾空白后精确匹配
//  2. 去掉全部空格匹配（数字/化学式）
//  3. 箭头归一后去空格匹配（化学反应式的 -> / => / =）
//  4. 忽略大小写匹配
func evaluatePuzzleGame(v model.PuzzleGame, raw json.RawMessage) bool {
	var fragments []string
	if err := json.Unmarshal(raw, &fragments); err != nil {
		return false
	}
	candidate := strings.TrimSpace(strings.Join(fragments, " "))
	solution := strings.TrimSpace(v.Solution)

	if candidate == solution {
		return true
	}
	if stripSpaces(candidate) == stripSpaces(solution) {
		return true
	}
	if stripSpaces(arrowReplacer.Replace(candidate)) == stripSpaces(arrowReplacer.Replace(solution)) {
		return true
	}
	return strings.EqualFold(candidate, solution)
}

// 匹配题：每个正确配对都必须被提交映射覆盖，且不允许有多余配对
func evaluateMatchingTask(v model.MatchingTask, raw json.RawMessage) bool {
	var matches map[string]int
	if err := json.Unmarshal(raw, &matches); err != nil {
		return false
	}
	for _, pair := range v.CorrectMatches {
		right, ok := matches[strconv.Itoa(pair.Left)]
		if !ok || right != pair.Right {
			return false
		}
	}
	return len(matches) == len(v.CorrectMatches)
}

func stripSpaces(s string) string {
	return strings.ReplaceAll(s, " ", "")
}
