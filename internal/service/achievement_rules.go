package service

import "time"

// SubmissionStats 成就结算需要的本次提交快照
type SubmissionStats struct {
	CorrectCount   int
	QuestionsCount int
	StartedAt      *time.Time
	CompletedAt    time.Time
}

// taskResultStat 某个历史成绩对应任务的满分与题目数
type taskResultStat struct {
	TotalScore    int
	MaxScore      int
	QuestionCount int
}

func isPerfectScore(correct, questions int) bool {
	return questions > 0 && correct == questions
}

func isFastSolver(startedAt *time.Time, completedAt time.Time, limit time.Duration) bool {
	if startedAt == nil {
		return false
	}
	elapsed := completedAt.Sub(*startedAt)
	return elapsed >= 0 && elapsed <= limit
}

// overallAccuracy 按历史成绩估算总正确率。
// 成绩表只存总分，单题对错没有留痕，按 分数/满分 的比例折算回答对的题数再取整。
// 满分为 0 的任务没有信息量，跳过。
func overallAccuracy(stats []taskResultStat) (answered int, correct int) {
	for _, s := range stats {
		if s.MaxScore <= 0 {
			continue
		}
		answered += s.QuestionCount
		correct += int(float64(s.TotalScore) / float64(s.MaxScore) * float64(s.QuestionCount))
	}
	return answered, correct
}

func meetsAccuracyTarget(stats []taskResultStat, target float64) bool {
	answered, correct := overallAccuracy(stats)
	if answered == 0 {
		return false
	}
	return float64(correct)/float64(answered) >= target
}

func isQuizWarrior(completed, total int64, minTotal int) bool {
	return total >= int64(minTotal) && completed >= total
}
