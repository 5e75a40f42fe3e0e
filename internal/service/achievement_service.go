package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"escape_room_backend/internal/config"
	"escape_room_backend/internal/model"
	"escape_room_backend/internal/repository"
	"escape_room_backend/pkg/logger"
	"escape_room_backend/pkg/monitoring"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const achievementCatalogKey = "achievements:catalog"

type AchievementService struct {
	AchievementRepo *repository.AchievementRepository
	ResultRepo      *repository.ResultRepository
	QuestionRepo    *repository.QuestionRepository
	TaskRepo        *repository.TaskRepository
	Redis           *redis.Client
	Config          config.AchievementsConfig
}

func NewAchievementService(
	achievementRepo *repository.AchievementRepository,
	resultRepo *repository.ResultRepository,
	questionRepo *repository.QuestionRepository,
	taskRepo *repository.TaskRepository,
	redisClient *redis.Client,
	cfg config.AchievementsConfig,
) *AchievementService {
	return &AchievementService{
		AchievementRepo: achievementRepo,
		ResultRepo:      resultRepo,
		QuestionRepo:    questionRepo,
		TaskRepo:        taskRepo,
		Redis:           redisClient,
		Config:          cfg,
	}
}

type UnlockedAchievement struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// EvaluateOnSubmission 在提交事务内结算四个内置成就。
// 规则条件满足但成就表里没有对应行时跳过该成就（目录可被管理员改动），
// 已解锁的成就靠唯一索引保持幂等，不会出现在返回值里。
func (s *AchievementService) EvaluateOnSubmission(tx *gorm.DB, student *model.Student, stats SubmissionStats) ([]UnlockedAchievement, error) {
	achievementRepo := repository.NewAchievementRepository(tx)
	resultRepo := repository.NewResultRepository(tx)
	questionRepo := repository.NewQuestionRepository(tx)
	taskRepo := repository.NewTaskRepository(tx)

	var satisfied []string

	if isPerfectScore(stats.CorrectCount, stats.QuestionsCount) {
		satisfied = append(satisfied, model.AchievementPerfectScore)
	}
	limit := time.Duration(s.Config.FastSolverMinutes) * time.Minute
	if isFastSolver(stats.StartedAt, stats.CompletedAt, limit) {
		satisfied = append(satisfied, model.AchievementFastSolver)
	}

	results, err := resultRepo.FindByStudentID(student.StudentID)
	if err != nil {
		return nil, err
	}

	resultStats := make([]taskResultStat, 0, len(results))
	for _, result := range results {
		qs, err := questionRepo.StatsByTaskID(result.TaskID)
		if err != nil {
			return nil, err
		}
		resultStats = append(resultStats, taskResultStat{
			TotalScore:    result.TotalScore,
			MaxScore:      qs.MaxScore,
			QuestionCount: qs.QuestionCount,
		})
	}
	if meetsAccuracyTarget(resultStats, 0.90) {
		satisfied = append(satisfied, model.AchievementAccuracyMaster)
	}

	totalTasks, err := taskRepo.Count()
	if err != nil {
		return nil, err
	}
	if isQuizWarrior(int64(len(results)), totalTasks, s.Config.MinTaskCount) {
		satisfied = append(satisfied, model.AchievementQuizWarrior)
	}

	var unlocked []UnlockedAchievement
	now := time.Now().UTC()
	for _, name := range satisfied {
		achievement, err := achievementRepo.FindByName(name)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, err
		}
		created, err := achievementRepo.CreateUnlock(&model.StudentAchievement{
			StudentID:       student.StudentID,
			StudentName:     student.RealName,
			AchievementID:   achievement.ID,
			AchievementName: achievement.Name,
			UnlockedAt:      now,
		})
		if err != nil {
			return nil, err
		}
		if created {
			unlocked = append(unlocked, UnlockedAchievement{ID: achievement.ID, Name: achievement.Name})
			monitoring.AchievementsUnlocked.WithLabelValues(achievement.Name).Inc()
		}
	}
	return unlocked, nil
}

type AchievementStatus struct {
	ID         uint       `json:"id"`
	Name       string     `json:"name"`
	Condition  string     `json:"condition"`
	Unlocked   bool       `json:"unlocked"`
	UnlockedAt *time.Time `json:"unlocked_at,omitempty"`
}

// GetStudentAchievements 成就目录连同该学生的解锁状态
func (s *AchievementService) GetStudentAchievements(studentID string) ([]AchievementStatus, error) {
	catalog, err := s.Catalog(context.Background())
	if err != nil {
		return nil, err
	}
	unlocks, err := s.AchievementRepo.FindUnlocksByStudentID(studentID)
	if err != nil {
		return nil, err
	}

	unlockedAt := make(map[uint]time.Time, len(unlocks))
	for _, u := range unlocks {
		unlockedAt[u.AchievementID] = u.UnlockedAt
	}

	statuses := make([]AchievementStatus, 0, len(catalog))
	for _, a := range catalog {
		status := AchievementStatus{ID: a.ID, Name: a.Name, Condition: a.Condition}
		if at, ok := unlockedAt[a.ID]; ok {
			status.Unlocked = true
			t := at
			status.UnlockedAt = &t
		}
		statuses = append(statuses, status)
	}
	return statuses, nil
}

// Catalog 成就目录，Redis 缓存 10 分钟，缓存故障时直接回源数据库
func (s *AchievementService) Catalog(ctx context.Context) ([]model.Achievement, error) {
	if s.Redis != nil {
		cached, err := s.Redis.Get(ctx, achievementCatalogKey).Result()
		if err == nil {
			var catalog []model.Achievement
			if err := json.Unmarshal([]byte(cached), &catalog); err == nil {
				return catalog, nil
			}
		} else if err != redis.Nil {
			logger.Log.Warn("redis get failed", zap.String("key", achievementCatalogKey), zap.Error(err))
		}
	}

	catalog, err := s.AchievementRepo.FindAll()
	if err != nil {
		return nil, err
	}

	if s.Redis != nil {
		if data, err := json.Marshal(catalog); err == nil {
			if err := s.Redis.Set(ctx, achievementCatalogKey, data, 10*time.Minute).Err(); err != nil {
				logger.Log.Warn("redis set failed", zap.String("key", achievementCatalogKey), zap.Error(err))
			}
		}
	}
	return catalog, nil
}
