package database

import (
	"fmt"
	"log"

	"escape_room_backend/internal/config"
	"escape_room_backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	err = db.AutoMigrate(
		&model.Student{},
		&model.Task{},
		&model.Question{},
		&model.StudentTaskResult{},
		&model.StudentTaskProcess{},
		&model.Achievement{},
		&model.StudentAchievement{},
	)

	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	// 内置成就目录，只在空表时写入
	var count int64
	db.Model(&model.Achievement{}).Count(&count)
	if count == 0 {
		defaultAchievements := []model.Achievement{
			{Name: model.AchievementPerfectScore, Condition: "一次提交全部答对"},
			{Name: model.AchievementFastSolver, Condition: "在时限内完成一个任务"},
			{Name: model.AchievementAccuracyMaster, Condition: "累计正确率达到 90%"},
			{Name: model.AchievementQuizWarrior, Condition: "完成平台上的全部任务"},
		}
		for _, a := range defaultAchievements {
			db.Create(&a)
		}
	}

	return db, nil
}
