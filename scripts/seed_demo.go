// 手动写入演示数据脚本
//
// 建库迁移后运行一次，插入示例学生、任务和覆盖全部题型的题目，
// 方便前端联调和本地体验。已有数据时跳过，不会重复写入。
//
// 用法: go run scripts/seed_demo.go

package main

import (
	"log"
	"os"

	"escape_room_backend/internal/config"
	"escape_room_backend/internal/model"
	"escape_room_backend/pkg/database"
	"escape_room_backend/pkg/logger"

	"gopkg.in/yaml.v3"
)

func main() {
	data, err := os.ReadFile("configs/config.yaml")
	if err != nil {
		log.Fatalf("无法读取配置文件: %v", err)
	}

	var cfg config.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		log.Fatalf("解析配置文件失败: %v", err)
	}

	logger.InitLogger(&cfg)

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		log.Fatalf("数据库连接失败: %v", err)
	}

	var count int64
	db.Model(&model.Task{}).Count(&count)
	if count > 0 {
		log.Println("已有任务数据，跳过演示数据写入")
		return
	}

	students := []model.Student{
		{RealName: "Alice Chen", StudentID: "20250001", Username: "alice"},
		{RealName: "Bob Lin", StudentID: "20250002", Username: "bob"},
	}
	for i := range students {
		db.Create(&students[i])
	}

	task := model.Task{
		Name:         "Chemistry Lab Escape",
		Introduction: "解开化学实验室里的谜题才能逃出去",
	}
	db.Create(&task)

	questions := []model.Question{
		{
			TaskID:        task.ID,
			Question:      "Which element has the symbol Na?",
			QuestionType:  model.QuestionSingleChoice,
			OptionA:       "Nitrogen",
			OptionB:       "Sodium",
			OptionC:       "Neon",
			OptionD:       "Nickel",
			CorrectAnswer: "B",
			Difficulty:    "easy",
			Score:         10,
		},
		{
			TaskID:       task.ID,
			Question:     "Select all noble gases",
			QuestionType: model.QuestionMultipleChoice,
			QuestionData: `{"options":["Helium","Oxygen","Argon","Chlorine"],"correct_answers":[0,2]}`,
			Difficulty:   "medium",
			Score:        15,
		},
		{
			TaskID:       task.ID,
			Question:     "Water is made of hydrogen and ____",
			QuestionType: model.QuestionFillBlank,
			QuestionData: `{"blank_answers":["oxygen"]}`,
			Difficulty:   "easy",
			Score:        10,
		},
		{
			TaskID:       task.ID,
			Question:     "Assemble the reaction equation",
			QuestionType: model.QuestionPuzzleGame,
			QuestionData: `{"puzzle_solution":"Na + Cl → NaCl","puzzle_fragments":["Na","+","Cl","→","NaCl"]}`,
			Difficulty:   "hard",
			Score:        20,
		},
		{
			TaskID:       task.ID,
			Question:     "Match each element to its group",
			QuestionType: model.QuestionMatchingTask,
			QuestionData: `{"left_items":["Sodium","Chlorine"],"right_items":["Halogen","Alkali metal"],"correct_matches":[{"left":0,"right":1},{"left":1,"right":0}]}`,
			Difficulty:   "medium",
			Score:        15,
		},
	}
	for i := range questions {
		db.Create(&questions[i])
	}

	log.Println("演示数据写入完成")
}
