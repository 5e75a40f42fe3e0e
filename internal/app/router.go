package app

import (
	"escape_room_backend/docs"
	"escape_room_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	api := router.Group("/api")
	{
		api.GET("/health", c.health.HealthCheck)

		// 任务与答题
		api.GET("/tasks", c.task.ListTasks)
		api.GET("/tasks/:taskId", c.task.GetTask)
		api.GET("/tasks/:taskId/questions", c.task.GetTaskQuestions)
		api.POST("/tasks/:taskId/submit", c.submission.Submit)

		// 中途进度存档
		api.POST("/tasks/:taskId/progress", c.task.SaveProgress)
		api.GET("/tasks/:taskId/progress", c.task.GetProgress)
		api.DELETE("/tasks/:taskId/progress", c.task.DeleteProgress)

		// 单题练习
		api.POST("/questions/:questionId/check", c.question.CheckAnswer)

		// 学生视图
		api.GET("/students/:studentId/profile", c.student.GetProfile)
		api.GET("/students/:studentId/achievements", c.student.GetAchievements)
		api.GET("/students/:studentId/history", c.student.GetHistory)
		api.GET("/students/:studentId/task-progress", c.student.GetTaskProgress)

		// 成就目录
		api.GET("/achievements", c.achievement.ListAchievements)

		// 教师看板
		api.GET("/dashboard/summary", c.dashboard.GetSummary)
		api.GET("/dashboard/report", c.dashboard.GetReport)
	}
}
