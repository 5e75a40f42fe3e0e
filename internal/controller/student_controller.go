package controller

import (
	"errors"

	"escape_room_backend/internal/service"
	"escape_room_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type StudentController struct {
	StudentService     *service.StudentService
	AchievementService *service.AchievementService
}

func NewStudentController(studentService *service.StudentService, achievementService *service.AchievementService) *StudentController {
	return &StudentController{
		StudentService:     studentService,
		AchievementService: achievementService,
	}
}

// @Summary 学生概况
// @Description 完成任务数、累计得分和估算正确率
// @Tags 学生
// @Produce json
// @Param studentId path string true "学号"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/students/{studentId}/profile [get]
func (c *StudentController) GetProfile(ctx *gin.Context) {
	profile, err := c.StudentService.GetProfile(ctx.Param("studentId"))
	if err != nil {
		if errors.Is(err, util.ErrStudentNotFound) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, profile)
}

// @Summary 学生成就
// @Description 成就目录连同该学生的解锁状态
// @Tags 学生
// @Produce json
// @Param studentId path string true "学号"
// @Success 200 {object} util.Response
// @Router /api/students/{studentId}/achievements [get]
func (c *StudentController) GetAchievements(ctx *gin.Context) {
	achievements, err := c.AchievementService.GetStudentAchievements(ctx.Param("studentId"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, achievements)
}

// @Summary 学生完成记录
// @Tags 学生
// @Produce json
// @Param studentId path string true "学号"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/students/{studentId}/history [get]
func (c *StudentController) GetHistory(ctx *gin.Context) {
	history, err := c.StudentService.GetHistory(ctx.Param("studentId"))
	if err != nil {
		if errors.Is(err, util.ErrStudentNotFound) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, history)
}

// @Summary 学生进行中任务
// @Description 所有未提交任务的进度存档
// @Tags 学生
// @Produce json
// @Param studentId path string true "学号"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/students/{studentId}/task-progress [get]
func (c *StudentController) GetTaskProgress(ctx *gin.Context) {
	progress, err := c.StudentService.GetTaskProgress(ctx.Param("studentId"))
	if err != nil {
		if errors.Is(err, util.ErrStudentNotFound) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, progress)
}
