package controller

import (
	"errors"
	"strconv"

	"escape_room_backend/internal/service"
	"escape_room_backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type TaskController struct {
	TaskService *service.TaskService
}

func NewTaskController(taskService *service.TaskService) *TaskController {
	return &TaskController{TaskService: taskService}
}

// @Summary 任务列表
// @Description 获取全部任务
// @Tags 任务
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/tasks [get]
func (c *TaskController) ListTasks(ctx *gin.Context) {
	tasks, err := c.TaskService.ListTasks()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, tasks)
}

// @Summary 任务详情
// @Tags 任务
// @Produce json
// @Param taskId path int true "任务ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/tasks/{taskId} [get]
func (c *TaskController) GetTask(ctx *gin.Context) {
	taskID, err := strconv.Atoi(ctx.Param("taskId"))
	if err != nil {
		util.BadRequest(ctx, "Invalid task ID")
		return
	}

	task, err := c.TaskService.GetTask(uint(taskID))
	if err != nil {
		if errors.Is(err, util.ErrTaskNotFound) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, task)
}

// @Summary 任务题目
// @Description 获取任务的题目列表，不含正确答案
// @Tags 任务
// @Produce json
// @Param taskId path int true "任务ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/tasks/{taskId}/questions [get]
func (c *TaskController) GetTaskQuestions(ctx *gin.Context) {
	taskID, err := strconv.Atoi(ctx.Param("taskId"))
	if err != nil {
		util.BadRequest(ctx, "Invalid task ID")
		return
	}

	questions, err := c.TaskService.GetTaskQuestions(uint(taskID))
	if err != nil {
		if errors.Is(err, util.ErrTaskNotFound) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, questions)
}

// @Summary 保存答题进度
// @Tags 任务
// @Accept json
// @Produce json
// @Param taskId path int true "任务ID"
// @Param progress body service.SaveProgressRequest true "进度"
// @Success 200 {object} util.Response
// @Router /api/tasks/{taskId}/progress [post]
func (c *TaskController) SaveProgress(ctx *gin.Context) {
	taskID, err := strconv.Atoi(ctx.Param("taskId"))
	if err != nil {
		util.BadRequest(ctx, "Invalid task ID")
		return
	}

	var req service.SaveProgressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.TaskService.SaveProgress(uint(taskID), req); err != nil {
		switch {
		case errors.Is(err, util.ErrInvalidSubmission):
			util.BadRequest(ctx, err.Error())
		case errors.Is(err, util.ErrStudentNotFound), errors.Is(err, util.ErrTaskNotFound):
			util.NotFound(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, gin.H{"message": "Progress saved"})
}

// @Summary 获取答题进度
// @Tags 任务
// @Produce json
// @Param taskId path int true "任务ID"
// @Param student_id query string true "学号"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/tasks/{taskId}/progress [get]
func (c *TaskController) GetProgress(ctx *gin.Context) {
	taskID, err := strconv.Atoi(ctx.Param("taskId"))
	if err != nil {
		util.BadRequest(ctx, "Invalid task ID")
		return
	}
	studentID := ctx.Query("student_id")
	if studentID == "" {
		util.BadRequest(ctx, "student_id is required")
		return
	}

	progress, err := c.TaskService.GetProgress(uint(taskID), studentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx, "progress not found")
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, progress)
}

// @Summary 删除答题进度
// @Tags 任务
// @Produce json
// @Param taskId path int true "任务ID"
// @Param student_id query string true "学号"
// @Success 200 {object} util.Response
// @Router /api/tasks/{taskId}/progress [delete]
func (c *TaskController) DeleteProgress(ctx *gin.Context) {
	taskID, err := strconv.Atoi(ctx.Param("taskId"))
	if err != nil {
		util.BadRequest(ctx, "Invalid task ID")
		return
	}
	studentID := ctx.Query("student_id")
	if studentID == "" {
		util.BadRequest(ctx, "student_id is required")
		return
	}

	if err := c.TaskService.DeleteProgress(uint(taskID), studentID); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"message": "Progress deleted"})
}
