package controller

import (
	"errors"
	"strconv"

	"escape_room_backend/internal/service"
	"escape_room_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type SubmissionController struct {
	SubmissionService *service.SubmissionService
}

func NewSubmissionController(submissionService *service.SubmissionService) *SubmissionController {
	return &SubmissionController{SubmissionService: submissionService}
}

// @Summary 提交任务答案
// @Description 对一个任务的全部答案评分，记录成绩并结算成就
// @Tags 提交
// @Accept json
// @Produce json
// @Param taskId path int true "任务ID"
// @Param submission body service.SubmitRequest true "提交内容"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/tasks/{taskId}/submit [post]
func (c *SubmissionController) Submit(ctx *gin.Context) {
	taskID, err := strconv.Atoi(ctx.Param("taskId"))
	if err != nil {
		util.BadRequest(ctx, "Invalid task ID")
		return
	}

	var req service.SubmitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	resp, err := c.SubmissionService.Submit(uint(taskID), req)
	if err != nil {
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

	util.Success(ctx, resp)
}
