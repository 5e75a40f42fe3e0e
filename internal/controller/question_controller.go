package controller

import (
	"encoding/json"
	"errors"
	"strconv"

	"escape_room_backend/internal/service"
	"escape_room_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuestionController struct {
	TaskService *service.TaskService
}

func NewQuestionController(taskService *service.TaskService) *QuestionController {
	return &QuestionController{TaskService: taskService}
}

// @Summary 单题校验
// @Description 即时判断单题答案是否正确，不记录成绩
// @Tags 题目
// @Accept json
// @Produce json
// @Param questionId path int true "题目ID"
// @Param answer body object true "答案"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/questions/{questionId}/check [post]
func (c *QuestionController) CheckAnswer(ctx *gin.Context) {
	questionID, err := strconv.Atoi(ctx.Param("questionId"))
	if err != nil {
		util.BadRequest(ctx, "Invalid question ID")
		return
	}

	var req struct {
		Answer json.RawMessage `json:"answer"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.TaskService.CheckSingleAnswer(uint(questionID), req.Answer)
	if err != nil {
		if errors.Is(err, util.ErrQuestionNotFound) {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, result)
}
