package controller

import (
	"escape_room_backend/internal/service"
	"escape_room_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	StudentService *service.StudentService
}

func NewDashboardController(studentService *service.StudentService) *DashboardController {
	return &DashboardController{StudentService: studentService}
}

// @Summary 平台总览
// @Description 学生数、任务数、活跃学生数与提交总量
// @Tags 看板
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/dashboard/summary [get]
func (c *DashboardController) GetSummary(ctx *gin.Context) {
	summary, err := c.StudentService.GetDashboardSummary(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, summary)
}

// @Summary 任务完成报表
// @Description 每个任务的完成人数与平均分
// @Tags 看板
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/dashboard/report [get]
func (c *DashboardController) GetReport(ctx *gin.Context) {
	report, err := c.StudentService.GetDashboardReport(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, report)
}
