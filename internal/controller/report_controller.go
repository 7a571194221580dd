package controller

import (
	"ecowave_backend/internal/service"
	"ecowave_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ReportController struct {
	ReportService *service.ReportService
}

func NewReportController(reportService *service.ReportService) *ReportController {
	return &ReportController{ReportService: reportService}
}

// @Summary 提交污染上报
// @Description 上报一处海洋污染，成功奖励50分
// @Tags 上报
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param report body service.ReportRequest true "上报内容"
// @Success 201 {object} util.Response
// @Router /api/reports [post]
func (c *ReportController) SubmitReport(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.ReportRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.ReportService.SubmitReport(user.UserID, req)
	if err != nil {
		switch err {
		case util.ErrEmptyDescription, util.ErrUnresolvedLocation:
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, result)
}

// @Summary 我的上报
// @Description 列出当前用户提交过的污染上报
// @Tags 上报
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/reports [get]
func (c *ReportController) GetMyReports(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	reports, err := c.ReportService.ListMyReports(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, reports)
}
