package controller

import (
	"ecowave_backend/internal/service"
	"ecowave_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type HomeController struct {
	HomeService *service.HomeService
}

func NewHomeController(homeService *service.HomeService) *HomeController {
	return &HomeController{HomeService: homeService}
}

// @Summary 首页数据
// @Description 获取用户档案、平台统计和最近动态
// @Tags 首页
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/home [get]
func (c *HomeController) GetHome(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	summary, err := c.HomeService.GetHome(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, summary)
}
