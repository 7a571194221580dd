package controller

import (
	"ecowave_backend/internal/service"
	"ecowave_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ProfileController struct {
	ProfileService     *service.ProfileService
	LeaderboardService *service.LeaderboardService
}

func NewProfileController(profileService *service.ProfileService, leaderboardService *service.LeaderboardService) *ProfileController {
	return &ProfileController{ProfileService: profileService, LeaderboardService: leaderboardService}
}

// @Summary 个人档案
// @Description 获取用户档案、活动账单、成就和排行榜
// @Tags 档案
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/profile [get]
func (c *ProfileController) GetProfile(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	summary, err := c.ProfileService.GetProfile(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, summary)
}

// @Summary 排行榜
// @Description 获取含当前用户的积分排行榜
// @Tags 档案
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/leaderboard [get]
func (c *ProfileController) GetLeaderboard(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	entries, err := c.LeaderboardService.ComputeLeaderboard(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, entries)
}
