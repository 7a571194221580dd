package controller

import (
	"ecowave_backend/internal/service"
	"ecowave_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type EducationController struct {
	EducationService *service.EducationService
}

func NewEducationController(educationService *service.EducationService) *EducationController {
	return &EducationController{EducationService: educationService}
}

// @Summary 学习内容目录
// @Description 按类型和关键字检索学习内容
// @Tags 学习
// @Produce json
// @Security BearerAuth
// @Param type query string false "内容类型，All或空表示全部"
// @Param search query string false "标题/分类关键字"
// @Success 200 {object} util.Response
// @Router /api/education [get]
func (c *EducationController) GetCatalog(ctx *gin.Context) {
	contents, err := c.EducationService.FetchCatalog(ctx.Query("type"), ctx.Query("search"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, contents)
}

// @Summary 完成学习内容
// @Description 标记一条内容学完，奖励25分
// @Tags 学习
// @Produce json
// @Security BearerAuth
// @Param id path string true "内容ID"
// @Success 200 {object} util.Response
// @Router /api/education/{id}/complete [post]
func (c *EducationController) CompleteContent(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	updated, err := c.EducationService.CompleteContent(user.UserID, ctx.Param("id"))
	if err != nil {
		if err == util.ErrContentNotFound {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"points": updated.Points, "level": updated.Level})
}
