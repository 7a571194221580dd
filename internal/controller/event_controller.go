package controller

import (
	"ecowave_backend/internal/service"
	"ecowave_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type EventController struct {
	EventService *service.EventService
}

func NewEventController(eventService *service.EventService) *EventController {
	return &EventController{EventService: eventService}
}

// @Summary 活动列表
// @Description 获取全部清滩活动，附带当前用户的参加状态
// @Tags 活动
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/events [get]
func (c *EventController) GetEvents(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	events, err := c.EventService.ListEvents(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, events)
}

// @Summary 参加/退出活动
// @Description 切换参加状态，参加奖励100分，退出不扣分
// @Tags 活动
// @Produce json
// @Security BearerAuth
// @Param id path string true "活动ID"
// @Success 200 {object} util.Response
// @Router /api/events/{id}/toggle [post]
func (c *EventController) ToggleJoin(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	result, err := c.EventService.ToggleJoin(user.UserID, ctx.Param("id"))
	if err != nil {
		if err == util.ErrEventNotFound {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, result)
}
