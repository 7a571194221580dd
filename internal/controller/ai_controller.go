package controller

import (
	"ecowave_backend/internal/service"
	"ecowave_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AIController struct {
	AIService      *service.AIService
	PodcastService *service.PodcastService
}

func NewAIController(aiService *service.AIService, podcastService *service.PodcastService) *AIController {
	return &AIController{AIService: aiService, PodcastService: podcastService}
}

type chatRequest struct {
	Message string `json:"message" binding:"required"`
	Image   string `json:"image"`
}

type simulateRequest struct {
	Scenario string `json:"scenario" binding:"required"`
}

type podcastRequest struct {
	Topic string `json:"topic" binding:"required"`
}

// @Summary AI问答
// @Description 向海洋保护助手提问，可附带一张base64图片
// @Tags AI
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param chat body chatRequest true "问题"
// @Success 200 {object} util.Response
// @Router /api/ai/chat [post]
func (c *AIController) Chat(ctx *gin.Context) {
	var req chatRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	reply := c.AIService.Chat(req.Message, req.Image)
	util.Success(ctx, gin.H{"reply": reply})
}

// @Summary 生态模拟
// @Description 让AI预测假设场景对海洋十年尺度的生态影响
// @Tags AI
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param scenario body simulateRequest true "假设场景"
// @Success 200 {object} util.Response
// @Router /api/ai/simulate [post]
func (c *AIController) Simulate(ctx *gin.Context) {
	var req simulateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.AIService.Simulate(req.Scenario)
	if err != nil {
		util.BadGateway(ctx, "Simulation unavailable, please try again later")
		return
	}

	util.Success(ctx, result)
}

// @Summary 生成播客
// @Description 就指定话题合成一段语音播报
// @Tags AI
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param topic body podcastRequest true "播客话题"
// @Success 200 {object} util.Response
// @Router /api/ai/podcast [post]
func (c *AIController) GeneratePodcast(ctx *gin.Context) {
	var req podcastRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.PodcastService.GeneratePodcast(req.Topic)
	if err != nil {
		util.BadGateway(ctx, "Speech synthesis unavailable, please try again later")
		return
	}

	util.Success(ctx, result)
}
