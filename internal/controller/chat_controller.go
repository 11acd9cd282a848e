package controller

import (
	"strconv"

	"lingua_tutor_backend/internal/service"
	"lingua_tutor_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// ChatController 处理辅导对话相关的HTTP请求
type ChatController struct {
	ChatService *service.ChatService
}

func NewChatController(chatService *service.ChatService) *ChatController {
	return &ChatController{ChatService: chatService}
}

// ChatRequest 辅导对话请求
// swagger:model ChatRequest
type ChatRequest struct {
	UserID  string `json:"userId" binding:"required"`
	Context string `json:"context" binding:"required"`
	Level   string `json:"level" binding:"required,oneof=Beginner Intermediate Advanced"`
	Message string `json:"message" binding:"required"`
}

// Chat godoc
// @Summary 辅导对话回合
// @Description 提交一个用户回合，返回辅导回复并更新技能掌握度
// @Tags 对话
// @Accept json
// @Produce json
// @Param body body ChatRequest true "对话请求"
// @Success 200 {object} util.Response{data=service.TurnResult} "成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Failure 500 {object} util.Response "服务器内部错误"
// @Router /chat [post]
func (c *ChatController) Chat(ctx *gin.Context) {
	var req ChatRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.ChatService.HandleTurn(ctx.Request.Context(), req.UserID, req.Context, req.Level, req.Message)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, result)
}

// GetHistory godoc
// @Summary 获取对话历史
// @Description 按时间正序返回最近的对话回合
// @Tags 对话
// @Produce json
// @Param userId path string true "用户ID"
// @Param limit query int false "条数上限" default(30)
// @Success 200 {object} util.Response{data=[]model.ChatTurn} "成功"
// @Router /history/{userId} [get]
func (c *ChatController) GetHistory(ctx *gin.Context) {
	userID := ctx.Param("userId")
	limit, err := strconv.Atoi(ctx.DefaultQuery("limit", "30"))
	if err != nil || limit < 1 || limit > 200 {
		util.BadRequest(ctx, "limit must be an integer in [1,200]")
		return
	}

	turns, err := c.ChatService.History(userID, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, turns)
}

// ClearHistory godoc
// @Summary 清空对话历史
// @Tags 对话
// @Produce json
// @Param userId path string true "用户ID"
// @Success 200 {object} util.Response "成功"
// @Router /history/{userId}/clear [post]
func (c *ChatController) ClearHistory(ctx *gin.Context) {
	userID := ctx.Param("userId")
	if err := c.ChatService.ClearHistory(ctx.Request.Context(), userID); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"ok": true})
}
