package controller

import (
	"time"

	"lingua_tutor_backend/internal/service"
	"lingua_tutor_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// ProgressController 处理进度汇总与时长流水相关的HTTP请求
type ProgressController struct {
	ProgressService *service.ProgressService
}

func NewProgressController(progressService *service.ProgressService) *ProgressController {
	return &ProgressController{ProgressService: progressService}
}

// GetProgress godoc
// @Summary 进度汇总
// @Description 今日与近7天练习分钟数及目标完成度
// @Tags 进度
// @Produce json
// @Param userId path string true "用户ID"
// @Success 200 {object} util.Response{data=model.ProgressSummary} "成功"
// @Failure 500 {object} util.Response "服务器内部错误"
// @Router /progress/{userId} [get]
func (c *ProgressController) GetProgress(ctx *gin.Context) {
	userID := ctx.Param("userId")

	summary, err := c.ProgressService.Progress(userID, time.Now())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, summary)
}

// LogActivityRequest 手动时长流水
// swagger:model LogActivityRequest
type LogActivityRequest struct {
	UserID  string `json:"userId" binding:"required"`
	Context string `json:"context"`
	Minutes int    `json:"minutes" binding:"min=0,max=480"`
	Turns   int    `json:"turns" binding:"min=0,max=500"`
}

// LogActivity godoc
// @Summary 追加时长流水
// @Tags 进度
// @Accept json
// @Produce json
// @Param body body LogActivityRequest true "流水"
// @Success 200 {object} util.Response "成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Router /activity/log [post]
func (c *ProgressController) LogActivity(ctx *gin.Context) {
	var req LogActivityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.ProgressService.LogActivity(req.UserID, req.Context, req.Minutes, req.Turns); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"ok": true})
}
