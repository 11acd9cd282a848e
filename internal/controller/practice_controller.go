package controller

import (
	"time"

	"lingua_tutor_backend/internal/service"
	"lingua_tutor_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// PracticeController 处理练习计划相关的HTTP请求
type PracticeController struct {
	PracticeService *service.PracticeService
}

func NewPracticeController(practiceService *service.PracticeService) *PracticeController {
	return &PracticeController{PracticeService: practiceService}
}

// PracticeNextRequest 练习计划请求
// swagger:model PracticeNextRequest
type PracticeNextRequest struct {
	UserID  string `json:"userId" binding:"required"`
	Context string `json:"context" binding:"required"`
	Level   string `json:"level" binding:"required,oneof=Beginner Intermediate Advanced"`
	Limit   int    `json:"limit" binding:"required,min=1,max=20"`
}

// Next godoc
// @Summary 下一步练习计划
// @Description 组装到期复习、弱项与新技能，总数不超过 limit
// @Tags 练习
// @Accept json
// @Produce json
// @Param body body PracticeNextRequest true "计划请求"
// @Success 200 {object} util.Response{data=model.PracticePlan} "成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Failure 500 {object} util.Response "服务器内部错误"
// @Router /practice/next [post]
func (c *PracticeController) Next(ctx *gin.Context) {
	var req PracticeNextRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	plan, err := c.PracticeService.Plan(req.UserID, req.Context, req.Level, req.Limit, time.Now())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, plan)
}
