package controller

import (
	"time"

	"lingua_tutor_backend/internal/model"
	"lingua_tutor_backend/internal/service"
	"lingua_tutor_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// SkillController 处理掌握度记录相关的HTTP请求
type SkillController struct {
	MasteryService *service.MasteryService
}

func NewSkillController(masteryService *service.MasteryService) *SkillController {
	return &SkillController{MasteryService: masteryService}
}

// ObservationInput 单条练习观测
// swagger:model ObservationInput
type ObservationInput struct {
	SkillID    string     `json:"skillId" binding:"required"`
	Outcome    string     `json:"outcome" binding:"required,oneof=correct incorrect"`
	OccurredAt *time.Time `json:"occurredAt"` // 缺省取服务端当前时间
}

// ObservationsRequest 一个批次的观测（通常来自同一个聊天回合）
// swagger:model ObservationsRequest
type ObservationsRequest struct {
	UserID       string             `json:"userId" binding:"required"`
	Context      string             `json:"context"`
	Observations []ObservationInput `json:"observations" binding:"required,min=1,dive"`
	Minutes      int                `json:"minutes" binding:"min=0,max=480"`
	Turns        int                `json:"turns" binding:"min=0,max=500"`
}

// RecordObservations godoc
// @Summary 记录练习观测
// @Description 将一批 (skill_id, outcome) 观测作为一个逻辑批次应用到掌握度记录
// @Tags 技能
// @Accept json
// @Produce json
// @Param body body ObservationsRequest true "观测批次"
// @Success 200 {object} util.Response{data=service.BatchResult} "成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Failure 500 {object} util.Response "服务器内部错误"
// @Router /skills/observations [post]
func (c *SkillController) RecordObservations(ctx *gin.Context) {
	var req ObservationsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	now := time.Now()
	observations := make([]model.Observation, 0, len(req.Observations))
	for _, in := range req.Observations {
		occurredAt := now
		if in.OccurredAt != nil {
			occurredAt = *in.OccurredAt
		}
		observations = append(observations, model.Observation{
			SkillID:    in.SkillID,
			Outcome:    model.PracticeOutcome(in.Outcome),
			OccurredAt: occurredAt,
		})
	}

	result, err := c.MasteryService.ApplyObservations(req.UserID, req.Context, observations, req.Minutes, req.Turns)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, result)
}

// ListSkills godoc
// @Summary 技能记录列表
// @Description 用户全部掌握度记录，按到期时间升序
// @Tags 技能
// @Produce json
// @Param userId path string true "用户ID"
// @Success 200 {object} util.Response{data=[]model.SkillOut} "成功"
// @Router /skills/{userId} [get]
func (c *SkillController) ListSkills(ctx *gin.Context) {
	userID := ctx.Param("userId")

	skills, err := c.MasteryService.ListSkills(userID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, skills)
}
