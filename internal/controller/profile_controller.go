package controller

import (
	"lingua_tutor_backend/internal/model"
	"lingua_tutor_backend/internal/service"
	"lingua_tutor_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// ProfileController 处理学习者档案相关的HTTP请求
type ProfileController struct {
	ProfileService *service.ProfileService
}

func NewProfileController(profileService *service.ProfileService) *ProfileController {
	return &ProfileController{ProfileService: profileService}
}

// ProfileResponse 对外档案视图（focus_contexts 展开为列表）
// swagger:model ProfileResponse
type ProfileResponse struct {
	UserID            string   `json:"userId"`
	NativeLanguage    string   `json:"nativeLanguage"`
	TargetLanguage    string   `json:"targetLanguage"`
	Level             string   `json:"level"`
	DailyMinutesGoal  int      `json:"dailyMinutesGoal"`
	WeeklyMinutesGoal int      `json:"weeklyMinutesGoal"`
	FocusContexts     []string `json:"focusContexts"`
}

func profileView(p *model.UserProfile) ProfileResponse {
	return ProfileResponse{
		UserID:            p.UserID,
		NativeLanguage:    p.NativeLanguage,
		TargetLanguage:    p.TargetLanguage,
		Level:             p.Level,
		DailyMinutesGoal:  p.DailyMinutesGoal,
		WeeklyMinutesGoal: p.WeeklyMinutesGoal,
		FocusContexts:     p.FocusContextList(),
	}
}

// GetProfile godoc
// @Summary 获取学习者档案
// @Description 不存在时创建默认档案返回
// @Tags 档案
// @Produce json
// @Param userId path string true "用户ID"
// @Success 200 {object} util.Response{data=ProfileResponse} "成功"
// @Router /profile/{userId} [get]
func (c *ProfileController) GetProfile(ctx *gin.Context) {
	userID := ctx.Param("userId")

	profile, err := c.ProfileService.GetOrCreate(userID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, profileView(profile))
}

// UpdateProfileRequest 档案写入请求
// swagger:model UpdateProfileRequest
type UpdateProfileRequest struct {
	NativeLanguage    string   `json:"nativeLanguage" binding:"required"`
	TargetLanguage    string   `json:"targetLanguage" binding:"required"`
	Level             string   `json:"level" binding:"required,oneof=Beginner Intermediate Advanced"`
	DailyMinutesGoal  int      `json:"dailyMinutesGoal" binding:"required,min=1,max=240"`
	WeeklyMinutesGoal int      `json:"weeklyMinutesGoal" binding:"required,min=1,max=2000"`
	FocusContexts     []string `json:"focusContexts" binding:"required,min=1"`
}

// UpdateProfile godoc
// @Summary 写入学习者档案
// @Tags 档案
// @Accept json
// @Produce json
// @Param userId path string true "用户ID"
// @Param body body UpdateProfileRequest true "档案"
// @Success 200 {object} util.Response{data=ProfileResponse} "成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Router /profile/{userId} [put]
func (c *ProfileController) UpdateProfile(ctx *gin.Context) {
	userID := ctx.Param("userId")

	var req UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	profile, err := c.ProfileService.Upsert(userID, service.ProfileUpdate{
		NativeLanguage:    req.NativeLanguage,
		TargetLanguage:    req.TargetLanguage,
		Level:             req.Level,
		DailyMinutesGoal:  req.DailyMinutesGoal,
		WeeklyMinutesGoal: req.WeeklyMinutesGoal,
		FocusContexts:     req.FocusContexts,
	})
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, profileView(profile))
}
