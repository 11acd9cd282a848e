package service

import (
	"errors"

	"lingua_tutor_backend/internal/model"
	"lingua_tutor_backend/internal/repository"

	"gorm.io/gorm"
)

// ProfileService 学习者档案的读写。skill 调度核心只读取其中的
// 目标和语境字段，档案生命周期归这里管。
type ProfileService struct {
	profileRepo *repository.ProfileRepository
}

func NewProfileService(profileRepo *repository.ProfileRepository) *ProfileService {
	return &ProfileService{profileRepo: profileRepo}
}

// GetOrCreate 首次读取时惰性创建默认档案（新学习者不报错）
func (s *ProfileService) GetOrCreate(userID string) (*model.UserProfile, error) {
	profile, err := s.profileRepo.FindByUserID(userID)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	profile = model.DefaultProfile(userID)
	if err := s.profileRepo.Create(profile); err != nil {
		// 并发首读可能撞唯一索引，重查一次
		if existing, ferr := s.profileRepo.FindByUserID(userID); ferr == nil {
			return existing, nil
		}
		return nil, err
	}
	return profile, nil
}

// ProfileUpdate 档案写入的字段集合
type ProfileUpdate struct {
	NativeLanguage    string
	TargetLanguage    string
	Level             string
	DailyMinutesGoal  int
	WeeklyMinutesGoal int
	FocusContexts     []string
}

// Upsert 整体写入档案，不存在则先建默认再覆盖
func (s *ProfileService) Upsert(userID string, update ProfileUpdate) (*model.UserProfile, error) {
	profile, err := s.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}

	profile.NativeLanguage = update.NativeLanguage
	profile.TargetLanguage = update.TargetLanguage
	profile.Level = update.Level
	profile.DailyMinutesGoal = update.DailyMinutesGoal
	profile.WeeklyMinutesGoal = update.WeeklyMinutesGoal
	profile.SetFocusContexts(update.FocusContexts)

	if err := s.profileRepo.Update(profile); err != nil {
		return nil, err
	}
	return profile, nil
}
