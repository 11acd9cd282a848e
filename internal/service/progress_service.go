package service

import (
	"errors"
	"sync"
	"time"

	"lingua_tutor_backend/internal/config"
	"lingua_tutor_backend/internal/model"
	"lingua_tutor_backend/internal/repository"

	"gorm.io/gorm"
)

// ProgressService 从时长流水聚合今日/近7天进度并对照档案目标。
// 日/周边界是 now 在参考时区下的纯函数，没有后台定时任务。
type ProgressService struct {
	activityRepo *repository.ActivityRepository
	profileRepo  *repository.ProfileRepository

	locMu sync.RWMutex
	loc   *time.Location
}

func NewProgressService(
	activityRepo *repository.ActivityRepository,
	profileRepo *repository.ProfileRepository,
	cfg config.AdaptiveConfig,
) *ProgressService {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		loc = time.UTC
	}
	return &ProgressService{
		activityRepo: activityRepo,
		profileRepo:  profileRepo,
		loc:          loc,
	}
}

// UpdateTuning 配置热加载回调（只关心参考时区）
func (s *ProgressService) UpdateTuning(cfg config.AdaptiveConfig) {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return
	}
	s.locMu.Lock()
	s.loc = loc
	s.locMu.Unlock()
}

func (s *ProgressService) location() *time.Location {
	s.locMu.RLock()
	defer s.locMu.RUnlock()
	return s.loc
}

// Progress 今日与近7个完整日历日（含今日）的分钟数及目标完成度。
// 没有档案的新学习者按默认目标计算，不报错。
func (s *ProgressService) Progress(userID string, now time.Time) (*model.ProgressSummary, error) {
	profile, err := s.profileRepo.FindByUserID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		profile = model.DefaultProfile(userID)
	} else if err != nil {
		return nil, err
	}

	loc := s.location()
	local := now.In(loc)
	startToday := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	endToday := startToday.AddDate(0, 0, 1)
	startWeek := startToday.AddDate(0, 0, -6)

	todayMinutes, err := s.activityRepo.SumMinutes(userID, startToday, endToday)
	if err != nil {
		return nil, err
	}
	weekMinutes, err := s.activityRepo.SumMinutes(userID, startWeek, endToday)
	if err != nil {
		return nil, err
	}
	lastActivity, err := s.activityRepo.LastActivity(userID)
	if err != nil {
		return nil, err
	}

	return &model.ProgressSummary{
		UserID:       userID,
		TodayMinutes: todayMinutes,
		WeekMinutes:  weekMinutes,
		DailyGoal:    profile.DailyMinutesGoal,
		WeeklyGoal:   profile.WeeklyMinutesGoal,
		DailyPct:     goalPct(todayMinutes, profile.DailyMinutesGoal),
		WeeklyPct:    goalPct(weekMinutes, profile.WeeklyMinutesGoal),
		LastActivity: lastActivity,
	}, nil
}

// LogActivity 手动追加一条时长流水
func (s *ProgressService) LogActivity(userID, context string, minutes, turns int) error {
	return s.activityRepo.Append(&model.ActivityLog{
		UserID:  userID,
		Context: context,
		Minutes: minutes,
		Turns:   turns,
		Ts:      time.Now(),
	})
}

// goalPct 完成度封顶 1.0，目标非正时按 0 处理，杜绝除零
func goalPct(minutes, goal int) float64 {
	if goal <= 0 {
		return 0
	}
	pct := float64(minutes) / float64(goal)
	if pct > 1.0 {
		pct = 1.0
	}
	return pct
}
