package model

import "time"

// SkillOut 练习计划/技能列表里的单条技能视图
// swagger:model SkillOut
type SkillOut struct {
	SkillID      string     `json:"skillId"`
	Strength     float64    `json:"strength"`
	IntervalDays int        `json:"intervalDays"`
	NextDue      *time.Time `json:"nextDue"`
	Streak       int        `json:"streak"`
	Mistakes     int        `json:"mistakes"`
}

// PracticePlan 每次请求即时计算，不做跨请求缓存
// swagger:model PracticePlan
type PracticePlan struct {
	ScenarioPrompt string     `json:"scenarioPrompt"`
	Due            []SkillOut `json:"due"`
	Weak           []SkillOut `json:"weak"`
	New            []string   `json:"new"`
}

// ProgressSummary 今日/本周练习时长与目标完成度
// swagger:model ProgressSummary
type ProgressSummary struct {
	UserID       string     `json:"userId"`
	TodayMinutes int        `json:"todayMinutes"`
	WeekMinutes  int        `json:"weekMinutes"`
	DailyGoal    int        `json:"dailyGoal"`
	WeeklyGoal   int        `json:"weeklyGoal"`
	DailyPct     float64    `json:"dailyPct"`
	WeeklyPct    float64    `json:"weeklyPct"`
	LastActivity *time.Time `json:"lastActivity"`
}

// SkillView 由 SkillRecord 派生出对外视图
func SkillView(r *SkillRecord) SkillOut {
	return SkillOut{
		SkillID:      r.SkillID,
		Strength:     r.Strength,
		IntervalDays: r.IntervalDays,
		NextDue:      r.NextDue,
		Streak:       r.Streak,
		Mistakes:     r.Mistakes,
	}
}
