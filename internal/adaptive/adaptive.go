package adaptive

import (
	"errors"
	"math"
	"sort"
	"time"

	"lingua_tutor_backend/internal/config"
	"lingua_tutor_backend/internal/model"
)

// ErrStaleObservation 观测时间早于该技能最近一次练习时间，乱序更新被拒绝
var ErrStaleObservation = errors.New("stale observation: occurred before last practice")

// Tuning 调度算法的全部数值参数，来自配置，支持热更新
type Tuning struct {
	InitialStrength   float64
	BaseGain          float64
	GainDecay         float64
	Penalty           float64
	GrowthBase        float64
	GrowthStep        float64
	GrowthMax         float64
	MaxIntervalDays   int
	WeaknessThreshold float64
}

// TuningFromConfig 从配置段构造参数
func TuningFromConfig(cfg config.AdaptiveConfig) Tuning {
	return Tuning{
		InitialStrength:   cfg.InitialStrength,
		BaseGain:          cfg.BaseGain,
		GainDecay:         cfg.GainDecay,
		Penalty:           cfg.Penalty,
		GrowthBase:        cfg.GrowthBase,
		GrowthStep:        cfg.GrowthStep,
		GrowthMax:         cfg.GrowthMax,
		MaxIntervalDays:   cfg.MaxIntervalDays,
		WeaknessThreshold: cfg.WeaknessThreshold,
	}
}

// Gain 一次正确观测带来的掌握度增量，随连对次数递减，
// 防止少量简单重复就把 strength 刷满
func (t Tuning) Gain(streak int) float64 {
	return t.BaseGain / (1.0 + t.GainDecay*float64(streak))
}

// Growth 间隔增长因子，> 1 且随连对次数递增
func (t Tuning) Growth(streak int) float64 {
	g := t.GrowthBase + t.GrowthStep*float64(streak-1)
	if g > t.GrowthMax {
		g = t.GrowthMax
	}
	return g
}

// NewRecord 首次观测某技能时的初始记录
func NewRecord(userID, skillID string, t Tuning) *model.SkillRecord {
	return &model.SkillRecord{
		UserID:       userID,
		SkillID:      skillID,
		Strength:     t.InitialStrength,
		IntervalDays: 1,
		Streak:       0,
		Mistakes:     0,
	}
}

// Apply 把一次练习观测作用到掌握度记录上（原地修改）。
// 不变量：strength ∈ [0,1]，interval_days >= 1，mistakes 只增不减，
// next_due >= last_practiced。
func Apply(r *model.SkillRecord, outcome model.PracticeOutcome, occurredAt time.Time, t Tuning) error {
	if r.LastPracticed != nil && occurredAt.Before(*r.LastPracticed) {
		return ErrStaleObservation
	}

	switch outcome {
	case model.OutcomeCorrect:
		r.Strength = clamp(r.Strength+t.Gain(r.Streak), 0.0, 1.0)
		r.Streak++
		next := int(math.Round(float64(r.IntervalDays) * t.Growth(r.Streak)))
		if next <= r.IntervalDays {
			next = r.IntervalDays + 1
		}
		if next > t.MaxIntervalDays {
			next = t.MaxIntervalDays
		}
		r.IntervalDays = next
	case model.OutcomeIncorrect:
		r.Strength = clamp(r.Strength-t.Penalty, 0.0, 1.0)
		r.Streak = 0
		r.Mistakes++
		r.IntervalDays = r.IntervalDays / 2
		if r.IntervalDays < 1 {
			r.IntervalDays = 1
		}
	default:
		return errors.New("unknown practice outcome: " + string(outcome))
	}

	due := occurredAt.Add(time.Duration(r.IntervalDays) * 24 * time.Hour)
	r.NextDue = &due
	practiced := occurredAt
	r.LastPracticed = &practiced
	return nil
}

// IsDue 复习时间已到（从未排期的记录视为到期）
func IsDue(r *model.SkillRecord, now time.Time) bool {
	return r.NextDue == nil || !r.NextDue.After(now)
}

// IsWeak 掌握度低于弱项阈值
func (t Tuning) IsWeak(r *model.SkillRecord) bool {
	return r.Strength < t.WeaknessThreshold
}

// RankDue 按到期时间升序排列（最逾期在前），同刻按 skill_id 保证确定性
func RankDue(records []*model.SkillRecord) {
	sort.Slice(records, func(i, j int) bool {
		di, dj := records[i].NextDue, records[j].NextDue
		switch {
		case di == nil && dj != nil:
			return true
		case di != nil && dj == nil:
			return false
		case di != nil && dj != nil && !di.Equal(*dj):
			return di.Before(*dj)
		}
		return records[i].SkillID < records[j].SkillID
	})
}

// RankWeak 按掌握度升序排列（最弱在前），同值按 skill_id 保证确定性
func RankWeak(records []*model.SkillRecord) {
	sort.Slice(records, func(i, j int) bool {
		if records[i].Strength != records[j].Strength {
			return records[i].Strength < records[j].Strength
		}
		return records[i].SkillID < records[j].SkillID
	})
}

func clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}
