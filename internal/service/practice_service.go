package service

import (
	"sync"
	"time"

	"lingua_tutor_backend/internal/adaptive"
	"lingua_tutor_backend/internal/catalog"
	"lingua_tutor_backend/internal/config"
	"lingua_tutor_backend/internal/model"
	"lingua_tutor_backend/internal/repository"
)

// PracticeService 组装练习计划：到期复习、弱项、新技能，外加场景开场白。
// 只读 Skill Record Store 和静态目录，每次请求即时计算。
type PracticeService struct {
	skillRepo *repository.SkillRecordRepository

	tuningMu sync.RWMutex
	tuning   adaptive.Tuning
}

func NewPracticeService(skillRepo *repository.SkillRecordRepository, cfg config.AdaptiveConfig) *PracticeService {
	return &PracticeService{
		skillRepo: skillRepo,
		tuning:    adaptive.TuningFromConfig(cfg),
	}
}

// UpdateTuning 配置热加载回调
func (s *PracticeService) UpdateTuning(cfg config.AdaptiveConfig) {
	s.tuningMu.Lock()
	s.tuning = adaptive.TuningFromConfig(cfg)
	s.tuningMu.Unlock()
}

func (s *PracticeService) Tuning() adaptive.Tuning {
	s.tuningMu.RLock()
	defer s.tuningMu.RUnlock()
	return s.tuning
}

// Plan 生成练习计划。due + weak + new 总数不超过 limit；
// 相同 next_due / strength 按 skill_id 排序，结果可复现。
func (s *PracticeService) Plan(userID, context, level string, limit int, now time.Time) (*model.PracticePlan, error) {
	records, err := s.skillRepo.FindByUser(userID)
	if err != nil {
		return nil, err
	}
	tuning := s.Tuning()

	var due, rest []*model.SkillRecord
	for i := range records {
		if adaptive.IsDue(&records[i], now) {
			due = append(due, &records[i])
		} else {
			rest = append(rest, &records[i])
		}
	}

	adaptive.RankDue(due)
	if len(due) > limit {
		due = due[:limit]
	}

	var weak []*model.SkillRecord
	for _, r := range rest {
		if tuning.IsWeak(r) {
			weak = append(weak, r)
		}
	}
	adaptive.RankWeak(weak)
	if budget := limit - len(due); len(weak) > budget {
		weak = weak[:budget]
	}

	// 新技能：目录里该语境/级别下用户还没有记录的，按目录优先级补满预算。
	// 目录无匹配时 new 为空，不算错误。
	known := make(map[string]bool, len(records))
	for i := range records {
		known[records[i].SkillID] = true
	}
	newBudget := limit - len(due) - len(weak)
	newSkills := []string{}
	for _, id := range catalog.SkillsFor(context, catalog.ParseLevel(level)) {
		if len(newSkills) >= newBudget {
			break
		}
		if !known[id] {
			newSkills = append(newSkills, id)
		}
	}

	focus := ""
	if len(due) > 0 {
		focus = due[0].SkillID
	} else if len(weak) > 0 {
		focus = weak[0].SkillID
	}

	plan := &model.PracticePlan{
		ScenarioPrompt: catalog.ScenarioPrompt(context, focus),
		Due:            skillViews(due),
		Weak:           skillViews(weak),
		New:            newSkills,
	}
	return plan, nil
}

func skillViews(records []*model.SkillRecord) []model.SkillOut {
	out := make([]model.SkillOut, 0, len(records))
	for _, r := range records {
		out = append(out, model.SkillView(r))
	}
	return out
}
