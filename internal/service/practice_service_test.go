package service

import (
	"testing"
	"time"

	"lingua_tutor_backend/internal/model"
	"lingua_tutor_backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedRecord(t *testing.T, repo *repository.SkillRecordRepository, userID, skillID string, strength float64, nextDue time.Time) {
	t.Helper()
	practiced := nextDue.Add(-24 * time.Hour)
	require.NoError(t, repo.Upsert(&model.SkillRecord{
		UserID:        userID,
		SkillID:       skillID,
		Strength:      strength,
		IntervalDays:  1,
		NextDue:       &nextDue,
		LastPracticed: &practiced,
	}))
}

func newPracticeFixture(t *testing.T) (*PracticeService, *repository.SkillRecordRepository) {
	db := newTestDB(t)
	skillRepo := repository.NewSkillRecordRepository(db)
	return NewPracticeService(skillRepo, testAdaptiveConfig()), skillRepo
}

func TestPlan_ComposesDueWeakNew(t *testing.T) {
	svc, repo := newPracticeFixture(t)
	now := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)

	// 两条到期、一条未到期的弱项；都不在目录里，新技能预算留给目录
	seedRecord(t, repo, "u1", "grammar:past_tense", 0.8, now.Add(-48*time.Hour))
	seedRecord(t, repo, "u1", "grammar:articles", 0.7, now.Add(-2*time.Hour))
	seedRecord(t, repo, "u1", "vocab:luggage", 0.2, now.Add(24*time.Hour))

	plan, err := svc.Plan("u1", "Airport", "Beginner", 6, now)
	require.NoError(t, err)

	require.Len(t, plan.Due, 2)
	assert.Equal(t, "grammar:past_tense", plan.Due[0].SkillID) // 最逾期在前
	assert.Equal(t, "grammar:articles", plan.Due[1].SkillID)

	require.Len(t, plan.Weak, 1)
	assert.Equal(t, "vocab:luggage", plan.Weak[0].SkillID)

	assert.Equal(t, []string{"phrase:check_in", "vocab:overweight_bag"}, plan.New)
	assert.Contains(t, plan.ScenarioPrompt, `"past tense"`) // 第一条到期项作为练习重点
}

func TestPlan_LimitBoundsTotal(t *testing.T) {
	svc, repo := newPracticeFixture(t)
	now := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)

	seedRecord(t, repo, "u1", "grammar:a", 0.8, now.Add(-72*time.Hour))
	seedRecord(t, repo, "u1", "grammar:b", 0.8, now.Add(-48*time.Hour))
	seedRecord(t, repo, "u1", "grammar:c", 0.8, now.Add(-24*time.Hour))

	plan, err := svc.Plan("u1", "Airport", "Beginner", 2, now)
	require.NoError(t, err)

	require.Len(t, plan.Due, 2)
	assert.Equal(t, "grammar:a", plan.Due[0].SkillID)
	assert.Equal(t, "grammar:b", plan.Due[1].SkillID)
	assert.Empty(t, plan.Weak)
	assert.Empty(t, plan.New)
}

func TestPlan_DueRecordNeverDuplicatedAsWeak(t *testing.T) {
	svc, repo := newPracticeFixture(t)
	now := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)

	// 既到期又低于弱项阈值，只应出现在 due 里
	seedRecord(t, repo, "u1", "vocab:refund", 0.1, now.Add(-24*time.Hour))

	plan, err := svc.Plan("u1", "Shopping", "Beginner", 6, now)
	require.NoError(t, err)

	require.Len(t, plan.Due, 1)
	assert.Equal(t, "vocab:refund", plan.Due[0].SkillID)
	assert.Empty(t, plan.Weak)
	assert.NotContains(t, plan.New, "vocab:refund")
}

func TestPlan_NewUserGetsCatalogSkills(t *testing.T) {
	svc, _ := newPracticeFixture(t)
	now := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)

	plan, err := svc.Plan("fresh", "Restaurant", "Intermediate", 6, now)
	require.NoError(t, err)

	assert.Empty(t, plan.Due)
	assert.Empty(t, plan.Weak)
	assert.Equal(t, []string{"phrase:table_for_two", "vocab:allergy", "phrase:order_modification"}, plan.New)
	assert.NotContains(t, plan.ScenarioPrompt, "Try to use") // 没有复习项就没有练习重点
}

func TestPlan_UnknownContextStillReturnsPlan(t *testing.T) {
	svc, repo := newPracticeFixture(t)
	now := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)
	seedRecord(t, repo, "u1", "vocab:luggage", 0.2, now.Add(-time.Hour))

	plan, err := svc.Plan("u1", "Spaceport", "Beginner", 6, now)
	require.NoError(t, err)
	require.Len(t, plan.Due, 1)
	assert.Empty(t, plan.New)
	assert.Contains(t, plan.ScenarioPrompt, "everyday conversation")
}

func TestPlan_Deterministic(t *testing.T) {
	svc, repo := newPracticeFixture(t)
	now := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)

	same := now.Add(-24 * time.Hour)
	seedRecord(t, repo, "u1", "vocab:b", 0.5, same)
	seedRecord(t, repo, "u1", "vocab:a", 0.5, same)
	seedRecord(t, repo, "u1", "vocab:c", 0.5, same)

	first, err := svc.Plan("u1", "Airport", "Beginner", 6, now)
	require.NoError(t, err)
	second, err := svc.Plan("u1", "Airport", "Beginner", 6, now)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	// 到期时间相同按 skill_id 定序
	assert.Equal(t, "vocab:a", first.Due[0].SkillID)
	assert.Equal(t, "vocab:b", first.Due[1].SkillID)
	assert.Equal(t, "vocab:c", first.Due[2].SkillID)
}
