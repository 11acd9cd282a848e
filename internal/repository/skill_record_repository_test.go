package repository

import (
	"strings"
	"testing"
	"time"

	"lingua_tutor_backend/internal/model"
	"lingua_tutor_backend/pkg/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	db, err := gorm.Open(sqlite.Open("file:repo_"+name+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func TestUpsert_InsertThenUpdateSameKey(t *testing.T) {
	repo := NewSkillRecordRepository(newTestDB(t))
	due := time.Date(2026, 8, 16, 0, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Upsert(&model.SkillRecord{
		UserID: "u1", SkillID: "phrase:check_in",
		Strength: 0.5, IntervalDays: 1, NextDue: &due,
	}))
	require.NoError(t, repo.Upsert(&model.SkillRecord{
		UserID: "u1", SkillID: "phrase:check_in",
		Strength: 0.65, IntervalDays: 2, Streak: 1, NextDue: &due,
	}))

	recs, err := repo.FindByUser("u1")
	require.NoError(t, err)
	require.Len(t, recs, 1) // 同键只保留一条
	assert.Equal(t, 0.65, recs[0].Strength)
	assert.Equal(t, 2, recs[0].IntervalDays)
	assert.Equal(t, 1, recs[0].Streak)
}

func TestFindByUser_OrdersByNextDueWithUnscheduledFirst(t *testing.T) {
	repo := NewSkillRecordRepository(newTestDB(t))
	early := time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC)
	late := early.AddDate(0, 0, 5)

	require.NoError(t, repo.Upsert(&model.SkillRecord{UserID: "u1", SkillID: "b", IntervalDays: 1, NextDue: &late}))
	require.NoError(t, repo.Upsert(&model.SkillRecord{UserID: "u1", SkillID: "a", IntervalDays: 1, NextDue: &early}))
	require.NoError(t, repo.Upsert(&model.SkillRecord{UserID: "u1", SkillID: "c", IntervalDays: 1}))
	require.NoError(t, repo.Upsert(&model.SkillRecord{UserID: "u2", SkillID: "z", IntervalDays: 1}))

	recs, err := repo.FindByUser("u1")
	require.NoError(t, err)
	require.Len(t, recs, 3)
	assert.Equal(t, "c", recs[0].SkillID) // 从未排期在前
	assert.Equal(t, "a", recs[1].SkillID)
	assert.Equal(t, "b", recs[2].SkillID)
}

func TestFindByUserAndSkill_NotFound(t *testing.T) {
	repo := NewSkillRecordRepository(newTestDB(t))
	_, err := repo.FindByUserAndSkill("u1", "missing")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
