package service

import (
	"testing"

	"lingua_tutor_backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProfileFixture(t *testing.T) *ProfileService {
	db := newTestDB(t)
	return NewProfileService(repository.NewProfileRepository(db))
}

func TestGetOrCreate_LazilyCreatesDefaultProfile(t *testing.T) {
	svc := newProfileFixture(t)

	profile, err := svc.GetOrCreate("u1")
	require.NoError(t, err)
	assert.Equal(t, "u1", profile.UserID)
	assert.Equal(t, "Beginner", profile.Level)
	assert.Equal(t, 10, profile.DailyMinutesGoal)
	assert.Equal(t, 70, profile.WeeklyMinutesGoal)
	assert.Equal(t, []string{"Airport", "Restaurant"}, profile.FocusContextList())

	// 第二次读取拿到同一份，不再新建
	again, err := svc.GetOrCreate("u1")
	require.NoError(t, err)
	assert.Equal(t, profile.ID, again.ID)
}

func TestUpsert_OverwritesProfile(t *testing.T) {
	svc := newProfileFixture(t)

	updated, err := svc.Upsert("u1", ProfileUpdate{
		NativeLanguage:    "Spanish",
		TargetLanguage:    "English",
		Level:             "Intermediate",
		DailyMinutesGoal:  20,
		WeeklyMinutesGoal: 120,
		FocusContexts:     []string{"Office", "Shopping"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Intermediate", updated.Level)
	assert.Equal(t, 20, updated.DailyMinutesGoal)

	fetched, err := svc.GetOrCreate("u1")
	require.NoError(t, err)
	assert.Equal(t, "Spanish", fetched.NativeLanguage)
	assert.Equal(t, 120, fetched.WeeklyMinutesGoal)
	assert.Equal(t, []string{"Office", "Shopping"}, fetched.FocusContextList())
}
