package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"lingua_tutor_backend/internal/config"
	"lingua_tutor_backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 空 API key 让辅导走本地兜底，整条链路不出进程
func newChatFixture(t *testing.T) (*ChatService, *repository.SkillRecordRepository, *repository.ActivityRepository) {
	db := newTestDB(t)
	skillRepo := repository.NewSkillRecordRepository(db)
	activityRepo := repository.NewActivityRepository(db)
	chatRepo := repository.NewChatRepository(db, nil)
	tutor := NewTutorService(config.TutorConfig{})
	mastery := NewMasteryService(skillRepo, activityRepo, db, testAdaptiveConfig())
	return NewChatService(chatRepo, tutor, mastery), skillRepo, activityRepo
}

func TestHandleTurn_UpdatesMasteryFromExtractedSkills(t *testing.T) {
	svc, skillRepo, activityRepo := newChatFixture(t)
	ctx := context.Background()

	// 兜底标注：overweight_bag quality 4 -> correct，polite_request quality 2 -> incorrect
	result, err := svc.HandleTurn(ctx, "u1", "Airport", "Beginner", "my bag is overweight")
	require.NoError(t, err)

	assert.NotEmpty(t, result.Reply)
	assert.True(t, result.TurnLogged)
	require.Len(t, result.ExtractedSkills, 2)

	rec, err := skillRepo.FindByUserAndSkill("u1", "vocab:overweight_bag")
	require.NoError(t, err)
	assert.Equal(t, 1, rec.Streak)
	assert.Equal(t, 0, rec.Mistakes)

	rec, err = skillRepo.FindByUserAndSkill("u1", "phrase:polite_request")
	require.NoError(t, err)
	assert.Equal(t, 0, rec.Streak)
	assert.Equal(t, 1, rec.Mistakes)

	// 每回合计 1 分钟练习时长
	now := time.Now()
	minutes, err := activityRepo.SumMinutes("u1", now.Add(-time.Minute), now.Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, 1, minutes)
}

func TestHandleTurn_PersistsBothTurns(t *testing.T) {
	svc, _, _ := newChatFixture(t)
	ctx := context.Background()

	_, err := svc.HandleTurn(ctx, "u1", "Airport", "Beginner", "hello, please help me")
	require.NoError(t, err)

	turns, err := svc.History("u1", 10)
	require.NoError(t, err)
	require.Len(t, turns, 2)
	assert.Equal(t, "user", turns[0].Role)
	assert.Equal(t, "hello, please help me", turns[0].Content)
	assert.Equal(t, "assistant", turns[1].Role)
	assert.NotEmpty(t, turns[1].Content)
}

func TestHistory_LimitKeepsMostRecentInOrder(t *testing.T) {
	svc, _, _ := newChatFixture(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := svc.HandleTurn(ctx, "u1", "Airport", "Beginner", fmt.Sprintf("message %d", i))
		require.NoError(t, err)
		time.Sleep(2 * time.Millisecond) // ts 必须单调，保证排序稳定
	}

	turns, err := svc.History("u1", 4)
	require.NoError(t, err)
	require.Len(t, turns, 4)
	// 最旧的回合被截掉，剩余仍是时间正序
	assert.Equal(t, "message 1", turns[0].Content)
	assert.Equal(t, "assistant", turns[1].Role)
	assert.Equal(t, "message 2", turns[2].Content)
	assert.Equal(t, "assistant", turns[3].Role)
}

func TestClearHistory(t *testing.T) {
	svc, _, _ := newChatFixture(t)
	ctx := context.Background()

	_, err := svc.HandleTurn(ctx, "u1", "Airport", "Beginner", "hi")
	require.NoError(t, err)
	require.NoError(t, svc.ClearHistory(ctx, "u1"))

	turns, err := svc.History("u1", 10)
	require.NoError(t, err)
	assert.Empty(t, turns)
}

func TestHandleTurn_SecondTurnAccumulatesStreak(t *testing.T) {
	svc, skillRepo, _ := newChatFixture(t)
	ctx := context.Background()

	_, err := svc.HandleTurn(ctx, "u1", "Airport", "Beginner", "my bag is heavy")
	require.NoError(t, err)
	time.Sleep(2 * time.Millisecond)
	_, err = svc.HandleTurn(ctx, "u1", "Airport", "Beginner", "the bag is overweight")
	require.NoError(t, err)

	rec, err := skillRepo.FindByUserAndSkill("u1", "vocab:overweight_bag")
	require.NoError(t, err)
	assert.Equal(t, 2, rec.Streak)
	assert.Equal(t, 0, rec.Mistakes)
}
