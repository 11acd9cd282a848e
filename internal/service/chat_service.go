package service

import (
	"context"
	"time"

	"lingua_tutor_backend/internal/model"
	"lingua_tutor_backend/internal/repository"
	"lingua_tutor_backend/pkg/logger"

	"go.uber.org/zap"
)

const (
	historyWindow = 12

	// 每个回合计入的练习分钟数。这是对话协作方自己的换算策略，
	// 以显式数值传给掌握度核心，不在调度逻辑里写死。
	minutesPerTurn = 1
)

// ChatService 串起一个辅导回合：存对话、调模型、把提取出的
// 技能证据交给 MasteryService 作为一个批次落账。
type ChatService struct {
	chatRepo *repository.ChatRepository
	tutor    *TutorService
	mastery  *MasteryService
}

func NewChatService(chatRepo *repository.ChatRepository, tutor *TutorService, mastery *MasteryService) *ChatService {
	return &ChatService{chatRepo: chatRepo, tutor: tutor, mastery: mastery}
}

// TurnResult 一个辅导回合的产出
type TurnResult struct {
	Reply           string           `json:"reply"`
	ExtractedSkills []ExtractedSkill `json:"extractedSkills"`
	StaleSkills     []string         `json:"staleSkills,omitempty"`
	TurnLogged      bool             `json:"turnLogged"`
}

// HandleTurn 处理一个用户回合。模型提取的 quality >= 3 记为 correct，
// 否则 incorrect（沿用 0..5 质量分的及格线）。
func (s *ChatService) HandleTurn(ctx context.Context, userID, practiceContext, level, message string) (*TurnResult, error) {
	now := time.Now()

	history, err := s.chatRepo.RecentHistory(ctx, userID, historyWindow)
	if err != nil {
		logger.Log.Warn("failed to load chat history", zap.String("userId", userID), zap.Error(err))
		history = nil
	}

	if err := s.chatRepo.SaveTurn(ctx, &model.ChatTurn{
		UserID:  userID,
		Role:    "user",
		Content: message,
		Ts:      now,
	}); err != nil {
		return nil, err
	}

	tutorHistory := make([]TutorMessage, 0, len(history))
	for _, turn := range history {
		tutorHistory = append(tutorHistory, TutorMessage{Role: turn.Role, Content: turn.Content})
	}

	reply, extracted, err := s.tutor.Chat(practiceContext, level, message, tutorHistory)
	if err != nil {
		return nil, err
	}

	if err := s.chatRepo.SaveTurn(ctx, &model.ChatTurn{
		UserID:  userID,
		Role:    "assistant",
		Content: reply,
		Ts:      time.Now(),
	}); err != nil {
		return nil, err
	}

	observations := make([]model.Observation, 0, len(extracted))
	for _, sk := range extracted {
		outcome := model.OutcomeIncorrect
		if sk.Quality >= 3 {
			outcome = model.OutcomeCorrect
		}
		observations = append(observations, model.Observation{
			SkillID:    sk.SkillID,
			Outcome:    outcome,
			OccurredAt: now,
		})
	}

	batch, err := s.mastery.ApplyObservations(userID, practiceContext, observations, minutesPerTurn, 1)
	if err != nil {
		return nil, err
	}

	return &TurnResult{
		Reply:           reply,
		ExtractedSkills: extracted,
		StaleSkills:     batch.Stale,
		TurnLogged:      true,
	}, nil
}

// History 最近的对话回合（时间正序）
func (s *ChatService) History(userID string, limit int) ([]model.ChatTurn, error) {
	return s.chatRepo.FindByUser(userID, limit)
}

// ClearHistory 清空对话历史
func (s *ChatService) ClearHistory(ctx context.Context, userID string) error {
	return s.chatRepo.ClearByUser(ctx, userID)
}
