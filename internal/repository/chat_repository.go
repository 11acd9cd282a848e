package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"lingua_tutor_backend/internal/model"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

const (
	recentHistoryKey = "chat:recent:%s"
	recentHistoryCap = 24
	recentHistoryTTL = 24 * time.Hour
)

// ChatRepository 对话回合存储：MySQL 持久化 + Redis 近期历史缓存，
// 缓存只服务于辅导模型的上下文拼装
type ChatRepository struct {
	DB  *gorm.DB
	RDB *redis.Client
}

func NewChatRepository(db *gorm.DB, rdb *redis.Client) *ChatRepository {
	return &ChatRepository{DB: db, RDB: rdb}
}

type cachedTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// SaveTurn 持久化一个回合并推进近期历史缓存
func (r *ChatRepository) SaveTurn(ctx context.Context, turn *model.ChatTurn) error {
	if err := r.DB.Create(turn).Error; err != nil {
		return err
	}

	if r.RDB == nil {
		return nil
	}
	payload, err := json.Marshal(cachedTurn{Role: turn.Role, Content: turn.Content})
	if err != nil {
		return nil
	}
	key := fmt.Sprintf(recentHistoryKey, turn.UserID)
	pipe := r.RDB.Pipeline()
	pipe.RPush(ctx, key, payload)
	pipe.LTrim(ctx, key, -recentHistoryCap, -1)
	pipe.Expire(ctx, key, recentHistoryTTL)
	// 缓存失败不影响已落库的回合
	pipe.Exec(ctx)
	return nil
}

// RecentHistory 最近 limit 个回合（时间正序），优先读缓存，缓存未命中回源数据库
func (r *ChatRepository) RecentHistory(ctx context.Context, userID string, limit int) ([]model.ChatTurn, error) {
	if r.RDB != nil {
		key := fmt.Sprintf(recentHistoryKey, userID)
		raw, err := r.RDB.LRange(ctx, key, int64(-limit), -1).Result()
		if err == nil && len(raw) > 0 {
			turns := make([]model.ChatTurn, 0, len(raw))
			for _, item := range raw {
				var ct cachedTurn
				if json.Unmarshal([]byte(item), &ct) != nil {
					continue
				}
				turns = append(turns, model.ChatTurn{UserID: userID, Role: ct.Role, Content: ct.Content})
			}
			return turns, nil
		}
	}

	return r.FindByUser(userID, limit)
}

// FindByUser 数据库中最近 limit 个回合，时间正序返回
func (r *ChatRepository) FindByUser(userID string, limit int) ([]model.ChatTurn, error) {
	var turns []model.ChatTurn
	err := r.DB.Where("user_id = ?", userID).
		Order("ts DESC").
		Limit(limit).
		Find(&turns).Error
	if err != nil {
		return nil, err
	}
	// 反转为时间正序
	for i, j := 0, len(turns)-1; i < j; i, j = i+1, j-1 {
		turns[i], turns[j] = turns[j], turns[i]
	}
	return turns, nil
}

// ClearByUser 清空用户的对话历史与缓存
func (r *ChatRepository) ClearByUser(ctx context.Context, userID string) error {
	if err := r.DB.Unscoped().Where("user_id = ?", userID).Delete(&model.ChatTurn{}).Error; err != nil {
		return err
	}
	if r.RDB != nil {
		r.RDB.Del(ctx, fmt.Sprintf(recentHistoryKey, userID))
	}
	return nil
}
