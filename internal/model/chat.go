package model

import "time"

// ChatTurn 对话回合记录（user / assistant）
// swagger:model ChatTurn
type ChatTurn struct {
	UUIDBase
	UserID  string    `gorm:"size:64;index:idx_chat_user_ts" json:"userId"`
	Role    string    `gorm:"size:16;default:'user'" json:"role"` // user / assistant
	Content string    `gorm:"type:text" json:"content"`
	Ts      time.Time `gorm:"index:idx_chat_user_ts" json:"ts"`
}

func (ChatTurn) TableName() string {
	return "chat_turns"
}
