package model

import "time"

// ActivityLog 练习时长流水，只追加不修改
// swagger:model ActivityLog
type ActivityLog struct {
	ID      uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID  string    `gorm:"size:64;index:idx_activity_user_ts" json:"userId"`
	Context string    `gorm:"size:50;default:'Unknown'" json:"context"`
	Minutes int       `gorm:"default:0" json:"minutes"`
	Turns   int       `gorm:"default:0" json:"turns"`
	Ts      time.Time `gorm:"index:idx_activity_user_ts" json:"ts"`
}

func (ActivityLog) TableName() string {
	return "activity_logs"
}
