package model

import "strings"

// UserProfile 学习者档案，skill 核心只读取目标和语境字段
// swagger:model UserProfile
type UserProfile struct {
	BaseModel
	UserID            string `gorm:"size:64;uniqueIndex;not null" json:"userId"`
	NativeLanguage    string `gorm:"size:50;default:'English'" json:"nativeLanguage"`
	TargetLanguage    string `gorm:"size:50;default:'English'" json:"targetLanguage"`
	Level             string `gorm:"size:20;default:'Beginner'" json:"level"`
	DailyMinutesGoal  int    `gorm:"default:10" json:"dailyMinutesGoal"`
	WeeklyMinutesGoal int    `gorm:"default:70" json:"weeklyMinutesGoal"`
	FocusContexts     string `gorm:"size:255;default:'Airport,Restaurant'" json:"-"` // 逗号分隔存储
}

func (UserProfile) TableName() string {
	return "user_profiles"
}

// FocusContextList 拆出语境标签列表，忽略空白项
func (p *UserProfile) FocusContextList() []string {
	parts := strings.Split(p.FocusContexts, ",")
	out := make([]string, 0, len(parts))
	for _, s := range parts {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// SetFocusContexts 以逗号分隔形式写回语境标签
func (p *UserProfile) SetFocusContexts(contexts []string) {
	p.FocusContexts = strings.Join(contexts, ",")
}

// DefaultProfile 新学习者的默认档案（首次读取时惰性创建）
func DefaultProfile(userID string) *UserProfile {
	return &UserProfile{
		UserID:            userID,
		NativeLanguage:    "English",
		TargetLanguage:    "English",
		Level:             "Beginner",
		DailyMinutesGoal:  10,
		WeeklyMinutesGoal: 70,
		FocusContexts:     "Airport,Restaurant",
	}
}
