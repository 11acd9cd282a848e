package model

import "time"

// SkillRecord 每个 (user_id, skill_id) 一条掌握度记录。
// 首次观测时惰性创建，只更新不删除。
// swagger:model SkillRecord
type SkillRecord struct {
	BaseModel
	UserID        string     `gorm:"size:64;uniqueIndex:idx_user_skill;not null" json:"userId"`
	SkillID       string     `gorm:"size:128;uniqueIndex:idx_user_skill;not null" json:"skillId"`
	Strength      float64    `gorm:"default:0" json:"strength"`     // 掌握度 [0,1]
	IntervalDays  int        `gorm:"default:1" json:"intervalDays"` // 复习间隔，>= 1
	NextDue       *time.Time `gorm:"index" json:"nextDue"`
	Streak        int        `gorm:"default:0" json:"streak"`   // 距上次出错的连续正确次数
	Mistakes      int        `gorm:"default:0" json:"mistakes"` // 累计错误次数，只增不减
	LastPracticed *time.Time `json:"lastPracticed"`
}

func (SkillRecord) TableName() string {
	return "skill_records"
}

// PracticeOutcome 一次练习观测的结果
type PracticeOutcome string

const (
	OutcomeCorrect   PracticeOutcome = "correct"
	OutcomeIncorrect PracticeOutcome = "incorrect"
)

func (o PracticeOutcome) Valid() bool {
	return o == OutcomeCorrect || o == OutcomeIncorrect
}

// Observation 聊天回合中提取出的一条技能使用证据
type Observation struct {
	SkillID    string
	Outcome    PracticeOutcome
	OccurredAt time.Time
}
