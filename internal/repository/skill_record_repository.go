package repository

import (
	"lingua_tutor_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SkillRecordRepository 掌握度记录的数据访问，只存取不含调度策略
type SkillRecordRepository struct {
	DB *gorm.DB
}

func NewSkillRecordRepository(db *gorm.DB) *SkillRecordRepository {
	return &SkillRecordRepository{DB: db}
}

// WithTx 返回绑定到事务的仓库副本
func (r *SkillRecordRepository) WithTx(tx *gorm.DB) *SkillRecordRepository {
	return &SkillRecordRepository{DB: tx}
}

// FindByUserAndSkill 查单条记录，不存在返回 gorm.ErrRecordNotFound
func (r *SkillRecordRepository) FindByUserAndSkill(userID, skillID string) (*model.SkillRecord, error) {
	var rec model.SkillRecord
	err := r.DB.Where("user_id = ? AND skill_id = ?", userID, skillID).First(&rec).Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// FindByUser 用户全部记录，按到期时间升序（NULL 在前）
func (r *SkillRecordRepository) FindByUser(userID string) ([]model.SkillRecord, error) {
	var recs []model.SkillRecord
	err := r.DB.Where("user_id = ?", userID).
		Order("next_due IS NOT NULL, next_due ASC, skill_id ASC").
		Find(&recs).Error
	return recs, err
}

// Upsert 按 (user_id, skill_id) 唯一键原子写入，
// 并发写同一条记录不会交错出部分字段
func (r *SkillRecordRepository) Upsert(rec *model.SkillRecord) error {
	return r.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "skill_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"strength", "interval_days", "next_due", "streak", "mistakes", "last_practiced", "updated_at",
		}),
	}).Create(rec).Error
}
