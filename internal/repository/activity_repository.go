package repository

import (
	"database/sql"
	"errors"
	"time"

	"lingua_tutor_backend/internal/model"

	"gorm.io/gorm"
)

// ActivityRepository 练习时长流水，只追加和聚合查询
type ActivityRepository struct {
	DB *gorm.DB
}

func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{DB: db}
}

// WithTx 返回绑定到事务的仓库副本
func (r *ActivityRepository) WithTx(tx *gorm.DB) *ActivityRepository {
	return &ActivityRepository{DB: tx}
}

// Append 追加一条流水，写入后不再修改
func (r *ActivityRepository) Append(entry *model.ActivityLog) error {
	return r.DB.Create(entry).Error
}

// SumMinutes 统计 [from, to) 区间内的练习分钟数
func (r *ActivityRepository) SumMinutes(userID string, from, to time.Time) (int, error) {
	var total sql.NullInt64
	err := r.DB.Model(&model.ActivityLog{}).
		Where("user_id = ? AND ts >= ? AND ts < ?", userID, from, to).
		Select("SUM(minutes)").
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return int(total.Int64), nil
}

// LastActivity 最近一条流水的时间，没有流水返回 nil
func (r *ActivityRepository) LastActivity(userID string) (*time.Time, error) {
	var entry model.ActivityLog
	err := r.DB.Where("user_id = ?", userID).
		Order("ts DESC").
		First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entry.Ts, nil
}
