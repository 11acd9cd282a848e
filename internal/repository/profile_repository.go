package repository

import (
	"lingua_tutor_backend/internal/model"

	"gorm.io/gorm"
)

// ProfileRepository 学习者档案的数据访问
type ProfileRepository struct {
	DB *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{DB: db}
}

// FindByUserID 查档案，不存在返回 gorm.ErrRecordNotFound
func (r *ProfileRepository) FindByUserID(userID string) (*model.UserProfile, error) {
	var profile model.UserProfile
	err := r.DB.Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepository) Create(profile *model.UserProfile) error {
	return r.DB.Create(profile).Error
}

func (r *ProfileRepository) Update(profile *model.UserProfile) error {
	return r.DB.Save(profile).Error
}
