package repository

import (
	"ecowave_backend/internal/model"

	"gorm.io/gorm"
)

// ProgressionRepository 进度引擎的持久化端口实现。
// 档案与账单的联动写入放在一个事务里，二者不会出现只写了一半的状态。
type ProgressionRepository struct {
	DB *gorm.DB
}

func NewProgressionRepository(db *gorm.DB) *ProgressionRepository {
	return &ProgressionRepository{DB: db}
}

func (r *ProgressionRepository) GetUser(id uint) (*model.User, error) {
	var user model.User
	err := r.DB.First(&user, id).Error
	return &user, err
}

// SaveUserAndActivity 先写档案，再追加账单并裁剪到保留上限
func (r *ProgressionRepository) SaveUserAndActivity(user *model.User, activity *model.Activity, keep int) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(user).Error; err != nil {
			return err
		}
		if err := tx.Create(activity).Error; err != nil {
			return err
		}
		return pruneLedger(tx, user.ID, keep)
	})
}

func (r *ProgressionRepository) Activities(userID uint, limit int) ([]model.Activity, error) {
	var activities []model.Activity
	q := r.DB.Where("user_id = ?", userID).Order("occurred_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&activities).Error
	return activities, err
}

func pruneLedger(tx *gorm.DB, userID uint, keep int) error {
	var staleIDs []string
	err := tx.Model(&model.Activity{}).
		Where("user_id = ?", userID).
		Order("occurred_at DESC").
		Offset(keep).
		Limit(1000).
		Pluck("id", &staleIDs).Error
	if err != nil {
		return err
	}
	if len(staleIDs) == 0 {
		return nil
	}
	return tx.Unscoped().
		Where("id IN ?", staleIDs).
		Delete(&model.Activity{}).Error
}
