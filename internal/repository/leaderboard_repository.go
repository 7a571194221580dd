package repository

import (
	"ecowave_backend/internal/model"

	"gorm.io/gorm"
)

type LeaderboardRepository struct {
	DB *gorm.DB
}

func NewLeaderboardRepository(db *gorm.DB) *LeaderboardRepository {
	return &LeaderboardRepository{DB: db}
}

// Roster 返回固定名册，顺序与种子写入一致以保证排名确定性
func (r *LeaderboardRepository) Roster() ([]model.LeaderboardSeed, error) {
	var seeds []model.LeaderboardSeed
	err := r.DB.Order("id ASC").Find(&seeds).Error
	return seeds, err
}
