package repository

import (
	"ecowave_backend/internal/model"

	"gorm.io/gorm"
)

type ReportRepository struct {
	DB *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{DB: db}
}

func (r *ReportRepository) Create(report *model.Report) error {
	return r.DB.Create(report).Error
}

func (r *ReportRepository) CountAll() (int64, error) {
	var count int64
	err := r.DB.Model(&model.Report{}).Count(&count).Error
	return count, err
}

func (r *ReportRepository) CountByUser(userID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Report{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

func (r *ReportRepository) ListByUser(userID uint) ([]model.Report, error) {
	var reports []model.Report
	err := r.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&reports).Error
	return reports, err
}
