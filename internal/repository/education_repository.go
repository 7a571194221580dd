package repository

import (
	"ecowave_backend/internal/model"

	"gorm.io/gorm"
)

type EducationRepository struct {
	DB *gorm.DB
}

func NewEducationRepository(db *gorm.DB) *EducationRepository {
	return &EducationRepository{DB: db}
}

func (r *EducationRepository) FindAll() ([]model.EducationContent, error) {
	var contents []model.EducationContent
	err := r.DB.Order("id ASC").Find(&contents).Error
	return contents, err
}

func (r *EducationRepository) FindByID(id string) (*model.EducationContent, error) {
	var content model.EducationContent
	err := r.DB.Where("id = ?", id).First(&content).Error
	return &content, err
}
