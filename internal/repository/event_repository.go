package repository

import (
	"ecowave_backend/internal/model"

	"gorm.io/gorm"
)

type EventRepository struct {
	DB *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{DB: db}
}

func (r *EventRepository) FindAll() ([]model.Event, error) {
	var events []model.Event
	err := r.DB.Order("date ASC").Find(&events).Error
	return events, err
}

func (r *EventRepository) FindByID(id string) (*model.Event, error) {
	var event model.Event
	err := r.DB.Where("id = ?", id).First(&event).Error
	return &event, err
}

func (r *EventRepository) JoinedIDs(userID uint) ([]string, error) {
	var ids []string
	err := r.DB.Model(&model.EventJoin{}).
		Where("user_id = ?", userID).
		Pluck("event_id", &ids).Error
	return ids, err
}

func (r *EventRepository) IsJoined(userID uint, eventID string) (bool, error) {
	var count int64
	err := r.DB.Model(&model.EventJoin{}).
		Where("user_id = ? AND event_id = ?", userID, eventID).
		Count(&count).Error
	return count > 0, err
}

func (r *EventRepository) AddJoin(userID uint, eventID string) error {
	return r.DB.Create(&model.EventJoin{UserID: userID, EventID: eventID}).Error
}

func (r *EventRepository) RemoveJoin(userID uint, eventID string) error {
	return r.DB.Unscoped().
		Where("user_id = ? AND event_id = ?", userID, eventID).
		Delete(&model.EventJoin{}).Error
}

func (r *EventRepository) CountJoined(userID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.EventJoin{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}
