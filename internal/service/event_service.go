package service

import (
	"ecowave_backend/internal/model"
	"ecowave_backend/internal/util"
	"fmt"

	"gorm.io/gorm"
)

type EventStore interface {
	FindAll() ([]model.Event, error)
	FindByID(id string) (*model.Event, error)
	JoinedIDs(userID uint) ([]string, error)
	IsJoined(userID uint, eventID string) (bool, error)
	AddJoin(userID uint, eventID string) error
	RemoveJoin(userID uint, eventID string) error
	CountJoined(userID uint) (int64, error)
}

type EventService struct {
	Events      EventStore
	Progression *ProgressionService
}

func NewEventService(events EventStore, progression *ProgressionService) *EventService {
	return &EventService{Events: events, Progression: progression}
}

// EventView 在目录条目之上叠加当前用户的参加状态。
// Participants 对已参加的用户显示为目录值+1（算上自己），只影响展示。
type EventView struct {
	model.Event
	Participants int  `json:"participants"`
	IsJoined     bool `json:"isJoined"`
}

func (s *EventService) ListEvents(userID uint) ([]EventView, error) {
	events, err := s.Events.FindAll()
	if err != nil {
		return nil, err
	}

	joinedIDs, err := s.Events.JoinedIDs(userID)
	if err != nil {
		return nil, err
	}
	joined := make(map[string]bool, len(joinedIDs))
	for _, id := range joinedIDs {
		joined[id] = true
	}

	views := make([]EventView, len(events))
	for i, e := range events {
		participants := e.Participants
		if joined[e.ID] {
			participants++
		}
		views[i] = EventView{Event: e, Participants: participants, IsJoined: joined[e.ID]}
	}

	return views, nil
}

type ToggleJoinResult struct {
	IsJoined      bool `json:"isJoined"`
	PointsAwarded int  `json:"pointsAwarded"`
}

// ToggleJoin 在参加/退出之间切换。
// 参加奖励100分并记账；退出只解除关系，不扣分也不删账单。
func (s *EventService) ToggleJoin(userID uint, eventID string) (*ToggleJoinResult, error) {
	event, err := s.Events.FindByID(eventID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrEventNotFound
		}
		return nil, err
	}

	joined, err := s.Events.IsJoined(userID, eventID)
	if err != nil {
		return nil, err
	}

	if joined {
		if err := s.Events.RemoveJoin(userID, eventID); err != nil {
			return nil, err
		}
		return &ToggleJoinResult{IsJoined: false}, nil
	}

	if err := s.Events.AddJoin(userID, eventID); err != nil {
		return nil, err
	}

	title := fmt.Sprintf("Joined %s", event.Title)
	if _, err := s.Progression.AwardPoints(userID, EventJoinAward, model.ActivityEvent, title, event.Location); err != nil {
		return nil, err
	}

	return &ToggleJoinResult{IsJoined: true, PointsAwarded: EventJoinAward}, nil
}
