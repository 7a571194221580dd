package service

import (
	"ecowave_backend/internal/model"
)

type AchievementStore interface {
	FindAll() ([]model.Achievement, error)
}

type ProfileService struct {
	Users        UserFinder
	Achievements AchievementStore
	Progression  *ProgressionService
	Leaderboard  *LeaderboardService
}

func NewProfileService(users UserFinder, achievements AchievementStore, progression *ProgressionService, leaderboard *LeaderboardService) *ProfileService {
	return &ProfileService{
		Users:        users,
		Achievements: achievements,
		Progression:  progression,
		Leaderboard:  leaderboard,
	}
}

type ProfileSummary struct {
	User         *model.User         `json:"user"`
	Activities   []ActivityView      `json:"activities"`
	Achievements []model.Achievement `json:"achievements"`
	Leaderboard  []LeaderboardEntry  `json:"leaderboard"`
}

// GetProfile 汇总档案页数据。榜单计算自带名次缓存回写，
// 所以用户要在榜单算完之后再读，避免返回过期名次。
func (s *ProfileService) GetProfile(userID uint) (*ProfileSummary, error) {
	leaderboard, err := s.Leaderboard.ComputeLeaderboard(userID)
	if err != nil {
		return nil, err
	}

	user, err := s.Users.FindByID(userID)
	if err != nil {
		return nil, err
	}

	activities, err := s.Progression.Ledger(userID, model.ActivityLedgerCap)
	if err != nil {
		return nil, err
	}

	achievements, err := s.Achievements.FindAll()
	if err != nil {
		return nil, err
	}

	return &ProfileSummary{
		User:         user,
		Activities:   FormatActivities(activities),
		Achievements: achievements,
		Leaderboard:  leaderboard,
	}, nil
}
