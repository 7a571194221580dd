package service

import (
	"ecowave_backend/internal/model"
	"sort"
)

type RosterStore interface {
	Roster() ([]model.LeaderboardSeed, error)
}

type RankCacheStore interface {
	FindByID(id uint) (*model.User, error)
	UpdateRank(userID uint, rank int) error
}

type LeaderboardService struct {
	Seeds RosterStore
	Users RankCacheStore
}

func NewLeaderboardService(seeds RosterStore, users RankCacheStore) *LeaderboardService {
	return &LeaderboardService{Seeds: seeds, Users: users}
}

type LeaderboardEntry struct {
	Rank          int    `json:"rank"`
	Name          string `json:"name"`
	Avatar        string `json:"avatar"`
	Level         int    `json:"level"`
	Points        int    `json:"points"`
	IsCurrentUser bool   `json:"isCurrentUser,omitempty"`
}

// ComputeLeaderboard 把当前用户合入固定名册，按积分降序稳定排序后
// 按位次赋1起的名次。算出的名次与档案缓存不一致时顺手更新缓存。
func (s *LeaderboardService) ComputeLeaderboard(userID uint) ([]LeaderboardEntry, error) {
	user, err := s.Users.FindByID(userID)
	if err != nil {
		return nil, err
	}

	seeds, err := s.Seeds.Roster()
	if err != nil {
		return nil, err
	}

	entries := make([]LeaderboardEntry, 0, len(seeds)+1)
	for _, seed := range seeds {
		entries = append(entries, LeaderboardEntry{
			Name:   seed.Name,
			Avatar: seed.Avatar,
			Level:  seed.Level,
			Points: seed.Points,
		})
	}
	entries = append(entries, LeaderboardEntry{
		Name:          user.Name,
		Avatar:        user.Avatar,
		Level:         user.Level,
		Points:        user.Points,
		IsCurrentUser: true,
	})

	// 并列积分按原有顺序保持不动，两次计算结果必须一致
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Points > entries[j].Points
	})

	for i := range entries {
		entries[i].Rank = i + 1
		if entries[i].IsCurrentUser && entries[i].Rank != user.Rank {
			if err := s.Users.UpdateRank(userID, entries[i].Rank); err != nil {
				return nil, err
			}
		}
	}

	return entries, nil
}
