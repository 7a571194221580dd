package service

import (
	"ecowave_backend/internal/model"
	"ecowave_backend/internal/util"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRoster struct {
	seeds []model.LeaderboardSeed
}

func (f *fakeRoster) Roster() ([]model.LeaderboardSeed, error) {
	return f.seeds, nil
}

type fakeRankCache struct {
	users       map[uint]*model.User
	rankUpdates int
}

func newFakeRankCache(users ...*model.User) *fakeRankCache {
	cache := &fakeRankCache{users: make(map[uint]*model.User)}
	for _, u := range users {
		cache.users[u.ID] = u
	}
	return cache
}

func (f *fakeRankCache) FindByID(id uint) (*model.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, util.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (f *fakeRankCache) UpdateRank(userID uint, rank int) error {
	f.rankUpdates++
	if user, ok := f.users[userID]; ok {
		user.Rank = rank
	}
	return nil
}

func seedRoster() *fakeRoster {
	return &fakeRoster{seeds: []model.LeaderboardSeed{
		{Name: "Marina Depths", Avatar: "🐋", Level: 5, Points: 2850},
		{Name: "Coral Keeper", Avatar: "🪸", Level: 4, Points: 2100},
		{Name: "Wave Walker", Avatar: "🏄", Level: 4, Points: 1890},
		{Name: "Tide Turner", Avatar: "🌊", Level: 3, Points: 1420},
		{Name: "Reef Ranger", Avatar: "🐠", Level: 2, Points: 980},
		{Name: "Shore Scout", Avatar: "🦀", Level: 2, Points: 760},
	}}
}

func TestComputeLeaderboard(t *testing.T) {
	t.Run("ranks dense and descending", func(t *testing.T) {
		user := testUser(1, 1250)
		user.Rank = 12
		cache := newFakeRankCache(user)
		svc := NewLeaderboardService(seedRoster(), cache)

		entries, err := svc.ComputeLeaderboard(1)
		require.NoError(t, err)
		require.Len(t, entries, 7)

		for i, e := range entries {
			assert.Equal(t, i+1, e.Rank)
			if i > 0 {
				assert.GreaterOrEqual(t, entries[i-1].Points, e.Points)
			}
		}

		assert.Equal(t, "Marina Depths", entries[0].Name)
		assert.Equal(t, "Alex Rivera", entries[4].Name)
		assert.True(t, entries[4].IsCurrentUser)
	})

	t.Run("writes back changed rank", func(t *testing.T) {
		user := testUser(1, 1250)
		user.Rank = 12
		cache := newFakeRankCache(user)
		svc := NewLeaderboardService(seedRoster(), cache)

		_, err := svc.ComputeLeaderboard(1)
		require.NoError(t, err)

		assert.Equal(t, 1, cache.rankUpdates)
		assert.Equal(t, 5, cache.users[1].Rank)

		// 名次没变就不再回写
		_, err = svc.ComputeLeaderboard(1)
		require.NoError(t, err)
		assert.Equal(t, 1, cache.rankUpdates)
	})

	t.Run("deterministic on ties", func(t *testing.T) {
		user := testUser(1, 980) // 与 Reef Ranger 并列
		cache := newFakeRankCache(user)
		svc := NewLeaderboardService(seedRoster(), cache)

		first, err := svc.ComputeLeaderboard(1)
		require.NoError(t, err)
		second, err := svc.ComputeLeaderboard(1)
		require.NoError(t, err)

		assert.Equal(t, first, second)
		// 稳定排序：名册条目在前，当前用户排在并列者之后
		assert.Equal(t, "Reef Ranger", first[4].Name)
		assert.True(t, first[5].IsCurrentUser)
	})

	t.Run("unknown user", func(t *testing.T) {
		svc := NewLeaderboardService(seedRoster(), newFakeRankCache())

		_, err := svc.ComputeLeaderboard(99)
		assert.ErrorIs(t, err, util.ErrUserNotFound)
	})
}
