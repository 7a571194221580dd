package service

import (
	"ecowave_backend/internal/model"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAchievementStore struct {
	achievements []model.Achievement
}

func (f *fakeAchievementStore) FindAll() ([]model.Achievement, error) {
	return f.achievements, nil
}

func TestGetProfile(t *testing.T) {
	user := testUser(1, 1250)
	user.Rank = 12
	cache := newFakeRankCache(user)
	store := newMemProgressionStore(user)
	progression := NewProgressionService(store)
	leaderboard := NewLeaderboardService(seedRoster(), cache)
	achievements := &fakeAchievementStore{achievements: []model.Achievement{
		{Name: "First Report", Icon: "📸"},
	}}

	svc := NewProfileService(cache, achievements, progression, leaderboard)

	_, err := progression.AwardPoints(1, ReportAward, model.ActivityReport, "Reported Plastic Waste", "Sunset Beach")
	require.NoError(t, err)

	summary, err := svc.GetProfile(1)
	require.NoError(t, err)

	// 档案在榜单算完之后读取，名次已经是回写后的值
	assert.Equal(t, 5, summary.User.Rank)
	require.Len(t, summary.Leaderboard, 7)
	assert.True(t, summary.Leaderboard[4].IsCurrentUser)

	require.Len(t, summary.Activities, 1)
	assert.Equal(t, "Reported Plastic Waste", summary.Activities[0].Title)
	assert.Equal(t, "Just now", summary.Activities[0].Timestamp)

	require.Len(t, summary.Achievements, 1)
	assert.Equal(t, "First Report", summary.Achievements[0].Name)
}
