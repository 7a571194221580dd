package service

import (
	"ecowave_backend/internal/model"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetHome(t *testing.T) {
	user := testUser(1, 1250)
	store := newMemProgressionStore(user, testUser(2, 0))
	cache := newFakeRankCache(user)
	reports := &fakeReportStore{}
	events := newFakeEventStore(beachCleanup())

	progression := NewProgressionService(store)
	reportSvc := NewReportService(reports, nil, progression)
	eventSvc := NewEventService(events, progression)
	svc := NewHomeService(cache, reports, events, progression)

	_, err := reportSvc.SubmitReport(1, validReport())
	require.NoError(t, err)
	_, err = reportSvc.SubmitReport(2, validReport())
	require.NoError(t, err)
	_, err = eventSvc.ToggleJoin(1, "e1")
	require.NoError(t, err)

	summary, err := svc.GetHome(1)
	require.NoError(t, err)

	// reports 只数自己的，activeUsers 叠加全平台的
	assert.Equal(t, int64(1), summary.Stats.Reports)
	assert.Equal(t, int64(1), summary.Stats.Events)
	assert.Equal(t, int64(1242), summary.Stats.ActiveUsers)

	require.Len(t, summary.RecentActivity, 2)
	// 最新的在前
	assert.Equal(t, "Joined Beach Cleanup Drive", summary.RecentActivity[0].Title)
	assert.Equal(t, "Reported Plastic Waste", summary.RecentActivity[1].Title)
	assert.Equal(t, "Just now", summary.RecentActivity[0].Timestamp)
}

func TestRecentActivityLimit(t *testing.T) {
	user := testUser(1, 0)
	store := newMemProgressionStore(user)
	progression := NewProgressionService(store)
	svc := NewHomeService(newFakeRankCache(user), &fakeReportStore{}, newFakeEventStore(), progression)

	for i := 0; i < 8; i++ {
		_, err := progression.AwardPoints(1, EducationAward, model.ActivityEducation, fmt.Sprintf("entry %d", i), "ctx")
		require.NoError(t, err)
	}

	summary, err := svc.GetHome(1)
	require.NoError(t, err)
	assert.Len(t, summary.RecentActivity, 5)
	assert.Equal(t, "entry 7", summary.RecentActivity[0].Title)
}
