package service

import (
	"ecowave_backend/internal/model"
	"ecowave_backend/internal/util"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memProgressionStore 内存版进度存储，账单保持最新在前
type memProgressionStore struct {
	users      map[uint]*model.User
	activities map[uint][]model.Activity
	saveErr    error
}

func newMemProgressionStore(users ...*model.User) *memProgressionStore {
	store := &memProgressionStore{
		users:      make(map[uint]*model.User),
		activities: make(map[uint][]model.Activity),
	}
	for _, u := range users {
		store.users[u.ID] = u
	}
	return store
}

func (m *memProgressionStore) GetUser(id uint) (*model.User, error) {
	user, ok := m.users[id]
	if !ok {
		return nil, util.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (m *memProgressionStore) SaveUserAndActivity(user *model.User, activity *model.Activity, keep int) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	copied := *user
	m.users[user.ID] = &copied

	if activity.ID == "" {
		activity.ID = model.GenerateUUID()
	}
	ledger := append([]model.Activity{*activity}, m.activities[user.ID]...)
	if len(ledger) > keep {
		ledger = ledger[:keep]
	}
	m.activities[user.ID] = ledger
	return nil
}

func (m *memProgressionStore) Activities(userID uint, limit int) ([]model.Activity, error) {
	ledger := m.activities[userID]
	if limit > 0 && len(ledger) > limit {
		ledger = ledger[:limit]
	}
	return ledger, nil
}

func testUser(id uint, points int) *model.User {
	return &model.User{
		BaseModel: model.BaseModel{ID: id},
		Name:      "Alex Rivera",
		Avatar:    "🌊",
		Points:    points,
		Level:     model.LevelForPoints(points),
	}
}

func TestAwardPoints(t *testing.T) {
	t.Run("adds points and records activity", func(t *testing.T) {
		store := newMemProgressionStore(testUser(1, 1250))
		svc := NewProgressionService(store)

		user, err := svc.AwardPoints(1, ReportAward, model.ActivityReport, "Reported Plastic", "Sunset Beach")
		require.NoError(t, err)

		assert.Equal(t, 1300, user.Points)
		assert.Equal(t, 3, user.Level)

		ledger, err := svc.Ledger(1, model.ActivityLedgerCap)
		require.NoError(t, err)
		require.Len(t, ledger, 1)
		assert.Equal(t, model.ActivityReport, ledger[0].Kind)
		assert.Equal(t, "Reported Plastic", ledger[0].Title)
		assert.Equal(t, "Sunset Beach", ledger[0].Context)
		assert.Equal(t, 50, ledger[0].Points)
	})

	t.Run("level rises at every 500 points", func(t *testing.T) {
		store := newMemProgressionStore(testUser(1, 480))
		svc := NewProgressionService(store)

		user, err := svc.AwardPoints(1, EducationAward, model.ActivityEducation, "Learned about Wildlife", "Sea Turtles 101")
		require.NoError(t, err)

		assert.Equal(t, 505, user.Points)
		assert.Equal(t, 2, user.Level)
	})

	t.Run("rejects non-positive amounts", func(t *testing.T) {
		store := newMemProgressionStore(testUser(1, 100))
		svc := NewProgressionService(store)

		for _, amount := range []int{0, -50} {
			_, err := svc.AwardPoints(1, amount, model.ActivityReport, "x", "y")
			assert.ErrorIs(t, err, util.ErrInvalidPointAmount)
		}

		ledger, err := svc.Ledger(1, model.ActivityLedgerCap)
		require.NoError(t, err)
		assert.Empty(t, ledger)
	})

	t.Run("unknown user", func(t *testing.T) {
		svc := NewProgressionService(newMemProgressionStore())

		_, err := svc.AwardPoints(42, ReportAward, model.ActivityReport, "x", "y")
		assert.ErrorIs(t, err, util.ErrUserNotFound)
	})

	t.Run("points never decrease on store failure", func(t *testing.T) {
		store := newMemProgressionStore(testUser(1, 1000))
		store.saveErr = assert.AnError
		svc := NewProgressionService(store)

		_, err := svc.AwardPoints(1, ReportAward, model.ActivityReport, "x", "y")
		require.Error(t, err)

		saved, err := store.GetUser(1)
		require.NoError(t, err)
		assert.Equal(t, 1000, saved.Points)
	})
}

func TestLedgerCap(t *testing.T) {
	store := newMemProgressionStore(testUser(1, 0))
	svc := NewProgressionService(store)

	for i := 0; i < model.ActivityLedgerCap+10; i++ {
		_, err := svc.AwardPoints(1, EducationAward, model.ActivityEducation, fmt.Sprintf("entry %d", i), "ctx")
		require.NoError(t, err)
	}

	ledger, err := svc.Ledger(1, model.ActivityLedgerCap)
	require.NoError(t, err)
	require.Len(t, ledger, model.ActivityLedgerCap)

	// 最新的在前，最老的10条被裁掉
	assert.Equal(t, fmt.Sprintf("entry %d", model.ActivityLedgerCap+9), ledger[0].Title)
	assert.Equal(t, "entry 10", ledger[len(ledger)-1].Title)

	user, err := store.GetUser(1)
	require.NoError(t, err)
	assert.Equal(t, (model.ActivityLedgerCap+10)*EducationAward, user.Points)
}
