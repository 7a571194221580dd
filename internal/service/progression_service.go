package service

import (
	"ecowave_backend/internal/model"
	"ecowave_backend/internal/util"
	"ecowave_backend/pkg/monitoring"
	"time"
)

// 三种产生积分的动作对应的固定奖励
const (
	ReportAward    = 50
	EventJoinAward = 100
	EducationAward = 25
)

// ProgressionStore 进度引擎的持久化端口。
// SaveUserAndActivity 必须原子：档案在前，账单在后，失败时两者都不落。
type ProgressionStore interface {
	GetUser(id uint) (*model.User, error)
	SaveUserAndActivity(user *model.User, activity *model.Activity, keep int) error
	Activities(userID uint, limit int) ([]model.Activity, error)
}

type ProgressionService struct {
	Store ProgressionStore
}

func NewProgressionService(store ProgressionStore) *ProgressionService {
	return &ProgressionService{Store: store}
}

// AwardPoints 给用户加积分并在账单里记一笔。
// 积分只增不减，等级恒等于 points/500 + 1。
func (s *ProgressionService) AwardPoints(userID uint, amount int, kind model.ActivityKind, title, context string) (*model.User, error) {
	if amount <= 0 {
		return nil, util.ErrInvalidPointAmount
	}

	user, err := s.Store.GetUser(userID)
	if err != nil {
		return nil, err
	}

	user.Points += amount
	user.Level = model.LevelForPoints(user.Points)

	activity := &model.Activity{
		UserID:     userID,
		Kind:       kind,
		Title:      title,
		Context:    context,
		Points:     amount,
		OccurredAt: time.Now(),
	}

	if err := s.Store.SaveUserAndActivity(user, activity, model.ActivityLedgerCap); err != nil {
		return nil, err
	}

	monitoring.PointsAwarded.WithLabelValues(string(kind)).Add(float64(amount))

	return user, nil
}

// Ledger 返回用户最近的活动记录，最新的在前
func (s *ProgressionService) Ledger(userID uint, limit int) ([]model.Activity, error) {
	return s.Store.Activities(userID, limit)
}
