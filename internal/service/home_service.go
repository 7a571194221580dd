package service

import (
	"ecowave_backend/internal/model"
	"ecowave_backend/internal/util"
)

// 平台基础活跃人数，叠加真实上报数做成增长的展示值
const activeUsersBaseline = 1240

type UserFinder interface {
	FindByID(id uint) (*model.User, error)
}

type JoinCounter interface {
	CountJoined(userID uint) (int64, error)
}

type HomeService struct {
	Users       UserFinder
	Reports     ReportStore
	Joins       JoinCounter
	Progression *ProgressionService
}

func NewHomeService(users UserFinder, reports ReportStore, joins JoinCounter, progression *ProgressionService) *HomeService {
	return &HomeService{Users: users, Reports: reports, Joins: joins, Progression: progression}
}

// ActivityView 给前端的活动条目，时间戳已格式化为相对描述
type ActivityView struct {
	ID        string             `json:"id"`
	Kind      model.ActivityKind `json:"type"`
	Title     string             `json:"title"`
	Context   string             `json:"context"`
	Points    int                `json:"points"`
	Timestamp string             `json:"timestamp"`
}

type HomeStats struct {
	Reports     int64 `json:"reports"`
	Events      int64 `json:"events"`
	ActiveUsers int64 `json:"activeUsers"`
	Level       int   `json:"level"`
}

type HomeSummary struct {
	User           *model.User    `json:"user"`
	Stats          HomeStats      `json:"stats"`
	RecentActivity []ActivityView `json:"recentActivity"`
}

func (s *HomeService) GetHome(userID uint) (*HomeSummary, error) {
	user, err := s.Users.FindByID(userID)
	if err != nil {
		return nil, err
	}

	// reports 是用户自己的上报数，activeUsers 叠加的是全平台上报数
	myReports, err := s.Reports.CountByUser(userID)
	if err != nil {
		return nil, err
	}

	totalReports, err := s.Reports.CountAll()
	if err != nil {
		return nil, err
	}

	joinedCount, err := s.Joins.CountJoined(userID)
	if err != nil {
		return nil, err
	}

	activities, err := s.Progression.Ledger(userID, 5)
	if err != nil {
		return nil, err
	}

	return &HomeSummary{
		User: user,
		Stats: HomeStats{
			Reports:     myReports,
			Events:      joinedCount,
			ActiveUsers: activeUsersBaseline + totalReports,
			Level:       user.Level,
		},
		RecentActivity: FormatActivities(activities),
	}, nil
}

func FormatActivities(activities []model.Activity) []ActivityView {
	views := make([]ActivityView, len(activities))
	for i, a := range activities {
		views[i] = ActivityView{
			ID:        a.ID,
			Kind:      a.Kind,
			Title:     a.Title,
			Context:   a.Context,
			Points:    a.Points,
			Timestamp: util.TimeSince(a.OccurredAt),
		}
	}
	return views
}
