package model

import "time"

type ActivityKind string

const (
	ActivityReport    ActivityKind = "report"
	ActivityEvent     ActivityKind = "event"
	ActivityEducation ActivityKind = "education"
	ActivityAI        ActivityKind = "ai"
)

// ActivityLedgerCap 每个用户保留的最近活动条数
const ActivityLedgerCap = 50

// Activity 影响力流水账单条目，创建后不可变
type Activity struct {
	UUIDBase
	UserID     uint         `gorm:"index;not null" json:"-"`
	Kind       ActivityKind `gorm:"size:20;not null" json:"type"`
	Title      string       `gorm:"size:255;not null" json:"title"`
	Context    string       `gorm:"size:255" json:"context"`
	Points     int          `gorm:"not null" json:"points"`
	OccurredAt time.Time    `gorm:"index;not null" json:"occurredAt"`
}

func (Activity) TableName() string {
	return "activities"
}
