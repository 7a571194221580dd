package model

import (
	"time"
)

// PointsPerLevel 每升一级所需积分，等级恒为 points/500 + 1
const PointsPerLevel = 500

// swagger:model User
type User struct {
	BaseModel
	Name       string    `gorm:"size:100;not null" json:"name"`
	Email      string    `gorm:"size:100;unique;not null" json:"email"`
	Password   string    `gorm:"size:100;not null" json:"-"`
	Avatar     string    `gorm:"size:16;default:'🌊'" json:"avatar"`
	Points     int       `gorm:"default:0" json:"points"`
	Level      int       `gorm:"default:1" json:"level"`
	Rank       int       `gorm:"default:0" json:"rank"`
	Streak     int       `gorm:"default:0" json:"streak"`
	JoinedDate time.Time `gorm:"default:CURRENT_TIMESTAMP(3)" json:"joinedDate"`
}

func (User) TableName() string {
	return "users"
}

// LevelForPoints 由累计积分推导等级
func LevelForPoints(points int) int {
	return points/PointsPerLevel + 1
}
