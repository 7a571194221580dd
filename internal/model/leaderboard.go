package model

// LeaderboardSeed 固定的外部榜单名册，当前用户在读取时合入
type LeaderboardSeed struct {
	BaseModel
	Name   string `gorm:"size:100;not null" json:"name"`
	Avatar string `gorm:"size:16" json:"avatar"`
	Level  int    `gorm:"default:1" json:"level"`
	Points int    `gorm:"default:0" json:"points"`
}

func (LeaderboardSeed) TableName() string {
	return "leaderboard_seeds"
}
