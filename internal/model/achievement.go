package model

type Achievement struct {
	UUIDBase
	Name        string `gorm:"size:100;not null" json:"name"`
	Description string `gorm:"size:255" json:"description"`
	Icon        string `gorm:"size:16" json:"icon"`
	Points      int    `gorm:"default:0" json:"points"`
	Gradient    string `gorm:"size:100" json:"gradient"`
	EarnedDate  string `gorm:"size:50" json:"earnedDate,omitempty"`
	Locked      bool   `gorm:"default:true" json:"isLocked"`
}

func (Achievement) TableName() string {
	return "achievements"
}
