package model

type Difficulty string

const (
	DifficultyEasy     Difficulty = "Easy"
	DifficultyModerate Difficulty = "Moderate"
	DifficultyHard     Difficulty = "Hard"
)

// Event 清洁行动目录条目。Participants 是目录真值，
// 用户视角的 +1 投影只在读取时叠加，绝不回写。
type Event struct {
	UUIDBase
	Title           string     `gorm:"size:255;not null" json:"title"`
	Description     string     `gorm:"type:text" json:"description"`
	Date            string     `gorm:"size:50" json:"date"`
	Time            string     `gorm:"size:20" json:"time"`
	Location        string     `gorm:"size:255" json:"location"`
	Organizer       string     `gorm:"size:255" json:"organizer"`
	Image           string     `gorm:"size:512" json:"image"`
	Participants    int        `gorm:"default:0" json:"participants"`
	MaxParticipants int        `gorm:"default:0" json:"maxParticipants"`
	Difficulty      Difficulty `gorm:"size:20" json:"difficulty"`
}

func (Event) TableName() string {
	return "events"
}

// EventJoin 用户与行动的参加关系，成员状态只存在这里
type EventJoin struct {
	BaseModel
	UserID  uint   `gorm:"uniqueIndex:idx_user_event;not null"`
	EventID string `gorm:"uniqueIndex:idx_user_event;type:varchar(36);not null"`
}

func (EventJoin) TableName() string {
	return "event_joins"
}
