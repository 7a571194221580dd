package model

type ContentType string

const (
	ContentArticle     ContentType = "Article"
	ContentVideo       ContentType = "Video"
	ContentInfographic ContentType = "Infographic"
)

// EducationContent 只读科普目录条目，“完成”不落在条目上，
// 而是作为一条 education 活动记入账单
type EducationContent struct {
	UUIDBase
	Title       string      `gorm:"size:255;not null" json:"title"`
	Description string      `gorm:"type:text" json:"description"`
	Type        ContentType `gorm:"size:20;not null" json:"type"`
	Category    string      `gorm:"size:100" json:"category"`
	Image       string      `gorm:"size:512" json:"image"`
	Duration    string      `gorm:"size:50" json:"duration"`
	Content     string      `gorm:"type:text" json:"content"`
}

func (EducationContent) TableName() string {
	return "education_contents"
}
