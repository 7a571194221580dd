package model

type PollutionType string

const (
	PollutionPlastic       PollutionType = "Plastic Waste"
	PollutionOil           PollutionType = "Oil Spill"
	PollutionChemical      PollutionType = "Chemical Pollution"
	PollutionSewage        PollutionType = "Sewage"
	PollutionDebris        PollutionType = "Marine Debris"
	PollutionMicroplastics PollutionType = "Microplastics"
	PollutionIndustrial    PollutionType = "Industrial Waste"
	PollutionOther         PollutionType = "Other"
)

type Severity string

const (
	SeverityLow      Severity = "Low"
	SeverityMedium   Severity = "Medium"
	SeverityHigh     Severity = "High"
	SeverityCritical Severity = "Critical"
)

type ReportStatus string

const (
	ReportPending  ReportStatus = "Pending"
	ReportVerified ReportStatus = "Verified"
	ReportResolved ReportStatus = "Resolved"
)

// Report 污染上报记录，只增不改
type Report struct {
	UUIDBase
	UserID       uint          `gorm:"index;not null" json:"userId"`
	Type         PollutionType `gorm:"size:50;not null" json:"type"`
	Severity     Severity      `gorm:"size:20;not null" json:"severity"`
	Lat          float64       `json:"lat"`
	Lng          float64       `json:"lng"`
	LocationName string        `gorm:"size:255;not null" json:"locationName"`
	Description  string        `gorm:"type:text;not null" json:"description"`
	Image        string        `gorm:"size:512" json:"image,omitempty"`
	Status       ReportStatus  `gorm:"size:20;default:'Pending'" json:"status"`
}

func (Report) TableName() string {
	return "reports"
}
