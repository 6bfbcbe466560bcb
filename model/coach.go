package model

// Coach is a railway carriage tracked through the workshops. CurrentShop is
// the only field that changes after creation, and only as a side effect of
// recording a movement.
type Coach struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	CoachNo     string `gorm:"size:50;not null;index" json:"coachNo"`
	CoachType   string `gorm:"size:20;not null" json:"coachType"`
	DateIn      Date   `gorm:"type:date;not null" json:"dateIn"`
	CurrentShop string `gorm:"size:100;not null" json:"currentShop"`
}

type CreateCoachInput struct {
	CoachNo   string `json:"coachNo" validate:"required,max=50"`
	CoachType string `json:"coachType" validate:"required,oneof=AC Sleeper General"`
	DateIn    string `json:"dateIn" validate:"required,datetime=2006-01-02"`
	Shop      string `json:"shop" validate:"required,max=100"`
}

type CoachFilter struct {
	StartDate string `query:"startDate"`
	EndDate   string `query:"endDate"`
	CoachType string `query:"coachType"`
}
