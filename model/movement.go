package model

import "time"

// Movement is one shop-to-shop transfer. Rows are immutable once written.
// Coaches are referenced by their textual number; there is no relational
// foreign key.
type Movement struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	CoachNo  string    `gorm:"size:50;not null;index" json:"coachNo"`
	ShopIn   string    `gorm:"size:100;not null" json:"shopIn"`
	ShopOut  string    `gorm:"size:100;not null" json:"shopOut"`
	WorkDone string    `gorm:"type:text" json:"workDone"`
	TimeIn   time.Time `json:"timeIn"`
	TimeOut  time.Time `json:"timeOut"`
}

type CreateMovementInput struct {
	CoachNo  string `json:"coachNo" validate:"required,max=50"`
	ShopOut  string `json:"shopOut" validate:"required,max=100"`
	ShopIn   string `json:"shopIn" validate:"required,max=100"`
	WorkDone string `json:"workDone" validate:"omitempty"`
}
