package database

import (
	"coach_tracker/constants"
	"coach_tracker/model"
	"log"

	"gorm.io/gorm"
)

func parseDate(dateStr string) model.Date {
	d, _ := model.ParseDate(dateStr)
	return d
}

// SeedDemo inserts a small demo fleet. Coaches are matched by number, so
// running it again is a no-op.
func SeedDemo(db *gorm.DB) {
	coaches := []model.Coach{
		{CoachNo: "WR-1021", CoachType: constants.COACH_TYPE_AC, DateIn: parseDate("2025-01-06"), CurrentShop: "Paint Shop"},
		{CoachNo: "WR-1044", CoachType: constants.COACH_TYPE_SLEEPER, DateIn: parseDate("2025-02-11"), CurrentShop: "Wheel Shop"},
		{CoachNo: "WR-1102", CoachType: constants.COACH_TYPE_GENERAL, DateIn: parseDate("2025-03-02"), CurrentShop: "Body Shop"},
	}

	for _, coach := range coaches {
		if err := db.Where(model.Coach{CoachNo: coach.CoachNo}).FirstOrCreate(&coach).Error; err != nil {
			log.Println("failed to seed coach:", coach.CoachNo, "error:", err)
		}
	}
}
