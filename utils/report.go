package utils

import (
	"coach_tracker/model"
)

// CoachCountByType tallies an already-fetched coach list for the report
// chart. Pure function of its input; no store access.
func CoachCountByType(coaches []model.Coach) map[string]int {
	counts := make(map[string]int)
	for _, coach := range coaches {
		counts[coach.CoachType]++
	}
	return counts
}

// MovementCountByCoach tallies movements per coach number.
func MovementCountByCoach(movements []model.Movement) map[string]int {
	counts := make(map[string]int)
	for _, movement := range movements {
		counts[movement.CoachNo]++
	}
	return counts
}
