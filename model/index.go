package model

// DashboardStats is the KPI block on the dashboard.
type DashboardStats struct {
	TotalCoaches   int64 `json:"totalCoaches"`
	TotalMovements int64 `json:"totalMovements"`
	ActiveShops    int64 `json:"activeShops"`
}

// TypeCount is one bar of the coaches-by-type chart.
type TypeCount struct {
	CoachType string `json:"coachType"`
	Count     int64  `json:"count"`
}

// MovementCount is one point of the movements-per-coach chart.
type MovementCount struct {
	CoachNo string `json:"coachNo"`
	Count   int64  `json:"count"`
}
