package handler_test

import (
	"net/http"
	"testing"
	"time"

	"coach_tracker/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboard(t *testing.T) {
	app, db := newTestApp(t)

	coaches := []model.Coach{
		{CoachNo: "C100", CoachType: "AC", DateIn: mustDate(t, "2025-01-10"), CurrentShop: "Shop A"},
		{CoachNo: "C200", CoachType: "AC", DateIn: mustDate(t, "2025-02-10"), CurrentShop: "Shop B"},
		{CoachNo: "C300", CoachType: "Sleeper", DateIn: mustDate(t, "2025-03-10"), CurrentShop: "Shop A"},
	}
	for i := range coaches {
		require.NoError(t, db.Create(&coaches[i]).Error)
	}

	now := time.Now()
	movements := []model.Movement{
		{CoachNo: "C100", ShopOut: "Shop A", ShopIn: "Shop B", TimeIn: now, TimeOut: now},
		{CoachNo: "C100", ShopOut: "Shop B", ShopIn: "Shop A", TimeIn: now, TimeOut: now},
		{CoachNo: "C300", ShopOut: "Shop A", ShopIn: "Shop C", TimeIn: now, TimeOut: now},
	}
	for i := range movements {
		require.NoError(t, db.Create(&movements[i]).Error)
	}

	resp := doRequest(t, app, http.MethodGet, "/api/v1/dashboard", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	type dashboard struct {
		Stats             model.DashboardStats  `json:"stats"`
		CoachesByType     []model.TypeCount     `json:"coachesByType"`
		MovementsPerCoach []model.MovementCount `json:"movementsPerCoach"`
	}
	data := decodeData[dashboard](t, resp)

	assert.EqualValues(t, 3, data.Stats.TotalCoaches)
	assert.EqualValues(t, 3, data.Stats.TotalMovements)
	assert.EqualValues(t, 2, data.Stats.ActiveShops)

	byType := map[string]int64{}
	for _, tc := range data.CoachesByType {
		byType[tc.CoachType] = tc.Count
	}
	assert.Equal(t, map[string]int64{"AC": 2, "Sleeper": 1}, byType)

	perCoach := map[string]int64{}
	for _, mc := range data.MovementsPerCoach {
		perCoach[mc.CoachNo] = mc.Count
	}
	assert.Equal(t, map[string]int64{"C100": 2, "C300": 1}, perCoach)
}
