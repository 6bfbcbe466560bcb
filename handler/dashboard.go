package handler

import (
	"coach_tracker/constants"
	"coach_tracker/model"
	"coach_tracker/utils"

	"github.com/gofiber/fiber/v2"
)

// GetDashboard serves the live-status tab: KPI counters plus the two chart
// datasets (coaches by type, movements per coach).
func (h *Handler) GetDashboard(c *fiber.Ctx) error {
	db := h.DB

	var stats model.DashboardStats
	if err := db.Model(&model.Coach{}).Count(&stats.TotalCoaches).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.REPORT_FAILED, err)
	}
	if err := db.Model(&model.Movement{}).Count(&stats.TotalMovements).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.REPORT_FAILED, err)
	}
	if err := db.Model(&model.Coach{}).Distinct("current_shop").Count(&stats.ActiveShops).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.REPORT_FAILED, err)
	}

	var byType []model.TypeCount
	if err := db.Model(&model.Coach{}).
		Select("coach_type, COUNT(*) AS count").
		Group("coach_type").
		Scan(&byType).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.REPORT_FAILED, err)
	}

	var perCoach []model.MovementCount
	if err := db.Model(&model.Movement{}).
		Select("coach_no, COUNT(*) AS count").
		Group("coach_no").
		Scan(&perCoach).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.REPORT_FAILED, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"stats":             stats,
		"coachesByType":     byType,
		"movementsPerCoach": perCoach,
	})
}
