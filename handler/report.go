package handler

import (
	"coach_tracker/constants"
	"coach_tracker/model"
	"coach_tracker/utils"

	"github.com/gofiber/fiber/v2"
)

func (h *Handler) filteredCoaches(c *fiber.Ctx) ([]model.Coach, error) {
	filter := new(model.CoachFilter)
	if err := c.QueryParser(filter); err != nil {
		return nil, err
	}

	db := h.DB.Model(&model.Coach{})
	// date_in bounds are inclusive on both ends.
	if filter.StartDate != "" {
		db = db.Where("date_in >= ?", filter.StartDate)
	}
	if filter.EndDate != "" {
		db = db.Where("date_in <= ?", filter.EndDate)
	}
	if filter.CoachType != "" && filter.CoachType != constants.COACH_TYPE_ALL {
		db = db.Where("coach_type = ?", filter.CoachType)
	}

	coaches := []model.Coach{}
	if err := db.Order("id").Find(&coaches).Error; err != nil {
		return nil, err
	}
	return coaches, nil
}

// GetReport serves the filtered coach table plus the by-type summary behind
// the report chart.
func (h *Handler) GetReport(c *fiber.Ctx) error {
	coaches, err := h.filteredCoaches(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.REPORT_FAILED, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"rows":   coaches,
		"byType": utils.CoachCountByType(coaches),
	})
}

func (h *Handler) ExportReportCSV(c *fiber.Ctx) error {
	coaches, err := h.filteredCoaches(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.REPORT_FAILED, err)
	}

	data, err := utils.ExportCSV(coaches)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.EXPORT_FAILED, err)
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="coaches_report.csv"`)
	return c.Send(data)
}

func (h *Handler) ExportReportXLSX(c *fiber.Ctx) error {
	coaches, err := h.filteredCoaches(c)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.REPORT_FAILED, err)
	}

	data, err := utils.ExportXLSX(coaches)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.EXPORT_FAILED, err)
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="coaches_report.xlsx"`)
	return c.Send(data)
}
