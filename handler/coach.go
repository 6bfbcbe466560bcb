package handler

import (
	"coach_tracker/constants"
	"coach_tracker/model"
	"coach_tracker/utils"

	"github.com/gofiber/fiber/v2"
)

func (h *Handler) CreateCoach(c *fiber.Ctx) error {
	input := c.Locals("createCoach").(model.Coach)

	if err := h.DB.Create(&input).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.COACH_CREATE_FAILED, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, input)
}

func (h *Handler) GetCoaches(c *fiber.Ctx) error {
	var coaches []model.Coach
	if err := h.DB.Order("id").Find(&coaches).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.COACH_FETCH_FAILED, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, coaches)
}

// GetCoachNumbers returns the distinct coach numbers used to populate the
// movement form's selection control.
func (h *Handler) GetCoachNumbers(c *fiber.Ctx) error {
	var numbers []string
	if err := h.DB.Model(&model.Coach{}).Distinct().Order("coach_no").Pluck("coach_no", &numbers).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.COACH_FETCH_FAILED, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, numbers)
}
