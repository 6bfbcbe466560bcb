package handler

import (
	"coach_tracker/constants"
	"coach_tracker/model"
	"coach_tracker/utils"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CreateMovement logs a shop-to-shop transfer and moves the coach to the
// destination shop. Both writes run in one transaction, so an unknown coach
// number leaves the movement log untouched.
func (h *Handler) CreateMovement(c *fiber.Ctx) error {
	input := c.Locals("createMovement").(model.CreateMovementInput)

	// Both stamps record the submission instant. That mirrors the original
	// dashboard; see DESIGN.md for the open question around these fields.
	now := time.Now()
	movement := model.Movement{
		CoachNo:  input.CoachNo,
		ShopIn:   input.ShopIn,
		ShopOut:  input.ShopOut,
		WorkDone: input.WorkDone,
		TimeIn:   now,
		TimeOut:  now,
	}

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.Coach{}).
			Where("coach_no = ?", input.CoachNo).
			Update("current_shop", input.ShopIn)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Create(&movement).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.COACH_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.MOVEMENT_CREATE_FAILED, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, movement)
}

// GetMovementsByCoach returns the movement history for one coach number.
// An unknown number and a coach with no movements both yield an empty list.
func (h *Handler) GetMovementsByCoach(c *fiber.Ctx) error {
	coachNo := c.Params("coachNo")

	movements := []model.Movement{}
	if err := h.DB.Where("coach_no = ?", coachNo).Order("id").Find(&movements).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.MOVEMENT_FETCH_FAILED, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, movements)
}
