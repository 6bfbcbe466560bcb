package validate

import (
	"coach_tracker/constants"
	"coach_tracker/model"
	"coach_tracker/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateCoach() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateCoachInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.VALIDATION_FAILED, err)
		}

		dateIn, err := model.ParseDate(input.DateIn)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_DATE, err)
		}

		c.Locals("createCoach", model.Coach{
			CoachNo:     input.CoachNo,
			CoachType:   input.CoachType,
			DateIn:      dateIn,
			CurrentShop: input.Shop,
		})

		return c.Next()
	}
}
