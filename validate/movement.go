package validate

import (
	"coach_tracker/constants"
	"coach_tracker/model"
	"coach_tracker/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateMovement() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateMovementInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.VALIDATION_FAILED, err)
		}

		c.Locals("createMovement", input)

		return c.Next()
	}
}
