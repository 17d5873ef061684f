package handlers

import (
	"github.com/gofiber/fiber/v2"

	"mealforecast/locales"
	"mealforecast/models"
	"mealforecast/utils"
)

// maxLookback bounds the n query parameter.
const maxLookback = 366

// HandleGetBusinessDays lists the business days before ?date=, oldest first.
// GET /api/v1/business-days?date=YYYY-MM-DD&n=5
func HandleGetBusinessDays(c *fiber.Ctx) error {
	target := utils.Today()
	if raw := c.Query("date"); raw != "" {
		d, err := utils.ParseDate(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid date, expected YYYY-MM-DD"})
		}
		target = d
	}

	n := c.QueryInt("n", lookbackDays())
	if n < 0 || n > maxLookback {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "n must be between 0 and 366"})
	}

	return c.JSON(fiber.Map{
		"status": "success",
		"data": fiber.Map{
			"date":         target.Format(models.DateLayout),
			"selectedDate": locales.SelectedDate(target),
			"days":         utils.BusinessDays(target, n, locales.LookbackLabel),
		},
	})
}
