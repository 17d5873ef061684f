package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"mealforecast/database"
	"mealforecast/locales"
	"mealforecast/logger"
	"mealforecast/models"
	"mealforecast/utils"
)

// HandleGetSalesHistory prefills the prior-day quantities from the sales database.
// GET /api/v1/sales/history?date=YYYY-MM-DD
func HandleGetSalesHistory(c *fiber.Ctx) error {
	target, err := utils.ParseDate(c.Query("date"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid date, expected YYYY-MM-DD"})
	}

	reader, err := database.GetSales()
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": "error", "message": "Sales history is not configured"})
	}

	days := utils.BusinessDays(target, lookbackDays(), locales.LookbackLabel)
	dates := make([]time.Time, len(days))
	for i, d := range days {
		dates[i] = d.Date
	}

	quantities, err := reader.QuantitiesOn(c.UserContext(), dates)
	if err != nil {
		logger.Component("sales").Error().Err(err).Str("date", c.Query("date")).Msg("Failed to read sales history")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to retrieve sales history"})
	}

	return c.JSON(fiber.Map{"status": "success", "data": models.SalesHistory{
		Date:       target.Format(models.DateLayout),
		Days:       days,
		Quantities: quantities,
	}})
}
