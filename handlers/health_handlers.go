package handlers

import (
	"runtime/debug"

	"github.com/gofiber/fiber/v2"

	"mealforecast/database"
	"mealforecast/ml"
)

// HandleHealth reports liveness and what the process has loaded.
// GET /api/v1/health
func HandleHealth(c *fiber.Ctx) error {
	_, salesErr := database.GetSales()
	data := fiber.Map{
		"modelLoaded":  false,
		"salesHistory": salesErr == nil,
	}

	model, err := ml.GetModel()
	if err == nil {
		data["modelLoaded"] = true
		data["model"] = model.Name
		data["engine"] = model.Engine
		data["features"] = len(model.Features)
		data["lookbackDays"] = newService(model).LookbackDays()
		data["params"] = model.Estimator().Params()
	}

	status := fiber.StatusOK
	if err != nil {
		status = fiber.StatusServiceUnavailable
	}
	return c.Status(status).JSON(fiber.Map{"status": "success", "data": data})
}

// HandleVersion prints the build information.
// GET /version
func HandleVersion(c *fiber.Ctx) error {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return c.Status(500).SendString("no build information available")
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTML)
	return c.SendString("<pre>\n" + info.String() + "</pre>\n")
}
