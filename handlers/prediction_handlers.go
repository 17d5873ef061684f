package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"mealforecast/config"
	"mealforecast/forecast"
	"mealforecast/locales"
	"mealforecast/logger"
	"mealforecast/ml"
	"mealforecast/models"
)

func modelOrUnavailable() (*ml.Model, error) {
	model, err := ml.GetModel()
	if err != nil {
		logger.Component("predictions").Error().Err(err).Msg("Model unavailable")
		return nil, err
	}
	return model, nil
}

// newService sizes the lookback from the model's POLO_QUANTIDADE_n columns.
func newService(model *ml.Model) *forecast.Service {
	return forecast.NewService(model, forecast.LookbackDaysOf(model.Features))
}

// lookbackDays is the number of prior-sales inputs to render. It falls back
// to LOOKBACK_DAYS while no model is loaded.
func lookbackDays() int {
	model, err := ml.GetModel()
	if err != nil {
		return config.AppConfig.LookbackDays
	}
	return newService(model).LookbackDays()
}

// HandleCreatePrediction predicts the meal count for one day.
// POST /api/v1/predictions
func HandleCreatePrediction(c *fiber.Ctx) error {
	var req models.PredictionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid request body"})
	}

	model, err := modelOrUnavailable()
	if err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "error", "message": "Model not loaded"})
	}

	result, err := newService(model).Predict(req)
	if err != nil {
		var verr *forecast.ValidationError
		switch {
		case errors.Is(err, forecast.ErrMealTypeRequired):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": locales.L.Messages.MealRequired})
		case errors.As(err, &verr):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": verr.Error(), "field": verr.Field})
		}
		logger.Component("predictions").Error().Err(err).Str("date", req.Date).Msg("Prediction failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to compute prediction"})
	}

	logger.Component("predictions").Debug().
		Str("date", result.Date).
		Bool("noSales", result.NoSales).
		Int("quantity", result.Rounded).
		Msg("Prediction computed")

	message := locales.Prediction(result.Rounded)
	if result.NoSales {
		message = locales.L.Messages.NoSales
	}
	return c.JSON(fiber.Map{"status": "success", "message": message, "data": result})
}
