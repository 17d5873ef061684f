package routes

import (
	"mealforecast/config"
	"mealforecast/handlers"
	"mealforecast/middleware"

	"github.com/gofiber/fiber/v2"
)

// SetupRoutes defines all the routes for the application.
func SetupRoutes(app *fiber.App) {
	limit := middleware.RateLimit(config.AppConfig.RateLimitPerSecond, config.AppConfig.RateLimitBurst)

	// --- Form ---
	app.Get("/", handlers.HandleGetForm)
	app.Post("/", limit, handlers.HandleSubmitForm)
	app.Get("/version", handlers.HandleVersion)

	api := app.Group("/api/v1")
	api.Get("/health", handlers.HandleHealth)
	api.Get("/business-days", handlers.HandleGetBusinessDays)
	api.Post("/predictions", limit, handlers.HandleCreatePrediction)
	api.Get("/sales/history", handlers.HandleGetSalesHistory)
}
