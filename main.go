package main

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog/log"

	"mealforecast/config"
	"mealforecast/database"
	"mealforecast/forecast"
	"mealforecast/logger"
	"mealforecast/middleware"
	"mealforecast/ml"
	"mealforecast/routes"
)

func main() {
	cfg := config.Load()
	logger.Setup(cfg.LogLevel, cfg.LogPretty)

	// The model is read-only for the lifetime of the process.
	if err := ml.InitModel(cfg.ModelManifest); err != nil {
		log.Fatal().Err(err).Str("manifest", cfg.ModelManifest).Msg("Unable to load model")
	}
	model, _ := ml.GetModel()
	if n := forecast.LookbackDaysOf(model.Features); n != cfg.LookbackDays {
		log.Fatal().
			Int("lookbackDays", cfg.LookbackDays).
			Int("modelLookbackDays", n).
			Msg("LOOKBACK_DAYS does not match the model's POLO_QUANTIDADE columns")
	}

	if cfg.DatabaseURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		err := database.Connect(ctx, cfg.DatabaseURL)
		cancel()
		if err != nil {
			log.Fatal().Err(err).Msg("Unable to connect to database")
		}
		defer database.Close()
		database.SetSales(database.NewPostgresSalesReader(database.DB))
	} else {
		log.Info().Msg("DATABASE_URL is not set, sales history prefill disabled")
	}

	app := fiber.New(fiber.Config{DisableStartupMessage: true})

	app.Use(recover.New())
	app.Use(middleware.RequestLogger)
	app.Use(cors.New())

	routes.SetupRoutes(app)

	addr := ":" + cfg.Port
	log.Info().Str("addr", addr).Msg("Serving meal forecast form")
	if err := app.Listen(addr); err != nil {
		log.Error().Err(err).Msg("Server stopped")
	}
}
