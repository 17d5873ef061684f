package routes

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"mealforecast/config"
)

func TestSetupRoutes(t *testing.T) {
	config.AppConfig.LookbackDays = 5
	config.AppConfig.RateLimitPerSecond = 5
	config.AppConfig.RateLimitBurst = 10

	app := fiber.New()
	SetupRoutes(app)

	resp, _ := app.Test(httptest.NewRequest("GET", "/api/v1/business-days?date=2024-06-10", nil))
	assert.Equal(t, 200, resp.StatusCode)

	resp, _ = app.Test(httptest.NewRequest("GET", "/?date=2024-06-10", nil))
	assert.Equal(t, 200, resp.StatusCode)
}

func TestUnknownRouteNotFound(t *testing.T) {
	app := fiber.New()
	SetupRoutes(app)

	resp, _ := app.Test(httptest.NewRequest("GET", "/api/v1/forecasts", nil))
	assert.Equal(t, 404, resp.StatusCode)
}
