package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper to create an app with a single middleware in front of /test
func makeApp(check fiber.Handler) *fiber.App {
	app := fiber.New()
	app.Use(check)
	app.Get("/test", func(c *fiber.Ctx) error {
		return c.Status(200).SendString("ok")
	})
	app.Get("/fail", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusBadGateway, "upstream")
	})
	return app
}

func TestRequestLoggerAssignsRequestID(t *testing.T) {
	app := makeApp(RequestLogger)

	resp, err := app.Test(httptest.NewRequest("GET", "/test", nil))

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Len(t, resp.Header.Get(HeaderRequestID), 36)
}

func TestRequestLoggerKeepsIncomingRequestID(t *testing.T) {
	app := makeApp(RequestLogger)
	req := httptest.NewRequest("GET", "/test", nil)
	req.Header.Set(HeaderRequestID, "abc-123")

	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, "abc-123", resp.Header.Get(HeaderRequestID))
}

func TestRequestLoggerPassesErrorsThrough(t *testing.T) {
	app := makeApp(RequestLogger)

	resp, err := app.Test(httptest.NewRequest("GET", "/fail", nil))

	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadGateway, resp.StatusCode)
}

func TestRateLimitRejectsBeyondBurst(t *testing.T) {
	app := makeApp(RateLimit(0.001, 2))

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		resp, err := app.Test(httptest.NewRequest("GET", "/test", nil))
		require.NoError(t, err)
		codes = append(codes, resp.StatusCode)
	}

	assert.Equal(t, []int{200, 200, 429}, codes)
}

func TestRateLimitIsPerClient(t *testing.T) {
	app := fiber.New(fiber.Config{ProxyHeader: fiber.HeaderXForwardedFor})
	app.Use(RateLimit(0.001, 1))
	app.Get("/test", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	call := func(ip string) int {
		req := httptest.NewRequest("GET", "/test", nil)
		req.Header.Set(fiber.HeaderXForwardedFor, ip)
		resp, err := app.Test(req)
		require.NoError(t, err)
		return resp.StatusCode
	}

	assert.Equal(t, 200, call("10.0.0.1"))
	assert.Equal(t, 429, call("10.0.0.1"))
	assert.Equal(t, 200, call("10.0.0.2"))
}

func TestVisitorsSweepIdleClients(t *testing.T) {
	v := &visitors{perSecond: 0.001, burst: 1, clients: make(map[string]*visitor)}
	start := time.Date(2024, time.June, 10, 12, 0, 0, 0, time.UTC)
	v.lastSweep = start

	assert.True(t, v.allow("10.0.0.1", start))
	assert.False(t, v.allow("10.0.0.1", start.Add(time.Second)))
	assert.True(t, v.allow("10.0.0.2", start.Add(time.Second)))

	later := start.Add(idleTimeout + 2*time.Second)
	assert.True(t, v.allow("10.0.0.2", later))
	assert.Len(t, v.clients, 1)
	assert.True(t, v.allow("10.0.0.1", later.Add(time.Second)))
}
