package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/printshop-catalog/internal/interfaces/http"
	"github.com/jhoicas/printshop-catalog/pkg/logger"
)

func TestRequestLogger_RegistraEstadoYRequestID(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "info", Output: &buf})

	app := fiber.New()
	app.Use(requestid.New(requestid.Config{Generator: func() string { return "rid-1" }}))
	app.Use(apphttp.RequestLogger(log))
	app.Get("/ping", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusTeapot) })

	resp := doRequest(t, app, http.MethodGet, "/ping")
	require.Equal(t, fiber.StatusTeapot, resp.StatusCode)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "rid-1", entry["request_id"])
	assert.Equal(t, "/ping", entry["path"])
	assert.EqualValues(t, fiber.StatusTeapot, entry["status"])
	assert.Equal(t, "info", entry["level"])
}

func TestRequestLogger_ErrorComoNivelError(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "info", Output: &buf})

	app := fiber.New()
	app.Use(apphttp.RequestLogger(log))
	app.Get("/boom", func(c *fiber.Ctx) error { return fiber.NewError(fiber.StatusServiceUnavailable, "caído") })

	resp := doRequest(t, app, http.MethodGet, "/boom")
	require.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "error", entry["level"])
	assert.EqualValues(t, fiber.StatusServiceUnavailable, entry["status"])
}
