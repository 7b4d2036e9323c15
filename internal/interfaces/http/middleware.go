package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/printshop-catalog/pkg/logger"
)

// LocalRequestID clave de Locals donde requestid deja el ID del request.
const LocalRequestID = "requestid"

// RequestLogger registra cada request con su estado y latencia. Debe ir después de requestid.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		ev := log.Info()
		if status >= fiber.StatusInternalServerError {
			ev = log.Error().Err(err)
		}
		rid, _ := c.Locals(LocalRequestID).(string)
		ev.Str("request_id", rid).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("request")
		return err
	}
}
