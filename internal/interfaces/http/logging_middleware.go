package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/renovafit/academia-api/pkg/logger"
)

// RequestLogger registra cada requisição com método, rota, status e
// duração. Erros de handler seguem para o error handler do Fiber após o
// registro.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		evt := log.Info()
		if status >= fiber.StatusInternalServerError || err != nil {
			evt = log.Error()
		} else if status >= fiber.StatusBadRequest {
			evt = log.Warn()
		}
		evt.
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("duration", time.Since(start)).
			Str("ip", c.IP()).
			Msg("requisição")
		return err
	}
}
