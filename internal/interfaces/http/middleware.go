package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/jhoicas/inventory-services/pkg/logger"
)

// RequestObserver recibe duración y estado de cada petición (métricas).
type RequestObserver interface {
	ObserveRequest(method, route string, status int, elapsed time.Duration)
}

// AccessLog registra cada petición y la reporta al observer. La ruta es el patrón
// registrado (/api/products/:id), no la URL concreta, para acotar la cardinalidad.
func AccessLog(log *logger.Logger, observer RequestObserver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		chainErr := c.Next()
		if chainErr != nil {
			// Deja que el ErrorHandler escriba la respuesta antes de leer el estado.
			if err := c.App().ErrorHandler(c, chainErr); err != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}
		elapsed := time.Since(start)
		status := c.Response().StatusCode()
		route := c.Route().Path

		if observer != nil {
			observer.ObserveRequest(c.Method(), route, status, elapsed)
		}

		ev := log.Info()
		if status >= fiber.StatusInternalServerError {
			ev = log.Error()
		}
		ev.Str("method", c.Method()).
			Str("route", route).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", elapsed).
			Str("request_id", requestID(c)).
			Msg("http request")
		return nil
	}
}

func requestID(c *fiber.Ctx) string {
	if id, ok := c.Locals(requestid.ConfigDefault.ContextKey).(string); ok {
		return id
	}
	return ""
}
