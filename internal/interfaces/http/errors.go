package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/inventory-services/internal/application/dto"
	"github.com/jhoicas/inventory-services/internal/domain"
	"github.com/jhoicas/inventory-services/pkg/logger"
)

// Mensajes genéricos devueltos al cliente.
const (
	msgInvalidBody   = "Invalid request body"
	msgInternalError = "Internal server error"
	msgNotFound      = "Resource not found"
	msgAlreadyExists = "Resource already exists"
	msgInsufficient  = "Insufficient stock"
)

// writeError traduce un error de la capa de aplicación al sobre JSON y al código HTTP.
// Los errores no clasificados se registran con el detalle y el cliente recibe un mensaje genérico.
func writeError(c *fiber.Ctx, log *logger.Logger, err error) error {
	var (
		insufficient *domain.InsufficientStockError
		validation   *domain.ValidationError
		notFound     *domain.NotFoundError
		conflict     *domain.ConflictError
	)
	switch {
	case errors.As(err, &insufficient):
		resp := dto.Fail(msgInsufficient)
		resp.Available = &insufficient.Available
		resp.Requested = &insufficient.Requested
		return c.Status(fiber.StatusBadRequest).JSON(resp)
	case errors.As(err, &validation):
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail(validation.Message))
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail(err.Error()))
	case errors.As(err, &notFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.Fail(notFound.Error()))
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.Fail(msgNotFound))
	case errors.As(err, &conflict):
		return c.Status(fiber.StatusConflict).JSON(dto.Fail(conflict.Message))
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.Fail(msgAlreadyExists))
	}

	log.Error().Err(err).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Str("request_id", requestID(c)).
		Msg("error interno")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail(msgInternalError))
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.Fail(msgInvalidBody))
}
