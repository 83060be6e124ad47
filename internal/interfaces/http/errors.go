package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/chipaflow-api/internal/application/dto"
	"github.com/jhoicas/chipaflow-api/internal/domain"
	"github.com/jhoicas/chipaflow-api/internal/domain/theme"
)

const msgInvalidImage = "Por favor, selecione um arquivo de imagem válido."

// writeError traduce errores de dominio a status HTTP + ErrorResponse.
func writeError(c *fiber.Ctx, err error) error {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		return respond(c, fiber.StatusBadRequest, "VALIDATION", verr.Message)
	case errors.Is(err, theme.ErrInvalidPreference):
		return respond(c, fiber.StatusBadRequest, "INVALID_THEME", err.Error())
	case errors.Is(err, domain.ErrInvalidImage):
		return respond(c, fiber.StatusUnsupportedMediaType, "INVALID_IMAGE", msgInvalidImage)
	case errors.Is(err, domain.ErrSupplierNotFound):
		return respond(c, fiber.StatusUnprocessableEntity, "SUPPLIER_NOT_FOUND", "Fornecedor não encontrado.")
	case errors.Is(err, domain.ErrNotFound):
		return respond(c, fiber.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, domain.ErrInsufficientStock):
		return respond(c, fiber.StatusConflict, "INSUFFICIENT_STOCK", err.Error())
	case errors.Is(err, domain.ErrInvalidTransition):
		return respond(c, fiber.StatusConflict, "INVALID_TRANSITION", err.Error())
	case errors.Is(err, domain.ErrDuplicate):
		return respond(c, fiber.StatusConflict, "DUPLICATE", err.Error())
	case errors.Is(err, domain.ErrInvalidInput):
		return respond(c, fiber.StatusBadRequest, "INVALID_INPUT", err.Error())
	default:
		return respond(c, fiber.StatusInternalServerError, "INTERNAL", err.Error())
	}
}

func respond(c *fiber.Ctx, status int, code, msg string) error {
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: msg})
}

func invalidBody(c *fiber.Ctx) error {
	return respond(c, fiber.StatusBadRequest, "INVALID_BODY", "cuerpo inválido")
}

// NotFound catch-all para rutas inexistentes.
func NotFound(c *fiber.Ctx) error {
	return respond(c, fiber.StatusNotFound, "NOT_FOUND", "rota não encontrada: "+c.Path())
}
