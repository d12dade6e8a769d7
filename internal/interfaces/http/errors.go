package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jenil-sutariya/Smart-Kitchen-AI/internal/application/dto"
	"github.com/jenil-sutariya/Smart-Kitchen-AI/internal/domain"
	"github.com/jenil-sutariya/Smart-Kitchen-AI/internal/domain/inventory"
)

// respondError traduce errores de dominio a códigos HTTP. Los errores de stock
// insuficiente llevan en Detail el requerido vs disponible por ingrediente.
func respondError(c *fiber.Ctx, err error) error {
	var insufficient *inventory.InsufficientStockError
	if errors.As(err, &insufficient) {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code:    "INSUFFICIENT_STOCK",
			Message: "stock insuficiente",
			Detail:  insufficient,
		})
	}
	var unavailable *inventory.UnavailableError
	if errors.As(err, &unavailable) {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code:    "INSUFFICIENT_STOCK",
			Message: "ingredientes no disponibles",
			Detail:  unavailable.Missing,
		})
	}

	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case errors.Is(err, domain.ErrDayClosed):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "DAY_CLOSED", Message: "el día ya fue cerrado, no admite más ingresos"})
	case errors.Is(err, domain.ErrDayAlreadyEnded):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "DAY_ALREADY_ENDED", Message: "el día ya fue cerrado previamente"})
	case errors.Is(err, domain.ErrPriorDayNotEnded):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "PRIOR_DAY_OPEN", Message: "el día anterior sigue abierto"})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: "el email ya está registrado"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "recurso duplicado"})
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente"})
	case errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "conflicto con el estado actual"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
