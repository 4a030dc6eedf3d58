package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/stokmebel/gudang-api/internal/application/dto"
	"github.com/stokmebel/gudang-api/internal/domain"
)

// ledgerError mapea los errores de dominio del protocolo de movimientos a HTTP.
// Cualquier error no clasificado se trata como falla del store: el cliente puede
// reintentar sabiendo que nada se escribió (la transacción revirtió).
func ledgerError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidQuantity):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUANTITY", Message: "la cantidad debe ser un entero positivo"})
	case errors.Is(err, domain.ErrMissingCounterparty):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_COUNTERPARTY", Message: "cliente destinatario requerido para egresos"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "código no reconocido"})
	case errors.Is(err, domain.ErrUnitAlreadyOut):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "UNIT_ALREADY_OUT", Message: "la unidad ya fue entregada"})
	case errors.Is(err, domain.ErrInsufficientStock):
		resp := dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente"}
		if available, ok := domain.AvailableStock(err); ok {
			resp.Available = &available
		}
		return c.Status(fiber.StatusConflict).JSON(resp)
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado"})
	}
	return storeError(c, err)
}

// storeError respuesta para errores no clasificados del store (conexión caída,
// timeout, constraint inesperado). 503 para que el cliente distinga "reintentar"
// de un error de programación.
func storeError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "STORE_UNAVAILABLE", Message: err.Error()})
}
