package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound            = errors.New("recurso no encontrado")
	ErrUserNotFound        = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists  = errors.New("el email ya está registrado")
	ErrInvalidInput        = errors.New("entrada inválida")
	ErrInvalidQuantity     = errors.New("cantidad inválida")
	ErrMissingCounterparty = errors.New("cliente destinatario requerido")
	ErrDuplicate           = errors.New("recurso duplicado")
	ErrUnauthorized        = errors.New("no autorizado")
	ErrForbidden           = errors.New("acceso denegado")
	ErrInsufficientStock   = errors.New("stock insuficiente")
	ErrUnitAlreadyOut      = errors.New("unidad ya entregada")
)

// InsufficientStockError lleva la cantidad disponible para que el caller la muestre
// al operador. errors.Is(err, ErrInsufficientStock) sigue funcionando sobre este tipo.
type InsufficientStockError struct {
	Available int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente: disponible %d", e.Available)
}

func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}

// AvailableStock extrae la cantidad disponible si err es un InsufficientStockError.
func AvailableStock(err error) (int64, bool) {
	var ise *InsufficientStockError
	if errors.As(err, &ise) {
		return ise.Available, true
	}
	return 0, false
}
