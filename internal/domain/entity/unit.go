package entity

import "time"

// Estados de una unidad serializada.
const (
	UnitStatusIn  = "in"  // en bodega
	UnitStatusOut = "out" // entregada
)

// Unit representa una pieza física serializada de un producto. Transiciona in → out
// exactamente una vez; una unidad ya entregada no puede volver a salir.
type Unit struct {
	Serial      string
	ProductID   string
	ProductName string // cacheado para listados
	Status      string
	CreatedAt   time.Time
	LastMovedAt time.Time
	LastMovedBy string
	MovedNote   string
}
