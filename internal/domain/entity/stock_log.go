package entity

import "time"

// Tipos de movimiento del ledger.
const (
	MovementTypeIncoming = "incoming" // ingreso de mercancía
	MovementTypeOutgoing = "outgoing" // egreso hacia un cliente
)

// StockLog es un registro inmutable del ledger: exactamente uno por mutación
// confirmada, nunca se actualiza ni se borra. Quantity es la magnitud del delta
// (siempre positiva; el signo lo implica Type).
type StockLog struct {
	ID             string
	Type           string
	ProductID      string
	ProductName    string // cacheado para que el listado no requiera join
	Barcode        string
	Brand          string
	Category       string
	Sizes          string
	UnitSerial     *string // solo cuando el egreso fue por serial de unidad
	Quantity       int64
	ClientName     *string // requerido en outgoing
	ClientAddress  *string
	SupplierName   *string // opcional en incoming
	Note           *string
	HandledByID    string
	HandledByLabel string
	CreatedAt      time.Time
}
