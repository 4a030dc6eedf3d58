package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del inventario. ID es la clave del registro y en los
// datos recientes coincide con el código de barras; los registros históricos tienen
// una clave distinta y el código va solo en Barcode (de ahí la resolución en dos
// pasos del ledger). Quantity es el stock agregado, nunca negativo tras un egreso
// confirmado. Los precios son campos solo-owner y se omiten para staff en HTTP.
type Product struct {
	ID        string
	Barcode   string
	Name      string
	Brand     string
	Category  string
	Sizes     string // descriptor libre, ej. "90x200"
	Material  string
	Colors    string
	Quantity  int64
	UnitPrice *decimal.Decimal // solo owner
	BuyPrice  *decimal.Decimal // solo owner
	SellPrice *decimal.Decimal // solo owner
	CreatedAt time.Time
	CreatedBy string
	UpdatedAt time.Time
	UpdatedBy string
}
