package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest body para POST /api/products (alta explícita desde el catálogo).
type CreateProductRequest struct {
	Barcode   string           `json:"barcode"`
	Name      string           `json:"name"`
	Brand     string           `json:"brand,omitempty"`
	Category  string           `json:"category,omitempty"`
	Sizes     string           `json:"sizes,omitempty"`
	Material  string           `json:"material,omitempty"`
	Colors    string           `json:"colors,omitempty"`
	Quantity  int64            `json:"quantity"`
	UnitPrice *decimal.Decimal `json:"unit_price,omitempty"` // solo owner
	BuyPrice  *decimal.Decimal `json:"buy_price,omitempty"`  // solo owner
	SellPrice *decimal.Decimal `json:"sell_price,omitempty"` // solo owner
}

// UpdateProductRequest body para PUT /api/products/:id. La cantidad NO se toca aquí:
// solo cambia vía movimientos del ledger.
type UpdateProductRequest struct {
	Name      *string          `json:"name,omitempty"`
	Brand     *string          `json:"brand,omitempty"`
	Category  *string          `json:"category,omitempty"`
	Sizes     *string          `json:"sizes,omitempty"`
	Material  *string          `json:"material,omitempty"`
	Colors    *string          `json:"colors,omitempty"`
	UnitPrice *decimal.Decimal `json:"unit_price,omitempty"` // solo owner
	BuyPrice  *decimal.Decimal `json:"buy_price,omitempty"`  // solo owner
	SellPrice *decimal.Decimal `json:"sell_price,omitempty"` // solo owner
}

// ProductResponse representación de un producto. Los precios viajan solo para owner.
type ProductResponse struct {
	ID        string           `json:"id"`
	Barcode   string           `json:"barcode"`
	Name      string           `json:"name"`
	Brand     string           `json:"brand,omitempty"`
	Category  string           `json:"category,omitempty"`
	Sizes     string           `json:"sizes,omitempty"`
	Material  string           `json:"material,omitempty"`
	Colors    string           `json:"colors,omitempty"`
	Quantity  int64            `json:"quantity"`
	UnitPrice *decimal.Decimal `json:"unit_price,omitempty"`
	BuyPrice  *decimal.Decimal `json:"buy_price,omitempty"`
	SellPrice *decimal.Decimal `json:"sell_price,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// ProductListResponse listado paginado de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// UnitResponse representación de una unidad serializada.
type UnitResponse struct {
	Serial      string    `json:"serial"`
	ProductID   string    `json:"product_id"`
	ProductName string    `json:"product_name,omitempty"`
	Status      string    `json:"status"`
	LastMovedAt time.Time `json:"last_moved_at,omitempty"`
	LastMovedBy string    `json:"last_moved_by,omitempty"`
}
