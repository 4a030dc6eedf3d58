package dto

import "time"

// StockLogResponse un registro del ledger para el listado de movimientos.
type StockLogResponse struct {
	ID             string    `json:"id"`
	Type           string    `json:"type"`
	ProductID      string    `json:"product_id"`
	ProductName    string    `json:"product_name"`
	Barcode        string    `json:"barcode"`
	Brand          string    `json:"brand,omitempty"`
	Category       string    `json:"category,omitempty"`
	Sizes          string    `json:"sizes,omitempty"`
	UnitSerial     *string   `json:"unit_serial,omitempty"`
	Quantity       int64     `json:"quantity"`
	ClientName     *string   `json:"client_name,omitempty"`
	ClientAddress  *string   `json:"client_address,omitempty"`
	SupplierName   *string   `json:"supplier_name,omitempty"`
	Note           *string   `json:"note,omitempty"`
	HandledByID    string    `json:"handled_by_id"`
	HandledByLabel string    `json:"handled_by_label,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// StockLogListResponse listado paginado del ledger.
type StockLogListResponse struct {
	Items []StockLogResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
