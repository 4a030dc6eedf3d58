package dto

// CatalogDataDTO datos descriptivos para el alta de un producto en primer ingreso.
type CatalogDataDTO struct {
	Name     string `json:"name"`
	Brand    string `json:"brand,omitempty"`
	Category string `json:"category,omitempty"`
	Sizes    string `json:"sizes,omitempty"`
	Material string `json:"material,omitempty"`
	Colors   string `json:"colors,omitempty"`
}

// MovementRequest body para POST /api/ledger/movements.
// type: "incoming" | "outgoing". Para outgoing, client_name es obligatorio.
// Para un serial de unidad la cantidad se fuerza a 1 en el servidor.
type MovementRequest struct {
	Code          string          `json:"code"`
	Type          string          `json:"type"`
	Quantity      int64           `json:"quantity"`
	ClientName    string          `json:"client_name,omitempty"`
	ClientAddress string          `json:"client_address,omitempty"`
	SupplierName  string          `json:"supplier_name,omitempty"`
	Note          string          `json:"note,omitempty"`
	Catalog       *CatalogDataDTO `json:"catalog,omitempty"`
}

// MovementResponse resultado de un movimiento confirmado.
type MovementResponse struct {
	MovementID  string  `json:"movement_id"`
	ProductID   string  `json:"product_id"`
	NewQuantity int64   `json:"new_quantity"`
	UnitSerial  *string `json:"unit_serial,omitempty"`
}

// ResolveResponse resultado de GET /api/ledger/resolve/:code.
type ResolveResponse struct {
	Kind    string           `json:"kind"` // "product" | "unit"
	Product *ProductResponse `json:"product"`
	Unit    *UnitResponse    `json:"unit,omitempty"`
}

// AuditResponse resultado de la verificación de conservación de un producto.
type AuditResponse struct {
	ProductID  string `json:"product_id"`
	Quantity   int64  `json:"quantity"`
	LedgerNet  int64  `json:"ledger_net"`
	Consistent bool   `json:"consistent"`
}
