package dto

import "time"

// CreateMasterProductRequest body para POST /api/master-products.
type CreateMasterProductRequest struct {
	Name     string `json:"name"`
	Brand    string `json:"brand,omitempty"`
	Category string `json:"category,omitempty"`
	Sizes    string `json:"sizes,omitempty"`
}

// MasterProductResponse entrada canónica del catálogo maestro.
type MasterProductResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Brand     string    `json:"brand,omitempty"`
	Category  string    `json:"category,omitempty"`
	Sizes     string    `json:"sizes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// MasterProductListResponse listado paginado del catálogo maestro.
type MasterProductListResponse struct {
	Items []MasterProductResponse `json:"items"`
	Page  PageResponse            `json:"page"`
}
