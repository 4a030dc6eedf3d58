package entity

import "time"

// MasterProduct es una entrada canónica del catálogo. Los campos Norm* guardan la
// forma normalizada (catalog.Norm) para hacer matching contra texto libre.
type MasterProduct struct {
	ID           string
	Name         string
	Brand        string
	Category     string
	Sizes        string
	NormName     string
	NormBrand    string
	NormCategory string
	CreatedAt    time.Time
	CreatedBy    string
}
