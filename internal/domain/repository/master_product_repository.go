package repository

import "github.com/stokmebel/gudang-api/internal/domain/entity"

// MasterProductRepository define el puerto para el catálogo maestro.
type MasterProductRepository interface {
	Create(mp *entity.MasterProduct) error
	GetByID(id string) (*entity.MasterProduct, error)
	// FindByNorm busca una entrada canónica por nombre y marca normalizados.
	FindByNorm(normName, normBrand string) (*entity.MasterProduct, error)
	List(search string, limit, offset int) ([]*entity.MasterProduct, error)
	Delete(id string) error
}
