package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/stokmebel/gudang-api/internal/application/dto"
	"github.com/stokmebel/gudang-api/internal/domain"
	"github.com/stokmebel/gudang-api/internal/domain/catalog"
	"github.com/stokmebel/gudang-api/internal/domain/entity"
	"github.com/stokmebel/gudang-api/internal/domain/repository"
)

// MasterProductUseCase mantiene el catálogo maestro: las entradas canónicas contra
// las que se matchea el texto libre de marca/categoría/nombre.
type MasterProductUseCase struct {
	repo repository.MasterProductRepository
}

// NewMasterProductUseCase construye el caso de uso.
func NewMasterProductUseCase(repo repository.MasterProductRepository) *MasterProductUseCase {
	return &MasterProductUseCase{repo: repo}
}

// Create agrega una entrada canónica. El duplicado se detecta por la forma
// normalizada de nombre+marca, no por igualdad literal.
func (uc *MasterProductUseCase) Create(actorID string, in dto.CreateMasterProductRequest) (*dto.MasterProductResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	normName := catalog.Norm(in.Name)
	normBrand := catalog.Norm(in.Brand)
	existing, err := uc.repo.FindByNorm(normName, normBrand)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	mp := &entity.MasterProduct{
		ID:           uuid.New().String(),
		Name:         catalog.Pretty(in.Name),
		Brand:        catalog.Pretty(in.Brand),
		Category:     catalog.Pretty(in.Category),
		Sizes:        strings.TrimSpace(in.Sizes),
		NormName:     normName,
		NormBrand:    normBrand,
		NormCategory: catalog.Norm(in.Category),
		CreatedAt:    time.Now(),
		CreatedBy:    actorID,
	}
	if err := uc.repo.Create(mp); err != nil {
		return nil, err
	}
	return toMasterProductResponse(mp), nil
}

// GetByID obtiene una entrada; nil si no existe.
func (uc *MasterProductUseCase) GetByID(id string) (*dto.MasterProductResponse, error) {
	mp, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if mp == nil {
		return nil, nil
	}
	return toMasterProductResponse(mp), nil
}

// List lista el catálogo con búsqueda normalizada.
func (uc *MasterProductUseCase) List(search string, limit, offset int) (*dto.MasterProductListResponse, error) {
	list, err := uc.repo.List(catalog.Norm(search), limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MasterProductResponse, 0, len(list))
	for _, mp := range list {
		items = append(items, *toMasterProductResponse(mp))
	}
	return &dto.MasterProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina una entrada del catálogo maestro.
func (uc *MasterProductUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toMasterProductResponse(mp *entity.MasterProduct) *dto.MasterProductResponse {
	return &dto.MasterProductResponse{
		ID:        mp.ID,
		Name:      mp.Name,
		Brand:     mp.Brand,
		Category:  mp.Category,
		Sizes:     mp.Sizes,
		CreatedAt: mp.CreatedAt,
	}
}
