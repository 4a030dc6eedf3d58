package usecase

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stokmebel/gudang-api/internal/application/dto"
	"github.com/stokmebel/gudang-api/internal/domain"
	"github.com/stokmebel/gudang-api/internal/domain/catalog"
	"github.com/stokmebel/gudang-api/internal/domain/entity"
	"github.com/stokmebel/gudang-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos. La cantidad se maneja vía
// movimientos del ledger; los precios son campos solo-owner.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create da de alta un producto desde el formulario de catálogo. role decide si se
// aceptan precios: staff con precios recibe ErrForbidden.
func (uc *ProductUseCase) Create(role, actorID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	barcode := strings.TrimSpace(in.Barcode)
	if barcode == "" || strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity < 0 {
		return nil, domain.ErrInvalidQuantity
	}
	if hasPriceFields(in.UnitPrice, in.BuyPrice, in.SellPrice) && role != entity.RoleOwner {
		return nil, domain.ErrForbidden
	}
	existing, err := uc.repo.GetByID(barcode)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		existing, err = uc.repo.FindByBarcode(barcode)
		if err != nil {
			return nil, err
		}
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	now := time.Now()
	product := &entity.Product{
		ID:        barcode,
		Barcode:   barcode,
		Name:      catalog.Pretty(in.Name),
		Brand:     catalog.Pretty(in.Brand),
		Category:  catalog.Pretty(in.Category),
		Sizes:     strings.TrimSpace(in.Sizes),
		Material:  catalog.Pretty(in.Material),
		Colors:    catalog.Pretty(in.Colors),
		Quantity:  in.Quantity,
		UnitPrice: in.UnitPrice,
		BuyPrice:  in.BuyPrice,
		SellPrice: in.SellPrice,
		CreatedAt: now,
		CreatedBy: actorID,
		UpdatedAt: now,
		UpdatedBy: actorID,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return ToProductResponse(product, role), nil
}

// GetByID obtiene un producto; nil si no existe. Para staff los precios se omiten.
func (uc *ProductUseCase) GetByID(role, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return ToProductResponse(product, role), nil
}

// Update actualiza campos descriptivos y (solo owner) precios. No toca la cantidad.
func (uc *ProductUseCase) Update(role, actorID, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if hasPriceFields(in.UnitPrice, in.BuyPrice, in.SellPrice) && role != entity.RoleOwner {
		return nil, domain.ErrForbidden
	}
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Name != nil {
		product.Name = catalog.Pretty(*in.Name)
	}
	if in.Brand != nil {
		product.Brand = catalog.Pretty(*in.Brand)
	}
	if in.Category != nil {
		product.Category = catalog.Pretty(*in.Category)
	}
	if in.Sizes != nil {
		product.Sizes = strings.TrimSpace(*in.Sizes)
	}
	if in.Material != nil {
		product.Material = catalog.Pretty(*in.Material)
	}
	if in.Colors != nil {
		product.Colors = catalog.Pretty(*in.Colors)
	}
	if in.UnitPrice != nil {
		product.UnitPrice = in.UnitPrice
	}
	if in.BuyPrice != nil {
		product.BuyPrice = in.BuyPrice
	}
	if in.SellPrice != nil {
		product.SellPrice = in.SellPrice
	}
	product.UpdatedAt = time.Now()
	product.UpdatedBy = actorID
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return ToProductResponse(product, role), nil
}

// List lista productos con búsqueda normalizada y paginación.
func (uc *ProductUseCase) List(role, search string, limit, offset int) (*dto.ProductListResponse, error) {
	list, err := uc.repo.List(catalog.Norm(search), limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *ToProductResponse(p, role))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un producto (acción administrativa, solo owner — lo gobierna la ruta).
func (uc *ProductUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// ToProductResponse arma la respuesta; para staff se omiten los precios.
func ToProductResponse(p *entity.Product, role string) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	out := &dto.ProductResponse{
		ID:        p.ID,
		Barcode:   p.Barcode,
		Name:      p.Name,
		Brand:     p.Brand,
		Category:  p.Category,
		Sizes:     p.Sizes,
		Material:  p.Material,
		Colors:    p.Colors,
		Quantity:  p.Quantity,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
	if role == entity.RoleOwner {
		out.UnitPrice = p.UnitPrice
		out.BuyPrice = p.BuyPrice
		out.SellPrice = p.SellPrice
	}
	return out
}

func hasPriceFields(prices ...*decimal.Decimal) bool {
	for _, p := range prices {
		if p != nil {
			return true
		}
	}
	return false
}
