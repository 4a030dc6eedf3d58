package usecase

import (
	"time"

	"github.com/stokmebel/gudang-api/internal/application/dto"
	"github.com/stokmebel/gudang-api/internal/domain/entity"
	"github.com/stokmebel/gudang-api/internal/domain/repository"
)

// StockLogUseCase lecturas del ledger para la pantalla de movimientos. Solo lectura:
// la escritura pasa exclusivamente por el StockLedger.
type StockLogUseCase struct {
	repo repository.StockLogRepository
}

// NewStockLogUseCase construye el caso de uso.
func NewStockLogUseCase(repo repository.StockLogRepository) *StockLogUseCase {
	return &StockLogUseCase{repo: repo}
}

// List lista movimientos filtrando por tipo y/o producto en un rango de fechas.
func (uc *StockLogUseCase) List(logType, productID string, from, to *time.Time, limit, offset int) (*dto.StockLogListResponse, error) {
	list, err := uc.repo.List(logType, productID, from, to, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.StockLogResponse, 0, len(list))
	for _, l := range list {
		items = append(items, *toStockLogResponse(l))
	}
	return &dto.StockLogListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toStockLogResponse(l *entity.StockLog) *dto.StockLogResponse {
	return &dto.StockLogResponse{
		ID:             l.ID,
		Type:           l.Type,
		ProductID:      l.ProductID,
		ProductName:    l.ProductName,
		Barcode:        l.Barcode,
		Brand:          l.Brand,
		Category:       l.Category,
		Sizes:          l.Sizes,
		UnitSerial:     l.UnitSerial,
		Quantity:       l.Quantity,
		ClientName:     l.ClientName,
		ClientAddress:  l.ClientAddress,
		SupplierName:   l.SupplierName,
		Note:           l.Note,
		HandledByID:    l.HandledByID,
		HandledByLabel: l.HandledByLabel,
		CreatedAt:      l.CreatedAt,
	}
}
