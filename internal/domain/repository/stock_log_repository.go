package repository

import (
	"time"

	"github.com/stokmebel/gudang-api/internal/domain/entity"
)

// StockLogRepository define el puerto del ledger append-only: solo Create y lecturas.
// No existe Update ni Delete — los registros son inmutables.
type StockLogRepository interface {
	Create(log *entity.StockLog) error
	GetByID(id string) (*entity.StockLog, error)
	// List filtra por tipo y/o producto en un rango de fechas. logType y productID
	// vacíos no filtran.
	List(logType, productID string, from, to *time.Time, limit, offset int) ([]*entity.StockLog, error)
	// NetDeltaByProduct devuelve sum(incoming) - sum(outgoing) para reproducir el
	// stock actual desde el ledger (verificación de conservación).
	NetDeltaByProduct(productID string) (int64, error)
}
