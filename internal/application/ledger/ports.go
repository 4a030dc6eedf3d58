package ledger

import (
	"context"

	"github.com/stokmebel/gudang-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios
// atados a esa tx. Garantiza que la mutación de producto/unidad y el registro del
// ledger confirmen juntos o ninguno (nunca un registro de ledger sin su mutación).
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		unitRepo repository.UnitRepository,
		logRepo repository.StockLogRepository,
	) error) error
}
