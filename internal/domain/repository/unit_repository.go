package repository

import "github.com/stokmebel/gudang-api/internal/domain/entity"

// UnitRepository define el puerto para unidades serializadas.
type UnitRepository interface {
	Create(unit *entity.Unit) error
	Get(serial string) (*entity.Unit, error)
	// CompareAndSetStatus transiciona el estado solo si el actual es expected
	// (UPDATE condicional). Devuelve false si la unidad ya no estaba en expected:
	// así un doble escaneo concurrente del mismo serial no puede venderla dos veces.
	CompareAndSetStatus(serial, expected, next, movedBy, movedNote string) (bool, error)
	ListByProduct(productID string, limit, offset int) ([]*entity.Unit, error)
}
