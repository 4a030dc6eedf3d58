package repository

import "github.com/stokmebel/gudang-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
//
// AddQuantity y DeductIfAvailable son las primitivas atómicas del ledger: el ajuste
// de cantidad ocurre en el store en una sola sentencia, nunca como leer-calcular-
// escribir en memoria de la aplicación (pérdida de updates bajo escaneos concurrentes).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	// FindByBarcode busca por el campo barcode (índice secundario); cubre registros
	// históricos cuya clave no es el código de barras.
	FindByBarcode(barcode string) (*entity.Product, error)
	Update(product *entity.Product) error
	// AddQuantity suma delta a la cantidad de forma atómica y devuelve la nueva cantidad.
	AddQuantity(id string, delta int64, actor string) (int64, error)
	// DeductIfAvailable resta qty solo si hay stock suficiente (decremento condicional).
	// Devuelve la nueva cantidad, o *domain.InsufficientStockError con la disponible.
	DeductIfAvailable(id string, qty int64, actor string) (int64, error)
	List(search string, limit, offset int) ([]*entity.Product, error)
	Delete(id string) error
}
