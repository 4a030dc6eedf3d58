package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/stokmebel/gudang-api/internal/domain"
	"github.com/stokmebel/gudang-api/internal/domain/entity"
	"github.com/stokmebel/gudang-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, barcode, name, brand, category, sizes, material, colors,
		quantity, unit_price, buy_price, sell_price, created_at, created_by, updated_at, updated_by`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, barcode, name, brand, category, sizes, material, colors,
			quantity, unit_price, buy_price, sell_price, created_at, created_by, updated_at, updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Barcode, product.Name, product.Brand, product.Category,
		product.Sizes, product.Material, product.Colors, product.Quantity,
		product.UnitPrice, product.BuyPrice, product.SellPrice,
		product.CreatedAt, nullable(product.CreatedBy), product.UpdatedAt, nullable(product.UpdatedBy),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por su clave; nil si no existe.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get product")
}

// FindByBarcode busca por el campo barcode (índice secundario para registros
// históricos cuya clave no es el código de barras).
func (r *ProductRepo) FindByBarcode(barcode string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE barcode = $1 LIMIT 1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, barcode), "find product by barcode")
}

// Update actualiza campos descriptivos y precios. La cantidad NO se toca aquí:
// solo vía AddQuantity/DeductIfAvailable.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products SET barcode = $2, name = $3, brand = $4, category = $5, sizes = $6,
			material = $7, colors = $8, unit_price = $9, buy_price = $10, sell_price = $11,
			updated_at = $12, updated_by = $13
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Barcode, product.Name, product.Brand, product.Category,
		product.Sizes, product.Material, product.Colors,
		product.UnitPrice, product.BuyPrice, product.SellPrice,
		product.UpdatedAt, nullable(product.UpdatedBy),
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// AddQuantity incremento atómico en una sola sentencia: el delta se aplica en el
// store, nunca como leer-sumar-escribir en la aplicación.
func (r *ProductRepo) AddQuantity(id string, delta int64, actor string) (int64, error) {
	query := `
		UPDATE products SET quantity = quantity + $2, updated_at = now(), updated_by = $3
		WHERE id = $1
		RETURNING quantity`
	var newQty int64
	err := r.q.QueryRow(context.Background(), query, id, delta, nullable(actor)).Scan(&newQty)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrNotFound
		}
		return 0, fmt.Errorf("add quantity: %w", err)
	}
	return newQty, nil
}

// DeductIfAvailable decremento condicional (quantity >= qty en el WHERE): dos egresos
// concurrentes no pueden pasar ambos un chequeo contra una lectura vieja y sobregirar.
// Si no alcanza, relee la disponibilidad para informarla al operador.
func (r *ProductRepo) DeductIfAvailable(id string, qty int64, actor string) (int64, error) {
	query := `
		UPDATE products SET quantity = quantity - $2, updated_at = now(), updated_by = $3
		WHERE id = $1 AND quantity >= $2
		RETURNING quantity`
	var newQty int64
	err := r.q.QueryRow(context.Background(), query, id, qty, nullable(actor)).Scan(&newQty)
	if err == nil {
		return newQty, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, fmt.Errorf("deduct quantity: %w", err)
	}

	var available int64
	err = r.q.QueryRow(context.Background(), `SELECT quantity FROM products WHERE id = $1`, id).Scan(&available)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrNotFound
		}
		return 0, fmt.Errorf("read available quantity: %w", err)
	}
	return 0, &domain.InsufficientStockError{Available: available}
}

// List lista productos con búsqueda normalizada (search ya viene en mayúsculas) y paginación.
func (r *ProductRepo) List(search string, limit, offset int) ([]*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE $1 = '' OR upper(name) LIKE '%' || $1 || '%'
			OR upper(brand) LIKE '%' || $1 || '%'
			OR upper(category) LIKE '%' || $1 || '%'
			OR barcode = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, search, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Delete elimina un producto (acción administrativa, fuera del protocolo del ledger).
func (r *ProductRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

func (r *ProductRepo) scanOne(row pgx.Row, op string) (*entity.Product, error) {
	p, err := scanProductRow(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return p, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProductRow(row rowScanner) (*entity.Product, error) {
	var p entity.Product
	var createdBy, updatedBy *string
	err := row.Scan(
		&p.ID, &p.Barcode, &p.Name, &p.Brand, &p.Category, &p.Sizes, &p.Material, &p.Colors,
		&p.Quantity, &p.UnitPrice, &p.BuyPrice, &p.SellPrice,
		&p.CreatedAt, &createdBy, &p.UpdatedAt, &updatedBy,
	)
	if err != nil {
		return nil, err
	}
	if createdBy != nil {
		p.CreatedBy = *createdBy
	}
	if updatedBy != nil {
		p.UpdatedBy = *updatedBy
	}
	return &p, nil
}

func scanProduct(rows pgx.Rows) (*entity.Product, error) {
	p, err := scanProductRow(rows)
	if err != nil {
		return nil, fmt.Errorf("scan product: %w", err)
	}
	return p, nil
}

// nullable convierte "" a NULL para columnas de actor opcionales.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
