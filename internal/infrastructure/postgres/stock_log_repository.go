package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stokmebel/gudang-api/internal/domain/entity"
	"github.com/stokmebel/gudang-api/internal/domain/repository"
)

var _ repository.StockLogRepository = (*StockLogRepo)(nil)

const stockLogColumns = `id, type, product_id, product_name, barcode, brand, category, sizes,
		unit_serial, quantity, client_name, client_address, supplier_name, note,
		handled_by_id, handled_by_label, created_at`

// StockLogRepo implementación del puerto StockLogRepository sobre PostgreSQL.
// Solo INSERT y SELECT: el ledger es append-only.
type StockLogRepo struct {
	q Querier
}

// NewStockLogRepository construye el adaptador de persistencia para el ledger.
func NewStockLogRepository(q Querier) *StockLogRepo {
	return &StockLogRepo{q: q}
}

// Create agrega un registro al ledger.
func (r *StockLogRepo) Create(log *entity.StockLog) error {
	query := `
		INSERT INTO stock_logs (id, type, product_id, product_name, barcode, brand, category, sizes,
			unit_serial, quantity, client_name, client_address, supplier_name, note,
			handled_by_id, handled_by_label, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	_, err := r.q.Exec(context.Background(), query,
		log.ID, log.Type, log.ProductID, log.ProductName, log.Barcode, log.Brand, log.Category, log.Sizes,
		log.UnitSerial, log.Quantity, log.ClientName, log.ClientAddress, log.SupplierName, log.Note,
		log.HandledByID, log.HandledByLabel, log.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert stock log: %w", err)
	}
	return nil
}

// GetByID obtiene un registro del ledger; nil si no existe.
func (r *StockLogRepo) GetByID(id string) (*entity.StockLog, error) {
	query := `SELECT ` + stockLogColumns + ` FROM stock_logs WHERE id = $1`
	l, err := scanStockLog(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock log: %w", err)
	}
	return l, nil
}

// List filtra el ledger por tipo, producto y rango de fechas. Los filtros vacíos
// no aplican. El WHERE se arma con argumentos posicionales dinámicos.
func (r *StockLogRepo) List(logType, productID string, from, to *time.Time, limit, offset int) ([]*entity.StockLog, error) {
	query := `SELECT ` + stockLogColumns + ` FROM stock_logs WHERE 1=1`
	args := []any{}
	idx := 1

	if logType != "" {
		query += fmt.Sprintf(" AND type = $%d", idx)
		args = append(args, logType)
		idx++
	}
	if productID != "" {
		query += fmt.Sprintf(" AND product_id = $%d", idx)
		args = append(args, productID)
		idx++
	}
	if from != nil {
		query += fmt.Sprintf(" AND created_at >= $%d", idx)
		args = append(args, *from)
		idx++
	}
	if to != nil {
		query += fmt.Sprintf(" AND created_at <= $%d", idx)
		args = append(args, *to)
		idx++
	}

	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", idx, idx+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock logs: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockLog
	for rows.Next() {
		l, err := scanStockLog(rows)
		if err != nil {
			return nil, fmt.Errorf("scan stock log: %w", err)
		}
		list = append(list, l)
	}
	return list, rows.Err()
}

// NetDeltaByProduct reproduce el stock del producto desde el ledger:
// sum(incoming) - sum(outgoing).
func (r *StockLogRepo) NetDeltaByProduct(productID string) (int64, error) {
	query := `
		SELECT COALESCE(SUM(CASE WHEN type = $2 THEN quantity ELSE -quantity END), 0)
		FROM stock_logs
		WHERE product_id = $1`
	var net int64
	err := r.q.QueryRow(context.Background(), query, productID, entity.MovementTypeIncoming).Scan(&net)
	if err != nil {
		return 0, fmt.Errorf("net delta: %w", err)
	}
	return net, nil
}

func scanStockLog(row rowScanner) (*entity.StockLog, error) {
	var l entity.StockLog
	err := row.Scan(
		&l.ID, &l.Type, &l.ProductID, &l.ProductName, &l.Barcode, &l.Brand, &l.Category, &l.Sizes,
		&l.UnitSerial, &l.Quantity, &l.ClientName, &l.ClientAddress, &l.SupplierName, &l.Note,
		&l.HandledByID, &l.HandledByLabel, &l.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &l, nil
}
