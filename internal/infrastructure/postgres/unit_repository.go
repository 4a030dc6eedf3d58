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

var _ repository.UnitRepository = (*UnitRepo)(nil)

const unitColumns = `serial, product_id, product_name, status, created_at, last_moved_at, last_moved_by, moved_note`

// UnitRepo implementación del puerto UnitRepository sobre PostgreSQL.
type UnitRepo struct {
	q Querier
}

// NewUnitRepository construye el adaptador de persistencia para unidades serializadas.
func NewUnitRepository(q Querier) *UnitRepo {
	return &UnitRepo{q: q}
}

// Create registra una unidad serializada nueva.
func (r *UnitRepo) Create(unit *entity.Unit) error {
	query := `
		INSERT INTO units (serial, product_id, product_name, status, created_at, last_moved_at, last_moved_by, moved_note)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		unit.Serial, unit.ProductID, unit.ProductName, unit.Status,
		unit.CreatedAt, unit.LastMovedAt, nullable(unit.LastMovedBy), nullable(unit.MovedNote),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert unit: %w", err)
	}
	return nil
}

// Get obtiene una unidad por serial; nil si no existe.
func (r *UnitRepo) Get(serial string) (*entity.Unit, error) {
	query := `SELECT ` + unitColumns + ` FROM units WHERE serial = $1`
	u, err := scanUnit(r.q.QueryRow(context.Background(), query, serial))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get unit: %w", err)
	}
	return u, nil
}

// CompareAndSetStatus transición condicional: el UPDATE solo aplica si el estado
// actual es expected. Bajo doble escaneo concurrente del mismo serial exactamente
// una de las dos transacciones afecta una fila.
func (r *UnitRepo) CompareAndSetStatus(serial, expected, next, movedBy, movedNote string) (bool, error) {
	query := `
		UPDATE units SET status = $3, last_moved_at = now(), last_moved_by = $4, moved_note = $5
		WHERE serial = $1 AND status = $2`
	tag, err := r.q.Exec(context.Background(), query, serial, expected, next, nullable(movedBy), nullable(movedNote))
	if err != nil {
		return false, fmt.Errorf("update unit status: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// ListByProduct lista las unidades de un producto, las más recientes primero.
func (r *UnitRepo) ListByProduct(productID string, limit, offset int) ([]*entity.Unit, error) {
	query := `
		SELECT ` + unitColumns + `
		FROM units
		WHERE product_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, productID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list units: %w", err)
	}
	defer rows.Close()
	var list []*entity.Unit
	for rows.Next() {
		u, err := scanUnit(rows)
		if err != nil {
			return nil, fmt.Errorf("scan unit: %w", err)
		}
		list = append(list, u)
	}
	return list, rows.Err()
}

func scanUnit(row rowScanner) (*entity.Unit, error) {
	var u entity.Unit
	var movedBy, movedNote *string
	err := row.Scan(&u.Serial, &u.ProductID, &u.ProductName, &u.Status,
		&u.CreatedAt, &u.LastMovedAt, &movedBy, &movedNote)
	if err != nil {
		return nil, err
	}
	if movedBy != nil {
		u.LastMovedBy = *movedBy
	}
	if movedNote != nil {
		u.MovedNote = *movedNote
	}
	return &u, nil
}
