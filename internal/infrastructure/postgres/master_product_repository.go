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

var _ repository.MasterProductRepository = (*MasterProductRepo)(nil)

const masterProductColumns = `id, name, brand, category, sizes, norm_name, norm_brand, norm_category, created_at, created_by`

// MasterProductRepo implementación del puerto MasterProductRepository sobre PostgreSQL.
type MasterProductRepo struct {
	q Querier
}

// NewMasterProductRepository construye el adaptador del catálogo maestro.
func NewMasterProductRepository(q Querier) *MasterProductRepo {
	return &MasterProductRepo{q: q}
}

// Create persiste una entrada canónica del catálogo.
func (r *MasterProductRepo) Create(mp *entity.MasterProduct) error {
	query := `
		INSERT INTO master_products (id, name, brand, category, sizes, norm_name, norm_brand, norm_category, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		mp.ID, mp.Name, mp.Brand, mp.Category, mp.Sizes,
		mp.NormName, mp.NormBrand, mp.NormCategory, mp.CreatedAt, nullable(mp.CreatedBy),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert master product: %w", err)
	}
	return nil
}

// GetByID obtiene una entrada del catálogo; nil si no existe.
func (r *MasterProductRepo) GetByID(id string) (*entity.MasterProduct, error) {
	query := `SELECT ` + masterProductColumns + ` FROM master_products WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get master product")
}

// FindByNorm busca por nombre y marca normalizados (detección de duplicados).
func (r *MasterProductRepo) FindByNorm(normName, normBrand string) (*entity.MasterProduct, error) {
	query := `SELECT ` + masterProductColumns + ` FROM master_products WHERE norm_name = $1 AND norm_brand = $2 LIMIT 1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, normName, normBrand), "find master product")
}

// List lista el catálogo con búsqueda sobre los campos normalizados.
func (r *MasterProductRepo) List(search string, limit, offset int) ([]*entity.MasterProduct, error) {
	query := `
		SELECT ` + masterProductColumns + `
		FROM master_products
		WHERE $1 = '' OR norm_name LIKE '%' || $1 || '%'
			OR norm_brand LIKE '%' || $1 || '%'
			OR norm_category LIKE '%' || $1 || '%'
		ORDER BY name ASC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, search, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list master products: %w", err)
	}
	defer rows.Close()
	var list []*entity.MasterProduct
	for rows.Next() {
		mp, err := scanMasterProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan master product: %w", err)
		}
		list = append(list, mp)
	}
	return list, rows.Err()
}

// Delete elimina una entrada del catálogo.
func (r *MasterProductRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM master_products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete master product: %w", err)
	}
	return nil
}

func (r *MasterProductRepo) scanOne(row pgx.Row, op string) (*entity.MasterProduct, error) {
	mp, err := scanMasterProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return mp, nil
}

func scanMasterProduct(row rowScanner) (*entity.MasterProduct, error) {
	var mp entity.MasterProduct
	var createdBy *string
	err := row.Scan(&mp.ID, &mp.Name, &mp.Brand, &mp.Category, &mp.Sizes,
		&mp.NormName, &mp.NormBrand, &mp.NormCategory, &mp.CreatedAt, &createdBy)
	if err != nil {
		return nil, err
	}
	if createdBy != nil {
		mp.CreatedBy = *createdBy
	}
	return &mp, nil
}
