package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/PuntoVenta-api/internal/domain/entity"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/repository"
)

var _ repository.StoreRepository = (*StoreRepo)(nil)

// StoreRepo implementación del puerto StoreRepository sobre PostgreSQL.
type StoreRepo struct {
	pool *pgxpool.Pool
}

// NewStoreRepository construye el adaptador de persistencia para tiendas.
func NewStoreRepository(pool *pgxpool.Pool) *StoreRepo {
	return &StoreRepo{pool: pool}
}

const storeColumns = `id, org_id, name, code, address, lat, lng, created_at, updated_at`

// Create persiste una nueva tienda.
func (r *StoreRepo) Create(store *entity.Store) error {
	query := `
		INSERT INTO stores (id, org_id, name, code, address, lat, lng, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.pool.Exec(context.Background(), query,
		store.ID, store.OrgID, store.Name, store.Code, store.Address, store.Lat, store.Lng,
		store.CreatedAt, store.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert store: %w", err)
	}
	return nil
}

// GetByID obtiene una tienda por ID.
func (r *StoreRepo) GetByID(id string) (*entity.Store, error) {
	query := `SELECT ` + storeColumns + ` FROM stores WHERE id = $1`
	var s entity.Store
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.OrgID, &s.Name, &s.Code, &s.Address, &s.Lat, &s.Lng, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get store by id: %w", err)
	}
	return &s, nil
}

// Update actualiza una tienda. org_id no se toca: la organización dueña es inmutable.
func (r *StoreRepo) Update(store *entity.Store) error {
	query := `
		UPDATE stores SET name = $2, code = $3, address = $4, lat = $5, lng = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		store.ID, store.Name, store.Code, store.Address, store.Lat, store.Lng, store.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update store: %w", err)
	}
	return nil
}

// ListByOrg lista las tiendas de una organización con paginación.
func (r *StoreRepo) ListByOrg(orgID string, limit, offset int) ([]*entity.Store, error) {
	query := `SELECT ` + storeColumns + ` FROM stores WHERE org_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.pool.Query(context.Background(), query, orgID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list stores: %w", err)
	}
	defer rows.Close()
	var list []*entity.Store
	for rows.Next() {
		var s entity.Store
		if err := rows.Scan(&s.ID, &s.OrgID, &s.Name, &s.Code, &s.Address, &s.Lat, &s.Lng,
			&s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan store: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// OrgIDsForStores proyecta tienda→organización en una sola consulta con
// SELECT DISTINCT. Tiendas inexistentes simplemente no aportan filas.
func (r *StoreRepo) OrgIDsForStores(storeIDs []string) ([]string, error) {
	if len(storeIDs) == 0 {
		return nil, nil
	}
	query := `SELECT DISTINCT org_id FROM stores WHERE id = ANY($1)`
	rows, err := r.pool.Query(context.Background(), query, storeIDs)
	if err != nil {
		return nil, fmt.Errorf("org ids for stores: %w", err)
	}
	defer rows.Close()
	var orgIDs []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan org id: %w", err)
		}
		orgIDs = append(orgIDs, id)
	}
	return orgIDs, rows.Err()
}
