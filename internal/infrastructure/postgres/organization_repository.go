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

var _ repository.OrganizationRepository = (*OrganizationRepo)(nil)

// OrganizationRepo implementación del puerto OrganizationRepository sobre PostgreSQL.
type OrganizationRepo struct {
	pool *pgxpool.Pool
}

// NewOrganizationRepository construye el adaptador de persistencia para organizaciones.
func NewOrganizationRepository(pool *pgxpool.Pool) *OrganizationRepo {
	return &OrganizationRepo{pool: pool}
}

// Create persiste una nueva organización.
func (r *OrganizationRepo) Create(org *entity.Organization) error {
	query := `INSERT INTO organizations (id, name, created_at, updated_at) VALUES ($1, $2, $3, $4)`
	_, err := r.pool.Exec(context.Background(), query, org.ID, org.Name, org.CreatedAt, org.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert organization: %w", err)
	}
	return nil
}

// GetByID obtiene una organización por ID.
func (r *OrganizationRepo) GetByID(id string) (*entity.Organization, error) {
	query := `SELECT id, name, created_at, updated_at FROM organizations WHERE id = $1`
	var org entity.Organization
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&org.ID, &org.Name, &org.CreatedAt, &org.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get organization by id: %w", err)
	}
	return &org, nil
}

// List lista organizaciones con paginación (vista global del super-admin).
func (r *OrganizationRepo) List(limit, offset int) ([]*entity.Organization, error) {
	query := `SELECT id, name, created_at, updated_at FROM organizations ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list organizations: %w", err)
	}
	defer rows.Close()
	return scanOrganizations(rows)
}

// ListByIDs devuelve las organizaciones del conjunto (para "mis organizaciones").
func (r *OrganizationRepo) ListByIDs(ids []string) ([]*entity.Organization, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query := `SELECT id, name, created_at, updated_at FROM organizations WHERE id = ANY($1) ORDER BY name`
	rows, err := r.pool.Query(context.Background(), query, ids)
	if err != nil {
		return nil, fmt.Errorf("list organizations by ids: %w", err)
	}
	defer rows.Close()
	return scanOrganizations(rows)
}

func scanOrganizations(rows pgx.Rows) ([]*entity.Organization, error) {
	var list []*entity.Organization
	for rows.Next() {
		var org entity.Organization
		if err := rows.Scan(&org.ID, &org.Name, &org.CreatedAt, &org.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan organization: %w", err)
		}
		list = append(list, &org)
	}
	return list, rows.Err()
}
