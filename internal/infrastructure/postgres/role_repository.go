package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/PuntoVenta-api/internal/domain"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/entity"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/repository"
)

var _ repository.RoleRepository = (*RoleRepo)(nil)

// RoleRepo implementación del puerto RoleRepository sobre PostgreSQL.
// Permissions se guarda como text[].
type RoleRepo struct {
	pool *pgxpool.Pool
}

// NewRoleRepository construye el adaptador de persistencia para roles.
func NewRoleRepository(pool *pgxpool.Pool) *RoleRepo {
	return &RoleRepo{pool: pool}
}

// Create persiste un nuevo rol. La key única está protegida por constraint.
func (r *RoleRepo) Create(role *entity.Role) error {
	query := `
		INSERT INTO roles (id, key, name, description, permissions, is_system, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.pool.Exec(context.Background(), query,
		role.ID, role.Key, role.Name, role.Description, role.Permissions, role.IsSystem,
		role.CreatedAt, role.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert role: %w", err)
	}
	return nil
}

// GetByID obtiene un rol por ID.
func (r *RoleRepo) GetByID(id string) (*entity.Role, error) {
	query := `
		SELECT id, key, name, description, permissions, is_system, created_at, updated_at
		FROM roles WHERE id = $1`
	return r.scanOne(r.pool.QueryRow(context.Background(), query, id), "get role by id")
}

// GetByKey obtiene un rol por su key.
func (r *RoleRepo) GetByKey(key string) (*entity.Role, error) {
	query := `
		SELECT id, key, name, description, permissions, is_system, created_at, updated_at
		FROM roles WHERE key = $1`
	return r.scanOne(r.pool.QueryRow(context.Background(), query, key), "get role by key")
}

func (r *RoleRepo) scanOne(row pgx.Row, op string) (*entity.Role, error) {
	var role entity.Role
	err := row.Scan(
		&role.ID, &role.Key, &role.Name, &role.Description, &role.Permissions, &role.IsSystem,
		&role.CreatedAt, &role.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &role, nil
}

// Update actualiza nombre, descripción y permisos. La key nunca cambia.
func (r *RoleRepo) Update(role *entity.Role) error {
	query := `
		UPDATE roles SET name = $2, description = $3, permissions = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		role.ID, role.Name, role.Description, role.Permissions, role.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update role: %w", err)
	}
	return nil
}

// List devuelve todos los roles.
func (r *RoleRepo) List() ([]*entity.Role, error) {
	query := `
		SELECT id, key, name, description, permissions, is_system, created_at, updated_at
		FROM roles ORDER BY created_at`
	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	defer rows.Close()
	var list []*entity.Role
	for rows.Next() {
		var role entity.Role
		if err := rows.Scan(&role.ID, &role.Key, &role.Name, &role.Description, &role.Permissions,
			&role.IsSystem, &role.CreatedAt, &role.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan role: %w", err)
		}
		list = append(list, &role)
	}
	return list, rows.Err()
}

// Delete elimina un rol por ID. El guard de roles de sistema vive en el caso de uso.
func (r *RoleRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM roles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete role: %w", err)
	}
	return nil
}
