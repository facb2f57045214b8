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

var _ repository.MembershipRepository = (*MembershipRepo)(nil)

// MembershipRepo implementación del grafo de membresías sobre PostgreSQL.
// Las aristas viven en user_organizations y user_stores, con constraint único
// por par; Link* hace upsert (last-write-wins en el rol).
type MembershipRepo struct {
	pool *pgxpool.Pool
}

// NewMembershipRepository construye el adaptador del grafo de membresías.
func NewMembershipRepository(pool *pgxpool.Pool) *MembershipRepo {
	return &MembershipRepo{pool: pool}
}

// LinkUserOrg inserta o actualiza la arista (user_id, org_id) con el rol dado.
func (r *MembershipRepo) LinkUserOrg(link *entity.UserOrganization) error {
	query := `
		INSERT INTO user_organizations (id, user_id, org_id, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id, org_id)
		DO UPDATE SET role = EXCLUDED.role, updated_at = EXCLUDED.updated_at`
	_, err := r.pool.Exec(context.Background(), query,
		link.ID, link.UserID, link.OrgID, link.Role, link.CreatedAt, link.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("link user org: %w", err)
	}
	return nil
}

// LinkUserStore inserta o actualiza la arista (user_id, store_id).
func (r *MembershipRepo) LinkUserStore(link *entity.UserStore) error {
	query := `
		INSERT INTO user_stores (id, user_id, store_id, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id, store_id)
		DO UPDATE SET role = EXCLUDED.role, updated_at = EXCLUDED.updated_at`
	_, err := r.pool.Exec(context.Background(), query,
		link.ID, link.UserID, link.StoreID, link.Role, link.CreatedAt, link.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("link user store: %w", err)
	}
	return nil
}

// FindUserOrg devuelve la arista del par o nil si no existe.
func (r *MembershipRepo) FindUserOrg(userID, orgID string) (*entity.UserOrganization, error) {
	query := `
		SELECT id, user_id, org_id, role, created_at, updated_at
		FROM user_organizations WHERE user_id = $1 AND org_id = $2`
	var link entity.UserOrganization
	err := r.pool.QueryRow(context.Background(), query, userID, orgID).Scan(
		&link.ID, &link.UserID, &link.OrgID, &link.Role, &link.CreatedAt, &link.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find user org: %w", err)
	}
	return &link, nil
}

// FindUserStore devuelve la arista del par o nil si no existe.
func (r *MembershipRepo) FindUserStore(userID, storeID string) (*entity.UserStore, error) {
	query := `
		SELECT id, user_id, store_id, role, created_at, updated_at
		FROM user_stores WHERE user_id = $1 AND store_id = $2`
	var link entity.UserStore
	err := r.pool.QueryRow(context.Background(), query, userID, storeID).Scan(
		&link.ID, &link.UserID, &link.StoreID, &link.Role, &link.CreatedAt, &link.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find user store: %w", err)
	}
	return &link, nil
}

// AdminOrgIDs devuelve las organizaciones donde el usuario tiene rol admin.
func (r *MembershipRepo) AdminOrgIDs(userID string) ([]string, error) {
	query := `SELECT org_id FROM user_organizations WHERE user_id = $1 AND role = $2`
	return r.queryIDs(query, userID, entity.OrgRoleAdmin)
}

// OrgIDs devuelve todas las organizaciones del usuario, sin importar rol.
func (r *MembershipRepo) OrgIDs(userID string) ([]string, error) {
	query := `SELECT org_id FROM user_organizations WHERE user_id = $1`
	return r.queryIDs(query, userID)
}

func (r *MembershipRepo) queryIDs(query string, args ...any) ([]string, error) {
	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("query org ids: %w", err)
	}
	defer rows.Close()
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan org id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// CountAdminLinks cuenta en una sola consulta agregada cuántas de las
// organizaciones dadas administra el usuario.
func (r *MembershipRepo) CountAdminLinks(userID string, orgIDs []string) (int, error) {
	if len(orgIDs) == 0 {
		return 0, nil
	}
	query := `
		SELECT COUNT(*) FROM user_organizations
		WHERE user_id = $1 AND role = $2 AND org_id = ANY($3)`
	var count int
	err := r.pool.QueryRow(context.Background(), query, userID, entity.OrgRoleAdmin, orgIDs).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count admin links: %w", err)
	}
	return count, nil
}

// HasAnyOrg indica si el usuario tiene alguna arista en alguna de las organizaciones dadas.
func (r *MembershipRepo) HasAnyOrg(userID string, orgIDs []string) (bool, error) {
	if len(orgIDs) == 0 {
		return false, nil
	}
	query := `
		SELECT EXISTS (
			SELECT 1 FROM user_organizations WHERE user_id = $1 AND org_id = ANY($2)
		)`
	var exists bool
	err := r.pool.QueryRow(context.Background(), query, userID, orgIDs).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("has any org: %w", err)
	}
	return exists, nil
}

// ListOrgLinksByOrg devuelve las aristas de una organización.
func (r *MembershipRepo) ListOrgLinksByOrg(orgID string) ([]*entity.UserOrganization, error) {
	query := `
		SELECT id, user_id, org_id, role, created_at, updated_at
		FROM user_organizations WHERE org_id = $1 ORDER BY created_at`
	return r.queryOrgLinks(query, orgID)
}

// ListOrgLinksByUser devuelve las aristas de organización de un usuario.
func (r *MembershipRepo) ListOrgLinksByUser(userID string) ([]*entity.UserOrganization, error) {
	query := `
		SELECT id, user_id, org_id, role, created_at, updated_at
		FROM user_organizations WHERE user_id = $1 ORDER BY created_at`
	return r.queryOrgLinks(query, userID)
}

func (r *MembershipRepo) queryOrgLinks(query string, arg any) ([]*entity.UserOrganization, error) {
	rows, err := r.pool.Query(context.Background(), query, arg)
	if err != nil {
		return nil, fmt.Errorf("list org links: %w", err)
	}
	defer rows.Close()
	var list []*entity.UserOrganization
	for rows.Next() {
		var link entity.UserOrganization
		if err := rows.Scan(&link.ID, &link.UserID, &link.OrgID, &link.Role,
			&link.CreatedAt, &link.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan org link: %w", err)
		}
		list = append(list, &link)
	}
	return list, rows.Err()
}

// ListStoreLinksByUser devuelve las aristas de tienda de un usuario.
func (r *MembershipRepo) ListStoreLinksByUser(userID string) ([]*entity.UserStore, error) {
	query := `
		SELECT id, user_id, store_id, role, created_at, updated_at
		FROM user_stores WHERE user_id = $1 ORDER BY created_at`
	rows, err := r.pool.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("list store links: %w", err)
	}
	defer rows.Close()
	var list []*entity.UserStore
	for rows.Next() {
		var link entity.UserStore
		if err := rows.Scan(&link.ID, &link.UserID, &link.StoreID, &link.Role,
			&link.CreatedAt, &link.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan store link: %w", err)
		}
		list = append(list, &link)
	}
	return list, rows.Err()
}
