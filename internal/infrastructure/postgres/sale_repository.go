package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/PuntoVenta-api/internal/domain/entity"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación del log de ventas sobre PostgreSQL (usable con pool
// o tx: Create corre dentro de la transacción de venta). Cabecera en sales,
// líneas en sale_items.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador de ventas. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste la cabecera y todas las líneas de una venta.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	ctx := context.Background()
	query := `
		INSERT INTO sales (id, org_id, store_id, user_id, total, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		sale.ID, sale.OrgID, sale.StoreID, sale.UserID, sale.Total, sale.Status, sale.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	itemQuery := `
		INSERT INTO sale_items (sale_id, product_id, qty, price, total)
		VALUES ($1, $2, $3, $4, $5)`
	for _, it := range sale.Items {
		if _, err := r.q.Exec(ctx, itemQuery, sale.ID, it.ProductID, it.Qty, it.Price, it.Total); err != nil {
			return fmt.Errorf("insert sale item: %w", err)
		}
	}
	return nil
}

// GetByID obtiene una venta con sus líneas, o nil si no existe.
func (r *SaleRepo) GetByID(id string) (*entity.Sale, error) {
	ctx := context.Background()
	query := `
		SELECT id, org_id, store_id, user_id, total, status, created_at
		FROM sales WHERE id = $1`
	var s entity.Sale
	err := r.q.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.OrgID, &s.StoreID, &s.UserID, &s.Total, &s.Status, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale by id: %w", err)
	}
	items, err := r.itemsFor(ctx, s.ID)
	if err != nil {
		return nil, err
	}
	s.Items = items
	return &s, nil
}

func (r *SaleRepo) itemsFor(ctx context.Context, saleID string) ([]entity.SaleItem, error) {
	query := `
		SELECT product_id, qty, price, total
		FROM sale_items WHERE sale_id = $1 ORDER BY product_id`
	rows, err := r.q.Query(ctx, query, saleID)
	if err != nil {
		return nil, fmt.Errorf("list sale items: %w", err)
	}
	defer rows.Close()
	var items []entity.SaleItem
	for rows.Next() {
		var it entity.SaleItem
		if err := rows.Scan(&it.ProductID, &it.Qty, &it.Price, &it.Total); err != nil {
			return nil, fmt.Errorf("scan sale item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// ListByStore lista ventas de una tienda, más recientes primero, con sus líneas.
func (r *SaleRepo) ListByStore(storeID string, limit, offset int) ([]*entity.Sale, error) {
	ctx := context.Background()
	query := `
		SELECT id, org_id, store_id, user_id, total, status, created_at
		FROM sales WHERE store_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, storeID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(&s.ID, &s.OrgID, &s.StoreID, &s.UserID, &s.Total, &s.Status, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, s := range list {
		items, err := r.itemsFor(ctx, s.ID)
		if err != nil {
			return nil, err
		}
		s.Items = items
	}
	return list, nil
}

// Count devuelve el total de ventas registradas.
func (r *SaleRepo) Count() (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM sales`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count sales: %w", err)
	}
	return count, nil
}
