package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/PuntoVenta-api/internal/domain"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/entity"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación del contador de stock sobre PostgreSQL
// (usable con pool o tx: las ventas lo usan dentro de una transacción).
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador de inventario. Pasar pool o tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

// Get obtiene el stock de la tripleta; si la fila no existe devuelve Qty=0, no error.
func (r *InventoryRepo) Get(orgID, storeID, productID string) (*entity.Inventory, error) {
	query := `
		SELECT org_id, store_id, product_id, qty, updated_at
		FROM inventory WHERE org_id = $1 AND store_id = $2 AND product_id = $3`
	var inv entity.Inventory
	err := r.q.QueryRow(context.Background(), query, orgID, storeID, productID).Scan(
		&inv.OrgID, &inv.StoreID, &inv.ProductID, &inv.Qty, &inv.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.Inventory{OrgID: orgID, StoreID: storeID, ProductID: productID, Qty: 0}, nil
		}
		return nil, fmt.Errorf("get inventory: %w", err)
	}
	return &inv, nil
}

// Set sobrescribe la cantidad (upsert incondicional, crea la fila si falta).
func (r *InventoryRepo) Set(inv *entity.Inventory) error {
	query := `
		INSERT INTO inventory (org_id, store_id, product_id, qty, updated_at)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (org_id, store_id, product_id)
		DO UPDATE SET qty = EXCLUDED.qty, updated_at = now()`
	_, err := r.q.Exec(context.Background(), query, inv.OrgID, inv.StoreID, inv.ProductID, inv.Qty)
	if err != nil {
		return fmt.Errorf("set inventory: %w", err)
	}
	return nil
}

// Decrease descuenta qty de forma condicional y atómica: un solo UPDATE con
// guard qty >= $4 en el WHERE. Si no afectó filas (no existe o no alcanza),
// el stock no se tocó y se devuelve ErrInsufficientStock.
func (r *InventoryRepo) Decrease(orgID, storeID, productID string, qty int64) error {
	query := `
		UPDATE inventory SET qty = qty - $4, updated_at = now()
		WHERE org_id = $1 AND store_id = $2 AND product_id = $3 AND qty >= $4`
	tag, err := r.q.Exec(context.Background(), query, orgID, storeID, productID, qty)
	if err != nil {
		return fmt.Errorf("decrease inventory: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrInsufficientStock
	}
	return nil
}
