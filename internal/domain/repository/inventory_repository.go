package repository

import "github.com/jhoicas/PuntoVenta-api/internal/domain/entity"

// InventoryRepository define el puerto para el contador de stock por
// (organización, tienda, producto). Usado dentro de transacciones en ventas.
type InventoryRepository interface {
	// Get devuelve la fila de stock; si no existe, una fila con Qty=0 (no es error).
	Get(orgID, storeID, productID string) (*entity.Inventory, error)
	// Set sobrescribe la cantidad (upsert incondicional, crea la fila si falta).
	Set(inv *entity.Inventory) error
	// Decrease descuenta qty de forma condicional y atómica: una sola operación
	// compare-and-swap en el datastore que solo aplica si la cantidad actual
	// alcanza. Devuelve domain.ErrInsufficientStock si la fila no existe o no alcanza.
	Decrease(orgID, storeID, productID string, qty int64) error
}
