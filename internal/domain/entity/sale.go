package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una venta. "void" está permitido por el esquema pero ninguna
// operación lo produce todavía.
const (
	SaleStatusCompleted = "completed"
	SaleStatusVoid      = "void"
)

// SaleItem es una línea de venta con el precio capturado al momento de vender
// (snapshot histórico, independiente de cambios posteriores del producto).
type SaleItem struct {
	ProductID string
	Qty       int64
	Price     decimal.Decimal // precio unitario al momento de la venta
	Total     decimal.Decimal // Price * Qty
}

// Sale es el registro inmutable de una venta multi-ítem y su efecto en inventario.
type Sale struct {
	ID        string
	OrgID     string
	StoreID   string
	UserID    string // operador que registró la venta
	Items     []SaleItem
	Total     decimal.Decimal
	Status    string
	CreatedAt time.Time
}
