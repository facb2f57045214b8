package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto vendible. El SKU es único por organización
// (no global); el precio es el vigente, las ventas guardan su propio snapshot.
type Product struct {
	ID        string
	OrgID     string
	SKU       string
	Name      string
	Price     decimal.Decimal // precio de venta, >= 0
	CreatedAt time.Time
	UpdatedAt time.Time
}
