package entity

import "time"

// Inventory representa el contador de stock por (organización, tienda, producto).
// Invariantes: exactamente una fila por tripleta; Qty nunca negativa.
type Inventory struct {
	OrgID     string
	StoreID   string
	ProductID string
	Qty       int64
	UpdatedAt time.Time
}
