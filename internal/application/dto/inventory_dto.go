package dto

import "time"

// SetStockRequest entrada para fijar el stock de un producto en una tienda.
type SetStockRequest struct {
	Qty int64 `json:"qty" validate:"min=0"`
}

// StockResponse salida del contador de stock de una tripleta (org, tienda, producto).
type StockResponse struct {
	OrgID     string    `json:"org_id"`
	StoreID   string    `json:"store_id"`
	ProductID string    `json:"product_id"`
	Qty       int64     `json:"qty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}
