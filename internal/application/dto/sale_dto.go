package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItemRequest línea de venta: producto y cantidad solicitada.
type SaleItemRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	Qty       int64  `json:"qty" validate:"required,min=1"`
}

// CreateSaleRequest entrada para registrar una venta multi-ítem.
type CreateSaleRequest struct {
	OrgID   string            `json:"org_id" validate:"required,uuid"`
	StoreID string            `json:"store_id" validate:"required,uuid"`
	Items   []SaleItemRequest `json:"items" validate:"required,min=1,dive"`
}

// SaleItemResponse línea de venta con el precio capturado al vender.
type SaleItemResponse struct {
	ProductID string          `json:"product_id"`
	Qty       int64           `json:"qty"`
	Price     decimal.Decimal `json:"price"`
	Total     decimal.Decimal `json:"total"`
}

// SaleResponse salida de una venta registrada.
type SaleResponse struct {
	ID        string             `json:"id"`
	OrgID     string             `json:"org_id"`
	StoreID   string             `json:"store_id"`
	UserID    string             `json:"user_id"`
	Items     []SaleItemResponse `json:"items"`
	Total     decimal.Decimal    `json:"total"`
	Status    string             `json:"status"`
	CreatedAt time.Time          `json:"created_at"`
}

// SaleListResponse listado de ventas.
type SaleListResponse struct {
	Sales []SaleResponse `json:"sales"`
}
