package repository

import "github.com/jhoicas/PuntoVenta-api/internal/domain/entity"

// SaleRepository define el puerto de persistencia para Sale (log append-only).
type SaleRepository interface {
	Create(sale *entity.Sale) error
	GetByID(id string) (*entity.Sale, error)
	ListByStore(storeID string, limit, offset int) ([]*entity.Sale, error)
	// Count devuelve el total de ventas registradas (usado en tests de atomicidad).
	Count() (int, error)
}
