package repository

import "github.com/jhoicas/PuntoVenta-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByOrgAndSKU(orgID, sku string) (*entity.Product, error)
	Update(product *entity.Product) error
	ListByOrg(orgID string, limit, offset int) ([]*entity.Product, error)
	// ListByIDs devuelve los productos del conjunto (lookup de precios al vender).
	ListByIDs(ids []string) ([]*entity.Product, error)
	Delete(id string) error
}
