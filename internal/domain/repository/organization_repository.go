package repository

import "github.com/jhoicas/PuntoVenta-api/internal/domain/entity"

// OrganizationRepository define el puerto de persistencia para Organization (DIP).
type OrganizationRepository interface {
	Create(org *entity.Organization) error
	GetByID(id string) (*entity.Organization, error)
	List(limit, offset int) ([]*entity.Organization, error)
	// ListByIDs devuelve las organizaciones del conjunto (para "mis organizaciones").
	ListByIDs(ids []string) ([]*entity.Organization, error)
}
