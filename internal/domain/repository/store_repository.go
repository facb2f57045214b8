package repository

import "github.com/jhoicas/PuntoVenta-api/internal/domain/entity"

// StoreRepository define el puerto de persistencia para Store (DIP).
type StoreRepository interface {
	Create(store *entity.Store) error
	GetByID(id string) (*entity.Store, error)
	Update(store *entity.Store) error
	ListByOrg(orgID string, limit, offset int) ([]*entity.Store, error)
	// OrgIDsForStores proyecta tienda→organización y devuelve el conjunto
	// distinto de orgIDs dueñas. Usado para autorizar operaciones multi-tienda.
	OrgIDsForStores(storeIDs []string) ([]string, error)
}
