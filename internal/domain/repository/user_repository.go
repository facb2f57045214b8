package repository

import "github.com/jhoicas/PuntoVenta-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
	List(limit, offset int) ([]*entity.User, error)
	// ListByIDs devuelve los usuarios cuyos IDs estén en el conjunto (para listados por organización).
	ListByIDs(ids []string) ([]*entity.User, error)
}
