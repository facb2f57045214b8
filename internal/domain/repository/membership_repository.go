package repository

import "github.com/jhoicas/PuntoVenta-api/internal/domain/entity"

// MembershipRepository define el puerto para el grafo de membresías:
// aristas usuario↔organización y usuario↔tienda. Las operaciones Link hacen
// upsert sobre la arista única del par (last-write-wins en el rol).
type MembershipRepository interface {
	// LinkUserOrg inserta o actualiza la arista (userID, orgID) con el rol dado.
	LinkUserOrg(link *entity.UserOrganization) error
	// LinkUserStore inserta o actualiza la arista (userID, storeID); rol siempre cashier.
	LinkUserStore(link *entity.UserStore) error

	// FindUserOrg devuelve la arista del par o nil si no existe.
	FindUserOrg(userID, orgID string) (*entity.UserOrganization, error)
	// FindUserStore devuelve la arista del par o nil si no existe.
	FindUserStore(userID, storeID string) (*entity.UserStore, error)

	// AdminOrgIDs devuelve las organizaciones donde el usuario tiene rol admin.
	AdminOrgIDs(userID string) ([]string, error)
	// OrgIDs devuelve todas las organizaciones del usuario, sin importar rol.
	OrgIDs(userID string) ([]string, error)

	// CountAdminLinks cuenta en UNA sola consulta agregada cuántas de las
	// organizaciones dadas administra el usuario. Comparar contra len(orgIDs)
	// evita carreras de autorización parcial entre mutaciones paralelas.
	CountAdminLinks(userID string, orgIDs []string) (int, error)

	// HasAnyOrg indica si el usuario objetivo tiene alguna arista (cualquier rol)
	// en alguna de las organizaciones dadas.
	HasAnyOrg(userID string, orgIDs []string) (bool, error)

	// ListOrgLinksByOrg devuelve las aristas de una organización (listado de usuarios).
	ListOrgLinksByOrg(orgID string) ([]*entity.UserOrganization, error)
	// ListOrgLinksByUser devuelve las aristas de organización de un usuario.
	ListOrgLinksByUser(userID string) ([]*entity.UserOrganization, error)
	// ListStoreLinksByUser devuelve las aristas de tienda de un usuario.
	ListStoreLinksByUser(userID string) ([]*entity.UserStore, error)
}
