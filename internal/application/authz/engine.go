// Package authz implementa el motor de autorización multi-tenant: predicados
// puros sobre (claims del actor, recurso objetivo, grafo de membresías) que
// siempre responden permitir/denegar y no tienen efectos secundarios.
//
// Precedencia de tiers, evaluada en orden:
//
//  1. Super-admin: role grueso == "admin" en el token. Corta antes de cualquier
//     consulta a la DB (y es el único camino que funciona sin aristas, p.ej.
//     durante el bootstrap inicial).
//  2. Org-admin:   arista admin en TODAS las organizaciones implicadas.
//  3. Miembro:     cualquier arista (admin o cashier) en la organización, o
//     arista directa usuario↔tienda para chequeos de tienda.
//
// Una denegación nunca explica qué membresía faltó (no filtra la topología).
package authz

import (
	"github.com/jhoicas/PuntoVenta-api/internal/domain"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/entity"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/repository"
)

// Actor son los claims del token ya verificado.
type Actor struct {
	UserID string
	Email  string
	Role   string // admin (super-admin global) | cashier
}

// IsSuperAdmin indica si el actor es super-admin global. El tier viene fijado
// en el token desde el login; nunca se re-deriva de la lista de roles en runtime.
func (a Actor) IsSuperAdmin() bool {
	return a.Role == entity.RoleAdmin
}

// Engine evalúa los predicados de autorización contra el grafo de membresías.
// Stores y Products se consultan solo para resolver la organización dueña de
// un recurso objetivo.
type Engine struct {
	members  repository.MembershipRepository
	stores   repository.StoreRepository
	products repository.ProductRepository
}

// NewEngine construye el motor con sus colaboradores de solo lectura.
func NewEngine(members repository.MembershipRepository, stores repository.StoreRepository, products repository.ProductRepository) *Engine {
	return &Engine{members: members, stores: stores, products: products}
}

// RequireSuperAdmin exige el tier super-admin.
func (e *Engine) RequireSuperAdmin(actor Actor) error {
	if actor.UserID == "" {
		return domain.ErrUnauthorized
	}
	if !actor.IsSuperAdmin() {
		return domain.ErrForbidden
	}
	return nil
}

// AuthorizeOrgAdmin permite si el actor es super-admin o administra la
// organización dada. orgID vacío es ErrMissingTarget, no autorización vacua.
func (e *Engine) AuthorizeOrgAdmin(actor Actor, orgID string) error {
	if actor.UserID == "" {
		return domain.ErrUnauthorized
	}
	if actor.IsSuperAdmin() {
		return nil
	}
	if orgID == "" {
		return domain.ErrMissingTarget
	}
	link, err := e.members.FindUserOrg(actor.UserID, orgID)
	if err != nil {
		return err
	}
	if link == nil || link.Role != entity.OrgRoleAdmin {
		return domain.ErrForbidden
	}
	return nil
}

// AuthorizeOrgAdminAll permite solo si el actor administra TODAS las
// organizaciones del conjunto (todo-o-nada, no mayoría). El conteo se hace en
// una sola consulta agregada para no autorizar parcialmente bajo concurrencia.
func (e *Engine) AuthorizeOrgAdminAll(actor Actor, orgIDs []string) error {
	if actor.UserID == "" {
		return domain.ErrUnauthorized
	}
	if actor.IsSuperAdmin() {
		return nil
	}
	distinct := dedupe(orgIDs)
	if len(distinct) == 0 {
		return domain.ErrMissingTarget
	}
	n, err := e.members.CountAdminLinks(actor.UserID, distinct)
	if err != nil {
		return err
	}
	if n < len(distinct) {
		return domain.ErrForbidden
	}
	return nil
}

// AuthorizeStoreAdmin resuelve cada tienda a su organización dueña y exige
// rol admin sobre el conjunto distinto de organizaciones resultante.
func (e *Engine) AuthorizeStoreAdmin(actor Actor, storeIDs []string) error {
	if actor.UserID == "" {
		return domain.ErrUnauthorized
	}
	if actor.IsSuperAdmin() {
		return nil
	}
	ids := dedupe(storeIDs)
	if len(ids) == 0 {
		return domain.ErrMissingTarget
	}
	orgIDs, err := e.stores.OrgIDsForStores(ids)
	if err != nil {
		return err
	}
	return e.AuthorizeOrgAdminAll(actor, orgIDs)
}

// AuthorizeProductMutation autoriza una mutación de producto. La organización
// se resuelve desde el producto mismo cuando hay productID (el dueño real del
// recurso manda: un org_id del body nunca amplía el acceso); el org_id
// explícito solo aplica para creación, donde la entidad aún no existe.
func (e *Engine) AuthorizeProductMutation(actor Actor, productID, bodyOrgID string) error {
	if actor.UserID == "" {
		return domain.ErrUnauthorized
	}
	if actor.IsSuperAdmin() {
		return nil
	}
	orgID := ""
	if productID != "" {
		product, err := e.products.GetByID(productID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		orgID = product.OrgID
	} else {
		orgID = bodyOrgID
	}
	if orgID == "" {
		return domain.ErrMissingTarget
	}
	return e.AuthorizeOrgAdmin(actor, orgID)
}

// AuthorizeStoreMutation autoriza una mutación de tienda con el mismo patrón
// de resolución que los productos, pero contra la entidad Store.
func (e *Engine) AuthorizeStoreMutation(actor Actor, storeID, bodyOrgID string) error {
	if actor.UserID == "" {
		return domain.ErrUnauthorized
	}
	if actor.IsSuperAdmin() {
		return nil
	}
	orgID := ""
	if storeID != "" {
		store, err := e.stores.GetByID(storeID)
		if err != nil {
			return err
		}
		if store == nil {
			return domain.ErrNotFound
		}
		orgID = store.OrgID
	} else {
		orgID = bodyOrgID
	}
	if orgID == "" {
		return domain.ErrMissingTarget
	}
	return e.AuthorizeOrgAdmin(actor, orgID)
}

// AuthorizeOrgMember permite a cualquier miembro de la organización, sin
// distinguir admin de cashier: el acceso de lectura es uniforme.
func (e *Engine) AuthorizeOrgMember(actor Actor, orgID string) error {
	if actor.UserID == "" {
		return domain.ErrUnauthorized
	}
	if actor.IsSuperAdmin() {
		return nil
	}
	if orgID == "" {
		return domain.ErrMissingTarget
	}
	link, err := e.members.FindUserOrg(actor.UserID, orgID)
	if err != nil {
		return err
	}
	if link == nil {
		return domain.ErrForbidden
	}
	return nil
}

// AuthorizeStoreMember permite sobre una tienda concreta: primero org-admin de
// la organización dueña; si no, arista directa usuario↔tienda. La tienda debe
// existir (ErrNotFound si el id no resuelve).
func (e *Engine) AuthorizeStoreMember(actor Actor, storeID string) error {
	if actor.UserID == "" {
		return domain.ErrUnauthorized
	}
	if actor.IsSuperAdmin() {
		return nil
	}
	if storeID == "" {
		return domain.ErrMissingTarget
	}
	store, err := e.stores.GetByID(storeID)
	if err != nil {
		return err
	}
	if store == nil {
		return domain.ErrNotFound
	}
	link, err := e.members.FindUserOrg(actor.UserID, store.OrgID)
	if err != nil {
		return err
	}
	if link != nil && link.Role == entity.OrgRoleAdmin {
		return nil
	}
	storeLink, err := e.members.FindUserStore(actor.UserID, storeID)
	if err != nil {
		return err
	}
	if storeLink == nil {
		return domain.ErrForbidden
	}
	return nil
}

// AuthorizeTargetUser permite gestionar a un usuario objetivo si comparte
// alguna organización con las que el actor administra. No exige administrar
// TODAS las organizaciones del objetivo, basta la intersección no vacía.
func (e *Engine) AuthorizeTargetUser(actor Actor, targetUserID string) error {
	if actor.UserID == "" {
		return domain.ErrUnauthorized
	}
	if actor.IsSuperAdmin() {
		return nil
	}
	if targetUserID == "" {
		return domain.ErrMissingTarget
	}
	myOrgs, err := e.members.AdminOrgIDs(actor.UserID)
	if err != nil {
		return err
	}
	if len(myOrgs) == 0 {
		return domain.ErrForbidden
	}
	shared, err := e.members.HasAnyOrg(targetUserID, myOrgs)
	if err != nil {
		return err
	}
	if !shared {
		return domain.ErrForbidden
	}
	return nil
}

// dedupe devuelve el conjunto distinto preservando el orden y sin vacíos.
func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
