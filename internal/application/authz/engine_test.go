package authz_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/PuntoVenta-api/internal/application/authz"
	"github.com/jhoicas/PuntoVenta-api/internal/domain"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos que consulta el motor
// ──────────────────────────────────────────────────────────────────────────────

type fakeMembers struct {
	orgLinks   map[string]map[string]string // userID -> orgID -> role
	storeLinks map[string]map[string]bool   // userID -> storeID
}

func newFakeMembers() *fakeMembers {
	return &fakeMembers{
		orgLinks:   map[string]map[string]string{},
		storeLinks: map[string]map[string]bool{},
	}
}

func (f *fakeMembers) linkOrg(userID, orgID, role string) {
	if f.orgLinks[userID] == nil {
		f.orgLinks[userID] = map[string]string{}
	}
	f.orgLinks[userID][orgID] = role
}

func (f *fakeMembers) linkStore(userID, storeID string) {
	if f.storeLinks[userID] == nil {
		f.storeLinks[userID] = map[string]bool{}
	}
	f.storeLinks[userID][storeID] = true
}

func (f *fakeMembers) LinkUserOrg(link *entity.UserOrganization) error {
	f.linkOrg(link.UserID, link.OrgID, link.Role)
	return nil
}

func (f *fakeMembers) LinkUserStore(link *entity.UserStore) error {
	f.linkStore(link.UserID, link.StoreID)
	return nil
}

func (f *fakeMembers) FindUserOrg(userID, orgID string) (*entity.UserOrganization, error) {
	role, ok := f.orgLinks[userID][orgID]
	if !ok {
		return nil, nil
	}
	return &entity.UserOrganization{UserID: userID, OrgID: orgID, Role: role}, nil
}

func (f *fakeMembers) FindUserStore(userID, storeID string) (*entity.UserStore, error) {
	if !f.storeLinks[userID][storeID] {
		return nil, nil
	}
	return &entity.UserStore{UserID: userID, StoreID: storeID, Role: entity.OrgRoleCashier}, nil
}

func (f *fakeMembers) AdminOrgIDs(userID string) ([]string, error) {
	var out []string
	for orgID, role := range f.orgLinks[userID] {
		if role == entity.OrgRoleAdmin {
			out = append(out, orgID)
		}
	}
	return out, nil
}

func (f *fakeMembers) OrgIDs(userID string) ([]string, error) {
	var out []string
	for orgID := range f.orgLinks[userID] {
		out = append(out, orgID)
	}
	return out, nil
}

func (f *fakeMembers) CountAdminLinks(userID string, orgIDs []string) (int, error) {
	n := 0
	for _, orgID := range orgIDs {
		if f.orgLinks[userID][orgID] == entity.OrgRoleAdmin {
			n++
		}
	}
	return n, nil
}

func (f *fakeMembers) HasAnyOrg(userID string, orgIDs []string) (bool, error) {
	for _, orgID := range orgIDs {
		if _, ok := f.orgLinks[userID][orgID]; ok {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeMembers) ListOrgLinksByOrg(orgID string) ([]*entity.UserOrganization, error) {
	var out []*entity.UserOrganization
	for userID, orgs := range f.orgLinks {
		if role, ok := orgs[orgID]; ok {
			out = append(out, &entity.UserOrganization{UserID: userID, OrgID: orgID, Role: role})
		}
	}
	return out, nil
}

func (f *fakeMembers) ListOrgLinksByUser(userID string) ([]*entity.UserOrganization, error) {
	var out []*entity.UserOrganization
	for orgID, role := range f.orgLinks[userID] {
		out = append(out, &entity.UserOrganization{UserID: userID, OrgID: orgID, Role: role})
	}
	return out, nil
}

func (f *fakeMembers) ListStoreLinksByUser(userID string) ([]*entity.UserStore, error) {
	var out []*entity.UserStore
	for storeID := range f.storeLinks[userID] {
		out = append(out, &entity.UserStore{UserID: userID, StoreID: storeID, Role: entity.OrgRoleCashier})
	}
	return out, nil
}

type fakeStores struct {
	stores map[string]*entity.Store // storeID -> store
}

func (f *fakeStores) Create(store *entity.Store) error { f.stores[store.ID] = store; return nil }

func (f *fakeStores) GetByID(id string) (*entity.Store, error) { return f.stores[id], nil }

func (f *fakeStores) Update(store *entity.Store) error { f.stores[store.ID] = store; return nil }

func (f *fakeStores) ListByOrg(orgID string, limit, offset int) ([]*entity.Store, error) {
	var out []*entity.Store
	for _, s := range f.stores {
		if s.OrgID == orgID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeStores) OrgIDsForStores(storeIDs []string) ([]string, error) {
	seen := map[string]bool{}
	var out []string
	for _, id := range storeIDs {
		s, ok := f.stores[id]
		if !ok || seen[s.OrgID] {
			continue
		}
		seen[s.OrgID] = true
		out = append(out, s.OrgID)
	}
	return out, nil
}

type fakeProducts struct {
	products map[string]*entity.Product
}

func (f *fakeProducts) Create(p *entity.Product) error { f.products[p.ID] = p; return nil }

func (f *fakeProducts) GetByID(id string) (*entity.Product, error) { return f.products[id], nil }

func (f *fakeProducts) GetByOrgAndSKU(orgID, sku string) (*entity.Product, error) {
	for _, p := range f.products {
		if p.OrgID == orgID && p.SKU == sku {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeProducts) Update(p *entity.Product) error { f.products[p.ID] = p; return nil }

func (f *fakeProducts) ListByOrg(orgID string, limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range f.products {
		if p.OrgID == orgID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProducts) ListByIDs(ids []string) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, id := range ids {
		if p, ok := f.products[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProducts) Delete(id string) error { delete(f.products, id); return nil }

// ──────────────────────────────────────────────────────────────────────────────
// Fixture
// ──────────────────────────────────────────────────────────────────────────────

const (
	orgA   = "org-a"
	orgB   = "org-b"
	store1 = "store-1" // pertenece a orgA
	store2 = "store-2" // pertenece a orgA
	store3 = "store-3" // pertenece a orgB
)

var (
	superAdmin = authz.Actor{UserID: "u-root", Email: "root@pv.test", Role: entity.RoleAdmin}
	adminA     = authz.Actor{UserID: "u-admin-a", Email: "admin-a@pv.test", Role: entity.RoleCashier}
	cashierA   = authz.Actor{UserID: "u-cashier-a", Email: "cashier-a@pv.test", Role: entity.RoleCashier}
	outsider   = authz.Actor{UserID: "u-outsider", Email: "outsider@pv.test", Role: entity.RoleCashier}
	anonymous  = authz.Actor{}
)

// buildEngine arma un grafo con: adminA admin de orgA, cashierA cajero de orgA
// vinculado a store1, y un producto por organización.
func buildEngine(t *testing.T) (*authz.Engine, *fakeMembers) {
	t.Helper()
	members := newFakeMembers()
	members.linkOrg(adminA.UserID, orgA, entity.OrgRoleAdmin)
	members.linkOrg(cashierA.UserID, orgA, entity.OrgRoleCashier)
	members.linkStore(cashierA.UserID, store1)

	stores := &fakeStores{stores: map[string]*entity.Store{
		store1: {ID: store1, OrgID: orgA, Name: "Centro"},
		store2: {ID: store2, OrgID: orgA, Name: "Norte"},
		store3: {ID: store3, OrgID: orgB, Name: "Sur"},
	}}
	products := &fakeProducts{products: map[string]*entity.Product{
		"prod-a": {ID: "prod-a", OrgID: orgA, SKU: "SKU-A", Name: "Café"},
		"prod-b": {ID: "prod-b", OrgID: orgB, SKU: "SKU-B", Name: "Té"},
	}}
	return authz.NewEngine(members, stores, products), members
}

// ──────────────────────────────────────────────────────────────────────────────
// RequireSuperAdmin / corto-circuito del tier
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireSuperAdmin(t *testing.T) {
	e, _ := buildEngine(t)

	assert.NoError(t, e.RequireSuperAdmin(superAdmin))
	assert.ErrorIs(t, e.RequireSuperAdmin(adminA), domain.ErrForbidden,
		"org-admin no es super-admin")
	assert.ErrorIs(t, e.RequireSuperAdmin(anonymous), domain.ErrUnauthorized)
}

// El super-admin corta antes de mirar el grafo: debe pasar todo aun sin aristas
// (caso bootstrap inicial, grafo vacío).
func TestSuperAdmin_BypassSinAristas(t *testing.T) {
	stores := &fakeStores{stores: map[string]*entity.Store{}}
	products := &fakeProducts{products: map[string]*entity.Product{}}
	e := authz.NewEngine(newFakeMembers(), stores, products)

	assert.NoError(t, e.AuthorizeOrgAdmin(superAdmin, orgA))
	assert.NoError(t, e.AuthorizeOrgAdminAll(superAdmin, []string{orgA, orgB}))
	assert.NoError(t, e.AuthorizeStoreAdmin(superAdmin, []string{store1}))
	assert.NoError(t, e.AuthorizeOrgMember(superAdmin, orgA))
	assert.NoError(t, e.AuthorizeStoreMember(superAdmin, store1))
	assert.NoError(t, e.AuthorizeTargetUser(superAdmin, "cualquiera"))
	assert.NoError(t, e.AuthorizeProductMutation(superAdmin, "no-existe", ""))
}

// ──────────────────────────────────────────────────────────────────────────────
// AuthorizeOrgAdmin
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthorizeOrgAdmin(t *testing.T) {
	e, _ := buildEngine(t)

	assert.NoError(t, e.AuthorizeOrgAdmin(adminA, orgA))
	assert.ErrorIs(t, e.AuthorizeOrgAdmin(adminA, orgB), domain.ErrForbidden,
		"admin de A no administra B")
	assert.ErrorIs(t, e.AuthorizeOrgAdmin(cashierA, orgA), domain.ErrForbidden,
		"cajero no es admin aunque sea miembro")
	assert.ErrorIs(t, e.AuthorizeOrgAdmin(outsider, orgA), domain.ErrForbidden)
	assert.ErrorIs(t, e.AuthorizeOrgAdmin(adminA, ""), domain.ErrMissingTarget)
	assert.ErrorIs(t, e.AuthorizeOrgAdmin(anonymous, orgA), domain.ErrUnauthorized)
}

// isOrgAdmin(u,o) vale exactamente cuando existe arista (u,o,admin) o el actor
// trae el centinela de super-admin.
func TestAuthorizeOrgAdmin_TierDerivation(t *testing.T) {
	e, members := buildEngine(t)

	// cashierA promovido a admin de orgA: la segunda arista sobreescribe el rol
	require.NoError(t, members.LinkUserOrg(&entity.UserOrganization{
		UserID: cashierA.UserID, OrgID: orgA, Role: entity.OrgRoleAdmin,
	}))
	assert.NoError(t, e.AuthorizeOrgAdmin(cashierA, orgA))
}

// ──────────────────────────────────────────────────────────────────────────────
// AuthorizeOrgAdminAll — todo-o-nada
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthorizeOrgAdminAll_TodoONada(t *testing.T) {
	e, members := buildEngine(t)

	assert.NoError(t, e.AuthorizeOrgAdminAll(adminA, []string{orgA}))
	assert.ErrorIs(t, e.AuthorizeOrgAdminAll(adminA, []string{orgA, orgB}), domain.ErrForbidden,
		"admin de A pero no de B: se niega el conjunto completo, no mayoría")

	members.linkOrg(adminA.UserID, orgB, entity.OrgRoleAdmin)
	assert.NoError(t, e.AuthorizeOrgAdminAll(adminA, []string{orgA, orgB}))
}

func TestAuthorizeOrgAdminAll_ConjuntoVacio(t *testing.T) {
	e, _ := buildEngine(t)

	// Cero objetivos se rechaza, nunca se autoriza por vacuidad.
	assert.ErrorIs(t, e.AuthorizeOrgAdminAll(adminA, nil), domain.ErrMissingTarget)
	assert.ErrorIs(t, e.AuthorizeOrgAdminAll(adminA, []string{}), domain.ErrMissingTarget)
	assert.ErrorIs(t, e.AuthorizeOrgAdminAll(adminA, []string{""}), domain.ErrMissingTarget)
}

func TestAuthorizeOrgAdminAll_Duplicados(t *testing.T) {
	e, _ := buildEngine(t)

	// El mismo id repetido cuenta una vez: el conteo agregado compara contra
	// el conjunto distinto.
	assert.NoError(t, e.AuthorizeOrgAdminAll(adminA, []string{orgA, orgA, orgA}))
}

// ──────────────────────────────────────────────────────────────────────────────
// AuthorizeStoreAdmin — resolución tienda→organización
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthorizeStoreAdmin(t *testing.T) {
	e, _ := buildEngine(t)

	// store1 y store2 son de orgA: un solo org distinto, adminA pasa.
	assert.NoError(t, e.AuthorizeStoreAdmin(adminA, []string{store1, store2}))
	// store3 es de orgB.
	assert.ErrorIs(t, e.AuthorizeStoreAdmin(adminA, []string{store1, store3}), domain.ErrForbidden)
	assert.ErrorIs(t, e.AuthorizeStoreAdmin(adminA, nil), domain.ErrMissingTarget)
	assert.ErrorIs(t, e.AuthorizeStoreAdmin(cashierA, []string{store1}), domain.ErrForbidden)
}

// ──────────────────────────────────────────────────────────────────────────────
// AuthorizeProductMutation / AuthorizeStoreMutation — dueño real manda
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthorizeProductMutation(t *testing.T) {
	e, _ := buildEngine(t)

	// Mutación de producto existente: org inferida del producto.
	assert.NoError(t, e.AuthorizeProductMutation(adminA, "prod-a", ""))
	assert.ErrorIs(t, e.AuthorizeProductMutation(adminA, "prod-b", ""), domain.ErrForbidden)

	// El org_id del body NO puede ampliar acceso: prod-b es de orgB aunque el
	// body diga orgA.
	assert.ErrorIs(t, e.AuthorizeProductMutation(adminA, "prod-b", orgA), domain.ErrForbidden)

	// Creación (sin id): aplica el org_id explícito del body.
	assert.NoError(t, e.AuthorizeProductMutation(adminA, "", orgA))
	assert.ErrorIs(t, e.AuthorizeProductMutation(adminA, "", orgB), domain.ErrForbidden)

	// Producto inexistente sin org explícita: NotFound, no MissingTarget.
	assert.ErrorIs(t, e.AuthorizeProductMutation(adminA, "no-existe", ""), domain.ErrNotFound)
	// Sin producto ni org: falta el objetivo.
	assert.ErrorIs(t, e.AuthorizeProductMutation(adminA, "", ""), domain.ErrMissingTarget)
}

func TestAuthorizeStoreMutation(t *testing.T) {
	e, _ := buildEngine(t)

	assert.NoError(t, e.AuthorizeStoreMutation(adminA, store1, ""))
	assert.ErrorIs(t, e.AuthorizeStoreMutation(adminA, store3, ""), domain.ErrForbidden)
	assert.ErrorIs(t, e.AuthorizeStoreMutation(adminA, store3, orgA), domain.ErrForbidden,
		"el body no puede anular a la organización dueña de la tienda")
	assert.NoError(t, e.AuthorizeStoreMutation(adminA, "", orgA))
	assert.ErrorIs(t, e.AuthorizeStoreMutation(adminA, "no-existe", ""), domain.ErrNotFound)
	assert.ErrorIs(t, e.AuthorizeStoreMutation(adminA, "", ""), domain.ErrMissingTarget)
}

// ──────────────────────────────────────────────────────────────────────────────
// AuthorizeOrgMember / AuthorizeStoreMember
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthorizeOrgMember(t *testing.T) {
	e, _ := buildEngine(t)

	// Miembro es miembro: cajero y admin acceden por igual a lecturas.
	assert.NoError(t, e.AuthorizeOrgMember(cashierA, orgA))
	assert.NoError(t, e.AuthorizeOrgMember(adminA, orgA))
	assert.ErrorIs(t, e.AuthorizeOrgMember(outsider, orgA), domain.ErrForbidden)
	assert.ErrorIs(t, e.AuthorizeOrgMember(cashierA, ""), domain.ErrMissingTarget)
}

func TestAuthorizeStoreMember(t *testing.T) {
	e, _ := buildEngine(t)

	// Arista directa usuario↔tienda.
	assert.NoError(t, e.AuthorizeStoreMember(cashierA, store1))
	// Miembro de la org pero sin arista a store2: denegado.
	assert.ErrorIs(t, e.AuthorizeStoreMember(cashierA, store2), domain.ErrForbidden)
	// Org-admin de la organización dueña pasa sin arista de tienda.
	assert.NoError(t, e.AuthorizeStoreMember(adminA, store2))
	// Tienda inexistente: NotFound antes que Forbidden.
	assert.ErrorIs(t, e.AuthorizeStoreMember(cashierA, "no-existe"), domain.ErrNotFound)
	assert.ErrorIs(t, e.AuthorizeStoreMember(outsider, store1), domain.ErrForbidden)
}

// ──────────────────────────────────────────────────────────────────────────────
// AuthorizeTargetUser — objetivo usuario, no organización
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthorizeTargetUser(t *testing.T) {
	e, members := buildEngine(t)

	// cashierA pertenece a orgA, que adminA administra.
	assert.NoError(t, e.AuthorizeTargetUser(adminA, cashierA.UserID))

	// outsider no comparte ninguna organización administrada.
	assert.ErrorIs(t, e.AuthorizeTargetUser(adminA, outsider.UserID), domain.ErrForbidden)

	// Un actor sin organizaciones administradas no gestiona a nadie.
	assert.ErrorIs(t, e.AuthorizeTargetUser(cashierA, adminA.UserID), domain.ErrForbidden)

	// Basta UNA organización compartida aunque el objetivo pertenezca a otras.
	members.linkOrg(outsider.UserID, orgB, entity.OrgRoleCashier)
	members.linkOrg(outsider.UserID, orgA, entity.OrgRoleCashier)
	assert.NoError(t, e.AuthorizeTargetUser(adminA, outsider.UserID),
		"no exige administrar todas las orgs del objetivo")
}
