package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/PuntoVenta-api/internal/application/dto"
	"github.com/jhoicas/PuntoVenta-api/internal/domain"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/entity"
)

type pairKey struct{ a, b string }

// fakeMembershipRepo implementa repository.MembershipRepository en memoria,
// con la misma semántica de upsert por par que la versión Postgres.
type fakeMembershipRepo struct {
	orgLinks   map[pairKey]*entity.UserOrganization // (userID, orgID)
	storeLinks map[pairKey]*entity.UserStore        // (userID, storeID)
}

func newFakeMembershipRepo() *fakeMembershipRepo {
	return &fakeMembershipRepo{
		orgLinks:   make(map[pairKey]*entity.UserOrganization),
		storeLinks: make(map[pairKey]*entity.UserStore),
	}
}

func (f *fakeMembershipRepo) LinkUserOrg(link *entity.UserOrganization) error {
	key := pairKey{link.UserID, link.OrgID}
	if existing, ok := f.orgLinks[key]; ok {
		existing.Role = link.Role
		existing.UpdatedAt = link.UpdatedAt
		*link = *existing
		return nil
	}
	f.orgLinks[key] = link
	return nil
}

func (f *fakeMembershipRepo) LinkUserStore(link *entity.UserStore) error {
	key := pairKey{link.UserID, link.StoreID}
	if existing, ok := f.storeLinks[key]; ok {
		existing.Role = link.Role
		existing.UpdatedAt = link.UpdatedAt
		*link = *existing
		return nil
	}
	f.storeLinks[key] = link
	return nil
}

func (f *fakeMembershipRepo) FindUserOrg(userID, orgID string) (*entity.UserOrganization, error) {
	return f.orgLinks[pairKey{userID, orgID}], nil
}

func (f *fakeMembershipRepo) FindUserStore(userID, storeID string) (*entity.UserStore, error) {
	return f.storeLinks[pairKey{userID, storeID}], nil
}

func (f *fakeMembershipRepo) AdminOrgIDs(userID string) ([]string, error) {
	var out []string
	for key, link := range f.orgLinks {
		if key.a == userID && link.Role == entity.OrgRoleAdmin {
			out = append(out, key.b)
		}
	}
	return out, nil
}

func (f *fakeMembershipRepo) OrgIDs(userID string) ([]string, error) {
	var out []string
	for key := range f.orgLinks {
		if key.a == userID {
			out = append(out, key.b)
		}
	}
	return out, nil
}

func (f *fakeMembershipRepo) CountAdminLinks(userID string, orgIDs []string) (int, error) {
	count := 0
	for _, orgID := range orgIDs {
		if link, ok := f.orgLinks[pairKey{userID, orgID}]; ok && link.Role == entity.OrgRoleAdmin {
			count++
		}
	}
	return count, nil
}

func (f *fakeMembershipRepo) HasAnyOrg(userID string, orgIDs []string) (bool, error) {
	for _, orgID := range orgIDs {
		if _, ok := f.orgLinks[pairKey{userID, orgID}]; ok {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeMembershipRepo) ListOrgLinksByOrg(orgID string) ([]*entity.UserOrganization, error) {
	var out []*entity.UserOrganization
	for key, link := range f.orgLinks {
		if key.b == orgID {
			out = append(out, link)
		}
	}
	return out, nil
}

func (f *fakeMembershipRepo) ListOrgLinksByUser(userID string) ([]*entity.UserOrganization, error) {
	var out []*entity.UserOrganization
	for key, link := range f.orgLinks {
		if key.a == userID {
			out = append(out, link)
		}
	}
	return out, nil
}

func (f *fakeMembershipRepo) ListStoreLinksByUser(userID string) ([]*entity.UserStore, error) {
	var out []*entity.UserStore
	for key, link := range f.storeLinks {
		if key.a == userID {
			out = append(out, link)
		}
	}
	return out, nil
}

func TestLinkUserToOrgs(t *testing.T) {
	repo := newFakeMembershipRepo()
	uc := NewMembershipUseCase(repo)

	out, err := uc.LinkUserToOrgs(dto.LinkUserOrgsRequest{
		UserID: "user-1",
		OrgIDs: []string{"org-1", "org-2"},
		Role:   entity.OrgRoleAdmin,
	})
	require.NoError(t, err)
	require.Len(t, out.Links, 2)
	for _, link := range out.Links {
		assert.Equal(t, entity.OrgRoleAdmin, link.Role)
	}

	admins, err := repo.AdminOrgIDs("user-1")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"org-1", "org-2"}, admins)
}

func TestLinkUserToOrgsRolDefault(t *testing.T) {
	repo := newFakeMembershipRepo()
	uc := NewMembershipUseCase(repo)

	// Sin rol explícito el vínculo queda como cashier
	out, err := uc.LinkUserToOrgs(dto.LinkUserOrgsRequest{
		UserID: "user-1",
		OrgIDs: []string{"org-1"},
	})
	require.NoError(t, err)
	require.Len(t, out.Links, 1)
	assert.Equal(t, entity.OrgRoleCashier, out.Links[0].Role)
}

func TestLinkUserToOrgsUpsert(t *testing.T) {
	repo := newFakeMembershipRepo()
	uc := NewMembershipUseCase(repo)

	_, err := uc.LinkUserToOrgs(dto.LinkUserOrgsRequest{
		UserID: "user-1",
		OrgIDs: []string{"org-1"},
		Role:   entity.OrgRoleCashier,
	})
	require.NoError(t, err)

	// Re-vincular el mismo par no duplica la arista: actualiza el rol
	_, err = uc.LinkUserToOrgs(dto.LinkUserOrgsRequest{
		UserID: "user-1",
		OrgIDs: []string{"org-1"},
		Role:   entity.OrgRoleAdmin,
	})
	require.NoError(t, err)

	links, err := uc.OrgLinksByUser("user-1")
	require.NoError(t, err)
	require.Len(t, links.Links, 1)
	assert.Equal(t, entity.OrgRoleAdmin, links.Links[0].Role)
}

func TestLinkUserToOrgsValidacion(t *testing.T) {
	uc := NewMembershipUseCase(newFakeMembershipRepo())

	// Conjunto de organizaciones vacío
	_, err := uc.LinkUserToOrgs(dto.LinkUserOrgsRequest{UserID: "user-1"})
	assert.ErrorIs(t, err, domain.ErrMissingTarget)

	// Rol fuera del vocabulario admin/cashier
	_, err = uc.LinkUserToOrgs(dto.LinkUserOrgsRequest{
		UserID: "user-1",
		OrgIDs: []string{"org-1"},
		Role:   "owner",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLinkUserToStores(t *testing.T) {
	repo := newFakeMembershipRepo()
	uc := NewMembershipUseCase(repo)

	out, err := uc.LinkUserToStores(dto.LinkUserStoresRequest{
		UserID:   "user-1",
		StoreIDs: []string{"store-1", "store-2"},
	})
	require.NoError(t, err)
	require.Len(t, out.Links, 2)
	// Las aristas de tienda siempre quedan como cashier
	for _, link := range out.Links {
		assert.Equal(t, entity.OrgRoleCashier, link.Role)
	}

	_, err = uc.LinkUserToStores(dto.LinkUserStoresRequest{UserID: "user-1"})
	assert.ErrorIs(t, err, domain.ErrMissingTarget)
}

func TestLinkUserToStoresUpsert(t *testing.T) {
	repo := newFakeMembershipRepo()
	uc := NewMembershipUseCase(repo)

	for i := 0; i < 2; i++ {
		_, err := uc.LinkUserToStores(dto.LinkUserStoresRequest{
			UserID:   "user-1",
			StoreIDs: []string{"store-1"},
		})
		require.NoError(t, err)
	}

	links, err := uc.StoreLinksByUser("user-1")
	require.NoError(t, err)
	assert.Len(t, links.Links, 1)
}
