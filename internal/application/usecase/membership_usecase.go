package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/PuntoVenta-api/internal/application/dto"
	"github.com/jhoicas/PuntoVenta-api/internal/domain"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/entity"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/repository"
)

// MembershipUseCase mantiene el grafo de membresías: vincular usuarios a
// organizaciones y tiendas. Los Link son upserts idempotentes: re-vincular el
// mismo par actualiza el rol en vez de duplicar la arista.
type MembershipUseCase struct {
	repo repository.MembershipRepository
}

// NewMembershipUseCase construye el caso de uso.
func NewMembershipUseCase(repo repository.MembershipRepository) *MembershipUseCase {
	return &MembershipUseCase{repo: repo}
}

// LinkUserToOrgs vincula un usuario a cada organización del conjunto con el
// rol dado (default cashier). Last-write-wins sobre el rol de aristas existentes.
func (uc *MembershipUseCase) LinkUserToOrgs(in dto.LinkUserOrgsRequest) (*dto.OrgLinkListResponse, error) {
	role := in.Role
	if role == "" {
		role = entity.OrgRoleCashier
	}
	if role != entity.OrgRoleAdmin && role != entity.OrgRoleCashier {
		return nil, domain.ErrInvalidInput
	}
	if len(in.OrgIDs) == 0 {
		return nil, domain.ErrMissingTarget
	}
	now := time.Now()
	out := &dto.OrgLinkListResponse{Links: make([]dto.OrgLinkResponse, 0, len(in.OrgIDs))}
	for _, orgID := range in.OrgIDs {
		link := &entity.UserOrganization{
			ID:        uuid.New().String(),
			UserID:    in.UserID,
			OrgID:     orgID,
			Role:      role,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := uc.repo.LinkUserOrg(link); err != nil {
			return nil, err
		}
		out.Links = append(out.Links, dto.OrgLinkResponse{
			ID:     link.ID,
			UserID: link.UserID,
			OrgID:  link.OrgID,
			Role:   link.Role,
		})
	}
	return out, nil
}

// LinkUserToStores vincula un usuario como cajero a cada tienda del conjunto.
func (uc *MembershipUseCase) LinkUserToStores(in dto.LinkUserStoresRequest) (*dto.StoreLinkListResponse, error) {
	if len(in.StoreIDs) == 0 {
		return nil, domain.ErrMissingTarget
	}
	now := time.Now()
	out := &dto.StoreLinkListResponse{Links: make([]dto.StoreLinkResponse, 0, len(in.StoreIDs))}
	for _, storeID := range in.StoreIDs {
		link := &entity.UserStore{
			ID:        uuid.New().String(),
			UserID:    in.UserID,
			StoreID:   storeID,
			Role:      entity.OrgRoleCashier,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := uc.repo.LinkUserStore(link); err != nil {
			return nil, err
		}
		out.Links = append(out.Links, dto.StoreLinkResponse{
			ID:      link.ID,
			UserID:  link.UserID,
			StoreID: link.StoreID,
			Role:    link.Role,
		})
	}
	return out, nil
}

// OrgLinksByUser devuelve las aristas de organización de un usuario.
func (uc *MembershipUseCase) OrgLinksByUser(userID string) (*dto.OrgLinkListResponse, error) {
	links, err := uc.repo.ListOrgLinksByUser(userID)
	if err != nil {
		return nil, err
	}
	out := &dto.OrgLinkListResponse{Links: make([]dto.OrgLinkResponse, 0, len(links))}
	for _, link := range links {
		out.Links = append(out.Links, dto.OrgLinkResponse{
			ID:     link.ID,
			UserID: link.UserID,
			OrgID:  link.OrgID,
			Role:   link.Role,
		})
	}
	return out, nil
}

// StoreLinksByUser devuelve las aristas de tienda de un usuario.
func (uc *MembershipUseCase) StoreLinksByUser(userID string) (*dto.StoreLinkListResponse, error) {
	links, err := uc.repo.ListStoreLinksByUser(userID)
	if err != nil {
		return nil, err
	}
	out := &dto.StoreLinkListResponse{Links: make([]dto.StoreLinkResponse, 0, len(links))}
	for _, link := range links {
		out.Links = append(out.Links, dto.StoreLinkResponse{
			ID:      link.ID,
			UserID:  link.UserID,
			StoreID: link.StoreID,
			Role:    link.Role,
		})
	}
	return out, nil
}
