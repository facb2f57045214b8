package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/PuntoVenta-api/internal/application/dto"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/entity"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/repository"
)

// OrganizationUseCase casos de uso para organizaciones (tenants).
// La creación y el listado global son de super-admin; el router lo exige.
type OrganizationUseCase struct {
	repo    repository.OrganizationRepository
	members repository.MembershipRepository
}

// NewOrganizationUseCase construye el caso de uso.
func NewOrganizationUseCase(repo repository.OrganizationRepository, members repository.MembershipRepository) *OrganizationUseCase {
	return &OrganizationUseCase{repo: repo, members: members}
}

// Create crea una organización nueva.
func (uc *OrganizationUseCase) Create(in dto.CreateOrganizationRequest) (*dto.OrganizationResponse, error) {
	now := time.Now()
	org := &entity.Organization{
		ID:        uuid.New().String(),
		Name:      in.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(org); err != nil {
		return nil, err
	}
	return toOrganizationResponse(org), nil
}

// GetByID obtiene una organización por ID.
func (uc *OrganizationUseCase) GetByID(id string) (*dto.OrganizationResponse, error) {
	org, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, nil
	}
	return toOrganizationResponse(org), nil
}

// List lista organizaciones con paginación.
func (uc *OrganizationUseCase) List(limit, offset int) (*dto.OrganizationListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := &dto.OrganizationListResponse{Organizations: make([]dto.OrganizationResponse, 0, len(list))}
	for _, org := range list {
		out.Organizations = append(out.Organizations, *toOrganizationResponse(org))
	}
	return out, nil
}

// ListMine devuelve las organizaciones donde el usuario tiene alguna arista;
// si adminOnly, solo las que administra.
func (uc *OrganizationUseCase) ListMine(userID string, adminOnly bool) (*dto.OrganizationListResponse, error) {
	var (
		orgIDs []string
		err    error
	)
	if adminOnly {
		orgIDs, err = uc.members.AdminOrgIDs(userID)
	} else {
		orgIDs, err = uc.members.OrgIDs(userID)
	}
	if err != nil {
		return nil, err
	}
	out := &dto.OrganizationListResponse{Organizations: []dto.OrganizationResponse{}}
	if len(orgIDs) == 0 {
		return out, nil
	}
	orgs, err := uc.repo.ListByIDs(orgIDs)
	if err != nil {
		return nil, err
	}
	for _, org := range orgs {
		out.Organizations = append(out.Organizations, *toOrganizationResponse(org))
	}
	return out, nil
}

func toOrganizationResponse(org *entity.Organization) *dto.OrganizationResponse {
	return &dto.OrganizationResponse{
		ID:        org.ID,
		Name:      org.Name,
		CreatedAt: org.CreatedAt,
		UpdatedAt: org.UpdatedAt,
	}
}
