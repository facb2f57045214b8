package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/PuntoVenta-api/internal/application/dto"
	"github.com/jhoicas/PuntoVenta-api/internal/domain"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/entity"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/repository"
)

// StoreUseCase casos de uso CRUD para tiendas.
type StoreUseCase struct {
	repo     repository.StoreRepository
	orgRepo  repository.OrganizationRepository
}

// NewStoreUseCase construye el caso de uso.
func NewStoreUseCase(repo repository.StoreRepository, orgRepo repository.OrganizationRepository) *StoreUseCase {
	return &StoreUseCase{repo: repo, orgRepo: orgRepo}
}

// Create crea una tienda dentro de una organización existente.
func (uc *StoreUseCase) Create(in dto.CreateStoreRequest) (*dto.StoreResponse, error) {
	org, err := uc.orgRepo.GetByID(in.OrgID)
	if err != nil {
		return nil, err
	}
	if org == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	store := &entity.Store{
		ID:        uuid.New().String(),
		OrgID:     in.OrgID,
		Name:      in.Name,
		Code:      in.Code,
		Address:   in.Address,
		Lat:       in.Lat,
		Lng:       in.Lng,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(store); err != nil {
		return nil, err
	}
	return toStoreResponse(store), nil
}

// GetByID obtiene una tienda por ID.
func (uc *StoreUseCase) GetByID(id string) (*dto.StoreResponse, error) {
	store, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, nil
	}
	return toStoreResponse(store), nil
}

// Update actualiza los campos editables de una tienda. OrgID no se reasigna.
func (uc *StoreUseCase) Update(id string, in dto.UpdateStoreRequest) (*dto.StoreResponse, error) {
	store, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, nil
	}
	if in.Name != nil {
		store.Name = *in.Name
	}
	if in.Code != nil {
		store.Code = *in.Code
	}
	if in.Address != nil {
		store.Address = *in.Address
	}
	if in.Lat != nil {
		store.Lat = in.Lat
	}
	if in.Lng != nil {
		store.Lng = in.Lng
	}
	store.UpdatedAt = time.Now()
	if err := uc.repo.Update(store); err != nil {
		return nil, err
	}
	return toStoreResponse(store), nil
}

// ListByOrg lista las tiendas de una organización con paginación.
func (uc *StoreUseCase) ListByOrg(orgID string, limit, offset int) (*dto.StoreListResponse, error) {
	list, err := uc.repo.ListByOrg(orgID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := &dto.StoreListResponse{Stores: make([]dto.StoreResponse, 0, len(list))}
	for _, store := range list {
		out.Stores = append(out.Stores, *toStoreResponse(store))
	}
	return out, nil
}

func toStoreResponse(store *entity.Store) *dto.StoreResponse {
	return &dto.StoreResponse{
		ID:        store.ID,
		OrgID:     store.OrgID,
		Name:      store.Name,
		Code:      store.Code,
		Address:   store.Address,
		Lat:       store.Lat,
		Lng:       store.Lng,
		CreatedAt: store.CreatedAt,
		UpdatedAt: store.UpdatedAt,
	}
}
