package usecase

import (
	"regexp"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/PuntoVenta-api/internal/application/dto"
	"github.com/jhoicas/PuntoVenta-api/internal/domain"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/entity"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/repository"
)

var roleKeyPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

// RoleUseCase casos de uso CRUD para roles de permisos. La key es un slug
// único global e inmutable; los roles de sistema no se eliminan.
type RoleUseCase struct {
	repo repository.RoleRepository
}

// NewRoleUseCase construye el caso de uso.
func NewRoleUseCase(repo repository.RoleRepository) *RoleUseCase {
	return &RoleUseCase{repo: repo}
}

// Create crea un rol. Devuelve ErrDuplicate si la key ya existe.
func (uc *RoleUseCase) Create(in dto.CreateRoleRequest) (*dto.RoleResponse, error) {
	if !roleKeyPattern.MatchString(in.Key) {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetByKey(in.Key)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	role := &entity.Role{
		ID:          uuid.New().String(),
		Key:         in.Key,
		Name:        in.Name,
		Description: in.Description,
		Permissions: in.Permissions,
		IsSystem:    in.IsSystem,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(role); err != nil {
		return nil, err
	}
	return toRoleResponse(role), nil
}

// EnsureSuperAdmin crea el rol de sistema super-admin (permissions ["*"]).
// Idempotente: si el rol ya existe lo devuelve tal cual.
func (uc *RoleUseCase) EnsureSuperAdmin(name, description string) (*dto.RoleResponse, error) {
	existing, err := uc.repo.GetByKey(entity.RoleKeySuperAdmin)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return toRoleResponse(existing), nil
	}
	if name == "" {
		name = "Super Admin"
	}
	return uc.Create(dto.CreateRoleRequest{
		Key:         entity.RoleKeySuperAdmin,
		Name:        name,
		Description: description,
		Permissions: []string{"*"},
		IsSystem:    true,
	})
}

// Update actualiza nombre, descripción y permisos. La key no cambia.
func (uc *RoleUseCase) Update(id string, in dto.UpdateRoleRequest) (*dto.RoleResponse, error) {
	role, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, nil
	}
	if in.Name != nil {
		role.Name = *in.Name
	}
	if in.Description != nil {
		role.Description = *in.Description
	}
	if in.Permissions != nil {
		role.Permissions = in.Permissions
	}
	role.UpdatedAt = time.Now()
	if err := uc.repo.Update(role); err != nil {
		return nil, err
	}
	return toRoleResponse(role), nil
}

// List lista todos los roles.
func (uc *RoleUseCase) List() (*dto.RoleListResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := &dto.RoleListResponse{Roles: make([]dto.RoleResponse, 0, len(list))}
	for _, role := range list {
		out.Roles = append(out.Roles, *toRoleResponse(role))
	}
	return out, nil
}

// Delete elimina un rol. Los roles de sistema devuelven ErrSystemRole sin
// importar el tier del caller.
func (uc *RoleUseCase) Delete(id string) error {
	role, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if role == nil {
		return domain.ErrNotFound
	}
	if role.IsSystem {
		return domain.ErrSystemRole
	}
	return uc.repo.Delete(id)
}

func toRoleResponse(role *entity.Role) *dto.RoleResponse {
	return &dto.RoleResponse{
		ID:          role.ID,
		Key:         role.Key,
		Name:        role.Name,
		Description: role.Description,
		Permissions: role.Permissions,
		IsSystem:    role.IsSystem,
		CreatedAt:   role.CreatedAt,
		UpdatedAt:   role.UpdatedAt,
	}
}
