package usecase

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/PuntoVenta-api/internal/application/auth"
	"github.com/jhoicas/PuntoVenta-api/internal/application/authz"
	"github.com/jhoicas/PuntoVenta-api/internal/application/dto"
	"github.com/jhoicas/PuntoVenta-api/internal/domain"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/entity"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/repository"
)

// UserUseCase casos de uso de gestión de usuarios y perfil. La visibilidad
// depende del tier del actor: super-admin ve todo, org-admin solo los usuarios
// de sus organizaciones administradas.
type UserUseCase struct {
	userRepo repository.UserRepository
	members  repository.MembershipRepository
	engine   *authz.Engine
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(userRepo repository.UserRepository, members repository.MembershipRepository, engine *authz.Engine) *UserUseCase {
	return &UserUseCase{userRepo: userRepo, members: members, engine: engine}
}

// Create da de alta un usuario por un administrador. Devuelve
// ErrEmailAlreadyExists si el email ya existe.
func (uc *UserUseCase) Create(in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if len(in.Password) < auth.MinPasswordLen {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	role := in.Role
	if role == "" {
		role = entity.RoleCashier
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: string(hash),
		Name:         in.Name,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if in.RoleID != "" {
		user.RoleID = &in.RoleID
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}

// List devuelve los usuarios visibles para el actor. Super-admin: todos.
// Org-admin: los usuarios con alguna arista en sus organizaciones administradas.
func (uc *UserUseCase) List(actor authz.Actor, limit, offset int) (*dto.UserListResponse, error) {
	if actor.IsSuperAdmin() {
		users, err := uc.userRepo.List(limit, offset)
		if err != nil {
			return nil, err
		}
		return toUserListResponse(users), nil
	}
	adminOrgs, err := uc.members.AdminOrgIDs(actor.UserID)
	if err != nil {
		return nil, err
	}
	if len(adminOrgs) == 0 {
		return &dto.UserListResponse{Users: []dto.UserResponse{}}, nil
	}
	seen := map[string]bool{}
	var userIDs []string
	for _, orgID := range adminOrgs {
		links, err := uc.members.ListOrgLinksByOrg(orgID)
		if err != nil {
			return nil, err
		}
		for _, link := range links {
			if !seen[link.UserID] {
				seen[link.UserID] = true
				userIDs = append(userIDs, link.UserID)
			}
		}
	}
	users, err := uc.userRepo.ListByIDs(userIDs)
	if err != nil {
		return nil, err
	}
	return toUserListResponse(users), nil
}

// ListByOrg devuelve los usuarios con arista en la organización dada.
func (uc *UserUseCase) ListByOrg(orgID string) (*dto.UserListResponse, error) {
	links, err := uc.members.ListOrgLinksByOrg(orgID)
	if err != nil {
		return nil, err
	}
	userIDs := make([]string, 0, len(links))
	for _, link := range links {
		userIDs = append(userIDs, link.UserID)
	}
	users, err := uc.userRepo.ListByIDs(userIDs)
	if err != nil {
		return nil, err
	}
	return toUserListResponse(users), nil
}

// Update actualiza un usuario objetivo y, opcionalmente, lo vincula a una
// organización o a tiendas. Cada vinculación opcional pasa por su propio
// chequeo de autorización contra el actor (mismos predicados que /link).
func (uc *UserUseCase) Update(actor authz.Actor, targetID string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(targetID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Phone != nil {
		user.Phone = *in.Phone
	}
	if in.AvatarURL != nil {
		user.AvatarURL = *in.AvatarURL
	}
	if in.Role != nil {
		user.Role = *in.Role
	}
	if in.RoleID != nil {
		user.RoleID = in.RoleID
	}
	user.UpdatedAt = time.Now()
	if err := uc.userRepo.Update(user); err != nil {
		return nil, err
	}

	if in.OrgID != "" {
		if err := uc.engine.AuthorizeOrgAdmin(actor, in.OrgID); err != nil {
			return nil, err
		}
		link := &entity.UserOrganization{
			UserID:    targetID,
			OrgID:     in.OrgID,
			Role:      user.Role,
			CreatedAt: user.UpdatedAt,
			UpdatedAt: user.UpdatedAt,
		}
		if err := uc.members.LinkUserOrg(link); err != nil {
			return nil, err
		}
	}
	if len(in.StoreIDs) > 0 {
		if err := uc.engine.AuthorizeStoreAdmin(actor, in.StoreIDs); err != nil {
			return nil, err
		}
		for _, storeID := range in.StoreIDs {
			link := &entity.UserStore{
				UserID:    targetID,
				StoreID:   storeID,
				Role:      entity.OrgRoleCashier,
				CreatedAt: user.UpdatedAt,
				UpdatedAt: user.UpdatedAt,
			}
			if err := uc.members.LinkUserStore(link); err != nil {
				return nil, err
			}
		}
	}
	return auth.ToUserResponse(user), nil
}

// Me devuelve el perfil del usuario autenticado.
func (uc *UserUseCase) Me(userID string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return auth.ToUserResponse(user), nil
}

// UpdateMe actualiza el perfil del usuario autenticado (nunca el rol).
func (uc *UserUseCase) UpdateMe(userID string, in dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Phone != nil {
		user.Phone = *in.Phone
	}
	if in.AvatarURL != nil {
		user.AvatarURL = *in.AvatarURL
	}
	user.UpdatedAt = time.Now()
	if err := uc.userRepo.Update(user); err != nil {
		return nil, err
	}
	return auth.ToUserResponse(user), nil
}

func toUserListResponse(users []*entity.User) *dto.UserListResponse {
	out := &dto.UserListResponse{Users: make([]dto.UserResponse, 0, len(users))}
	for _, u := range users {
		out.Users = append(out.Users, *auth.ToUserResponse(u))
	}
	return out
}
