package dto

import "time"

// RegisterRequest entrada para registro (auth). Role es opcional; por defecto cashier.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Role     string `json:"role" validate:"omitempty,oneof=admin cashier"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con token JWT firmado (7 días) y el usuario.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UserResponse salida de un usuario (sin password hash).
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone,omitempty"`
	AvatarURL string    `json:"avatar_url,omitempty"`
	Role      string    `json:"role"`
	RoleID    *string   `json:"role_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateUserRequest entrada para alta de usuario por un admin.
type CreateUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Role     string `json:"role" validate:"omitempty,oneof=admin cashier"`
	RoleID   string `json:"role_id" validate:"omitempty,uuid"`
}

// UpdateUserRequest entrada para actualizar un usuario objetivo. Los campos de
// vinculación (OrgID/StoreIDs) son opcionales y pasan por sus propios chequeos
// de autorización antes de aplicarse.
type UpdateUserRequest struct {
	Name      *string  `json:"name" validate:"omitempty,min=1,max=200"`
	Phone     *string  `json:"phone"`
	AvatarURL *string  `json:"avatar_url" validate:"omitempty,url"`
	Role      *string  `json:"role" validate:"omitempty,oneof=admin cashier"`
	RoleID    *string  `json:"role_id" validate:"omitempty,uuid"`
	OrgID     string   `json:"org_id" validate:"omitempty,uuid"`
	StoreIDs  []string `json:"store_ids" validate:"omitempty,dive,uuid"`
}

// UpdateProfileRequest entrada para que el usuario autenticado edite su perfil.
type UpdateProfileRequest struct {
	Name      *string `json:"name" validate:"omitempty,min=1,max=200"`
	Phone     *string `json:"phone"`
	AvatarURL *string `json:"avatar_url" validate:"omitempty,url"`
}

// UserListResponse listado de usuarios.
type UserListResponse struct {
	Users []UserResponse `json:"users"`
}
