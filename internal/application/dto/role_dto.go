package dto

import "time"

// CreateRoleRequest entrada para crear un rol de permisos.
type CreateRoleRequest struct {
	Key         string   `json:"key" validate:"required,min=2,max=50"`
	Name        string   `json:"name" validate:"required,min=2,max=200"`
	Description string   `json:"description" validate:"omitempty,max=500"`
	Permissions []string `json:"permissions"`
	IsSystem    bool     `json:"is_system"`
}

// UpdateRoleRequest entrada parcial para actualizar un rol. La key es inmutable.
type UpdateRoleRequest struct {
	Name        *string  `json:"name" validate:"omitempty,min=2,max=200"`
	Description *string  `json:"description" validate:"omitempty,max=500"`
	Permissions []string `json:"permissions"`
}

// RoleResponse salida de un rol.
type RoleResponse struct {
	ID          string    `json:"id"`
	Key         string    `json:"key"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Permissions []string  `json:"permissions"`
	IsSystem    bool      `json:"is_system"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// RoleListResponse listado de roles.
type RoleListResponse struct {
	Roles []RoleResponse `json:"roles"`
}
