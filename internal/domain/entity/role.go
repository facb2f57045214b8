package entity

import "time"

// Claves de rol reservadas. RoleKeySuperAdmin es un rol de sistema que se crea
// una sola vez vía bootstrap; su key es inmutable.
const (
	RoleKeySuperAdmin = "super-admin"
	RoleKeyAdmin      = "admin"
)

// Role representa un paquete de permisos con nombre (key única e inmutable).
// Los roles con IsSystem=true no se pueden eliminar.
type Role struct {
	ID          string
	Key         string // slug único global: [a-z0-9-]
	Name        string
	Description string
	Permissions []string
	IsSystem    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
