package entity

import "time"

// Roles gruesos válidos para User. "admin" es el super-admin global:
// el tier se fija en el token al hacer login y salta todos los chequeos por organización.
const (
	RoleAdmin   = "admin"
	RoleCashier = "cashier"
)

// User representa un usuario del sistema. La pertenencia a organizaciones y
// tiendas se modela aparte con UserOrganization y UserStore.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Phone        string
	AvatarURL    string
	Role         string  // admin, cashier
	RoleID       *string // referencia opcional a un Role de permisos finos
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
