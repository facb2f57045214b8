package entity

import "time"

// Roles de membresía dentro de una organización.
const (
	OrgRoleAdmin   = "admin"
	OrgRoleCashier = "cashier"
)

// UserOrganization es la arista de membresía usuario↔organización.
// Invariante: a lo sumo una arista por par (UserID, OrgID); re-vincular
// hace upsert del rol, nunca duplica.
type UserOrganization struct {
	ID        string
	UserID    string
	OrgID     string
	Role      string // admin | cashier
	CreatedAt time.Time
	UpdatedAt time.Time
}

// UserStore es la arista de membresía usuario↔tienda. El único rol válido en
// esta relación es cashier. A lo sumo una arista por par (UserID, StoreID).
type UserStore struct {
	ID        string
	UserID    string
	StoreID   string
	Role      string // siempre cashier
	CreatedAt time.Time
	UpdatedAt time.Time
}
