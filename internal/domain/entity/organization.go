package entity

import "time"

// Organization representa el tenant: raíz de todo el scoping de autorización.
type Organization struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
