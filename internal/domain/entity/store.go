package entity

import "time"

// Store representa una tienda o punto de venta. Pertenece a exactamente una
// organización; OrgID nunca se reasigna después de crear la tienda.
type Store struct {
	ID        string
	OrgID     string
	Name      string
	Code      string
	Address   string
	Lat       *float64
	Lng       *float64
	CreatedAt time.Time
	UpdatedAt time.Time
}
