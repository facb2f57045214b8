package dto

import "time"

// CreateStoreRequest entrada para crear una tienda dentro de una organización.
type CreateStoreRequest struct {
	OrgID   string   `json:"org_id" validate:"required,uuid"`
	Name    string   `json:"name" validate:"required,min=1,max=200"`
	Code    string   `json:"code" validate:"omitempty,max=50"`
	Address string   `json:"address" validate:"omitempty,max=300"`
	Lat     *float64 `json:"lat" validate:"omitempty,latitude"`
	Lng     *float64 `json:"lng" validate:"omitempty,longitude"`
}

// UpdateStoreRequest entrada parcial para actualizar una tienda.
// No incluye OrgID: la organización dueña no se reasigna.
type UpdateStoreRequest struct {
	Name    *string  `json:"name" validate:"omitempty,min=1,max=200"`
	Code    *string  `json:"code" validate:"omitempty,max=50"`
	Address *string  `json:"address" validate:"omitempty,max=300"`
	Lat     *float64 `json:"lat" validate:"omitempty,latitude"`
	Lng     *float64 `json:"lng" validate:"omitempty,longitude"`
}

// StoreResponse salida de una tienda.
type StoreResponse struct {
	ID        string    `json:"id"`
	OrgID     string    `json:"org_id"`
	Name      string    `json:"name"`
	Code      string    `json:"code,omitempty"`
	Address   string    `json:"address,omitempty"`
	Lat       *float64  `json:"lat,omitempty"`
	Lng       *float64  `json:"lng,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// StoreListResponse listado de tiendas.
type StoreListResponse struct {
	Stores []StoreResponse `json:"stores"`
}

// LinkUserStoresRequest vincula un usuario como cajero a una o más tiendas.
type LinkUserStoresRequest struct {
	UserID   string   `json:"user_id" validate:"required,uuid"`
	StoreIDs []string `json:"store_ids" validate:"required,min=1,dive,uuid"`
}

// StoreLinkResponse salida de una arista usuario↔tienda.
type StoreLinkResponse struct {
	ID      string `json:"id"`
	UserID  string `json:"user_id"`
	StoreID string `json:"store_id"`
	Role    string `json:"role"`
}

// StoreLinkListResponse listado de aristas de tienda.
type StoreLinkListResponse struct {
	Links []StoreLinkResponse `json:"links"`
}
