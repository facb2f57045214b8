package dto

import "time"

// CreateOrganizationRequest entrada para crear una organización (solo super-admin).
type CreateOrganizationRequest struct {
	Name string `json:"name" validate:"required,min=1,max=200"`
}

// OrganizationResponse salida de una organización.
type OrganizationResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// OrganizationListResponse listado de organizaciones.
type OrganizationListResponse struct {
	Organizations []OrganizationResponse `json:"organizations"`
}

// LinkUserOrgsRequest vincula un usuario a una o más organizaciones con un rol.
type LinkUserOrgsRequest struct {
	UserID string   `json:"user_id" validate:"required,uuid"`
	OrgIDs []string `json:"org_ids" validate:"required,min=1,dive,uuid"`
	Role   string   `json:"role" validate:"omitempty,oneof=admin cashier"`
}

// OrgLinkResponse salida de una arista usuario↔organización.
type OrgLinkResponse struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"`
	OrgID  string `json:"org_id"`
	Role   string `json:"role"`
}

// OrgLinkListResponse listado de aristas de organización.
type OrgLinkListResponse struct {
	Links []OrgLinkResponse `json:"links"`
}
