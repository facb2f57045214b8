package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/PuntoVenta-api/internal/application/dto"
	"github.com/jhoicas/PuntoVenta-api/internal/application/usecase"
	"github.com/jhoicas/PuntoVenta-api/internal/domain"
)

// OrganizationHandler maneja organizaciones y sus vinculaciones (protegido).
type OrganizationHandler struct {
	uc      *usecase.OrganizationUseCase
	members *usecase.MembershipUseCase
}

// NewOrganizationHandler construye el handler.
func NewOrganizationHandler(uc *usecase.OrganizationUseCase, members *usecase.MembershipUseCase) *OrganizationHandler {
	return &OrganizationHandler{uc: uc, members: members}
}

// Create godoc
// @Summary      Crear organización (solo super-admin)
// @Tags         organizations
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOrganizationRequest  true  "Datos de la organización"
// @Success      201   {object}  dto.OrganizationResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/organizations [post]
func (h *OrganizationHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrganizationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar todas las organizaciones (solo super-admin)
// @Tags         organizations
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.OrganizationListResponse
// @Router       /api/organizations [get]
func (h *OrganizationHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener organización por ID (cualquier miembro)
// @Tags         organizations
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la organización"
// @Success      200  {object}  dto.OrganizationResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/organizations/{id} [get]
func (h *OrganizationHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "organización no encontrada"})
	}
	return c.JSON(out)
}

// ListMine godoc
// @Summary      Listar mis organizaciones
// @Tags         organizations
// @Security     Bearer
// @Produce      json
// @Param        admin_only  query  bool  false  "Solo las que administro"
// @Success      200  {object}  dto.OrganizationListResponse
// @Router       /api/my-orgs [get]
func (h *OrganizationHandler) ListMine(c *fiber.Ctx) error {
	adminOnly := c.QueryBool("admin_only", false)
	out, err := h.uc.ListMine(GetUserID(c), adminOnly)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// LinkUser godoc
// @Summary      Vincular usuario a organizaciones (admin de todas ellas)
// @Tags         organizations
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LinkUserOrgsRequest  true  "Usuario, organizaciones y rol"
// @Success      200   {object}  dto.OrgLinkListResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/organizations/link [post]
func (h *OrganizationHandler) LinkUser(c *fiber.Ctx) error {
	var in dto.LinkUserOrgsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.members.LinkUserToOrgs(in)
	if err != nil {
		if errors.Is(err, domain.ErrMissingTarget) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_TARGET", Message: "org_ids no puede estar vacío"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos de vinculación inválidos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// LinksByUser godoc
// @Summary      Listar vinculaciones de organización de un usuario
// @Tags         organizations
// @Security     Bearer
// @Produce      json
// @Param        userId  path  string  true  "ID del usuario objetivo"
// @Success      200  {object}  dto.OrgLinkListResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/organizations/by-user/{userId} [get]
func (h *OrganizationHandler) LinksByUser(c *fiber.Ctx) error {
	out, err := h.members.OrgLinksByUser(c.Params("userId"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// pageParams lee limit/offset del query string con los topes del API.
func pageParams(c *fiber.Ctx) (int, int) {
	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
