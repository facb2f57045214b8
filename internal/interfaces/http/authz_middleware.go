package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/PuntoVenta-api/internal/application/authz"
	"github.com/jhoicas/PuntoVenta-api/internal/application/dto"
	"github.com/jhoicas/PuntoVenta-api/internal/domain"
)

// AuthzMiddleware expone los predicados del motor de autorización como
// middlewares de Fiber. Corre siempre después de AuthMiddleware: el actor se
// arma desde las claims del token.
type AuthzMiddleware struct {
	engine *authz.Engine
}

// NewAuthzMiddleware construye los guards sobre el motor.
func NewAuthzMiddleware(engine *authz.Engine) *AuthzMiddleware {
	return &AuthzMiddleware{engine: engine}
}

// authzError traduce un veredicto del motor a la respuesta HTTP.
func authzError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "autenticación requerida"})
	case errors.Is(err, domain.ErrMissingTarget):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_TARGET", Message: "la petición no referencia ninguna organización"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "sin permiso sobre la organización implicada"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

// SuperAdmin exige el tier global. Nunca consulta el grafo de membresías.
func (m *AuthzMiddleware) SuperAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := m.engine.RequireSuperAdmin(ActorFromCtx(c)); err != nil {
			return authzError(c, err)
		}
		return c.Next()
	}
}

// OrgAdminFromParam autoriza admin de la organización tomada del path param.
func (m *AuthzMiddleware) OrgAdminFromParam(param string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := m.engine.AuthorizeOrgAdmin(ActorFromCtx(c), c.Params(param)); err != nil {
			return authzError(c, err)
		}
		return c.Next()
	}
}

// OrgAdminFromBody autoriza admin de la organización referida en el body (org_id).
func (m *AuthzMiddleware) OrgAdminFromBody() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in struct {
			OrgID string `json:"org_id"`
		}
		_ = c.BodyParser(&in)
		if err := m.engine.AuthorizeOrgAdmin(ActorFromCtx(c), in.OrgID); err != nil {
			return authzError(c, err)
		}
		return c.Next()
	}
}

// OrgAdminAllFromBody autoriza admin de TODAS las organizaciones del body
// (org_ids). Todo-o-nada: una sola fuera del alcance del actor niega el lote.
func (m *AuthzMiddleware) OrgAdminAllFromBody() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in struct {
			OrgIDs []string `json:"org_ids"`
		}
		_ = c.BodyParser(&in)
		if err := m.engine.AuthorizeOrgAdminAll(ActorFromCtx(c), in.OrgIDs); err != nil {
			return authzError(c, err)
		}
		return c.Next()
	}
}

// StoreAdminFromBody resuelve las tiendas del body (store_ids) a sus
// organizaciones dueñas y exige admin de todas.
func (m *AuthzMiddleware) StoreAdminFromBody() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in struct {
			StoreIDs []string `json:"store_ids"`
		}
		_ = c.BodyParser(&in)
		if err := m.engine.AuthorizeStoreAdmin(ActorFromCtx(c), in.StoreIDs); err != nil {
			return authzError(c, err)
		}
		return c.Next()
	}
}

// ProductMutation autoriza una mutación de producto: la organización dueña de
// la entidad manda; el org_id del body solo aplica al crear.
func (m *AuthzMiddleware) ProductMutation() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in struct {
			OrgID string `json:"org_id"`
		}
		_ = c.BodyParser(&in)
		if err := m.engine.AuthorizeProductMutation(ActorFromCtx(c), c.Params("id"), in.OrgID); err != nil {
			return authzError(c, err)
		}
		return c.Next()
	}
}

// StoreMutation autoriza una mutación de tienda con la misma resolución que
// ProductMutation.
func (m *AuthzMiddleware) StoreMutation() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in struct {
			OrgID string `json:"org_id"`
		}
		_ = c.BodyParser(&in)
		if err := m.engine.AuthorizeStoreMutation(ActorFromCtx(c), c.Params("id"), in.OrgID); err != nil {
			return authzError(c, err)
		}
		return c.Next()
	}
}

// OrgMemberFromParam autoriza lectura a cualquier miembro de la organización.
func (m *AuthzMiddleware) OrgMemberFromParam(param string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := m.engine.AuthorizeOrgMember(ActorFromCtx(c), c.Params(param)); err != nil {
			return authzError(c, err)
		}
		return c.Next()
	}
}

// StoreMemberFromParam autoriza acceso a una tienda: admin de la organización
// dueña o arista directa usuario↔tienda.
func (m *AuthzMiddleware) StoreMemberFromParam(param string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := m.engine.AuthorizeStoreMember(ActorFromCtx(c), c.Params(param)); err != nil {
			return authzError(c, err)
		}
		return c.Next()
	}
}

// StoreMemberFromBody igual que StoreMemberFromParam pero leyendo store_id del
// body (registrar venta).
func (m *AuthzMiddleware) StoreMemberFromBody() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in struct {
			StoreID string `json:"store_id"`
		}
		_ = c.BodyParser(&in)
		if err := m.engine.AuthorizeStoreMember(ActorFromCtx(c), in.StoreID); err != nil {
			return authzError(c, err)
		}
		return c.Next()
	}
}

// TargetUserFromParam autoriza operar sobre otro usuario: el actor debe
// administrar alguna organización a la que el usuario objetivo pertenezca.
func (m *AuthzMiddleware) TargetUserFromParam(param string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := m.engine.AuthorizeTargetUser(ActorFromCtx(c), c.Params(param)); err != nil {
			return authzError(c, err)
		}
		return c.Next()
	}
}
