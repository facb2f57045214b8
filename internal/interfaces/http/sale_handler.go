package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/PuntoVenta-api/internal/application/authz"
	"github.com/jhoicas/PuntoVenta-api/internal/application/dto"
	"github.com/jhoicas/PuntoVenta-api/internal/application/sales"
	"github.com/jhoicas/PuntoVenta-api/internal/domain"
)

// SaleHandler maneja ventas y comprobantes (protegido). La lectura de una
// venta se autoriza contra la organización dueña de la venta ya registrada,
// por eso el chequeo corre aquí y no en un middleware.
type SaleHandler struct {
	uc     *sales.SaleUseCase
	engine *authz.Engine
}

// NewSaleHandler construye el handler.
func NewSaleHandler(uc *sales.SaleUseCase, engine *authz.Engine) *SaleHandler {
	return &SaleHandler{uc: uc, engine: engine}
}

// Create godoc
// @Summary      Registrar venta (miembro de la tienda)
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSaleRequest  true  "Tienda e ítems"
// @Success      201   {object}  dto.SaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/sales [post]
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.UserContext(), GetUserID(c), &in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "ítems inválidos: cantidad mínima 1"})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado en la organización"})
		case errors.Is(err, domain.ErrInsufficientStock):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente; la venta no se registró"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener venta por ID (miembro de la organización dueña)
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la venta"
// @Success      200  {object}  dto.SaleResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id} [get]
func (h *SaleHandler) GetByID(c *fiber.Ctx) error {
	sale, err := h.authorizeSale(c)
	if err != nil {
		return authzError(c, err)
	}
	out, err := h.uc.GetByID(sale.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Receipt godoc
// @Summary      Descargar comprobante PDF de una venta
// @Tags         sales
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID de la venta"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id}/receipt [get]
func (h *SaleHandler) Receipt(c *fiber.Ctx) error {
	sale, err := h.authorizeSale(c)
	if err != nil {
		return authzError(c, err)
	}
	pdfBytes, err := h.uc.Receipt(sale.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="venta-`+sale.ID+`.pdf"`)
	return c.Send(pdfBytes)
}

// ListByStore godoc
// @Summary      Listar ventas de una tienda (miembro de la tienda)
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Param        storeId  path  string  true  "ID de la tienda"
// @Success      200  {object}  dto.SaleListResponse
// @Router       /api/stores/{storeId}/sales [get]
func (h *SaleHandler) ListByStore(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.ListByStore(c.Params("storeId"), dto.PageRequest{Limit: limit, Offset: offset})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// authorizeSale carga la venta y exige membresía en su organización dueña.
// El veredicto (o el not found) se devuelve como error de dominio y el
// handler lo traduce con authzError.
func (h *SaleHandler) authorizeSale(c *fiber.Ctx) (saleRef, error) {
	sale, err := h.uc.GetEntity(c.Params("id"))
	if err != nil {
		return saleRef{}, err
	}
	if err := h.engine.AuthorizeOrgMember(ActorFromCtx(c), sale.OrgID); err != nil {
		return saleRef{}, err
	}
	return saleRef{ID: sale.ID, OrgID: sale.OrgID}, nil
}

type saleRef struct {
	ID    string
	OrgID string
}
