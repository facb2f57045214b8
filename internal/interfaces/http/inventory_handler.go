package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/PuntoVenta-api/internal/application/dto"
	"github.com/jhoicas/PuntoVenta-api/internal/application/inventory"
	"github.com/jhoicas/PuntoVenta-api/internal/domain"
)

// InventoryHandler maneja el contador de stock por (org, tienda, producto).
type InventoryHandler struct {
	uc *inventory.StockUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.StockUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// SetStock godoc
// @Summary      Fijar stock de un producto en una tienda (rol admin)
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        orgId      path  string  true  "ID de la organización"
// @Param        storeId    path  string  true  "ID de la tienda"
// @Param        productId  path  string  true  "ID del producto"
// @Param        body       body  dto.SetStockRequest  true  "Cantidad"
// @Success      200  {object}  dto.StockResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventory/{orgId}/{storeId}/{productId} [put]
func (h *InventoryHandler) SetStock(c *fiber.Ctx) error {
	var in dto.SetStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.SetStock(c.Params("orgId"), c.Params("storeId"), c.Params("productId"), in.Qty)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "qty debe ser >= 0"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetStock godoc
// @Summary      Consultar stock de un producto en una tienda
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        orgId      path  string  true  "ID de la organización"
// @Param        storeId    path  string  true  "ID de la tienda"
// @Param        productId  path  string  true  "ID del producto"
// @Success      200  {object}  dto.StockResponse
// @Router       /api/inventory/{orgId}/{storeId}/{productId} [get]
func (h *InventoryHandler) GetStock(c *fiber.Ctx) error {
	out, err := h.uc.GetStock(c.Params("orgId"), c.Params("storeId"), c.Params("productId"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parámetros incompletos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
