// Package sales implementa el registro transaccional de ventas multi-ítem:
// captura de precio al momento de vender, descuento condicional de stock por
// línea y escritura de la venta, todo dentro de una única transacción. La
// primera línea sin stock suficiente aborta la venta completa.
package sales

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/PuntoVenta-api/internal/application/dto"
	"github.com/jhoicas/PuntoVenta-api/internal/domain"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/entity"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/repository"
)

// SaleUseCase casos de uso de ventas.
type SaleUseCase struct {
	sales    repository.SaleRepository
	products repository.ProductRepository
	tx       TxRunner
	receipts ReceiptGenerator
}

// NewSaleUseCase construye el caso de uso de ventas.
func NewSaleUseCase(sales repository.SaleRepository, products repository.ProductRepository, tx TxRunner, receipts ReceiptGenerator) *SaleUseCase {
	return &SaleUseCase{sales: sales, products: products, tx: tx, receipts: receipts}
}

// Create registra una venta. Resuelve cada producto contra el catálogo de la
// organización (un producto inexistente o de otra organización es ErrNotFound,
// nunca precio cero), arma las líneas con el precio vigente como snapshot y
// ejecuta descuentos más inserción en una sola transacción.
func (uc *SaleUseCase) Create(ctx context.Context, userID string, req *dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if req.OrgID == "" || req.StoreID == "" || len(req.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	ids := make([]string, 0, len(req.Items))
	for _, it := range req.Items {
		if it.ProductID == "" || it.Qty <= 0 {
			return nil, domain.ErrInvalidInput
		}
		ids = append(ids, it.ProductID)
	}

	found, err := uc.products.ListByIDs(ids)
	if err != nil {
		return nil, err
	}
	catalog := make(map[string]*entity.Product, len(found))
	for _, p := range found {
		catalog[p.ID] = p
	}

	items := make([]entity.SaleItem, 0, len(req.Items))
	total := decimal.Zero
	for _, it := range req.Items {
		p, ok := catalog[it.ProductID]
		if !ok || p.OrgID != req.OrgID {
			return nil, domain.ErrNotFound
		}
		lineTotal := p.Price.Mul(decimal.NewFromInt(it.Qty))
		items = append(items, entity.SaleItem{
			ProductID: p.ID,
			Qty:       it.Qty,
			Price:     p.Price,
			Total:     lineTotal,
		})
		total = total.Add(lineTotal)
	}

	sale := &entity.Sale{
		ID:        uuid.New().String(),
		OrgID:     req.OrgID,
		StoreID:   req.StoreID,
		UserID:    userID,
		Items:     items,
		Total:     total,
		Status:    entity.SaleStatusCompleted,
		CreatedAt: time.Now(),
	}

	err = uc.tx.Run(ctx, func(salesRepo repository.SaleRepository, invRepo repository.InventoryRepository) error {
		for _, it := range sale.Items {
			if err := invRepo.Decrease(sale.OrgID, sale.StoreID, it.ProductID, it.Qty); err != nil {
				return err
			}
		}
		return salesRepo.Create(sale)
	})
	if err != nil {
		return nil, err
	}
	return toSaleResponse(sale), nil
}

// GetByID devuelve una venta con sus líneas.
func (uc *SaleUseCase) GetByID(id string) (*dto.SaleResponse, error) {
	sale, err := uc.GetEntity(id)
	if err != nil {
		return nil, err
	}
	return toSaleResponse(sale), nil
}

// GetEntity devuelve la entidad (la capa HTTP la necesita para autorizar por
// la organización dueña antes de exponer la venta).
func (uc *SaleUseCase) GetEntity(id string) (*entity.Sale, error) {
	sale, err := uc.sales.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	return sale, nil
}

// ListByStore lista ventas de una tienda, más recientes primero.
func (uc *SaleUseCase) ListByStore(storeID string, page dto.PageRequest) (*dto.SaleListResponse, error) {
	found, err := uc.sales.ListByStore(storeID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SaleResponse, 0, len(found))
	for _, s := range found {
		out = append(out, *toSaleResponse(s))
	}
	return &dto.SaleListResponse{Sales: out}, nil
}

// Receipt genera el comprobante PDF de la venta.
func (uc *SaleUseCase) Receipt(id string) ([]byte, error) {
	sale, err := uc.GetEntity(id)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(sale.Items))
	for _, it := range sale.Items {
		ids = append(ids, it.ProductID)
	}
	found, err := uc.products.ListByIDs(ids)
	if err != nil {
		return nil, err
	}
	catalog := make(map[string]*entity.Product, len(found))
	for _, p := range found {
		catalog[p.ID] = p
	}
	return uc.receipts.Generate(sale, catalog)
}

func toSaleResponse(s *entity.Sale) *dto.SaleResponse {
	items := make([]dto.SaleItemResponse, 0, len(s.Items))
	for _, it := range s.Items {
		items = append(items, dto.SaleItemResponse{
			ProductID: it.ProductID,
			Qty:       it.Qty,
			Price:     it.Price,
			Total:     it.Total,
		})
	}
	return &dto.SaleResponse{
		ID:        s.ID,
		OrgID:     s.OrgID,
		StoreID:   s.StoreID,
		UserID:    s.UserID,
		Items:     items,
		Total:     s.Total,
		Status:    s.Status,
		CreatedAt: s.CreatedAt,
	}
}
