// Package inventory implementa el libro de inventario: un contador de stock
// por (organización, tienda, producto). El descuento condicional atómico vive
// en el repositorio (una sola operación compare-and-swap en el datastore);
// este caso de uso solo expone set/get.
package inventory

import (
	"time"

	"github.com/jhoicas/PuntoVenta-api/internal/application/dto"
	"github.com/jhoicas/PuntoVenta-api/internal/domain"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/entity"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/repository"
)

// StockUseCase casos de uso del libro de inventario.
type StockUseCase struct {
	repo repository.InventoryRepository
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(repo repository.InventoryRepository) *StockUseCase {
	return &StockUseCase{repo: repo}
}

// SetStock sobrescribe la cantidad de la tripleta (upsert incondicional).
func (uc *StockUseCase) SetStock(orgID, storeID, productID string, qty int64) (*dto.StockResponse, error) {
	if orgID == "" || storeID == "" || productID == "" {
		return nil, domain.ErrInvalidInput
	}
	if qty < 0 {
		return nil, domain.ErrInvalidInput
	}
	inv := &entity.Inventory{
		OrgID:     orgID,
		StoreID:   storeID,
		ProductID: productID,
		Qty:       qty,
		UpdatedAt: time.Now(),
	}
	if err := uc.repo.Set(inv); err != nil {
		return nil, err
	}
	return toStockResponse(inv), nil
}

// GetStock devuelve la cantidad actual; una tripleta nunca escrita es 0, no error.
func (uc *StockUseCase) GetStock(orgID, storeID, productID string) (*dto.StockResponse, error) {
	if orgID == "" || storeID == "" || productID == "" {
		return nil, domain.ErrInvalidInput
	}
	inv, err := uc.repo.Get(orgID, storeID, productID)
	if err != nil {
		return nil, err
	}
	return toStockResponse(inv), nil
}

func toStockResponse(inv *entity.Inventory) *dto.StockResponse {
	return &dto.StockResponse{
		OrgID:     inv.OrgID,
		StoreID:   inv.StoreID,
		ProductID: inv.ProductID,
		Qty:       inv.Qty,
		UpdatedAt: inv.UpdatedAt,
	}
}
