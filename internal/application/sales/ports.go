package sales

import (
	"context"

	"github.com/jhoicas/PuntoVenta-api/internal/domain/entity"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción del datastore, entregando
// repositorios ligados a esa transacción. Si fn devuelve error se hace
// rollback completo: ningún descuento de stock ni venta parcial queda escrita.
type TxRunner interface {
	Run(ctx context.Context, fn func(sales repository.SaleRepository, inv repository.InventoryRepository) error) error
}

// ReceiptGenerator genera el comprobante PDF de una venta registrada.
type ReceiptGenerator interface {
	Generate(sale *entity.Sale, products map[string]*entity.Product) ([]byte, error)
}
