package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/stock-allocation-api/internal/domain/entity"
)

// StoreNet cantidad neta de un producto en una bodega.
type StoreNet struct {
	StoreID int64
	Net     decimal.Decimal
}

// ProductNet cantidad neta por producto dentro de una bodega.
type ProductNet struct {
	ProductID string
	Net       decimal.Decimal
}

// StoreProductNet cantidad neta por (bodega, producto) para el reporte global.
type StoreProductNet struct {
	StoreID   int64
	ProductID string
	Net       decimal.Decimal
}

// MovementRepository define el puerto de persistencia para el ledger de movimientos.
// El ledger es append-only: los movimientos nunca se actualizan ni se borran.
// Los netos se recalculan sumando entradas menos salidas; todos los listados
// salen ordenados por id ascendente (bodega, luego producto) para que el
// resultado sea determinista.
type MovementRepository interface {
	Create(movement *entity.StockMovement) error
	// NetByProduct neto del producto por bodega, solo bodegas con movimientos,
	// orden ascendente de store id.
	NetByProduct(productID string) ([]StoreNet, error)
	// NetByStore neto por producto dentro de una bodega, orden ascendente de product id.
	NetByStore(storeID int64) ([]ProductNet, error)
	// NetAll neto por (bodega, producto) en todo el sistema.
	NetAll() ([]StoreProductNet, error)
	ListByProduct(productID string, limit, offset int) ([]*entity.StockMovement, error)
}
