package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jhoicas/stock-allocation-api/internal/domain/entity"
	"github.com/jhoicas/stock-allocation-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación del ledger de movimientos sobre PostgreSQL (usable con pool o tx).
// Solo inserta y consulta: el ledger es append-only.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create persiste un movimiento de stock.
func (r *MovementRepo) Create(movement *entity.StockMovement) error {
	if movement.ID == "" {
		movement.ID = uuid.New().String()
	}
	query := `
		INSERT INTO stock_movements (id, store_id, product_id, type, quantity, date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.StoreID, movement.ProductID, movement.Type,
		movement.Quantity, movement.Date, movement.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create stock movement: %w", err)
	}
	return nil
}

// netExpr suma entradas menos salidas.
const netExpr = `SUM(CASE WHEN type = 'entrada' THEN quantity ELSE -quantity END)`

// NetByProduct neto del producto por bodega, orden ascendente de store id.
// Una sola query agregada: la lectura es un snapshot consistente.
func (r *MovementRepo) NetByProduct(productID string) ([]repository.StoreNet, error) {
	query := `
		SELECT store_id, ` + netExpr + ` AS net
		FROM stock_movements WHERE product_id = $1
		GROUP BY store_id ORDER BY store_id`
	rows, err := r.q.Query(context.Background(), query, productID)
	if err != nil {
		return nil, fmt.Errorf("net by product: %w", err)
	}
	defer rows.Close()
	var list []repository.StoreNet
	for rows.Next() {
		var n repository.StoreNet
		if err := rows.Scan(&n.StoreID, &n.Net); err != nil {
			return nil, fmt.Errorf("scan net: %w", err)
		}
		list = append(list, n)
	}
	return list, rows.Err()
}

// NetByStore neto por producto dentro de una bodega, orden ascendente de product id.
func (r *MovementRepo) NetByStore(storeID int64) ([]repository.ProductNet, error) {
	query := `
		SELECT product_id, ` + netExpr + ` AS net
		FROM stock_movements WHERE store_id = $1
		GROUP BY product_id ORDER BY product_id`
	rows, err := r.q.Query(context.Background(), query, storeID)
	if err != nil {
		return nil, fmt.Errorf("net by store: %w", err)
	}
	defer rows.Close()
	var list []repository.ProductNet
	for rows.Next() {
		var n repository.ProductNet
		if err := rows.Scan(&n.ProductID, &n.Net); err != nil {
			return nil, fmt.Errorf("scan net: %w", err)
		}
		list = append(list, n)
	}
	return list, rows.Err()
}

// NetAll neto por (bodega, producto) del sistema completo, orden ascendente de ambos.
func (r *MovementRepo) NetAll() ([]repository.StoreProductNet, error) {
	query := `
		SELECT store_id, product_id, ` + netExpr + ` AS net
		FROM stock_movements
		GROUP BY store_id, product_id ORDER BY store_id, product_id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("net all: %w", err)
	}
	defer rows.Close()
	var list []repository.StoreProductNet
	for rows.Next() {
		var n repository.StoreProductNet
		if err := rows.Scan(&n.StoreID, &n.ProductID, &n.Net); err != nil {
			return nil, fmt.Errorf("scan net: %w", err)
		}
		list = append(list, n)
	}
	return list, rows.Err()
}

// ListByProduct lista movimientos de un producto, más recientes primero.
func (r *MovementRepo) ListByProduct(productID string, limit, offset int) ([]*entity.StockMovement, error) {
	query := `
		SELECT id, store_id, product_id, type, quantity, date, created_at
		FROM stock_movements WHERE product_id = $1
		ORDER BY date DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, productID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list by product: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		if err := rows.Scan(&m.ID, &m.StoreID, &m.ProductID, &m.Type, &m.Quantity, &m.Date, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
