package memory

import (
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/stock-allocation-api/internal/domain/entity"
	"github.com/jhoicas/stock-allocation-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo ledger en memoria, append-only.
type MovementRepo struct {
	s       *Storage
	guarded bool
}

func (r *MovementRepo) lock() func() {
	if r.guarded {
		r.s.mu.Lock()
		return r.s.mu.Unlock
	}
	return func() {}
}

// Create agrega un movimiento al ledger.
func (r *MovementRepo) Create(movement *entity.StockMovement) error {
	defer r.lock()()
	if movement.ID == "" {
		movement.ID = uuid.New().String()
	}
	r.s.movements = append(r.s.movements, *movement)
	return nil
}

// NetByProduct neto del producto por bodega, orden ascendente de store id.
func (r *MovementRepo) NetByProduct(productID string) ([]repository.StoreNet, error) {
	defer r.lock()()
	nets := make(map[int64]decimal.Decimal)
	for i := range r.s.movements {
		m := &r.s.movements[i]
		if m.ProductID != productID {
			continue
		}
		nets[m.StoreID] = nets[m.StoreID].Add(m.Signed())
	}
	list := make([]repository.StoreNet, 0, len(nets))
	for id, net := range nets {
		list = append(list, repository.StoreNet{StoreID: id, Net: net})
	}
	sort.Slice(list, func(i, j int) bool { return list[i].StoreID < list[j].StoreID })
	return list, nil
}

// NetByStore neto por producto dentro de una bodega, orden ascendente de product id.
func (r *MovementRepo) NetByStore(storeID int64) ([]repository.ProductNet, error) {
	defer r.lock()()
	nets := make(map[string]decimal.Decimal)
	for i := range r.s.movements {
		m := &r.s.movements[i]
		if m.StoreID != storeID {
			continue
		}
		nets[m.ProductID] = nets[m.ProductID].Add(m.Signed())
	}
	list := make([]repository.ProductNet, 0, len(nets))
	for id, net := range nets {
		list = append(list, repository.ProductNet{ProductID: id, Net: net})
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ProductID < list[j].ProductID })
	return list, nil
}

// NetAll neto por (bodega, producto), orden ascendente de bodega y producto.
func (r *MovementRepo) NetAll() ([]repository.StoreProductNet, error) {
	defer r.lock()()
	type key struct {
		storeID   int64
		productID string
	}
	nets := make(map[key]decimal.Decimal)
	for i := range r.s.movements {
		m := &r.s.movements[i]
		k := key{m.StoreID, m.ProductID}
		nets[k] = nets[k].Add(m.Signed())
	}
	list := make([]repository.StoreProductNet, 0, len(nets))
	for k, net := range nets {
		list = append(list, repository.StoreProductNet{StoreID: k.storeID, ProductID: k.productID, Net: net})
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].StoreID != list[j].StoreID {
			return list[i].StoreID < list[j].StoreID
		}
		return list[i].ProductID < list[j].ProductID
	})
	return list, nil
}

// ListByProduct movimientos de un producto, más recientes primero.
func (r *MovementRepo) ListByProduct(productID string, limit, offset int) ([]*entity.StockMovement, error) {
	defer r.lock()()
	var list []*entity.StockMovement
	for i := range r.s.movements {
		if r.s.movements[i].ProductID == productID {
			c := r.s.movements[i]
			list = append(list, &c)
		}
	}
	sort.SliceStable(list, func(i, j int) bool { return list[i].Date.After(list[j].Date) })
	if offset >= len(list) {
		return nil, nil
	}
	list = list[offset:]
	if limit < len(list) {
		list = list[:limit]
	}
	return list, nil
}
