package memory

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stock-allocation-api/internal/domain/entity"
	"github.com/jhoicas/stock-allocation-api/internal/domain/repository"
)

var _ repository.StoreRepository = (*StoreRepo)(nil)

// StoreRepo implementación en memoria de StoreRepository. Devuelve copias,
// como haría una fila leída de la BD; los cambios entran solo por Update*.
type StoreRepo struct {
	s       *Storage
	guarded bool
}

func (r *StoreRepo) lock() func() {
	if r.guarded {
		r.s.mu.Lock()
		return r.s.mu.Unlock
	}
	return func() {}
}

// Create asigna un id ascendente y guarda la bodega.
func (r *StoreRepo) Create(store *entity.Store) error {
	defer r.lock()()
	store.ID = r.s.nextID
	r.s.nextID++
	r.s.stores[store.ID] = *store
	return nil
}

// GetByID devuelve una copia de la bodega, o nil si no existe.
func (r *StoreRepo) GetByID(id int64) (*entity.Store, error) {
	defer r.lock()()
	st, ok := r.s.stores[id]
	if !ok {
		return nil, nil
	}
	return &st, nil
}

// GetForUpdate en memoria equivale a GetByID: el mutex del Storage ya da exclusión.
func (r *StoreRepo) GetForUpdate(id int64) (*entity.Store, error) {
	return r.GetByID(id)
}

// ListForUpdate devuelve todas las bodegas en orden ascendente de id.
func (r *StoreRepo) ListForUpdate() ([]*entity.Store, error) {
	defer r.lock()()
	return r.sortedStores(), nil
}

// List lista bodegas paginadas en orden ascendente de id.
func (r *StoreRepo) List(limit, offset int) ([]*entity.Store, error) {
	defer r.lock()()
	all := r.sortedStores()
	if offset >= len(all) {
		return nil, nil
	}
	all = all[offset:]
	if limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}

func (r *StoreRepo) sortedStores() []*entity.Store {
	list := make([]*entity.Store, 0, len(r.s.stores))
	for _, st := range r.s.stores {
		c := st
		list = append(list, &c)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list
}

// Update reemplaza nombre y capacidad total.
func (r *StoreRepo) Update(store *entity.Store) error {
	defer r.lock()()
	cur, ok := r.s.stores[store.ID]
	if !ok {
		return nil
	}
	cur.Name = store.Name
	cur.CapacityTotal = store.CapacityTotal
	cur.UpdatedAt = store.UpdatedAt
	r.s.stores[store.ID] = cur
	return nil
}

// UpdateCapacityUsed actualiza el contador de capacidad usada.
func (r *StoreRepo) UpdateCapacityUsed(id int64, used decimal.Decimal) error {
	defer r.lock()()
	cur, ok := r.s.stores[id]
	if !ok {
		return nil
	}
	cur.CapacityUsed = used
	cur.UpdatedAt = time.Now()
	r.s.stores[id] = cur
	return nil
}

// Delete elimina la bodega; los movimientos quedan.
func (r *StoreRepo) Delete(id int64) error {
	defer r.lock()()
	delete(r.s.stores, id)
	return nil
}
