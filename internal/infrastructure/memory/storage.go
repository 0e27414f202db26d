package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/stock-allocation-api/internal/application/allocation"
	"github.com/jhoicas/stock-allocation-api/internal/domain/entity"
	"github.com/jhoicas/stock-allocation-api/internal/domain/repository"
)

var _ allocation.TxRunner = (*Storage)(nil)

// Storage almacenamiento en memoria para tests y desarrollo local. Implementa
// allocation.TxRunner con un mutex global más snapshot/restore: Run es exclusivo
// y atómico, igual que la transacción PostgreSQL con filas bloqueadas.
type Storage struct {
	mu        sync.Mutex
	stores    map[int64]entity.Store
	nextID    int64
	movements []entity.StockMovement
}

// NewStorage construye el almacenamiento vacío.
func NewStorage() *Storage {
	return &Storage{stores: make(map[int64]entity.Store), nextID: 1}
}

// Run ejecuta fn bajo el mutex con repos no bloqueantes. Si fn falla se restaura
// el snapshot previo: ningún cambio parcial queda visible.
func (s *Storage) Run(ctx context.Context, fn func(
	storeRepo repository.StoreRepository,
	movRepo repository.MovementRepository,
) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapStores := make(map[int64]entity.Store, len(s.stores))
	for id, st := range s.stores {
		snapStores[id] = st
	}
	snapNextID := s.nextID
	snapMovLen := len(s.movements)

	err := fn(&StoreRepo{s: s}, &MovementRepo{s: s})
	if err != nil {
		s.stores = snapStores
		s.nextID = snapNextID
		s.movements = s.movements[:snapMovLen]
		return err
	}
	return nil
}

// StoreRepository devuelve un adaptador que toma el mutex en cada llamada
// (para usar fuera de Run).
func (s *Storage) StoreRepository() repository.StoreRepository {
	return &StoreRepo{s: s, guarded: true}
}

// MovementRepository ídem para el ledger.
func (s *Storage) MovementRepository() repository.MovementRepository {
	return &MovementRepo{s: s, guarded: true}
}
