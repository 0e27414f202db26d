package allocation

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/stock-allocation-api/internal/application/dto"
	"github.com/jhoicas/stock-allocation-api/internal/domain"
	"github.com/jhoicas/stock-allocation-api/internal/domain/entity"
	"github.com/jhoicas/stock-allocation-api/internal/domain/repository"
)

// Políticas de desborde cuando una entrada excede la capacidad restante
// de todas las bodegas del sistema.
const (
	OverflowFail   = "fail"   // rechazar el ítem con NoCapacityError
	OverflowCreate = "create" // crear una bodega nueva dimensionada al sobrante
)

// Config opciones del motor de asignación.
type Config struct {
	OnOverflow string // fail | create
}

// AllocationUseCase es el motor de asignación multi-bodega: ubica entradas con
// derrame a otras bodegas cuando la destino se llena, y drena salidas en orden
// ascendente de bodega. Cada ítem del batch corre en su propia transacción con
// las filas de bodega bloqueadas (SELECT FOR UPDATE), de modo que el chequeo de
// capacidad y la actualización del contador son una unidad atómica.
type AllocationUseCase struct {
	txRunner TxRunner
	cfg      Config
	now      func() time.Time
}

// NewAllocationUseCase construye el motor. now == nil usa time.Now (inyectable en tests).
func NewAllocationUseCase(txRunner TxRunner, cfg Config, now func() time.Time) *AllocationUseCase {
	if cfg.OnOverflow == "" {
		cfg.OnOverflow = OverflowFail
	}
	if now == nil {
		now = time.Now
	}
	return &AllocationUseCase{txRunner: txRunner, cfg: cfg, now: now}
}

// EntryOutcome resultado de un ítem de entrada: movimientos creados o error.
type EntryOutcome struct {
	Request   dto.EntryRequest
	Movements []dto.MovementResult
	Err       error
}

// ExitOutcome resultado de un ítem de salida: retiros efectuados o error.
type ExitOutcome struct {
	Request     dto.ExitRequest
	Withdrawals []dto.WithdrawalResult
	Err         error
}

// RegisterEntries procesa un batch de entradas. Cada ítem corre en su propia
// transacción: el éxito es parcial por diseño, un ítem fallido no revierte a los demás.
func (uc *AllocationUseCase) RegisterEntries(ctx context.Context, entries []dto.EntryRequest) []EntryOutcome {
	out := make([]EntryOutcome, 0, len(entries))
	for _, req := range entries {
		movements, err := uc.registerEntry(ctx, req)
		out = append(out, EntryOutcome{Request: req, Movements: movements, Err: err})
	}
	return out
}

// registerEntry ubica una entrada: llena la bodega destino hasta su capacidad y
// derrama el sobrante en las demás bodegas en orden ascendente de id. Si el
// sistema entero queda sin capacidad aplica la política OnOverflow.
func (uc *AllocationUseCase) registerEntry(ctx context.Context, req dto.EntryRequest) ([]dto.MovementResult, error) {
	if !req.Quantity.GreaterThan(decimal.Zero) {
		return nil, &domain.InvalidQuantityError{Quantity: req.Quantity}
	}

	var results []dto.MovementResult
	err := uc.txRunner.Run(ctx, func(storeRepo repository.StoreRepository, movRepo repository.MovementRepository) error {
		// Bloquea todas las bodegas en orden ascendente de id: el derrame puede
		// tocar cualquiera y tomar los locks siempre en el mismo orden evita deadlocks.
		stores, err := storeRepo.ListForUpdate()
		if err != nil {
			return err
		}
		var target *entity.Store
		for _, s := range stores {
			if s.ID == req.StoreID {
				target = s
				break
			}
		}
		if target == nil {
			return &domain.StoreNotFoundError{StoreID: req.StoreID}
		}

		now := uc.now()
		remaining := req.Quantity

		place := func(s *entity.Store) error {
			available := s.Available()
			if !available.GreaterThan(decimal.Zero) {
				return nil
			}
			qty := decimal.Min(remaining, available)
			if err := uc.recordMovement(movRepo, s.ID, req.ProductID, entity.MovementTypeEntrada, qty, now); err != nil {
				return err
			}
			s.CapacityUsed = s.CapacityUsed.Add(qty)
			if err := storeRepo.UpdateCapacityUsed(s.ID, s.CapacityUsed); err != nil {
				return err
			}
			remaining = remaining.Sub(qty)
			results = append(results, dto.MovementResult{
				StoreID:   s.ID,
				ProductID: req.ProductID,
				Quantity:  qty,
				State:     entity.MovementTypeEntrada,
				Date:      now,
			})
			return nil
		}

		if err := place(target); err != nil {
			return err
		}
		for _, s := range stores {
			if !remaining.GreaterThan(decimal.Zero) {
				break
			}
			if s.ID == target.ID {
				continue
			}
			if err := place(s); err != nil {
				return err
			}
		}

		if remaining.GreaterThan(decimal.Zero) {
			if uc.cfg.OnOverflow != OverflowCreate {
				return &domain.NoCapacityError{ProductID: req.ProductID, Remaining: remaining}
			}
			overflow := &entity.Store{
				Name:          "desborde-" + uuid.NewString()[:8],
				CapacityUsed:  decimal.Zero,
				CapacityTotal: remaining,
				CreatedAt:     now,
				UpdatedAt:     now,
			}
			if err := storeRepo.Create(overflow); err != nil {
				return err
			}
			if err := place(overflow); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

// RegisterExits procesa un batch de salidas, un ítem por transacción (éxito parcial).
func (uc *AllocationUseCase) RegisterExits(ctx context.Context, exits []dto.ExitRequest) []ExitOutcome {
	out := make([]ExitOutcome, 0, len(exits))
	for _, req := range exits {
		withdrawals, err := uc.registerExit(ctx, req)
		out = append(out, ExitOutcome{Request: req, Withdrawals: withdrawals, Err: err})
	}
	return out
}

// registerExit retira una cantidad de un producto drenando las bodegas que lo
// tienen, en orden ascendente de id. Si el neto total no alcanza falla con
// InsufficientStockError sin crear ningún movimiento.
func (uc *AllocationUseCase) registerExit(ctx context.Context, req dto.ExitRequest) ([]dto.WithdrawalResult, error) {
	if !req.Quantity.GreaterThan(decimal.Zero) {
		return nil, &domain.InvalidQuantityError{Quantity: req.Quantity}
	}

	var results []dto.WithdrawalResult
	err := uc.txRunner.Run(ctx, func(storeRepo repository.StoreRepository, movRepo repository.MovementRepository) error {
		// Mismo orden de locks que las entradas.
		stores, err := storeRepo.ListForUpdate()
		if err != nil {
			return err
		}
		byID := make(map[int64]*entity.Store, len(stores))
		for _, s := range stores {
			byID[s.ID] = s
		}

		nets, err := movRepo.NetByProduct(req.ProductID)
		if err != nil {
			return err
		}
		total := decimal.Zero
		for _, n := range nets {
			total = total.Add(n.Net)
		}
		if total.LessThan(req.Quantity) {
			return &domain.InsufficientStockError{ProductID: req.ProductID, Remaining: req.Quantity.Sub(total)}
		}

		now := uc.now()
		remaining := req.Quantity
		for _, n := range nets {
			if !remaining.GreaterThan(decimal.Zero) {
				break
			}
			if !n.Net.GreaterThan(decimal.Zero) {
				continue
			}
			take := decimal.Min(remaining, n.Net)
			if err := uc.recordMovement(movRepo, n.StoreID, req.ProductID, entity.MovementTypeSalida, take, now); err != nil {
				return err
			}
			store, ok := byID[n.StoreID]
			if !ok {
				return &domain.StoreNotFoundError{StoreID: n.StoreID}
			}
			store.CapacityUsed = store.CapacityUsed.Sub(take)
			if err := storeRepo.UpdateCapacityUsed(store.ID, store.CapacityUsed); err != nil {
				return err
			}
			remaining = remaining.Sub(take)
			results = append(results, dto.WithdrawalResult{
				StoreID:           n.StoreID,
				ProductID:         req.ProductID,
				QuantityWithdrawn: take,
				QuantityRemaining: n.Net.Sub(take),
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

func (uc *AllocationUseCase) recordMovement(movRepo repository.MovementRepository, storeID int64, productID, movType string, qty decimal.Decimal, now time.Time) error {
	return movRepo.Create(&entity.StockMovement{
		ID:        uuid.New().String(),
		StoreID:   storeID,
		ProductID: productID,
		Type:      movType,
		Quantity:  qty,
		Date:      now,
		CreatedAt: now,
	})
}
