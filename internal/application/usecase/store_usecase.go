package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stock-allocation-api/internal/application/allocation"
	"github.com/jhoicas/stock-allocation-api/internal/application/dto"
	"github.com/jhoicas/stock-allocation-api/internal/domain"
	"github.com/jhoicas/stock-allocation-api/internal/domain/entity"
	"github.com/jhoicas/stock-allocation-api/internal/domain/repository"
)

// StoreUseCase casos de uso CRUD para bodegas, incluido el guard de eliminación:
// una bodega solo se borra si no retiene existencias; sus movimientos históricos
// (todos con neto cero) quedan para auditoría.
type StoreUseCase struct {
	repo     repository.StoreRepository
	txRunner allocation.TxRunner
}

// NewStoreUseCase construye el caso de uso.
func NewStoreUseCase(repo repository.StoreRepository, txRunner allocation.TxRunner) *StoreUseCase {
	return &StoreUseCase{repo: repo, txRunner: txRunner}
}

// Create registra una bodega nueva con capacidad usada en cero.
func (uc *StoreUseCase) Create(in dto.CreateStoreRequest) (*dto.StoreResponse, error) {
	if !in.CapacityTotal.GreaterThan(decimal.Zero) {
		return nil, &domain.InvalidQuantityError{Quantity: in.CapacityTotal}
	}
	now := time.Now()
	store := &entity.Store{
		Name:          in.Name,
		CapacityUsed:  decimal.Zero,
		CapacityTotal: in.CapacityTotal,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(store); err != nil {
		return nil, err
	}
	return toStoreResponse(store), nil
}

// GetByID obtiene una bodega por ID. Devuelve nil si no existe.
func (uc *StoreUseCase) GetByID(id int64) (*dto.StoreResponse, error) {
	store, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, nil
	}
	return toStoreResponse(store), nil
}

// Update actualiza nombre y/o capacidad total. La capacidad total no puede
// quedar por debajo de la capacidad usada.
func (uc *StoreUseCase) Update(id int64, in dto.UpdateStoreRequest) (*dto.StoreResponse, error) {
	store, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, &domain.StoreNotFoundError{StoreID: id}
	}
	if in.Name != nil {
		store.Name = *in.Name
	}
	if in.CapacityTotal != nil {
		if in.CapacityTotal.LessThan(store.CapacityUsed) {
			return nil, &domain.InvalidQuantityError{Quantity: *in.CapacityTotal}
		}
		store.CapacityTotal = *in.CapacityTotal
	}
	store.UpdatedAt = time.Now()
	if err := uc.repo.Update(store); err != nil {
		return nil, err
	}
	return toStoreResponse(store), nil
}

// List lista bodegas con paginación, en orden ascendente de id.
func (uc *StoreUseCase) List(limit, offset int) (*dto.StoreListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.StoreResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toStoreResponse(s))
	}
	return &dto.StoreListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina una bodega si está vacía. Falla con StoreNotEmptyError si la
// capacidad usada es mayor que cero o si algún producto aún netea distinto de
// cero en ella. El chequeo y el borrado corren en la misma transacción con la
// fila bloqueada, para que una entrada concurrente no se cuele entre ambos.
func (uc *StoreUseCase) Delete(ctx context.Context, id int64) error {
	return uc.txRunner.Run(ctx, func(storeRepo repository.StoreRepository, movRepo repository.MovementRepository) error {
		store, err := storeRepo.GetForUpdate(id)
		if err != nil {
			return err
		}
		if store == nil {
			return &domain.StoreNotFoundError{StoreID: id}
		}
		if store.CapacityUsed.GreaterThan(decimal.Zero) {
			return &domain.StoreNotEmptyError{StoreID: id, CapacityUsed: store.CapacityUsed}
		}
		nets, err := movRepo.NetByStore(id)
		if err != nil {
			return err
		}
		for _, n := range nets {
			if !n.Net.IsZero() {
				return &domain.StoreNotEmptyError{StoreID: id, CapacityUsed: store.CapacityUsed}
			}
		}
		return storeRepo.Delete(id)
	})
}

func toStoreResponse(s *entity.Store) *dto.StoreResponse {
	if s == nil {
		return nil
	}
	return &dto.StoreResponse{
		ID:            s.ID,
		Name:          s.Name,
		CapacityUsed:  s.CapacityUsed,
		CapacityTotal: s.CapacityTotal,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}
