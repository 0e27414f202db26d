package usecase

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/stock-allocation-api/internal/application/dto"
	"github.com/jhoicas/stock-allocation-api/internal/domain"
	"github.com/jhoicas/stock-allocation-api/internal/domain/repository"
)

// ReportUseCase deriva el inventario neto desde el ledger de movimientos:
// entradas menos salidas agrupadas por (bodega, producto). Cada consulta es
// una sola query agregada, así la lectura ve un snapshot consistente aunque
// haya escrituras concurrentes.
type ReportUseCase struct {
	storeRepo repository.StoreRepository
	movRepo   repository.MovementRepository
}

// NewReportUseCase construye el reporter.
func NewReportUseCase(storeRepo repository.StoreRepository, movRepo repository.MovementRepository) *ReportUseCase {
	return &ReportUseCase{storeRepo: storeRepo, movRepo: movRepo}
}

// ProductStock neto de un producto por bodega y total del sistema.
func (uc *ReportUseCase) ProductStock(productID string) (*dto.ProductStockResponse, error) {
	nets, err := uc.movRepo.NetByProduct(productID)
	if err != nil {
		return nil, err
	}
	out := &dto.ProductStockResponse{
		ProductID: productID,
		Stores:    make([]dto.StoreNetDTO, 0, len(nets)),
		TotalNet:  decimal.Zero,
	}
	for _, n := range nets {
		out.Stores = append(out.Stores, dto.StoreNetDTO{StoreID: n.StoreID, Net: n.Net})
		out.TotalNet = out.TotalNet.Add(n.Net)
	}
	return out, nil
}

// StoreReport neto por producto de una bodega, en orden ascendente de producto.
func (uc *ReportUseCase) StoreReport(storeID int64) (*dto.StoreReportDTO, error) {
	store, err := uc.storeRepo.GetByID(storeID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, &domain.StoreNotFoundError{StoreID: storeID}
	}
	nets, err := uc.movRepo.NetByStore(storeID)
	if err != nil {
		return nil, err
	}
	out := &dto.StoreReportDTO{StoreID: storeID, Products: make([]dto.ProductNetDTO, 0, len(nets))}
	for _, n := range nets {
		out.Products = append(out.Products, dto.ProductNetDTO{ProductID: n.ProductID, Net: n.Net})
	}
	return out, nil
}

// GlobalReport neto por (bodega, producto) de todo el sistema, orden ascendente
// de bodega y luego de producto.
func (uc *ReportUseCase) GlobalReport() (*dto.ReportResponse, error) {
	nets, err := uc.movRepo.NetAll()
	if err != nil {
		return nil, err
	}
	out := &dto.ReportResponse{Stores: []dto.StoreReportDTO{}}
	for _, n := range nets {
		last := len(out.Stores) - 1
		if last < 0 || out.Stores[last].StoreID != n.StoreID {
			out.Stores = append(out.Stores, dto.StoreReportDTO{StoreID: n.StoreID})
			last++
		}
		out.Stores[last].Products = append(out.Stores[last].Products, dto.ProductNetDTO{ProductID: n.ProductID, Net: n.Net})
	}
	return out, nil
}
