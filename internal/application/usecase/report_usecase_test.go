package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-allocation-api/internal/application/allocation"
	"github.com/jhoicas/stock-allocation-api/internal/application/dto"
	"github.com/jhoicas/stock-allocation-api/internal/application/usecase"
	"github.com/jhoicas/stock-allocation-api/internal/domain"
	"github.com/jhoicas/stock-allocation-api/internal/infrastructure/memory"
)

func newReportUC(t *testing.T) (*usecase.ReportUseCase, *usecase.StoreUseCase, *allocation.AllocationUseCase) {
	t.Helper()
	storage := memory.NewStorage()
	storeUC := usecase.NewStoreUseCase(storage.StoreRepository(), storage)
	engine := allocation.NewAllocationUseCase(storage, allocation.Config{}, nil)
	reportUC := usecase.NewReportUseCase(storage.StoreRepository(), storage.MovementRepository())
	return reportUC, storeUC, engine
}

func seedStores(t *testing.T, storeUC *usecase.StoreUseCase, totals ...int64) []int64 {
	t.Helper()
	ids := make([]int64, 0, len(totals))
	for _, total := range totals {
		out, err := storeUC.Create(dto.CreateStoreRequest{Name: "bodega", CapacityTotal: d(total)})
		require.NoError(t, err)
		ids = append(ids, out.ID)
	}
	return ids
}

// El neto por producto suma entradas menos salidas por bodega, más el total.
func TestReportUseCase_ProductStock(t *testing.T) {
	reportUC, storeUC, engine := newReportUC(t)
	ids := seedStores(t, storeUC, 10, 10)

	engine.RegisterEntries(context.Background(), []dto.EntryRequest{
		{ProductID: "P1", Quantity: d(8), StoreID: ids[0]},
		{ProductID: "P1", Quantity: d(5), StoreID: ids[1]},
	})
	engine.RegisterExits(context.Background(), []dto.ExitRequest{
		{ProductID: "P1", Quantity: d(3)},
	})

	out, err := reportUC.ProductStock("P1")
	require.NoError(t, err)
	require.Len(t, out.Stores, 2)
	assert.Equal(t, ids[0], out.Stores[0].StoreID)
	assert.True(t, out.Stores[0].Net.Equal(d(5)), "la salida drena primero la bodega de menor id")
	assert.True(t, out.Stores[1].Net.Equal(d(5)))
	assert.True(t, out.TotalNet.Equal(d(10)))
}

// Lectura idempotente: dos llamadas sin escrituras intermedias devuelven lo mismo.
func TestReportUseCase_LecturaIdempotente(t *testing.T) {
	reportUC, storeUC, engine := newReportUC(t)
	ids := seedStores(t, storeUC, 10)
	engine.RegisterEntries(context.Background(), []dto.EntryRequest{
		{ProductID: "P1", Quantity: d(7), StoreID: ids[0]},
	})

	first, err := reportUC.ProductStock("P1")
	require.NoError(t, err)
	second, err := reportUC.ProductStock("P1")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

// El reporte global agrupa por bodega y producto en orden ascendente.
func TestReportUseCase_ReporteGlobalOrdenado(t *testing.T) {
	reportUC, storeUC, engine := newReportUC(t)
	ids := seedStores(t, storeUC, 20, 20)

	engine.RegisterEntries(context.Background(), []dto.EntryRequest{
		{ProductID: "P2", Quantity: d(3), StoreID: ids[1]},
		{ProductID: "P1", Quantity: d(5), StoreID: ids[1]},
		{ProductID: "P1", Quantity: d(2), StoreID: ids[0]},
	})

	out, err := reportUC.GlobalReport()
	require.NoError(t, err)
	require.Len(t, out.Stores, 2)
	assert.Equal(t, ids[0], out.Stores[0].StoreID)
	assert.Equal(t, ids[1], out.Stores[1].StoreID)

	require.Len(t, out.Stores[1].Products, 2)
	assert.Equal(t, "P1", out.Stores[1].Products[0].ProductID, "productos en orden ascendente")
	assert.Equal(t, "P2", out.Stores[1].Products[1].ProductID)
}

// Reporte de una bodega inexistente.
func TestReportUseCase_BodegaInexistente(t *testing.T) {
	reportUC, _, _ := newReportUC(t)

	_, err := reportUC.StoreReport(99)
	var notFound *domain.StoreNotFoundError
	assert.ErrorAs(t, err, &notFound)
}
