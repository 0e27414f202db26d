package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-allocation-api/internal/application/allocation"
	"github.com/jhoicas/stock-allocation-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	StoreUC   *usecase.StoreUseCase
	ReportUC  *usecase.ReportUseCase
	Engine    *allocation.AllocationUseCase
	JWTSecret string
}

// Router registra las rutas de la API. Todo /api requiere Bearer Token.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret))

	stores := api.Group("/stores")
	storeHandler := NewStoreHandler(deps.StoreUC)
	stores.Post("/", storeHandler.Create)
	stores.Get("/", storeHandler.List)
	stores.Get("/:id", storeHandler.GetByID)
	stores.Put("/:id", storeHandler.Update)
	stores.Delete("/:id", storeHandler.Delete)

	stock := api.Group("/stock")
	stockHandler := NewStockHandler(deps.Engine, deps.ReportUC)
	stock.Post("/entries", stockHandler.RegisterEntries)
	stock.Post("/exits", stockHandler.RegisterExits)
	stock.Get("/products/:productId", stockHandler.GetProductStock)
	stock.Get("/report", stockHandler.GlobalReport)
	stock.Get("/report/:id", stockHandler.StoreReport)
}
