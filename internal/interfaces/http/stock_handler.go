package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-allocation-api/internal/application/allocation"
	"github.com/jhoicas/stock-allocation-api/internal/application/dto"
	"github.com/jhoicas/stock-allocation-api/internal/application/usecase"
)

// StockHandler maneja las peticiones del motor de stock: entradas, salidas y reportes.
type StockHandler struct {
	engine *allocation.AllocationUseCase
	report *usecase.ReportUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(engine *allocation.AllocationUseCase, report *usecase.ReportUseCase) *StockHandler {
	return &StockHandler{engine: engine, report: report}
}

// RegisterEntries godoc
// @Summary      Registrar entradas de stock (batch)
// @Description  Ubica cada entrada en su bodega destino; el sobrante se derrama
//               a otras bodegas en orden ascendente de id. Éxito parcial por ítem.
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.EntryBatchRequest  true  "Entradas: product_id, quantity, store_id"
// @Success      200   {object}  dto.EntryBatchResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/stock/entries [post]
func (h *StockHandler) RegisterEntries(c *fiber.Ctx) error {
	var in dto.EntryBatchRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if len(in.Entries) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "entries no puede estar vacío"})
	}
	outcomes := h.engine.RegisterEntries(c.Context(), in.Entries)
	out := dto.EntryBatchResponse{Results: make([]dto.EntryResultItem, 0, len(outcomes))}
	for _, o := range outcomes {
		item := dto.EntryResultItem{Request: o.Request, Movements: o.Movements}
		if o.Err != nil {
			item.Error = errorBody(o.Err)
		}
		out.Results = append(out.Results, item)
	}
	return c.JSON(out)
}

// RegisterExits godoc
// @Summary      Registrar salidas de stock (batch)
// @Description  Drena las bodegas que tienen el producto en orden ascendente de id.
//               Si el neto total no alcanza, el ítem falla sin crear movimientos.
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ExitBatchRequest  true  "Salidas: product_id, quantity"
// @Success      200   {object}  dto.ExitBatchResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/stock/exits [post]
func (h *StockHandler) RegisterExits(c *fiber.Ctx) error {
	var in dto.ExitBatchRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if len(in.Exits) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "exits no puede estar vacío"})
	}
	outcomes := h.engine.RegisterExits(c.Context(), in.Exits)
	out := dto.ExitBatchResponse{Results: make([]dto.ExitResultItem, 0, len(outcomes))}
	for _, o := range outcomes {
		item := dto.ExitResultItem{Request: o.Request, Withdrawals: o.Withdrawals}
		if o.Err != nil {
			item.Error = errorBody(o.Err)
		}
		out.Results = append(out.Results, item)
	}
	return c.JSON(out)
}

// GetProductStock godoc
// @Summary      Neto de un producto por bodega y total
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        productId  path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductStockResponse
// @Router       /api/stock/products/{productId} [get]
func (h *StockHandler) GetProductStock(c *fiber.Ctx) error {
	productID := c.Params("productId")
	if productID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "productId es requerido"})
	}
	out, err := h.report.ProductStock(productID)
	if err != nil {
		status, body := mapDomainError(err)
		return c.Status(status).JSON(body)
	}
	return c.JSON(out)
}

// GlobalReport godoc
// @Summary      Inventario neto por bodega y producto (todo el sistema)
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ReportResponse
// @Router       /api/stock/report [get]
func (h *StockHandler) GlobalReport(c *fiber.Ctx) error {
	out, err := h.report.GlobalReport()
	if err != nil {
		status, body := mapDomainError(err)
		return c.Status(status).JSON(body)
	}
	return c.JSON(out)
}

// StoreReport godoc
// @Summary      Inventario neto de una bodega por producto
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID de la bodega"
// @Success      200  {object}  dto.StoreReportDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock/report/{id} [get]
func (h *StockHandler) StoreReport(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id de bodega inválido"})
	}
	out, err := h.report.StoreReport(int64(id))
	if err != nil {
		status, body := mapDomainError(err)
		return c.Status(status).JSON(body)
	}
	return c.JSON(out)
}
