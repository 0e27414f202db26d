package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryRequest una entrada de stock: producto, cantidad y bodega destino.
type EntryRequest struct {
	ProductID string          `json:"product_id" validate:"required"`
	Quantity  decimal.Decimal `json:"quantity" validate:"required"`
	StoreID   int64           `json:"store_id" validate:"required"`
}

// EntryBatchRequest body para POST /api/stock/entries.
type EntryBatchRequest struct {
	Entries []EntryRequest `json:"entries" validate:"required,min=1"`
}

// MovementResult un movimiento creado por el motor (respuesta de entradas).
type MovementResult struct {
	StoreID   int64           `json:"store_id"`
	ProductID string          `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"`
	State     string          `json:"state"` // entrada | salida
	Date      time.Time       `json:"date"`
}

// EntryResultItem resultado por ítem del batch de entradas: movimientos o error.
type EntryResultItem struct {
	Request   EntryRequest     `json:"request"`
	Movements []MovementResult `json:"movements,omitempty"`
	Error     *ErrorResponse   `json:"error,omitempty"`
}

// EntryBatchResponse respuesta de POST /api/stock/entries.
type EntryBatchResponse struct {
	Results []EntryResultItem `json:"results"`
}

// ExitRequest una salida de stock: producto y cantidad. La bodega la decide el motor.
type ExitRequest struct {
	ProductID string          `json:"product_id" validate:"required"`
	Quantity  decimal.Decimal `json:"quantity" validate:"required"`
}

// ExitBatchRequest body para POST /api/stock/exits.
type ExitBatchRequest struct {
	Exits []ExitRequest `json:"exits" validate:"required,min=1"`
}

// WithdrawalResult retiro efectuado en una bodega, con lo que queda del producto en ella.
type WithdrawalResult struct {
	StoreID           int64           `json:"store_id"`
	ProductID         string          `json:"product_id"`
	QuantityWithdrawn decimal.Decimal `json:"quantity_withdrawn"`
	QuantityRemaining decimal.Decimal `json:"quantity_remaining"`
}

// ExitResultItem resultado por ítem del batch de salidas: retiros o error.
type ExitResultItem struct {
	Request     ExitRequest        `json:"request"`
	Withdrawals []WithdrawalResult `json:"withdrawals,omitempty"`
	Error       *ErrorResponse     `json:"error,omitempty"`
}

// ExitBatchResponse respuesta de POST /api/stock/exits.
type ExitBatchResponse struct {
	Results []ExitResultItem `json:"results"`
}

// StoreNetDTO neto de un producto en una bodega.
type StoreNetDTO struct {
	StoreID int64           `json:"store_id"`
	Net     decimal.Decimal `json:"net"`
}

// ProductStockResponse respuesta de GET /api/stock/products/{productId}.
type ProductStockResponse struct {
	ProductID string          `json:"product_id"`
	Stores    []StoreNetDTO   `json:"stores"`
	TotalNet  decimal.Decimal `json:"total_net"`
}

// ProductNetDTO neto por producto dentro de una bodega (reporte).
type ProductNetDTO struct {
	ProductID string          `json:"product_id"`
	Net       decimal.Decimal `json:"net"`
}

// StoreReportDTO inventario neto de una bodega, productos en orden ascendente.
type StoreReportDTO struct {
	StoreID  int64           `json:"store_id"`
	Products []ProductNetDTO `json:"products"`
}

// ReportResponse respuesta de GET /api/stock/report (bodegas en orden ascendente).
type ReportResponse struct {
	Stores []StoreReportDTO `json:"stores"`
}
