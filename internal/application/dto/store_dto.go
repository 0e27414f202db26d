package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateStoreRequest entrada para registrar una bodega. La capacidad usada inicia en 0.
type CreateStoreRequest struct {
	Name          string          `json:"name" validate:"required,min=1,max=200"`
	CapacityTotal decimal.Decimal `json:"capacity_total" validate:"required"`
}

// UpdateStoreRequest entrada para actualizar una bodega.
type UpdateStoreRequest struct {
	Name          *string          `json:"name" validate:"omitempty,min=1,max=200"`
	CapacityTotal *decimal.Decimal `json:"capacity_total"`
}

// StoreResponse salida de una bodega.
type StoreResponse struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name"`
	CapacityUsed  decimal.Decimal `json:"capacity_used"`
	CapacityTotal decimal.Decimal `json:"capacity_total"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// StoreListResponse lista paginada de bodegas.
type StoreListResponse struct {
	Items []StoreResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
