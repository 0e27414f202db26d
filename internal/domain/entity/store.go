package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Store representa una bodega con capacidad acotada.
// Invariante: 0 <= CapacityUsed <= CapacityTotal después de cada operación confirmada.
type Store struct {
	ID            int64
	Name          string
	CapacityUsed  decimal.Decimal
	CapacityTotal decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Available devuelve la capacidad restante de la bodega.
func (s *Store) Available() decimal.Decimal {
	return s.CapacityTotal.Sub(s.CapacityUsed)
}

// IsFull indica si la bodega no admite más unidades.
func (s *Store) IsFull() bool {
	return s.CapacityUsed.GreaterThanOrEqual(s.CapacityTotal)
}
