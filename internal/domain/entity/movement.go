package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de stock.
const (
	MovementTypeEntrada = "entrada" // ingreso a bodega
	MovementTypeSalida  = "salida"  // retiro de bodega
)

// StockMovement representa un movimiento inmutable de stock (entrada o salida)
// de un producto en una bodega. Las correcciones se hacen con movimientos
// compensatorios, nunca mutando filas existentes. Quantity es siempre la
// magnitud positiva del movimiento; el signo lo da Type.
type StockMovement struct {
	ID        string
	StoreID   int64
	ProductID string
	Type      string // entrada | salida
	Quantity  decimal.Decimal
	Date      time.Time
	CreatedAt time.Time
}

// Signed devuelve la cantidad con signo según el tipo (entrada positiva, salida negativa).
func (m *StockMovement) Signed() decimal.Decimal {
	if m.Type == MovementTypeSalida {
		return m.Quantity.Neg()
	}
	return m.Quantity
}
