package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Errores de dominio del motor de asignación. Son structs tipados (no centinelas)
// porque el facade necesita ids y cantidades para armar el mensaje al usuario.

// InvalidQuantityError cantidad solicitada <= 0.
type InvalidQuantityError struct {
	Quantity decimal.Decimal
}

func (e *InvalidQuantityError) Error() string {
	return fmt.Sprintf("cantidad inválida: %s (debe ser > 0)", e.Quantity)
}

// StoreNotFoundError la bodega solicitada no existe.
type StoreNotFoundError struct {
	StoreID int64
}

func (e *StoreNotFoundError) Error() string {
	return fmt.Sprintf("bodega %d no encontrada", e.StoreID)
}

// InsufficientStockError el stock total del producto no alcanza para la salida.
// Remaining es el faltante: cantidad solicitada menos el neto disponible.
type InsufficientStockError struct {
	ProductID string
	Remaining decimal.Decimal
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente para producto %s: faltan %s", e.ProductID, e.Remaining)
}

// StoreNotEmptyError la bodega aún tiene existencias y no puede eliminarse.
type StoreNotEmptyError struct {
	StoreID      int64
	CapacityUsed decimal.Decimal
}

func (e *StoreNotEmptyError) Error() string {
	return fmt.Sprintf("bodega %d no está vacía: capacidad usada %s", e.StoreID, e.CapacityUsed)
}

// NoCapacityError la entrada excede la capacidad restante de todas las bodegas
// y la política de desborde es fallar. Remaining es lo que no se pudo ubicar.
type NoCapacityError struct {
	ProductID string
	Remaining decimal.Decimal
}

func (e *NoCapacityError) Error() string {
	return fmt.Sprintf("sin capacidad disponible para producto %s: quedan %s sin ubicar", e.ProductID, e.Remaining)
}
