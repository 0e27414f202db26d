package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/stock-allocation-api/internal/domain/entity"
)

// StoreRepository define el puerto de persistencia para bodegas (DIP).
// Los métodos *ForUpdate bloquean filas (SELECT FOR UPDATE) y solo tienen
// sentido dentro de una transacción del TxRunner.
type StoreRepository interface {
	Create(store *entity.Store) error
	GetByID(id int64) (*entity.Store, error)
	// GetForUpdate obtiene la bodega y bloquea su fila.
	GetForUpdate(id int64) (*entity.Store, error)
	// ListForUpdate bloquea y devuelve todas las bodegas en orden ascendente de id.
	// Tomar siempre los locks en este orden evita deadlocks entre operaciones concurrentes.
	ListForUpdate() ([]*entity.Store, error)
	List(limit, offset int) ([]*entity.Store, error)
	Update(store *entity.Store) error
	// UpdateCapacityUsed actualiza solo el contador de capacidad usada.
	UpdateCapacityUsed(id int64, used decimal.Decimal) error
	Delete(id int64) error
}
