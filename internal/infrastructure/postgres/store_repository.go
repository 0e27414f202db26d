package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/stock-allocation-api/internal/domain/entity"
	"github.com/jhoicas/stock-allocation-api/internal/domain/repository"
)

var _ repository.StoreRepository = (*StoreRepo)(nil)

// StoreRepo implementación del puerto StoreRepository sobre PostgreSQL (usable con pool o tx).
type StoreRepo struct {
	q Querier
}

// NewStoreRepository construye el adaptador de persistencia para bodegas. Pasar pool o tx.
func NewStoreRepository(q Querier) *StoreRepo {
	return &StoreRepo{q: q}
}

// Create persiste una bodega nueva y asigna el id generado.
func (r *StoreRepo) Create(store *entity.Store) error {
	query := `
		INSERT INTO stores (name, capacity_used, capacity_total, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		store.Name, store.CapacityUsed, store.CapacityTotal, store.CreatedAt, store.UpdatedAt,
	).Scan(&store.ID)
	if err != nil {
		return fmt.Errorf("insert store: %w", err)
	}
	return nil
}

// GetByID obtiene una bodega por ID. Devuelve nil si no existe.
func (r *StoreRepo) GetByID(id int64) (*entity.Store, error) {
	return r.get(id, false)
}

// GetForUpdate obtiene la bodega y bloquea su fila (SELECT FOR UPDATE).
func (r *StoreRepo) GetForUpdate(id int64) (*entity.Store, error) {
	return r.get(id, true)
}

func (r *StoreRepo) get(id int64, forUpdate bool) (*entity.Store, error) {
	query := `
		SELECT id, name, capacity_used, capacity_total, created_at, updated_at
		FROM stores WHERE id = $1`
	if forUpdate {
		query += " FOR UPDATE"
	}
	var s entity.Store
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.Name, &s.CapacityUsed, &s.CapacityTotal, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get store: %w", err)
	}
	return &s, nil
}

// ListForUpdate bloquea y devuelve todas las bodegas en orden ascendente de id.
// El orden de los locks es siempre el mismo para evitar deadlocks entre transacciones.
func (r *StoreRepo) ListForUpdate() ([]*entity.Store, error) {
	query := `
		SELECT id, name, capacity_used, capacity_total, created_at, updated_at
		FROM stores ORDER BY id FOR UPDATE`
	return r.scanList(query)
}

// List lista bodegas paginadas en orden ascendente de id.
func (r *StoreRepo) List(limit, offset int) ([]*entity.Store, error) {
	query := `
		SELECT id, name, capacity_used, capacity_total, created_at, updated_at
		FROM stores ORDER BY id LIMIT $1 OFFSET $2`
	return r.scanList(query, limit, offset)
}

func (r *StoreRepo) scanList(query string, args ...any) ([]*entity.Store, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stores: %w", err)
	}
	defer rows.Close()
	var list []*entity.Store
	for rows.Next() {
		var s entity.Store
		if err := rows.Scan(&s.ID, &s.Name, &s.CapacityUsed, &s.CapacityTotal, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan store: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Update actualiza nombre y capacidad total de una bodega existente.
func (r *StoreRepo) Update(store *entity.Store) error {
	query := `
		UPDATE stores SET name = $2, capacity_total = $3, updated_at = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		store.ID, store.Name, store.CapacityTotal, store.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update store: %w", err)
	}
	return nil
}

// UpdateCapacityUsed actualiza el contador de capacidad usada de una bodega.
func (r *StoreRepo) UpdateCapacityUsed(id int64, used decimal.Decimal) error {
	query := `UPDATE stores SET capacity_used = $2, updated_at = now() WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, id, used)
	if err != nil {
		return fmt.Errorf("update store capacity: %w", err)
	}
	return nil
}

// Delete elimina una bodega por ID. Los movimientos históricos no se tocan.
func (r *StoreRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM stores WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete store: %w", err)
	}
	return nil
}
