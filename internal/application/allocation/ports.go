package allocation

import (
	"context"

	"github.com/jhoicas/stock-allocation-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios
// atados a esa tx. El chequeo de capacidad, la escritura del contador y el insert del
// movimiento deben ocurrir dentro del mismo Run para que la operación sea atómica.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		storeRepo repository.StoreRepository,
		movRepo repository.MovementRepository,
	) error) error
}
