package inventory

import (
	"context"

	"github.com/jhoicas/inventory-services/internal/domain/entity"
	"github.com/jhoicas/inventory-services/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Si fn devuelve error se hace Rollback; si no, Commit. La conexión se libera en todos los caminos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.StockMovementRepository,
		stockRepo repository.StockRepository,
	) error) error
}

// ProductLookup acceso de solo lectura al catálogo (existencia y datos de enriquecimiento).
type ProductLookup interface {
	GetByID(ctx context.Context, id string) (*entity.Product, error)
}

// Resultados posibles de un movimiento para métricas.
const (
	OutcomeCommitted = "committed"
	OutcomeRejected  = "rejected"
)

// MovementRecorder observa el resultado de cada intento de movimiento (métricas).
type MovementRecorder interface {
	RecordMovement(movementType, outcome string)
}

// StockLevelObserver recibe el saldo actual de cada producto listado.
type StockLevelObserver interface {
	SetStockLevel(productID, productName string, quantity int)
}
