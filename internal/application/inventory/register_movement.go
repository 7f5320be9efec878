package inventory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/inventory-services/internal/domain"
	"github.com/jhoicas/inventory-services/internal/domain/entity"
	"github.com/jhoicas/inventory-services/internal/domain/repository"
)

// RegisterMovementUseCase registra entradas y salidas de stock de forma transaccional:
// bloqueo de fila (SELECT FOR UPDATE), verificación de saldo, actualización y movimiento en el libro,
// todo con Commit o Rollback.
type RegisterMovementUseCase struct {
	txRunner TxRunner
	products ProductLookup
	recorder MovementRecorder
	levels   StockLevelObserver
	now      func() time.Time
}

// NewRegisterMovementUseCase construye el caso de uso. recorder puede ser nil; si además
// implementa StockLevelObserver recibe el saldo nuevo tras cada commit.
func NewRegisterMovementUseCase(txRunner TxRunner, products ProductLookup, recorder MovementRecorder) *RegisterMovementUseCase {
	uc := &RegisterMovementUseCase{
		txRunner: txRunner,
		products: products,
		recorder: recorder,
		now:      time.Now,
	}
	if levels, ok := recorder.(StockLevelObserver); ok {
		uc.levels = levels
	}
	return uc
}

// MovementInput entrada para registrar un movimiento.
type MovementInput struct {
	ProductID string
	Type      string // IN | OUT
	Quantity  int
	Reason    string
}

// MovementResult saldo antes y después del movimiento aplicado.
type MovementResult struct {
	ProductID        string
	PreviousQuantity int
	NewQuantity      int
}

// RegisterMovement valida la entrada, verifica que el producto exista y aplica el movimiento
// dentro de una transacción. Una salida que dejaría el saldo en negativo devuelve
// *domain.InsufficientStockError y no modifica nada.
func (uc *RegisterMovementUseCase) RegisterMovement(ctx context.Context, in MovementInput) (*MovementResult, error) {
	if err := validateMovement(in); err != nil {
		uc.record(in.Type, OutcomeRejected)
		return nil, err
	}

	product, err := uc.products.GetByID(ctx, in.ProductID)
	if err != nil {
		uc.record(in.Type, OutcomeRejected)
		return nil, err
	}
	if product == nil {
		uc.record(in.Type, OutcomeRejected)
		return nil, domain.NotFound("Product", in.ProductID)
	}

	reason := strings.TrimSpace(in.Reason)
	if reason == "" {
		reason = defaultReason(in.Type)
	}

	var result MovementResult
	err = uc.txRunner.Run(ctx, func(
		movRepo repository.StockMovementRepository,
		stockRepo repository.StockRepository,
	) error {
		// Bloquea la fila del producto: movimientos concurrentes del mismo producto se serializan aquí.
		stock, err := stockRepo.GetForUpdate(ctx, in.ProductID)
		if err != nil {
			return err
		}
		if stock == nil {
			return domain.NotFound("Stock", in.ProductID)
		}

		var newQty int
		switch in.Type {
		case entity.MovementTypeOUT:
			if in.Quantity > stock.Quantity {
				return &domain.InsufficientStockError{
					ProductID: in.ProductID,
					Available: stock.Quantity,
					Requested: in.Quantity,
				}
			}
			newQty = stock.Quantity - in.Quantity
		default:
			if stock.Quantity > entity.MaxQuantity-in.Quantity {
				return domain.InvalidField("quantity", fmt.Sprintf("quantity would exceed the maximum stock of %d", entity.MaxQuantity))
			}
			newQty = stock.Quantity + in.Quantity
		}

		if err := stockRepo.UpdateQuantity(ctx, in.ProductID, newQty); err != nil {
			return err
		}
		mov := &entity.StockMovement{
			ID:               uuid.New().String(),
			ProductID:        in.ProductID,
			Type:             in.Type,
			Quantity:         in.Quantity,
			Reason:           reason,
			PreviousQuantity: stock.Quantity,
			NewQuantity:      newQty,
			CreatedAt:        uc.now(),
		}
		if err := movRepo.Create(ctx, mov); err != nil {
			return err
		}
		result = MovementResult{
			ProductID:        in.ProductID,
			PreviousQuantity: stock.Quantity,
			NewQuantity:      newQty,
		}
		return nil
	})
	if err != nil {
		uc.record(in.Type, OutcomeRejected)
		return nil, err
	}
	uc.record(in.Type, OutcomeCommitted)
	if uc.levels != nil {
		uc.levels.SetStockLevel(product.ID, product.Name, result.NewQuantity)
	}
	return &result, nil
}

func validateMovement(in MovementInput) error {
	if in.Type != entity.MovementTypeIN && in.Type != entity.MovementTypeOUT {
		return domain.Invalid("movement type must be IN or OUT")
	}
	if strings.TrimSpace(in.ProductID) == "" {
		return domain.Invalid("product_id is required")
	}
	if in.Quantity <= 0 {
		return domain.Invalid("quantity must be a positive integer")
	}
	if in.Quantity > entity.MaxQuantity {
		return domain.Invalid("quantity must be at most %d", entity.MaxQuantity)
	}
	return nil
}

func defaultReason(movementType string) string {
	if movementType == entity.MovementTypeOUT {
		return entity.DefaultReasonOUT
	}
	return entity.DefaultReasonIN
}

func (uc *RegisterMovementUseCase) record(movementType, outcome string) {
	if uc.recorder == nil {
		return
	}
	uc.recorder.RecordMovement(movementType, outcome)
}
