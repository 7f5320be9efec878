package inventory

import (
	"context"

	"github.com/jhoicas/inventory-services/internal/application/dto"
)

// RegisterMovementFromRequest adapta el body HTTP al caso de uso RegisterMovement.
// El tipo lo fija la ruta (/stock/in o /stock/out), no el cliente.
func (uc *RegisterMovementUseCase) RegisterMovementFromRequest(ctx context.Context, movementType string, in dto.StockMovementRequest) (*dto.StockMovementResult, error) {
	if err := dto.Validate(in); err != nil {
		uc.record(movementType, OutcomeRejected)
		return nil, err
	}
	res, err := uc.RegisterMovement(ctx, MovementInput{
		ProductID: in.ProductID,
		Type:      movementType,
		Quantity:  *in.Quantity,
		Reason:    in.Reason,
	})
	if err != nil {
		return nil, err
	}
	return &dto.StockMovementResult{
		ProductID:        res.ProductID,
		PreviousQuantity: res.PreviousQuantity,
		NewQuantity:      res.NewQuantity,
	}, nil
}
