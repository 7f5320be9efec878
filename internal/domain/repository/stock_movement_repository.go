package repository

import (
	"context"

	"github.com/jhoicas/inventory-services/internal/domain/entity"
)

// StockMovementRepository puerto del libro de movimientos. Solo admite inserción y lectura.
type StockMovementRepository interface {
	Create(ctx context.Context, movement *entity.StockMovement) error
	// ListRecent devuelve los movimientos más recientes primero. productID vacío = todos.
	ListRecent(ctx context.Context, productID string, limit int) ([]*entity.StockMovementDetail, error)
}
