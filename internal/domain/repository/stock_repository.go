package repository

import (
	"context"

	"github.com/jhoicas/inventory-services/internal/domain/entity"
)

// StockRepository define el puerto para consultar/actualizar el saldo por producto.
// Las mutaciones se usan dentro de transacciones para garantizar consistencia.
type StockRepository interface {
	Create(ctx context.Context, stock *entity.Stock) error
	// GetForUpdate bloquea la fila hasta el fin de la transacción (SELECT FOR UPDATE).
	// Devuelve (nil, nil) si el producto no tiene registro de stock.
	GetForUpdate(ctx context.Context, productID string) (*entity.Stock, error)
	UpdateQuantity(ctx context.Context, productID string, quantity int) error
	UpdateThresholds(ctx context.Context, productID string, minStock, maxStock int) error

	// Lecturas enriquecidas con el catálogo.
	GetDetail(ctx context.Context, productID string) (*entity.StockDetail, error)
	ListDetails(ctx context.Context) ([]*entity.StockDetail, error)
	ListLow(ctx context.Context) ([]*entity.StockDetail, error)
}
