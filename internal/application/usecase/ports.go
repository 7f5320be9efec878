package usecase

import (
	"context"

	"github.com/jhoicas/inventory-services/internal/domain/repository"
)

// CatalogTxRunner ejecuta el alta de un producto y de su registro de stock en una sola transacción.
type CatalogTxRunner interface {
	RunCatalog(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		stockRepo repository.StockRepository,
	) error) error
}
