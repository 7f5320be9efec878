package repository

import (
	"context"

	"github.com/jhoicas/inventory-services/internal/domain/entity"
)

// ProductFilter filtros del listado de productos. Campos vacíos no filtran.
type ProductFilter struct {
	Category string
	Search   string // subcadena sobre nombre o SKU
}

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	// Create devuelve domain.ErrDuplicate si el SKU ya existe.
	Create(ctx context.Context, product *entity.Product) error
	// GetByID devuelve (nil, nil) si no existe.
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	GetBySKU(ctx context.Context, sku string) (*entity.Product, error)
	// Update devuelve domain.ErrNotFound si no hay fila y domain.ErrDuplicate si el SKU choca.
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter ProductFilter) ([]*entity.Product, error)
	ListCategories(ctx context.Context) ([]string, error)
}
