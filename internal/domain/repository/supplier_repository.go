package repository

import (
	"context"

	"github.com/jhoicas/inventory-services/internal/domain/entity"
)

// SupplierFilter filtros del listado de proveedores.
type SupplierFilter struct {
	Status string
	City   string
	Search string // nombre, persona de contacto o email
}

// SupplierRepository define el puerto de persistencia para proveedores y su relación con productos.
type SupplierRepository interface {
	Create(ctx context.Context, supplier *entity.Supplier) error
	GetByID(ctx context.Context, id string) (*entity.Supplier, error)
	Update(ctx context.Context, supplier *entity.Supplier) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter SupplierFilter) ([]*entity.Supplier, error)
	ListCities(ctx context.Context) ([]string, error)

	ListProducts(ctx context.Context, supplierID string) ([]*entity.SupplierProduct, error)
	// AddProduct devuelve domain.ErrDuplicate si el par ya existe.
	AddProduct(ctx context.Context, link *entity.ProductSupplier) error
	// RemoveProduct devuelve domain.ErrNotFound si la asociación no existe.
	RemoveProduct(ctx context.Context, supplierID, productID string) error
}
