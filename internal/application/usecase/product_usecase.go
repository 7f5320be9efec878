package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/inventory-services/internal/application/dto"
	"github.com/jhoicas/inventory-services/internal/domain"
	"github.com/jhoicas/inventory-services/internal/domain/entity"
	"github.com/jhoicas/inventory-services/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var errSKUTaken = domain.Conflict("SKU already exists")

// skuConflict traduce el ErrDuplicate del repositorio (carrera entre dos altas con el mismo SKU).
func skuConflict(err error) error {
	if errors.Is(err, domain.ErrDuplicate) {
		return errSKUTaken
	}
	return err
}

// ProductUseCase casos de uso CRUD para productos. El stock se maneja vía movimientos.
type ProductUseCase struct {
	repo     repository.ProductRepository
	txRunner CatalogTxRunner
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, txRunner CatalogTxRunner) *ProductUseCase {
	return &ProductUseCase{repo: repo, txRunner: txRunner}
}

// Create crea un producto y su registro de stock inicial (cantidad 0, min 5, max 100).
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.SKU = strings.TrimSpace(in.SKU)
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	if in.Price.IsNegative() {
		return nil, domain.Invalid("price must not be negative")
	}
	sku := in.SKU
	existing, err := uc.repo.GetBySKU(ctx, sku)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errSKUTaken
	}

	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		SKU:         sku,
		Price:       *in.Price,
		Category:    normalizeOptional(in.Category),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	err = uc.txRunner.RunCatalog(ctx, func(productRepo repository.ProductRepository, stockRepo repository.StockRepository) error {
		if err := productRepo.Create(ctx, product); err != nil {
			return err
		}
		return stockRepo.Create(ctx, entity.NewStock(product.ID, now))
	})
	if err != nil {
		return nil, skuConflict(err)
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID o domain.ErrNotFound.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.NotFound("Product", id)
	}
	return toProductResponse(product), nil
}

// Update actualiza los campos presentes. Un cambio de SKU se valida contra el resto del catálogo.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	in.Name = trimmed(in.Name)
	in.SKU = trimmed(in.SKU)
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	if err := requireNonBlank("name", in.Name); err != nil {
		return nil, err
	}
	if err := requireNonBlank("sku", in.SKU); err != nil {
		return nil, err
	}
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.NotFound("Product", id)
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.SKU != nil {
		sku := *in.SKU
		if sku != product.SKU {
			other, err := uc.repo.GetBySKU(ctx, sku)
			if err != nil {
				return nil, err
			}
			if other != nil && other.ID != product.ID {
				return nil, errSKUTaken
			}
			product.SKU = sku
		}
	}
	if in.Price != nil {
		if in.Price.LessThan(decimal.Zero) {
			return nil, domain.Invalid("price must not be negative")
		}
		product.Price = *in.Price
	}
	if in.Category != nil {
		product.Category = normalizeOptional(in.Category)
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, skuConflict(err)
	}
	return toProductResponse(product), nil
}

// Delete elimina un producto por ID. La integridad referencial la resuelve la BD.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

// List lista productos filtrando por categoría y búsqueda en nombre/SKU, ordenados por nombre.
func (uc *ProductUseCase) List(ctx context.Context, filter repository.ProductFilter) ([]dto.ProductResponse, error) {
	filter.Category = strings.TrimSpace(filter.Category)
	filter.Search = strings.TrimSpace(filter.Search)
	list, err := uc.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items, nil
}

// Categories devuelve las categorías distintas (sin nulos), ordenadas.
func (uc *ProductUseCase) Categories(ctx context.Context) ([]string, error) {
	cats, err := uc.repo.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	if cats == nil {
		cats = []string{}
	}
	return cats, nil
}

func normalizeOptional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

// trimmed devuelve una copia sin espacios al borde; nil sigue siendo nil (campo ausente).
func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}

// requireNonBlank rechaza un campo presente que quedó vacío tras recortar espacios.
func requireNonBlank(field string, s *string) error {
	if s != nil && *s == "" {
		return domain.InvalidField(field, field+" must not be empty")
	}
	return nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		SKU:         p.SKU,
		Price:       p.Price,
		Category:    p.Category,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
