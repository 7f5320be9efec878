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
)

// SupplierUseCase casos de uso CRUD para proveedores y su relación con productos.
type SupplierUseCase struct {
	repo     repository.SupplierRepository
	products repository.ProductRepository
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(repo repository.SupplierRepository, products repository.ProductRepository) *SupplierUseCase {
	return &SupplierUseCase{repo: repo, products: products}
}

// Create crea un proveedor. País por defecto Colombia, estado por defecto ACTIVE.
func (uc *SupplierUseCase) Create(ctx context.Context, in dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	country := strings.TrimSpace(in.Country)
	if country == "" {
		country = entity.DefaultSupplierCountry
	}
	status := in.Status
	if status == "" {
		status = entity.SupplierStatusActive
	}
	now := time.Now()
	s := &entity.Supplier{
		ID:            uuid.New().String(),
		Name:          in.Name,
		ContactPerson: in.ContactPerson,
		Email:         in.Email,
		Phone:         in.Phone,
		Address:       in.Address,
		City:          normalizeOptional(in.City),
		Country:       country,
		Status:        status,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(ctx, s); err != nil {
		return nil, err
	}
	return toSupplierResponse(s), nil
}

// GetByID obtiene un proveedor o domain.ErrNotFound.
func (uc *SupplierUseCase) GetByID(ctx context.Context, id string) (*dto.SupplierResponse, error) {
	s, err := uc.getSupplier(ctx, id)
	if err != nil {
		return nil, err
	}
	return toSupplierResponse(s), nil
}

// Update actualiza los campos presentes.
func (uc *SupplierUseCase) Update(ctx context.Context, id string, in dto.UpdateSupplierRequest) (*dto.SupplierResponse, error) {
	in.Name = trimmed(in.Name)
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	if err := requireNonBlank("name", in.Name); err != nil {
		return nil, err
	}
	s, err := uc.getSupplier(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		s.Name = *in.Name
	}
	if in.ContactPerson != nil {
		s.ContactPerson = *in.ContactPerson
	}
	if in.Email != nil {
		s.Email = *in.Email
	}
	if in.Phone != nil {
		s.Phone = *in.Phone
	}
	if in.Address != nil {
		s.Address = *in.Address
	}
	if in.City != nil {
		s.City = normalizeOptional(in.City)
	}
	if in.Country != nil {
		s.Country = *in.Country
	}
	if in.Status != nil {
		s.Status = *in.Status
	}
	s.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, s); err != nil {
		return nil, err
	}
	return toSupplierResponse(s), nil
}

// Delete elimina un proveedor por ID.
func (uc *SupplierUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

// List lista proveedores con filtros de estado, ciudad y búsqueda libre.
func (uc *SupplierUseCase) List(ctx context.Context, filter repository.SupplierFilter) ([]dto.SupplierResponse, error) {
	filter.Status = strings.TrimSpace(filter.Status)
	filter.City = strings.TrimSpace(filter.City)
	filter.Search = strings.TrimSpace(filter.Search)
	list, err := uc.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SupplierResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSupplierResponse(s))
	}
	return items, nil
}

// Cities devuelve las ciudades distintas de los proveedores, ordenadas.
func (uc *SupplierUseCase) Cities(ctx context.Context) ([]string, error) {
	cities, err := uc.repo.ListCities(ctx)
	if err != nil {
		return nil, err
	}
	if cities == nil {
		cities = []string{}
	}
	return cities, nil
}

// Products lista los productos asociados a un proveedor existente.
func (uc *SupplierUseCase) Products(ctx context.Context, supplierID string) ([]dto.SupplierProductResponse, error) {
	if _, err := uc.getSupplier(ctx, supplierID); err != nil {
		return nil, err
	}
	list, err := uc.repo.ListProducts(ctx, supplierID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SupplierProductResponse, 0, len(list))
	for _, sp := range list {
		items = append(items, dto.SupplierProductResponse{
			ProductResponse: *toProductResponse(&sp.Product),
			CostPrice:       sp.CostPrice,
			IsPrimary:       sp.IsPrimary,
		})
	}
	return items, nil
}

// AssociateProduct asocia un producto con el proveedor. El par duplicado devuelve domain.ErrDuplicate.
func (uc *SupplierUseCase) AssociateProduct(ctx context.Context, supplierID string, in dto.AssociateProductRequest) (*dto.ProductSupplierResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	if in.CostPrice != nil && in.CostPrice.IsNegative() {
		return nil, domain.Invalid("cost_price must not be negative")
	}
	if _, err := uc.getSupplier(ctx, supplierID); err != nil {
		return nil, err
	}
	product, err := uc.products.GetByID(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.NotFound("Product", in.ProductID)
	}
	link := &entity.ProductSupplier{
		ID:         uuid.New().String(),
		ProductID:  in.ProductID,
		SupplierID: supplierID,
		CostPrice:  in.CostPrice,
		IsPrimary:  in.IsPrimary,
		CreatedAt:  time.Now(),
	}
	if err := uc.repo.AddProduct(ctx, link); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, domain.Conflict("Product already associated with this supplier")
		}
		return nil, err
	}
	return &dto.ProductSupplierResponse{
		ID:         link.ID,
		ProductID:  link.ProductID,
		SupplierID: link.SupplierID,
		CostPrice:  link.CostPrice,
		IsPrimary:  link.IsPrimary,
	}, nil
}

// DisassociateProduct elimina la asociación; domain.ErrNotFound si no existía.
func (uc *SupplierUseCase) DisassociateProduct(ctx context.Context, supplierID, productID string) error {
	return uc.repo.RemoveProduct(ctx, supplierID, productID)
}

func (uc *SupplierUseCase) getSupplier(ctx context.Context, id string) (*entity.Supplier, error) {
	s, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.NotFound("Supplier", id)
	}
	return s, nil
}

func toSupplierResponse(s *entity.Supplier) *dto.SupplierResponse {
	return &dto.SupplierResponse{
		ID:            s.ID,
		Name:          s.Name,
		ContactPerson: s.ContactPerson,
		Email:         s.Email,
		Phone:         s.Phone,
		Address:       s.Address,
		City:          s.City,
		Country:       s.Country,
		Status:        s.Status,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}
