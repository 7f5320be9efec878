package memory

import (
	"context"
	"sort"
	"strings"

	"github.com/jhoicas/inventory-services/internal/domain"
	"github.com/jhoicas/inventory-services/internal/domain/entity"
	"github.com/jhoicas/inventory-services/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo repositorio de proveedores en memoria.
type SupplierRepo struct {
	s *Store
}

func (r *SupplierRepo) Create(_ context.Context, supplier *entity.Supplier) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.suppliers[supplier.ID] = *supplier
	return nil
}

func (r *SupplierRepo) GetByID(_ context.Context, id string) (*entity.Supplier, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	sup, ok := r.s.suppliers[id]
	if !ok {
		return nil, nil
	}
	return &sup, nil
}

func (r *SupplierRepo) Update(_ context.Context, supplier *entity.Supplier) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.suppliers[supplier.ID]; !ok {
		return domain.NotFound("Supplier", supplier.ID)
	}
	r.s.suppliers[supplier.ID] = *supplier
	return nil
}

// Delete elimina el proveedor y sus asociaciones.
func (r *SupplierRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.suppliers[id]; !ok {
		return domain.NotFound("Supplier", id)
	}
	delete(r.s.suppliers, id)
	for k := range r.s.links {
		if k.supplierID == id {
			delete(r.s.links, k)
		}
	}
	return nil
}

func (r *SupplierRepo) List(_ context.Context, filter repository.SupplierFilter) ([]*entity.Supplier, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	search := strings.ToLower(filter.Search)
	var list []*entity.Supplier
	for _, sup := range r.s.suppliers {
		if filter.Status != "" && sup.Status != filter.Status {
			continue
		}
		if filter.City != "" && (sup.City == nil || *sup.City != filter.City) {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(sup.Name), search) &&
			!strings.Contains(strings.ToLower(sup.ContactPerson), search) &&
			!strings.Contains(strings.ToLower(sup.Email), search) {
			continue
		}
		cp := sup
		list = append(list, &cp)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, nil
}

func (r *SupplierRepo) ListCities(_ context.Context) ([]string, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	seen := make(map[string]struct{})
	var out []string
	for _, sup := range r.s.suppliers {
		if sup.City == nil {
			continue
		}
		if _, ok := seen[*sup.City]; ok {
			continue
		}
		seen[*sup.City] = struct{}{}
		out = append(out, *sup.City)
	}
	sort.Strings(out)
	return out, nil
}

// ListProducts productos asociados al proveedor, primario primero y luego por nombre.
func (r *SupplierRepo) ListProducts(_ context.Context, supplierID string) ([]*entity.SupplierProduct, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var list []*entity.SupplierProduct
	for k, link := range r.s.links {
		if k.supplierID != supplierID {
			continue
		}
		p, ok := r.s.products[k.productID]
		if !ok {
			continue
		}
		list = append(list, &entity.SupplierProduct{Product: p, CostPrice: link.CostPrice, IsPrimary: link.IsPrimary})
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].IsPrimary != list[j].IsPrimary {
			return list[i].IsPrimary
		}
		return list[i].Name < list[j].Name
	})
	return list, nil
}

// AddProduct asocia un producto; domain.ErrDuplicate si el par ya existe.
func (r *SupplierRepo) AddProduct(_ context.Context, link *entity.ProductSupplier) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.products[link.ProductID]; !ok {
		return domain.NotFound("Product", link.ProductID)
	}
	if _, ok := r.s.suppliers[link.SupplierID]; !ok {
		return domain.NotFound("Supplier", link.SupplierID)
	}
	k := linkKey{supplierID: link.SupplierID, productID: link.ProductID}
	if _, ok := r.s.links[k]; ok {
		return domain.ErrDuplicate
	}
	r.s.links[k] = *link
	return nil
}

func (r *SupplierRepo) RemoveProduct(_ context.Context, supplierID, productID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	k := linkKey{supplierID: supplierID, productID: productID}
	if _, ok := r.s.links[k]; !ok {
		return domain.NotFound("Association", supplierID+"/"+productID)
	}
	delete(r.s.links, k)
	return nil
}
