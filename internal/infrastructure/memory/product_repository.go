package memory

import (
	"context"
	"sort"
	"strings"

	"github.com/jhoicas/inventory-services/internal/domain"
	"github.com/jhoicas/inventory-services/internal/domain/entity"
	"github.com/jhoicas/inventory-services/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo repositorio de productos en memoria.
type ProductRepo struct {
	s  *Store
	tx *tx
}

// Create inserta un producto; domain.ErrDuplicate si el SKU ya existe.
func (r *ProductRepo) Create(_ context.Context, product *entity.Product) error {
	p := *product
	if r.tx != nil {
		r.s.mu.RLock()
		dup := r.s.skuTaken(p.SKU, "")
		r.s.mu.RUnlock()
		if dup {
			return domain.ErrDuplicate
		}
		r.tx.add(func() error {
			if r.s.skuTaken(p.SKU, "") {
				return domain.ErrDuplicate
			}
			return nil
		}, func() { r.s.products[p.ID] = p })
		return nil
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.skuTaken(p.SKU, "") {
		return domain.ErrDuplicate
	}
	r.s.products[p.ID] = p
	return nil
}

// skuTaken requiere s.mu tomado.
func (s *Store) skuTaken(sku, exceptID string) bool {
	for id, p := range s.products {
		if p.SKU == sku && id != exceptID {
			return true
		}
	}
	return false
}

// GetByID devuelve (nil, nil) si no existe.
func (r *ProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

// GetBySKU devuelve (nil, nil) si no existe.
func (r *ProductRepo) GetBySKU(_ context.Context, sku string) (*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, p := range r.s.products {
		if p.SKU == sku {
			cp := p
			return &cp, nil
		}
	}
	return nil, nil
}

// Update reemplaza el producto.
func (r *ProductRepo) Update(_ context.Context, product *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.products[product.ID]; !ok {
		return domain.NotFound("Product", product.ID)
	}
	if r.s.skuTaken(product.SKU, product.ID) {
		return domain.ErrDuplicate
	}
	r.s.products[product.ID] = *product
	return nil
}

// Delete elimina el producto con su stock, movimientos y asociaciones.
func (r *ProductRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.products[id]; !ok {
		return domain.NotFound("Product", id)
	}
	delete(r.s.products, id)
	delete(r.s.stock, id)
	kept := r.s.movements[:0]
	for _, row := range r.s.movements {
		if row.m.ProductID != id {
			kept = append(kept, row)
		}
	}
	r.s.movements = kept
	for k := range r.s.links {
		if k.productID == id {
			delete(r.s.links, k)
		}
	}
	return nil
}

// List filtra por categoría exacta y por subcadena de nombre o SKU, ordenado por nombre.
func (r *ProductRepo) List(_ context.Context, filter repository.ProductFilter) ([]*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	search := strings.ToLower(filter.Search)
	var list []*entity.Product
	for _, p := range r.s.products {
		if filter.Category != "" && (p.Category == nil || *p.Category != filter.Category) {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.SKU), search) {
			continue
		}
		cp := p
		list = append(list, &cp)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, nil
}

// ListCategories devuelve las categorías distintas, ordenadas.
func (r *ProductRepo) ListCategories(_ context.Context) ([]string, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	seen := make(map[string]struct{})
	var out []string
	for _, p := range r.s.products {
		if p.Category == nil {
			continue
		}
		if _, ok := seen[*p.Category]; ok {
			continue
		}
		seen[*p.Category] = struct{}{}
		out = append(out, *p.Category)
	}
	sort.Strings(out)
	return out, nil
}
