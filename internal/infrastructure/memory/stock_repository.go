package memory

import (
	"context"
	"sort"
	"time"

	"github.com/jhoicas/inventory-services/internal/domain"
	"github.com/jhoicas/inventory-services/internal/domain/entity"
	invdomain "github.com/jhoicas/inventory-services/internal/domain/inventory"
	"github.com/jhoicas/inventory-services/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo repositorio de stock en memoria. Dentro de una transacción las escrituras quedan
// pendientes hasta el commit.
type StockRepo struct {
	s  *Store
	tx *tx
}

// Create inserta el registro de stock de un producto.
func (r *StockRepo) Create(_ context.Context, stock *entity.Stock) error {
	st := *stock
	exists := func() error {
		if _, ok := r.s.stock[st.ProductID]; ok {
			return domain.ErrDuplicate
		}
		return nil
	}
	if r.tx != nil {
		r.tx.add(exists, func() { r.s.stock[st.ProductID] = st })
		return nil
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.products[st.ProductID]; !ok {
		return domain.NotFound("Product", st.ProductID)
	}
	if err := exists(); err != nil {
		return err
	}
	r.s.stock[st.ProductID] = st
	return nil
}

// GetForUpdate bloquea la fila del producto hasta el fin de la transacción.
// Fuera de transacción el bloqueo se libera al terminar la lectura.
func (r *StockRepo) GetForUpdate(ctx context.Context, productID string) (*entity.Stock, error) {
	if r.tx == nil {
		var out *entity.Stock
		err := r.s.withRowLock(ctx, productID, func() error {
			out = r.s.readStock(productID)
			return nil
		})
		return out, err
	}
	if err := r.s.lockRow(ctx, r.tx, productID); err != nil {
		return nil, err
	}
	if st, ok := r.tx.stock[productID]; ok {
		return &st, nil
	}
	st := r.s.readStock(productID)
	if st != nil {
		r.tx.stock[productID] = *st
	}
	return st, nil
}

func (s *Store) readStock(productID string) *entity.Stock {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st, ok := s.stock[productID]
	if !ok {
		return nil
	}
	return &st
}

// UpdateQuantity fija la cantidad de un producto.
func (r *StockRepo) UpdateQuantity(ctx context.Context, productID string, quantity int) error {
	return r.update(ctx, productID, func(st *entity.Stock) { st.Quantity = quantity })
}

// UpdateThresholds fija min_stock y max_stock.
func (r *StockRepo) UpdateThresholds(ctx context.Context, productID string, minStock, maxStock int) error {
	return r.update(ctx, productID, func(st *entity.Stock) {
		st.MinStock = minStock
		st.MaxStock = maxStock
	})
}

func (r *StockRepo) update(ctx context.Context, productID string, mutate func(st *entity.Stock)) error {
	if r.tx == nil {
		return r.s.withRowLock(ctx, productID, func() error {
			r.s.mu.Lock()
			defer r.s.mu.Unlock()
			st, ok := r.s.stock[productID]
			if !ok {
				return domain.NotFound("Stock", productID)
			}
			mutate(&st)
			st.UpdatedAt = time.Now()
			r.s.stock[productID] = st
			return nil
		})
	}

	if err := r.s.lockRow(ctx, r.tx, productID); err != nil {
		return err
	}
	st, ok := r.tx.stock[productID]
	if !ok {
		cur := r.s.readStock(productID)
		if cur == nil {
			return domain.NotFound("Stock", productID)
		}
		st = *cur
	}
	mutate(&st)
	st.UpdatedAt = time.Now()
	r.tx.stock[productID] = st
	r.tx.add(nil, func() {
		// El producto pudo borrarse entre tanto; no resucitar la fila.
		if _, ok := r.s.stock[productID]; ok {
			r.s.stock[productID] = r.tx.stock[productID]
		}
	})
	return nil
}

// GetDetail devuelve el stock enriquecido de un producto o (nil, nil).
func (r *StockRepo) GetDetail(_ context.Context, productID string) (*entity.StockDetail, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	st, ok := r.s.stock[productID]
	if !ok {
		return nil, nil
	}
	p, ok := r.s.products[productID]
	if !ok {
		return nil, nil
	}
	return detail(st, p), nil
}

// ListDetails lista el inventario ordenado por nombre de producto.
func (r *StockRepo) ListDetails(_ context.Context) ([]*entity.StockDetail, error) {
	list := r.details(func(*entity.Stock) bool { return true })
	sort.Slice(list, func(i, j int) bool { return list[i].ProductName < list[j].ProductName })
	return list, nil
}

// ListLow lista los productos con quantity <= min_stock, menor cantidad primero.
func (r *StockRepo) ListLow(_ context.Context) ([]*entity.StockDetail, error) {
	list := r.details(func(st *entity.Stock) bool { return invdomain.IsLow(st.Quantity, st.MinStock) })
	sort.Slice(list, func(i, j int) bool {
		if list[i].Quantity != list[j].Quantity {
			return list[i].Quantity < list[j].Quantity
		}
		return list[i].ProductName < list[j].ProductName
	})
	return list, nil
}

func (r *StockRepo) details(keep func(*entity.Stock) bool) []*entity.StockDetail {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var list []*entity.StockDetail
	for id, st := range r.s.stock {
		p, ok := r.s.products[id]
		if !ok || !keep(&st) {
			continue
		}
		list = append(list, detail(st, p))
	}
	return list
}

func detail(st entity.Stock, p entity.Product) *entity.StockDetail {
	return &entity.StockDetail{
		Stock:       st,
		ProductName: p.Name,
		SKU:         p.SKU,
		Price:       p.Price,
	}
}
