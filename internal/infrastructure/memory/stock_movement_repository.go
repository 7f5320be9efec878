package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/inventory-services/internal/domain/entity"
	"github.com/jhoicas/inventory-services/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo libro de movimientos en memoria (solo inserción).
type StockMovementRepo struct {
	s  *Store
	tx *tx
}

// Create agrega el movimiento; dentro de una transacción se agrega al confirmar.
func (r *StockMovementRepo) Create(_ context.Context, movement *entity.StockMovement) error {
	m := *movement
	if r.tx != nil {
		r.tx.add(nil, func() { r.s.appendMovement(m) })
		return nil
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.appendMovement(m)
	return nil
}

// appendMovement requiere s.mu tomado en escritura.
func (s *Store) appendMovement(m entity.StockMovement) {
	if _, ok := s.products[m.ProductID]; !ok {
		return
	}
	s.seq++
	s.movements = append(s.movements, movementRow{seq: s.seq, m: m})
}

// ListRecent devuelve hasta limit movimientos, más reciente primero.
func (r *StockMovementRepo) ListRecent(_ context.Context, productID string, limit int) ([]*entity.StockMovementDetail, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	rows := make([]movementRow, 0, len(r.s.movements))
	for _, row := range r.s.movements {
		if productID == "" || row.m.ProductID == productID {
			rows = append(rows, row)
		}
	}
	// seq se asigna al confirmar, así que refleja el orden de commit.
	sort.Slice(rows, func(i, j int) bool { return rows[i].seq > rows[j].seq })
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	out := make([]*entity.StockMovementDetail, 0, len(rows))
	for _, row := range rows {
		p := r.s.products[row.m.ProductID]
		out = append(out, &entity.StockMovementDetail{
			StockMovement: row.m,
			ProductName:   p.Name,
			SKU:           p.SKU,
		})
	}
	return out, nil
}
