package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/inventory-services/internal/domain/entity"
	"github.com/jhoicas/inventory-services/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo implementación sobre PostgreSQL (usable con pool o tx).
// No existe UPDATE ni DELETE sobre stock_movements.
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Create agrega un movimiento al libro. created_at lo fija la base de datos (reloj único
// para todas las instancias) y se devuelve en m.CreatedAt.
func (r *StockMovementRepo) Create(ctx context.Context, m *entity.StockMovement) error {
	query := `
		INSERT INTO stock_movements (id, product_id, movement_type, quantity, reason, previous_quantity, new_quantity)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at`
	err := r.q.QueryRow(ctx, query,
		m.ID, m.ProductID, m.Type, m.Quantity, m.Reason,
		m.PreviousQuantity, m.NewQuantity,
	).Scan(&m.CreatedAt)
	if err != nil {
		return fmt.Errorf("create stock movement: %w", err)
	}
	return nil
}

// ListRecent lista movimientos del más reciente al más antiguo, opcionalmente de un solo producto.
// El orden es el de inserción (seq): dentro de un producto coincide con el orden de commit.
func (r *StockMovementRepo) ListRecent(ctx context.Context, productID string, limit int) ([]*entity.StockMovementDetail, error) {
	query := `
		SELECT sm.id, sm.product_id, sm.movement_type, sm.quantity, sm.reason,
		       sm.previous_quantity, sm.new_quantity, sm.created_at, p.name, p.sku
		FROM stock_movements sm
		INNER JOIN products p ON sm.product_id = p.id`
	args := []any{}
	pos := 1
	if productID != "" {
		if !validID(productID) {
			return nil, nil
		}
		query += fmt.Sprintf(" WHERE sm.product_id = $%d", pos)
		args = append(args, productID)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY sm.seq DESC LIMIT $%d", pos)
	args = append(args, limit)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockMovementDetail
	for rows.Next() {
		var m entity.StockMovementDetail
		if err := rows.Scan(&m.ID, &m.ProductID, &m.Type, &m.Quantity, &m.Reason,
			&m.PreviousQuantity, &m.NewQuantity, &m.CreatedAt, &m.ProductName, &m.SKU); err != nil {
			return nil, fmt.Errorf("scan stock movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
