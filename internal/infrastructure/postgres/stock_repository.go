package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/inventory-services/internal/domain"
	"github.com/jhoicas/inventory-services/internal/domain/entity"
	"github.com/jhoicas/inventory-services/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

const stockDetailQuery = `
	SELECT s.product_id, s.quantity, s.min_stock, s.max_stock, s.updated_at, p.name, p.sku, p.price
	FROM stock s
	INNER JOIN products p ON p.id = s.product_id`

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con pool o tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// Create inserta el registro de stock de un producto.
func (r *StockRepo) Create(ctx context.Context, stock *entity.Stock) error {
	query := `
		INSERT INTO stock (product_id, quantity, min_stock, max_stock, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query, stock.ProductID, stock.Quantity, stock.MinStock, stock.MaxStock, stock.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.NotFound("Product", stock.ProductID)
		}
		return fmt.Errorf("insert stock: %w", err)
	}
	return nil
}

// GetForUpdate obtiene el stock y bloquea la fila para update (SELECT FOR UPDATE).
// Con READ COMMITTED un SELECT simple no bloquea; sin FOR UPDATE dos salidas concurrentes
// leerían el mismo saldo y una de las dos actualizaciones se perdería.
func (r *StockRepo) GetForUpdate(ctx context.Context, productID string) (*entity.Stock, error) {
	if !validID(productID) {
		return nil, nil
	}
	query := `
		SELECT product_id, quantity, min_stock, max_stock, updated_at
		FROM stock WHERE product_id = $1
		FOR UPDATE`
	var s entity.Stock
	err := r.q.QueryRow(ctx, query, productID).Scan(
		&s.ProductID, &s.Quantity, &s.MinStock, &s.MaxStock, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock for update: %w", err)
	}
	return &s, nil
}

// UpdateQuantity fija la cantidad de un producto.
func (r *StockRepo) UpdateQuantity(ctx context.Context, productID string, quantity int) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE stock SET quantity = $2, updated_at = now() WHERE product_id = $1`,
		productID, quantity,
	)
	if err != nil {
		return fmt.Errorf("update stock quantity: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.NotFound("Stock", productID)
	}
	return nil
}

// UpdateThresholds fija min_stock y max_stock sin tocar la cantidad.
func (r *StockRepo) UpdateThresholds(ctx context.Context, productID string, minStock, maxStock int) error {
	if !validID(productID) {
		return domain.NotFound("Stock", productID)
	}
	cmd, err := r.q.Exec(ctx,
		`UPDATE stock SET min_stock = $2, max_stock = $3, updated_at = now() WHERE product_id = $1`,
		productID, minStock, maxStock,
	)
	if err != nil {
		return fmt.Errorf("update stock thresholds: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.NotFound("Stock", productID)
	}
	return nil
}

// GetDetail devuelve el stock enriquecido de un producto.
func (r *StockRepo) GetDetail(ctx context.Context, productID string) (*entity.StockDetail, error) {
	if !validID(productID) {
		return nil, nil
	}
	d, err := scanStockDetail(r.q.QueryRow(ctx, stockDetailQuery+` WHERE s.product_id = $1`, productID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock detail: %w", err)
	}
	return d, nil
}

// ListDetails lista todo el inventario ordenado por nombre de producto.
func (r *StockRepo) ListDetails(ctx context.Context) ([]*entity.StockDetail, error) {
	return r.listDetails(ctx, stockDetailQuery+` ORDER BY p.name`)
}

// ListLow lista los productos con quantity <= min_stock, menor cantidad primero.
func (r *StockRepo) ListLow(ctx context.Context) ([]*entity.StockDetail, error) {
	return r.listDetails(ctx, stockDetailQuery+` WHERE s.quantity <= s.min_stock ORDER BY s.quantity ASC, p.name`)
}

func (r *StockRepo) listDetails(ctx context.Context, query string) ([]*entity.StockDetail, error) {
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list stock: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockDetail
	for rows.Next() {
		d, err := scanStockDetail(rows)
		if err != nil {
			return nil, fmt.Errorf("scan stock: %w", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

func scanStockDetail(row pgx.Row) (*entity.StockDetail, error) {
	var d entity.StockDetail
	err := row.Scan(&d.ProductID, &d.Quantity, &d.MinStock, &d.MaxStock, &d.UpdatedAt, &d.ProductName, &d.SKU, &d.Price)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
