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

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

const supplierColumns = `id, name, contact_person, email, phone, address, city, country, status, created_at, updated_at`

// SupplierRepo implementación del puerto SupplierRepository sobre PostgreSQL.
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository construye el adaptador de proveedores. Pasar pool o tx (Querier).
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

// Create persiste un proveedor.
func (r *SupplierRepo) Create(ctx context.Context, s *entity.Supplier) error {
	query := `
		INSERT INTO suppliers (` + supplierColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		s.ID, s.Name, s.ContactPerson, s.Email, s.Phone, s.Address,
		s.City, s.Country, s.Status, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert supplier: %w", err)
	}
	return nil
}

// GetByID obtiene un proveedor por ID. (nil, nil) si no existe.
func (r *SupplierRepo) GetByID(ctx context.Context, id string) (*entity.Supplier, error) {
	if !validID(id) {
		return nil, nil
	}
	s, err := scanSupplier(r.q.QueryRow(ctx, `SELECT `+supplierColumns+` FROM suppliers WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	return s, nil
}

// Update actualiza un proveedor existente.
func (r *SupplierRepo) Update(ctx context.Context, s *entity.Supplier) error {
	if !validID(s.ID) {
		return domain.NotFound("Supplier", s.ID)
	}
	query := `
		UPDATE suppliers SET name = $2, contact_person = $3, email = $4, phone = $5, address = $6,
			city = $7, country = $8, status = $9, updated_at = $10
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		s.ID, s.Name, s.ContactPerson, s.Email, s.Phone, s.Address,
		s.City, s.Country, s.Status, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update supplier: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.NotFound("Supplier", s.ID)
	}
	return nil
}

// Delete elimina un proveedor y sus asociaciones.
func (r *SupplierRepo) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return domain.NotFound("Supplier", id)
	}
	cmd, err := r.q.Exec(ctx, `DELETE FROM suppliers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete supplier: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.NotFound("Supplier", id)
	}
	return nil
}

// List lista proveedores con filtros opcionales, ordenados por nombre.
func (r *SupplierRepo) List(ctx context.Context, filter repository.SupplierFilter) ([]*entity.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers WHERE 1=1`
	args := []any{}
	pos := 1
	if filter.Status != "" {
		query += fmt.Sprintf(" AND status = $%d", pos)
		args = append(args, filter.Status)
		pos++
	}
	if filter.City != "" {
		query += fmt.Sprintf(" AND city = $%d", pos)
		args = append(args, filter.City)
		pos++
	}
	if filter.Search != "" {
		query += fmt.Sprintf(" AND (name ILIKE $%d OR contact_person ILIKE $%d OR email ILIKE $%d)", pos, pos, pos)
		args = append(args, likePattern(filter.Search))
		pos++
	}
	query += " ORDER BY name ASC"

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Supplier
	for rows.Next() {
		s, err := scanSupplier(rows)
		if err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// ListCities devuelve las ciudades distintas no nulas.
func (r *SupplierRepo) ListCities(ctx context.Context) ([]string, error) {
	rows, err := r.q.Query(ctx, `SELECT DISTINCT city FROM suppliers WHERE city IS NOT NULL ORDER BY city`)
	if err != nil {
		return nil, fmt.Errorf("list cities: %w", err)
	}
	return pgx.CollectRows(rows, pgx.RowTo[string])
}

// ListProducts lista los productos asociados a un proveedor, primario primero.
func (r *SupplierRepo) ListProducts(ctx context.Context, supplierID string) ([]*entity.SupplierProduct, error) {
	if !validID(supplierID) {
		return nil, nil
	}
	query := `
		SELECT p.id, p.name, p.description, p.sku, p.price, p.category, p.created_at, p.updated_at,
		       ps.cost_price, ps.is_primary
		FROM product_suppliers ps
		INNER JOIN products p ON p.id = ps.product_id
		WHERE ps.supplier_id = $1
		ORDER BY ps.is_primary DESC, p.name ASC`
	rows, err := r.q.Query(ctx, query, supplierID)
	if err != nil {
		return nil, fmt.Errorf("list supplier products: %w", err)
	}
	defer rows.Close()
	var list []*entity.SupplierProduct
	for rows.Next() {
		var sp entity.SupplierProduct
		if err := rows.Scan(&sp.ID, &sp.Name, &sp.Description, &sp.SKU, &sp.Price, &sp.Category,
			&sp.CreatedAt, &sp.UpdatedAt, &sp.CostPrice, &sp.IsPrimary); err != nil {
			return nil, fmt.Errorf("scan supplier product: %w", err)
		}
		list = append(list, &sp)
	}
	return list, rows.Err()
}

// AddProduct asocia un producto a un proveedor.
func (r *SupplierRepo) AddProduct(ctx context.Context, link *entity.ProductSupplier) error {
	query := `
		INSERT INTO product_suppliers (id, product_id, supplier_id, cost_price, is_primary, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		link.ID, link.ProductID, link.SupplierID, link.CostPrice, link.IsPrimary, link.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.NotFound("Product", link.ProductID)
		}
		return fmt.Errorf("insert product supplier: %w", err)
	}
	return nil
}

// RemoveProduct elimina la asociación producto-proveedor.
func (r *SupplierRepo) RemoveProduct(ctx context.Context, supplierID, productID string) error {
	if !validID(supplierID) || !validID(productID) {
		return domain.NotFound("Association", supplierID+"/"+productID)
	}
	cmd, err := r.q.Exec(ctx,
		`DELETE FROM product_suppliers WHERE supplier_id = $1 AND product_id = $2`,
		supplierID, productID,
	)
	if err != nil {
		return fmt.Errorf("delete product supplier: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.NotFound("Association", supplierID+"/"+productID)
	}
	return nil
}

func scanSupplier(row pgx.Row) (*entity.Supplier, error) {
	var s entity.Supplier
	err := row.Scan(&s.ID, &s.Name, &s.ContactPerson, &s.Email, &s.Phone, &s.Address,
		&s.City, &s.Country, &s.Status, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
