package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jhoicas/inventory-services/internal/domain"
	"github.com/jhoicas/inventory-services/internal/domain/entity"
	"github.com/jhoicas/inventory-services/internal/domain/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seed(t *testing.T, s *Store, id, sku string, qty int) {
	t.Helper()
	ctx := context.Background()
	now := time.Now()
	require.NoError(t, s.Products().Create(ctx, &entity.Product{ID: id, Name: id, SKU: sku, Price: decimal.NewFromInt(1), CreatedAt: now, UpdatedAt: now}))
	st := entity.NewStock(id, now)
	st.Quantity = qty
	require.NoError(t, s.Stock().Create(ctx, st))
}

func TestRun_WritesInvisibleUntilCommit(t *testing.T) {
	s := NewStore()
	seed(t, s, "p1", "S1", 5)
	ctx := context.Background()

	err := s.Run(ctx, func(mov repository.StockMovementRepository, stock repository.StockRepository) error {
		st, err := stock.GetForUpdate(ctx, "p1")
		require.NoError(t, err)
		require.NoError(t, stock.UpdateQuantity(ctx, "p1", st.Quantity+3))
		require.NoError(t, mov.Create(ctx, &entity.StockMovement{ID: "m1", ProductID: "p1", Type: entity.MovementTypeIN, Quantity: 3, CreatedAt: time.Now()}))

		// Dentro de la tx se ve el valor pendiente; fuera todavía no.
		again, err := stock.GetForUpdate(ctx, "p1")
		require.NoError(t, err)
		assert.Equal(t, 8, again.Quantity)
		d, err := s.Stock().GetDetail(ctx, "p1")
		require.NoError(t, err)
		assert.Equal(t, 5, d.Quantity)
		return nil
	})
	require.NoError(t, err)

	d, err := s.Stock().GetDetail(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 8, d.Quantity)
	movs, err := s.Movements().ListRecent(ctx, "p1", 10)
	require.NoError(t, err)
	assert.Len(t, movs, 1)
}

func TestRun_RollbackDiscardsWrites(t *testing.T) {
	s := NewStore()
	seed(t, s, "p1", "S1", 5)
	ctx := context.Background()
	boom := errors.New("boom")

	err := s.Run(ctx, func(mov repository.StockMovementRepository, stock repository.StockRepository) error {
		_, _ = stock.GetForUpdate(ctx, "p1")
		_ = stock.UpdateQuantity(ctx, "p1", 0)
		_ = mov.Create(ctx, &entity.StockMovement{ID: "m1", ProductID: "p1"})
		return boom
	})
	assert.ErrorIs(t, err, boom)

	d, _ := s.Stock().GetDetail(ctx, "p1")
	assert.Equal(t, 5, d.Quantity)
	movs, _ := s.Movements().ListRecent(ctx, "", 10)
	assert.Empty(t, movs)

	// El bloqueo quedó libre.
	short, cancel := context.WithTimeout(ctx, 100*time.Millisecond)
	defer cancel()
	_, err = s.Stock().GetForUpdate(short, "p1")
	assert.NoError(t, err)
}

func TestRunCatalog_DuplicateSKUAtCommit(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	now := time.Now()

	err := s.RunCatalog(ctx, func(products repository.ProductRepository, stock repository.StockRepository) error {
		require.NoError(t, products.Create(ctx, &entity.Product{ID: "a", SKU: "DUP", CreatedAt: now}))
		// Otra alta con el mismo SKU confirma antes que esta transacción.
		seed(t, s, "b", "DUP", 0)
		return stock.Create(ctx, entity.NewStock("a", now))
	})
	assert.True(t, errors.Is(err, domain.ErrDuplicate))

	p, err := s.Products().GetByID(ctx, "a")
	require.NoError(t, err)
	assert.Nil(t, p)
	d, err := s.Stock().GetDetail(ctx, "a")
	require.NoError(t, err)
	assert.Nil(t, d)
}

func TestDeleteProduct_CascadesMovementsAndLinks(t *testing.T) {
	s := NewStore()
	seed(t, s, "p1", "S1", 5)
	ctx := context.Background()
	require.NoError(t, s.Movements().Create(ctx, &entity.StockMovement{ID: "m1", ProductID: "p1", Type: entity.MovementTypeIN, Quantity: 5, NewQuantity: 5}))
	require.NoError(t, s.Suppliers().Create(ctx, &entity.Supplier{ID: "s1", Name: "Acme"}))
	require.NoError(t, s.Suppliers().AddProduct(ctx, &entity.ProductSupplier{ID: "l1", ProductID: "p1", SupplierID: "s1"}))

	require.NoError(t, s.Products().Delete(ctx, "p1"))

	movs, _ := s.Movements().ListRecent(ctx, "", 10)
	assert.Empty(t, movs)
	prods, _ := s.Suppliers().ListProducts(ctx, "s1")
	assert.Empty(t, prods)
}

func TestListRecent_CommitOrderNotClock(t *testing.T) {
	s := NewStore()
	seed(t, s, "p1", "S1", 0)
	ctx := context.Background()
	now := time.Now()

	// El segundo movimiento confirma después pero trae un reloj atrasado.
	require.NoError(t, s.Movements().Create(ctx, &entity.StockMovement{ID: "first", ProductID: "p1", Type: entity.MovementTypeIN, Quantity: 1, NewQuantity: 1, CreatedAt: now}))
	require.NoError(t, s.Movements().Create(ctx, &entity.StockMovement{ID: "second", ProductID: "p1", Type: entity.MovementTypeIN, Quantity: 1, NewQuantity: 2, CreatedAt: now.Add(-time.Minute)}))

	movs, err := s.Movements().ListRecent(ctx, "p1", 10)
	require.NoError(t, err)
	require.Len(t, movs, 2)
	assert.Equal(t, "second", movs[0].ID)
	assert.Equal(t, "first", movs[1].ID)
}
