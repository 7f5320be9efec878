package postgres_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/inventory-services/internal/application/dto"
	"github.com/jhoicas/inventory-services/internal/application/inventory"
	"github.com/jhoicas/inventory-services/internal/application/usecase"
	"github.com/jhoicas/inventory-services/internal/domain"
	"github.com/jhoicas/inventory-services/internal/domain/entity"
	"github.com/jhoicas/inventory-services/internal/infrastructure/postgres"
	"github.com/jhoicas/inventory-services/pkg/config"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// newTestPool levanta PostgreSQL en un contenedor y aplica el esquema embebido.
func newTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testing.Short() {
		t.Skip("integración con PostgreSQL omitida en modo -short")
	}
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("inventory_test"),
		tcpostgres.WithUsername("inventory"),
		tcpostgres.WithPassword("inventory"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	url, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := postgres.NewPool(ctx, config.DBConfig{DatabaseURL: url, MaxConns: 20, MinConns: 2})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, postgres.ApplySchema(ctx, pool))
	// El esquema es idempotente.
	require.NoError(t, postgres.ApplySchema(ctx, pool))
	return pool
}

type services struct {
	products  *usecase.ProductUseCase
	suppliers *usecase.SupplierUseCase
	movements *inventory.RegisterMovementUseCase
	queries   *inventory.StockQueryUseCase
}

func newServices(pool *pgxpool.Pool) services {
	productRepo := postgres.NewProductRepository(pool)
	tx := postgres.NewTxRunner(pool)
	return services{
		products:  usecase.NewProductUseCase(productRepo, tx),
		suppliers: usecase.NewSupplierUseCase(postgres.NewSupplierRepository(pool), productRepo),
		movements: inventory.NewRegisterMovementUseCase(tx, productRepo, nil),
		queries:   inventory.NewStockQueryUseCase(postgres.NewStockRepository(pool), postgres.NewStockMovementRepository(pool), nil),
	}
}

func TestPostgres(t *testing.T) {
	pool := newTestPool(t)
	svc := newServices(pool)
	ctx := context.Background()

	newProduct := func(t *testing.T, sku string) string {
		t.Helper()
		price := decimal.RequireFromString("19.99")
		p, err := svc.products.Create(ctx, dto.CreateProductRequest{Name: "Producto " + sku, SKU: sku, Price: &price})
		require.NoError(t, err)
		return p.ID
	}

	t.Run("libro de movimientos", func(t *testing.T) {
		id := newProduct(t, "LEDGER-1")

		_, err := svc.movements.RegisterMovement(ctx, inventory.MovementInput{ProductID: id, Type: entity.MovementTypeIN, Quantity: 10})
		require.NoError(t, err)
		res, err := svc.movements.RegisterMovement(ctx, inventory.MovementInput{ProductID: id, Type: entity.MovementTypeOUT, Quantity: 4, Reason: "venta"})
		require.NoError(t, err)
		assert.Equal(t, 10, res.PreviousQuantity)
		assert.Equal(t, 6, res.NewQuantity)

		_, err = svc.movements.RegisterMovement(ctx, inventory.MovementInput{ProductID: id, Type: entity.MovementTypeOUT, Quantity: 7})
		var insufficient *domain.InsufficientStockError
		require.True(t, errors.As(err, &insufficient))
		assert.Equal(t, 6, insufficient.Available)
		assert.Equal(t, 7, insufficient.Requested)

		stock, err := svc.queries.GetByProduct(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, 6, stock.Quantity)
		assert.Equal(t, "NORMAL", stock.Status)

		movs, err := svc.queries.Movements(ctx, id)
		require.NoError(t, err)
		require.Len(t, movs, 2)
		assert.Equal(t, entity.MovementTypeOUT, movs[0].MovementType)
		assert.Equal(t, "venta", movs[0].Reason)
		assert.Equal(t, entity.MovementTypeIN, movs[1].MovementType)

		sum := 0
		for _, m := range movs {
			if m.MovementType == entity.MovementTypeIN {
				sum += m.Quantity
			} else {
				sum -= m.Quantity
			}
		}
		assert.Equal(t, stock.Quantity, sum)
	})

	t.Run("salidas concurrentes no sobrevenden", func(t *testing.T) {
		id := newProduct(t, "CONC-1")
		_, err := svc.movements.RegisterMovement(ctx, inventory.MovementInput{ProductID: id, Type: entity.MovementTypeIN, Quantity: 20})
		require.NoError(t, err)

		const workers = 50
		var (
			wg           sync.WaitGroup
			mu           sync.Mutex
			ok, rejected int
		)
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := svc.movements.RegisterMovement(ctx, inventory.MovementInput{ProductID: id, Type: entity.MovementTypeOUT, Quantity: 1})
				mu.Lock()
				defer mu.Unlock()
				switch {
				case err == nil:
					ok++
				case errors.Is(err, domain.ErrInsufficientStock):
					rejected++
				default:
					t.Errorf("error inesperado: %v", err)
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, 20, ok)
		assert.Equal(t, workers-20, rejected)
		stock, err := svc.queries.GetByProduct(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, 0, stock.Quantity)
	})

	t.Run("sku duplicado", func(t *testing.T) {
		newProduct(t, "DUP-1")
		price := decimal.NewFromInt(1)
		_, err := svc.products.Create(ctx, dto.CreateProductRequest{Name: "Otro", SKU: "DUP-1", Price: &price})
		var conflict *domain.ConflictError
		require.True(t, errors.As(err, &conflict))
		assert.Equal(t, "SKU already exists", conflict.Message)
	})

	t.Run("id inválido es no encontrado", func(t *testing.T) {
		_, err := svc.products.GetByID(ctx, "not-a-uuid")
		assert.True(t, errors.Is(err, domain.ErrNotFound))
		_, err = svc.movements.RegisterMovement(ctx, inventory.MovementInput{ProductID: "not-a-uuid", Type: entity.MovementTypeIN, Quantity: 1})
		assert.True(t, errors.Is(err, domain.ErrNotFound))
	})

	t.Run("fecha del movimiento la fija la base de datos", func(t *testing.T) {
		id := newProduct(t, "CLOCK-1")
		movRepo := postgres.NewStockMovementRepository(pool)
		skewed := time.Date(2001, 1, 1, 0, 0, 0, 0, time.UTC)

		first := &entity.StockMovement{ID: uuid.NewString(), ProductID: id, Type: entity.MovementTypeIN, Quantity: 1, Reason: "a", NewQuantity: 1, CreatedAt: time.Now().Add(time.Hour)}
		require.NoError(t, movRepo.Create(ctx, first))
		second := &entity.StockMovement{ID: uuid.NewString(), ProductID: id, Type: entity.MovementTypeIN, Quantity: 1, Reason: "b", PreviousQuantity: 1, NewQuantity: 2, CreatedAt: skewed}
		require.NoError(t, movRepo.Create(ctx, second))
		assert.True(t, second.CreatedAt.After(skewed), "created_at viene de now() en la base de datos")

		list, err := movRepo.ListRecent(ctx, id, 10)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, second.ID, list[0].ID)
		assert.Equal(t, first.ID, list[1].ID)
	})

	t.Run("el libro es de solo inserción", func(t *testing.T) {
		id := newProduct(t, "APPEND-1")
		_, err := svc.movements.RegisterMovement(ctx, inventory.MovementInput{ProductID: id, Type: entity.MovementTypeIN, Quantity: 1})
		require.NoError(t, err)
		_, err = pool.Exec(ctx, `UPDATE stock_movements SET quantity = 99 WHERE product_id = $1`, id)
		assert.Error(t, err)
	})

	t.Run("proveedores y asociaciones", func(t *testing.T) {
		productID := newProduct(t, "SUP-1")
		s, err := svc.suppliers.Create(ctx, dto.CreateSupplierRequest{Name: "Acme", Email: "ventas@acme.co"})
		require.NoError(t, err)
		assert.Equal(t, entity.SupplierStatusActive, s.Status)

		cost := decimal.RequireFromString("12.00")
		_, err = svc.suppliers.AssociateProduct(ctx, s.ID, dto.AssociateProductRequest{ProductID: productID, CostPrice: &cost, IsPrimary: true})
		require.NoError(t, err)
		_, err = svc.suppliers.AssociateProduct(ctx, s.ID, dto.AssociateProductRequest{ProductID: productID})
		assert.True(t, errors.Is(err, domain.ErrDuplicate))

		list, err := svc.suppliers.Products(ctx, s.ID)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.True(t, list[0].IsPrimary)

		// Borrar el producto elimina sus asociaciones.
		require.NoError(t, svc.products.Delete(ctx, productID))
		list, err = svc.suppliers.Products(ctx, s.ID)
		require.NoError(t, err)
		assert.Empty(t, list)
	})
}
