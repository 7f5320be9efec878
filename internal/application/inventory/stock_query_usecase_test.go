package inventory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jhoicas/inventory-services/internal/application/dto"
	"github.com/jhoicas/inventory-services/internal/application/inventory"
	"github.com/jhoicas/inventory-services/internal/domain"
	"github.com/jhoicas/inventory-services/internal/domain/entity"
	"github.com/jhoicas/inventory-services/internal/infrastructure/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newQueries(store *memory.Store, spy *recorderSpy) *inventory.StockQueryUseCase {
	if spy == nil {
		return inventory.NewStockQueryUseCase(store.Stock(), store.Movements(), nil)
	}
	return inventory.NewStockQueryUseCase(store.Stock(), store.Movements(), spy)
}

func TestStockQuery_ListEnrichedAndClassified(t *testing.T) {
	store := memory.NewStore()
	spy := newRecorderSpy()
	low := seedProduct(t, store, "Bolt", 5)
	seedProduct(t, store, "Anchor", 50)
	high := seedProduct(t, store, "Cable", 100)

	list, err := newQueries(store, spy).List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 3)

	assert.Equal(t, []string{"Anchor", "Bolt", "Cable"}, []string{list[0].ProductName, list[1].ProductName, list[2].ProductName})
	assert.Equal(t, "NORMAL", list[0].Status)
	assert.Equal(t, "LOW", list[1].Status)
	assert.Equal(t, "HIGH", list[2].Status)
	assert.NotEmpty(t, list[1].SKU)
	assert.True(t, list[1].Price.IsPositive())

	assert.Equal(t, 5, spy.levels[low])
	assert.Equal(t, 100, spy.levels[high])
}

func TestStockQuery_ListEmpty(t *testing.T) {
	list, err := newQueries(memory.NewStore(), nil).List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestStockQuery_GetByProduct(t *testing.T) {
	store := memory.NewStore()
	id := seedProduct(t, store, "Bolt", 6)
	q := newQueries(store, nil)

	out, err := q.GetByProduct(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, 6, out.Quantity)
	assert.Equal(t, entity.DefaultMinStock, out.MinStock)
	assert.Equal(t, entity.DefaultMaxStock, out.MaxStock)
	assert.Equal(t, "NORMAL", out.Status)

	_, err = q.GetByProduct(context.Background(), uuid.NewString())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	assert.Equal(t, "Stock not found", err.Error())
}

func TestStockQuery_LowStockOrderedByQuantity(t *testing.T) {
	store := memory.NewStore()
	seedProduct(t, store, "Three", 3)
	seedProduct(t, store, "Zero", 0)
	seedProduct(t, store, "Five", 5)
	seedProduct(t, store, "Six", 6)

	list, err := newQueries(store, nil).LowStock(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []int{0, 3, 5}, []int{list[0].Quantity, list[1].Quantity, list[2].Quantity})
	for _, s := range list {
		assert.Equal(t, "LOW", s.Status)
	}
}

func TestStockQuery_MovementsNewestFirstCappedAt100(t *testing.T) {
	store := memory.NewStore()
	uc := inventory.NewRegisterMovementUseCase(store, store.Products(), nil)
	a := seedProduct(t, store, "A", 0)
	b := seedProduct(t, store, "B", 0)
	ctx := context.Background()

	for i := 0; i < 110; i++ {
		_, err := uc.RegisterMovement(ctx, inventory.MovementInput{ProductID: a, Type: entity.MovementTypeIN, Quantity: 1})
		require.NoError(t, err)
	}
	_, err := uc.RegisterMovement(ctx, inventory.MovementInput{ProductID: b, Type: entity.MovementTypeIN, Quantity: 7})
	require.NoError(t, err)

	q := newQueries(store, nil)

	all, err := q.Movements(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, entity.MovementHistoryLimit)
	assert.Equal(t, b, all[0].ProductID, "el último movimiento va primero")

	onlyA, err := q.Movements(ctx, a)
	require.NoError(t, err)
	require.Len(t, onlyA, entity.MovementHistoryLimit)
	assert.Equal(t, 110, onlyA[0].NewQuantity)
	assert.Equal(t, 11, onlyA[len(onlyA)-1].NewQuantity)
	for _, m := range onlyA {
		assert.Equal(t, a, m.ProductID)
	}

	none, err := q.Movements(ctx, uuid.NewString())
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestStockQuery_UpdateThresholds(t *testing.T) {
	store := memory.NewStore()
	id := seedProduct(t, store, "Bolt", 8)
	q := newQueries(store, nil)

	minStock, maxStock := 10, 20
	out, err := q.UpdateThresholds(context.Background(), id, dto.UpdateThresholdsRequest{MinStock: &minStock, MaxStock: &maxStock})
	require.NoError(t, err)
	assert.Equal(t, 10, out.MinStock)
	assert.Equal(t, "LOW", out.Status)
	assert.Equal(t, 8, out.Quantity, "la cantidad no cambia")

	// min > max se acepta.
	minStock, maxStock = 30, 5
	_, err = q.UpdateThresholds(context.Background(), id, dto.UpdateThresholdsRequest{MinStock: &minStock, MaxStock: &maxStock})
	require.NoError(t, err)

	negative := -1
	_, err = q.UpdateThresholds(context.Background(), id, dto.UpdateThresholdsRequest{MinStock: &negative, MaxStock: &maxStock})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))

	_, err = q.UpdateThresholds(context.Background(), uuid.NewString(), dto.UpdateThresholdsRequest{MinStock: &maxStock, MaxStock: &maxStock})
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}
