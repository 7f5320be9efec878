package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jhoicas/inventory-services/internal/application/dto"
	"github.com/jhoicas/inventory-services/internal/application/usecase"
	"github.com/jhoicas/inventory-services/internal/domain"
	"github.com/jhoicas/inventory-services/internal/domain/entity"
	"github.com/jhoicas/inventory-services/internal/domain/repository"
	"github.com/jhoicas/inventory-services/internal/infrastructure/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSupplierUC(store *memory.Store) *usecase.SupplierUseCase {
	return usecase.NewSupplierUseCase(store.Suppliers(), store.Products())
}

func TestSupplierUseCase_CreateDefaults(t *testing.T) {
	uc := newSupplierUC(memory.NewStore())

	out, err := uc.Create(context.Background(), dto.CreateSupplierRequest{Name: "Acme", Email: "sales@acme.test"})
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultSupplierCountry, out.Country)
	assert.Equal(t, entity.SupplierStatusActive, out.Status)
}

func TestSupplierUseCase_CreateValidation(t *testing.T) {
	uc := newSupplierUC(memory.NewStore())

	tests := []struct {
		name  string
		in    dto.CreateSupplierRequest
		field string
	}{
		{"sin nombre", dto.CreateSupplierRequest{}, "name"},
		{"nombre en blanco", dto.CreateSupplierRequest{Name: "   "}, "name"},
		{"email inválido", dto.CreateSupplierRequest{Name: "Acme", Email: "nope"}, "email"},
		{"estado inválido", dto.CreateSupplierRequest{Name: "Acme", Status: "PAUSED"}, "status"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Create(context.Background(), tt.in)
			var verr *domain.ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestSupplierUseCase_UpdateBlankName(t *testing.T) {
	uc := newSupplierUC(memory.NewStore())
	ctx := context.Background()
	s, err := uc.Create(ctx, dto.CreateSupplierRequest{Name: "  Acme  "})
	require.NoError(t, err)
	assert.Equal(t, "Acme", s.Name)

	_, err = uc.Update(ctx, s.ID, dto.UpdateSupplierRequest{Name: ptr(" \t ")})
	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "name", verr.Field)

	got, err := uc.GetByID(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme", got.Name)
}

func TestSupplierUseCase_UpdateListCities(t *testing.T) {
	uc := newSupplierUC(memory.NewStore())
	ctx := context.Background()
	a, err := uc.Create(ctx, dto.CreateSupplierRequest{Name: "Acme", City: ptr("Medellín"), ContactPerson: "Ana"})
	require.NoError(t, err)
	_, err = uc.Create(ctx, dto.CreateSupplierRequest{Name: "Bravo", City: ptr("Bogotá"), Status: entity.SupplierStatusInactive})
	require.NoError(t, err)
	_, err = uc.Create(ctx, dto.CreateSupplierRequest{Name: "Charlie", City: ptr("Medellín")})
	require.NoError(t, err)

	updated, err := uc.Update(ctx, a.ID, dto.UpdateSupplierRequest{Phone: ptr("555-0101")})
	require.NoError(t, err)
	assert.Equal(t, "555-0101", updated.Phone)
	assert.Equal(t, "Acme", updated.Name)

	active, err := uc.List(ctx, repository.SupplierFilter{Status: entity.SupplierStatusActive})
	require.NoError(t, err)
	assert.Len(t, active, 2)

	byContact, err := uc.List(ctx, repository.SupplierFilter{Search: "ana"})
	require.NoError(t, err)
	require.Len(t, byContact, 1)
	assert.Equal(t, a.ID, byContact[0].ID)

	cities, err := uc.Cities(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Bogotá", "Medellín"}, cities)

	_, err = uc.Update(ctx, "missing", dto.UpdateSupplierRequest{Phone: ptr("1")})
	assert.Equal(t, "Supplier not found", err.Error())
}

func TestSupplierUseCase_Associations(t *testing.T) {
	store := memory.NewStore()
	uc := newSupplierUC(store)
	products := newProductUC(store)
	ctx := context.Background()

	sup, err := uc.Create(ctx, dto.CreateSupplierRequest{Name: "Acme"})
	require.NoError(t, err)
	widget := createProduct(t, products, "Widget", "W-1", nil)
	bolt := createProduct(t, products, "Bolt", "B-1", nil)

	link, err := uc.AssociateProduct(ctx, sup.ID, dto.AssociateProductRequest{ProductID: widget.ID, CostPrice: ptr(decimal.NewFromInt(7))})
	require.NoError(t, err)
	assert.Equal(t, sup.ID, link.SupplierID)
	_, err = uc.AssociateProduct(ctx, sup.ID, dto.AssociateProductRequest{ProductID: bolt.ID, IsPrimary: true})
	require.NoError(t, err)

	_, err = uc.AssociateProduct(ctx, sup.ID, dto.AssociateProductRequest{ProductID: widget.ID})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrDuplicate))
	assert.Equal(t, "Product already associated with this supplier", err.Error())

	_, err = uc.AssociateProduct(ctx, sup.ID, dto.AssociateProductRequest{ProductID: "missing"})
	assert.Equal(t, "Product not found", err.Error())
	_, err = uc.AssociateProduct(ctx, "missing", dto.AssociateProductRequest{ProductID: widget.ID})
	assert.Equal(t, "Supplier not found", err.Error())
	_, err = uc.AssociateProduct(ctx, sup.ID, dto.AssociateProductRequest{ProductID: widget.ID, CostPrice: ptr(decimal.NewFromInt(-1))})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))

	list, err := uc.Products(ctx, sup.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Bolt", list[0].Name, "primario primero")
	assert.True(t, list[1].CostPrice.Equal(decimal.NewFromInt(7)))

	require.NoError(t, uc.DisassociateProduct(ctx, sup.ID, widget.ID))
	err = uc.DisassociateProduct(ctx, sup.ID, widget.ID)
	assert.Equal(t, "Association not found", err.Error())

	_, err = uc.Products(ctx, "missing")
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	require.NoError(t, uc.Delete(ctx, sup.ID))
	_, err = uc.GetByID(ctx, sup.ID)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}
