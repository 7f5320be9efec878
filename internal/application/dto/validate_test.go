package dto

import (
	"errors"
	"math"
	"testing"

	"github.com/jhoicas/inventory-services/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_ReportsJSONFieldName(t *testing.T) {
	zero := 0
	err := Validate(StockMovementRequest{ProductID: "p-1", Quantity: &zero})
	require.Error(t, err)

	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "quantity", verr.Field)
	assert.Equal(t, "quantity must be greater than 0", verr.Message)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestValidate_Messages(t *testing.T) {
	negative := -1
	huge := math.MaxInt32 + 1
	tests := []struct {
		name    string
		in      any
		message string
	}{
		{"required", StockMovementRequest{}, "product_id is required"},
		{"lte", StockMovementRequest{ProductID: "p-1", Quantity: &huge}, "quantity must be at most 2147483647"},
		{"gte", UpdateThresholdsRequest{MinStock: &negative, MaxStock: &negative}, "min_stock must be at least 0"},
		{"email", CreateSupplierRequest{Name: "Acme", Email: "x"}, "email must be a valid email"},
		{"oneof", CreateSupplierRequest{Name: "Acme", Status: "OTHER"}, "status must be one of [ACTIVE INACTIVE]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.in)
			require.Error(t, err)
			assert.Equal(t, tt.message, err.Error())
		})
	}
}

func TestValidate_OK(t *testing.T) {
	qty := 3
	assert.NoError(t, Validate(StockMovementRequest{ProductID: "p-1", Quantity: &qty, Reason: "restock"}))
	assert.NoError(t, Validate(UpdateProductRequest{}))
}

func TestEnvelope(t *testing.T) {
	list := List([]string{}, 0)
	require.NotNil(t, list.Count)
	assert.Equal(t, 0, *list.Count)
	assert.True(t, list.Success)

	fail := Fail("Product not found")
	assert.False(t, fail.Success)
	assert.Nil(t, fail.Data)
}
