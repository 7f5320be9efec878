package inventory_test

import (
	"testing"

	"github.com/jhoicas/inventory-services/internal/domain/inventory"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		quantity int
		min, max int
		expected inventory.StockStatus
	}{
		{"vacío con defaults", 0, 5, 100, inventory.StatusLow},
		{"igual al mínimo", 5, 5, 100, inventory.StatusLow},
		{"entre umbrales", 6, 5, 100, inventory.StatusNormal},
		{"igual al máximo", 100, 5, 100, inventory.StatusHigh},
		{"sobre el máximo", 150, 5, 100, inventory.StatusHigh},
		{"umbrales cruzados gana LOW", 10, 20, 10, inventory.StatusLow},
		{"umbrales iguales", 7, 7, 7, inventory.StatusLow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, inventory.Classify(tt.quantity, tt.min, tt.max))
		})
	}
}

func TestIsLow(t *testing.T) {
	assert.True(t, inventory.IsLow(0, 0))
	assert.True(t, inventory.IsLow(3, 5))
	assert.True(t, inventory.IsLow(5, 5))
	assert.False(t, inventory.IsLow(6, 5))
}
