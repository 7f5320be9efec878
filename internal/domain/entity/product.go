package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo. Es la fuente de verdad de nombre, SKU y precio.
// La cantidad disponible no vive aquí sino en Stock.
type Product struct {
	ID          string
	Name        string
	Description string
	SKU         string          // único en todo el catálogo
	Price       decimal.Decimal // precio de venta, no negativo
	Category    *string         // opcional
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
