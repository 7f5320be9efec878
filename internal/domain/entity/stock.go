package entity

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// Umbrales por defecto al crear el registro de stock de un producto nuevo.
const (
	DefaultMinStock = 5
	DefaultMaxStock = 100
)

// MaxQuantity tope de cantidad y saldo: las columnas de stock son INTEGER.
const MaxQuantity = math.MaxInt32

// Stock es el saldo actual de un producto (uno por producto).
// Solo el motor de movimientos modifica Quantity.
type Stock struct {
	ProductID string
	Quantity  int
	MinStock  int
	MaxStock  int
	UpdatedAt time.Time
}

// NewStock crea el registro inicial: cantidad 0 con los umbrales por defecto.
func NewStock(productID string, now time.Time) *Stock {
	return &Stock{
		ProductID: productID,
		Quantity:  0,
		MinStock:  DefaultMinStock,
		MaxStock:  DefaultMaxStock,
		UpdatedAt: now,
	}
}

// StockDetail es el stock enriquecido con datos del catálogo (solo lectura).
type StockDetail struct {
	Stock
	ProductName string
	SKU         string
	Price       decimal.Decimal
}
