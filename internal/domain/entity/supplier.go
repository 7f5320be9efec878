package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de proveedor.
const (
	SupplierStatusActive   = "ACTIVE"
	SupplierStatusInactive = "INACTIVE"
)

// DefaultSupplierCountry país asignado cuando no se indica uno.
const DefaultSupplierCountry = "Colombia"

// Supplier representa un proveedor.
type Supplier struct {
	ID            string
	Name          string
	ContactPerson string
	Email         string
	Phone         string
	Address       string
	City          *string
	Country       string
	Status        string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ProductSupplier asocia un producto con un proveedor (par único).
type ProductSupplier struct {
	ID         string
	ProductID  string
	SupplierID string
	CostPrice  *decimal.Decimal
	IsPrimary  bool
	CreatedAt  time.Time
}

// SupplierProduct es un producto visto desde un proveedor, con sus condiciones de compra.
type SupplierProduct struct {
	Product
	CostPrice *decimal.Decimal
	IsPrimary bool
}
