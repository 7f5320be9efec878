package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSupplierRequest entrada para crear un proveedor.
type CreateSupplierRequest struct {
	Name          string  `json:"name" validate:"required,max=200"`
	ContactPerson string  `json:"contact_person" validate:"max=200"`
	Email         string  `json:"email" validate:"omitempty,email"`
	Phone         string  `json:"phone" validate:"max=50"`
	Address       string  `json:"address"`
	City          *string `json:"city" validate:"omitempty,max=100"`
	Country       string  `json:"country" validate:"max=100"`
	Status        string  `json:"status" validate:"omitempty,oneof=ACTIVE INACTIVE"`
}

// UpdateSupplierRequest entrada para actualizar un proveedor; los campos nil no cambian.
type UpdateSupplierRequest struct {
	Name          *string `json:"name" validate:"omitempty,min=1,max=200"`
	ContactPerson *string `json:"contact_person" validate:"omitempty,max=200"`
	Email         *string `json:"email" validate:"omitempty,email"`
	Phone         *string `json:"phone" validate:"omitempty,max=50"`
	Address       *string `json:"address"`
	City          *string `json:"city" validate:"omitempty,max=100"`
	Country       *string `json:"country" validate:"omitempty,max=100"`
	Status        *string `json:"status" validate:"omitempty,oneof=ACTIVE INACTIVE"`
}

// SupplierResponse salida de un proveedor.
type SupplierResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	ContactPerson string    `json:"contact_person"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	Address       string    `json:"address"`
	City          *string   `json:"city"`
	Country       string    `json:"country"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// AssociateProductRequest body para POST /api/suppliers/:id/products.
type AssociateProductRequest struct {
	ProductID string           `json:"product_id" validate:"required"`
	CostPrice *decimal.Decimal `json:"cost_price"`
	IsPrimary bool             `json:"is_primary"`
}

// ProductSupplierResponse asociación creada.
type ProductSupplierResponse struct {
	ID         string           `json:"id"`
	ProductID  string           `json:"product_id"`
	SupplierID string           `json:"supplier_id"`
	CostPrice  *decimal.Decimal `json:"cost_price"`
	IsPrimary  bool             `json:"is_primary"`
}

// SupplierProductResponse producto de un proveedor con sus condiciones de compra.
type SupplierProductResponse struct {
	ProductResponse
	CostPrice *decimal.Decimal `json:"cost_price"`
	IsPrimary bool             `json:"is_primary"`
}
