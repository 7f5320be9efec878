package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Name        string           `json:"name" validate:"required,max=200"`
	Description string           `json:"description"`
	SKU         string           `json:"sku" validate:"required,max=100"`
	Price       *decimal.Decimal `json:"price" validate:"required"`
	Category    *string          `json:"category" validate:"omitempty,max=100"`
}

// UpdateProductRequest entrada para actualizar un producto; los campos nil no cambian.
type UpdateProductRequest struct {
	Name        *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string          `json:"description"`
	SKU         *string          `json:"sku" validate:"omitempty,min=1,max=100"`
	Price       *decimal.Decimal `json:"price"`
	Category    *string          `json:"category" validate:"omitempty,max=100"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	SKU         string          `json:"sku"`
	Price       decimal.Decimal `json:"price"`
	Category    *string         `json:"category"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
