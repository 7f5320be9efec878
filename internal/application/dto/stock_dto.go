package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockMovementRequest body para POST /api/stock/in y /api/stock/out.
type StockMovementRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  *int   `json:"quantity" validate:"required,gt=0,lte=2147483647"`
	Reason    string `json:"reason" validate:"max=255"`
}

// StockMovementResult resultado de un movimiento aplicado.
type StockMovementResult struct {
	ProductID        string `json:"product_id"`
	PreviousQuantity int    `json:"previous_quantity"`
	NewQuantity      int    `json:"new_quantity"`
}

// UpdateThresholdsRequest body para PUT /api/stock/product/:productId/thresholds.
type UpdateThresholdsRequest struct {
	MinStock *int `json:"min_stock" validate:"required,gte=0"`
	MaxStock *int `json:"max_stock" validate:"required,gte=0"`
}

// StockResponse stock enriquecido con el catálogo y el estado derivado.
type StockResponse struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	SKU         string          `json:"sku"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	MinStock    int             `json:"min_stock"`
	MaxStock    int             `json:"max_stock"`
	Status      string          `json:"status"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// StockMovementResponse entrada del historial de movimientos.
type StockMovementResponse struct {
	ID               string    `json:"id"`
	ProductID        string    `json:"product_id"`
	ProductName      string    `json:"product_name"`
	SKU              string    `json:"sku"`
	MovementType     string    `json:"movement_type"`
	Quantity         int       `json:"quantity"`
	Reason           string    `json:"reason"`
	PreviousQuantity int       `json:"previous_quantity"`
	NewQuantity      int       `json:"new_quantity"`
	CreatedAt        time.Time `json:"created_at"`
}
