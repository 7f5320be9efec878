package entity

import "time"

// Tipos de movimiento de inventario.
const (
	MovementTypeIN  = "IN"  // entrada
	MovementTypeOUT = "OUT" // salida
)

// Motivos por defecto cuando el cliente no envía uno.
const (
	DefaultReasonIN  = "Stock entry"
	DefaultReasonOUT = "Stock exit"
)

// MovementHistoryLimit es la ventana máxima del historial de movimientos.
const MovementHistoryLimit = 100

// StockMovement es una entrada inmutable del libro de movimientos.
// Quantity siempre es positiva; el sentido lo da Type.
type StockMovement struct {
	ID               string
	ProductID        string
	Type             string
	Quantity         int
	Reason           string
	PreviousQuantity int
	NewQuantity      int
	CreatedAt        time.Time
}

// Delta devuelve el efecto con signo del movimiento sobre el saldo.
func (m *StockMovement) Delta() int {
	if m.Type == MovementTypeOUT {
		return -m.Quantity
	}
	return m.Quantity
}

// StockMovementDetail agrega nombre y SKU del producto para el historial.
type StockMovementDetail struct {
	StockMovement
	ProductName string
	SKU         string
}
