package inventory

// StockStatus clasificación derivada del saldo frente a los umbrales. Nunca se persiste.
type StockStatus string

const (
	StatusLow    StockStatus = "LOW"
	StatusNormal StockStatus = "NORMAL"
	StatusHigh   StockStatus = "HIGH"
)

// Classify devuelve LOW si quantity <= min, HIGH si quantity >= max y NORMAL en otro caso.
// LOW gana cuando ambos umbrales se cruzan (min >= max).
func Classify(quantity, minStock, maxStock int) StockStatus {
	switch {
	case quantity <= minStock:
		return StatusLow
	case quantity >= maxStock:
		return StatusHigh
	default:
		return StatusNormal
	}
}

// IsLow indica si el saldo debe aparecer en las alertas de stock bajo.
func IsLow(quantity, minStock int) bool {
	return quantity <= minStock
}
