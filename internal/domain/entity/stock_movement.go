package entity

import "time"

// Tipos de movimiento de inventario (productos y materias primas).
const (
	MovementTypeEntrada = "entrada"
	MovementTypeSalida  = "salida"
	MovementTypeVenta   = "venta" // salida generada por una venta
)

// StockMovement registra un cambio en el stock de un producto.
// Quantity es con signo: positivo entrada, negativo salida/venta.
type StockMovement struct {
	ID        string
	ProductID string
	Type      string
	Quantity  int64
	Reference string // folio de la venta, nota de ajuste, etc.
	CreatedAt time.Time
}
