package entity

import "time"

// Estados de préstamo de refrigerador.
const (
	FridgeStatusEntregado = "entregado"
	FridgeStatusDevuelto  = "devuelto"
)

// FridgeLoan préstamo de refrigeradores a un cliente (punto de venta externo).
type FridgeLoan struct {
	ID           string
	CustomerID   string
	Quantity     int
	DeliveryDate time.Time
	Status       string
	ReturnDate   *time.Time
	Note         string
	CreatedAt    time.Time
}
