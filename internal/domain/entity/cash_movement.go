package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Cajas disponibles.
const (
	CashBoxChica  = "chica"
	CashBoxGrande = "grande"
)

// Tipos de movimiento de caja.
const (
	CashKindEntrada = "entrada"
	CashKindSalida  = "salida"
)

// Origen del movimiento.
const (
	CashOriginManual = "manual"
	CashOriginVenta  = "venta"
)

// CashMovement es un asiento en el libro de una caja. Amount siempre positivo;
// el signo lo determina Kind.
type CashMovement struct {
	ID        string
	Box       string
	Kind      string
	Concept   string
	Amount    decimal.Decimal
	Date      time.Time
	Origin    string
	SaleID    string // solo para origin=venta
	CreatedAt time.Time
}

// IsValidCashBox indica si box es una caja conocida.
func IsValidCashBox(box string) bool {
	return box == CashBoxChica || box == CashBoxGrande
}

// IsValidCashKind indica si kind es entrada o salida.
func IsValidCashKind(kind string) bool {
	return kind == CashKindEntrada || kind == CashKindSalida
}
