package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// RawMaterial representa una materia prima (fruta, azúcar, palitos...).
// AvgCost es el costo unitario promedio ponderado, recalculado en cada entrada con costo.
type RawMaterial struct {
	ID        string
	Name      string
	Unit      string // kg, litro, pieza
	Stock     decimal.Decimal
	AvgCost   decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

// MaterialMovement registra una entrada o salida de materia prima.
// Quantity siempre positivo; el sentido lo da Type.
type MaterialMovement struct {
	ID         string
	MaterialID string
	Type       string // entrada | salida
	Quantity   decimal.Decimal
	TotalCost  *decimal.Decimal // solo en entradas con costo
	Note       string
	CreatedAt  time.Time
}
