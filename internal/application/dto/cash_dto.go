package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CashMovementRequest movimiento manual de caja. Date opcional (RFC 3339).
type CashMovementRequest struct {
	Box     string          `json:"box" validate:"required,oneof=chica grande"`
	Kind    string          `json:"kind" validate:"required,oneof=entrada salida"`
	Concept string          `json:"concept" validate:"max=300"`
	Amount  decimal.Decimal `json:"amount"`
	Date    *time.Time      `json:"date"`
}

// CashMovementResponse asiento de caja.
type CashMovementResponse struct {
	ID      string          `json:"id"`
	Box     string          `json:"box"`
	Kind    string          `json:"kind"`
	Concept string          `json:"concept"`
	Amount  decimal.Decimal `json:"amount"`
	Date    time.Time       `json:"date"`
	Origin  string          `json:"origin"`
	SaleID  string          `json:"sale_id,omitempty"`
}

// CashBalanceResponse saldos de ambas cajas.
type CashBalanceResponse struct {
	Chica  decimal.Decimal `json:"chica"`
	Grande decimal.Decimal `json:"grande"`
}
