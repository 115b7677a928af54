package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un crédito.
const (
	CreditStatusPendiente = "pendiente"
	CreditStatusPagado    = "pagado"
)

// Credit es un crédito otorgado a un cliente con su lista ordenada de abonos.
// El estado lo cambia el usuario; no se deriva del saldo restante.
type Credit struct {
	ID         string
	CustomerID string
	Amount     decimal.Decimal
	Date       time.Time
	Status     string
	Note       string
	Payments   []CreditPayment
	CreatedAt  time.Time
}

// CreditPayment abono a un crédito.
type CreditPayment struct {
	ID        string
	CreditID  string
	Amount    decimal.Decimal
	Date      time.Time
	Note      string
	CreatedAt time.Time
}

// IsValidCreditStatus valida el estado de un crédito.
func IsValidCreditStatus(s string) bool {
	return s == CreditStatusPendiente || s == CreditStatusPagado
}
