package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer representa un cliente con línea de crédito.
// Balance es lo que debe (no negativo); CreditLimit el tope para ventas a crédito.
type Customer struct {
	ID          string
	Name        string
	Phone       string
	CreditLimit decimal.Decimal
	Balance     decimal.Decimal
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Available devuelve el crédito disponible (nunca negativo).
func (c *Customer) Available() decimal.Decimal {
	a := c.CreditLimit.Sub(c.Balance)
	if a.IsNegative() {
		return decimal.Zero
	}
	return a
}
