// Package credit contiene las reglas de crédito de clientes.
package credit

import (
	"github.com/hedelmia/pos-api/internal/domain"
	"github.com/hedelmia/pos-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// CheckCharge valida que cargar amount al cliente no supere su límite.
func CheckCharge(c *entity.Customer, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return domain.ErrInvalidAmount
	}
	if err := domain.CheckMoney(amount); err != nil {
		return err
	}
	if c.Balance.Add(amount).GreaterThan(c.CreditLimit) {
		return &domain.CreditLimitError{
			CustomerID: c.ID,
			Balance:    c.Balance,
			Limit:      c.CreditLimit,
			Amount:     amount,
		}
	}
	return nil
}

// CheckNote valida que el pagaré no exceda el saldo actual del cliente.
func CheckNote(c *entity.Customer, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return domain.ErrInvalidAmount
	}
	if err := domain.CheckMoney(amount); err != nil {
		return err
	}
	if amount.GreaterThan(c.Balance) {
		return domain.ErrAmountExceedsBalance
	}
	return nil
}

// Paid suma los abonos de un crédito.
func Paid(c *entity.Credit) decimal.Decimal {
	total := decimal.Zero
	for _, p := range c.Payments {
		total = total.Add(p.Amount)
	}
	return total
}

// Remaining saldo pendiente = monto − Σabonos, nunca negativo.
func Remaining(c *entity.Credit) decimal.Decimal {
	r := c.Amount.Sub(Paid(c))
	if r.IsNegative() {
		return decimal.Zero
	}
	return r
}
