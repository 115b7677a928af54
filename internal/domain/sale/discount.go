package sale

import (
	"github.com/hedelmia/pos-api/internal/domain"
	"github.com/hedelmia/pos-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Discount descuento capturado en caja: monto fijo o porcentaje.
type Discount struct {
	Type  string // entity.DiscountAmount | entity.DiscountPercent
	Value decimal.Decimal
}

// Resolve convierte el descuento en un monto absoluto sobre subtotal.
// Monto: min(valor, subtotal). Porcentaje: min(valor,100)% del subtotal, redondeado a centavos.
// El total resultante (subtotal − descuento) nunca es negativo.
func (d *Discount) Resolve(subtotal decimal.Decimal) (decimal.Decimal, error) {
	if d == nil || d.Value.IsZero() {
		return decimal.Zero, nil
	}
	if d.Value.IsNegative() || domain.CheckMoney(d.Value) != nil {
		return decimal.Zero, domain.ErrInvalidAmount
	}
	var amount decimal.Decimal
	switch d.Type {
	case entity.DiscountAmount:
		amount = d.Value
	case entity.DiscountPercent:
		pct := decimal.Min(d.Value, hundred)
		amount = subtotal.Mul(pct).Div(hundred).Round(2)
	default:
		return decimal.Zero, domain.ErrInvalidInput
	}
	if amount.GreaterThan(subtotal) {
		amount = subtotal
	}
	return amount, nil
}
