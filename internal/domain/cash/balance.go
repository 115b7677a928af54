// Package cash contiene las reglas del libro de caja.
package cash

import (
	"github.com/hedelmia/pos-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// Balance recalcula el saldo de una caja desde su historial: Σentrada − Σsalida.
// Los movimientos de otras cajas se ignoran.
func Balance(box string, movements []*entity.CashMovement) decimal.Decimal {
	total := decimal.Zero
	for _, m := range movements {
		if m == nil || m.Box != box {
			continue
		}
		switch m.Kind {
		case entity.CashKindEntrada:
			total = total.Add(m.Amount)
		case entity.CashKindSalida:
			total = total.Sub(m.Amount)
		}
	}
	return total
}

// Totals devuelve las sumas de entradas y salidas de una caja.
func Totals(box string, movements []*entity.CashMovement) (in, out decimal.Decimal) {
	in, out = decimal.Zero, decimal.Zero
	for _, m := range movements {
		if m == nil || m.Box != box {
			continue
		}
		if m.Kind == entity.CashKindEntrada {
			in = in.Add(m.Amount)
		} else if m.Kind == entity.CashKindSalida {
			out = out.Add(m.Amount)
		}
	}
	return in, out
}
