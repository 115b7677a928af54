package inventory

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/hedelmia/pos-api/internal/domain"
)

// CostCalculator implementa la lógica de costo promedio ponderado (servicio de dominio).
// NuevoCosto = ((StockActual * CostoActual) + (CantEntrada * CostoEntrada)) / (StockActual + CantEntrada)
func CostCalculator(stockActual, costoActual, cantEntrada, costoEntrada decimal.Decimal) decimal.Decimal {
	sum := stockActual.Add(cantEntrada)
	if sum.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	num := stockActual.Mul(costoActual).Add(cantEntrada.Mul(costoEntrada))
	return num.Div(sum)
}

// AverageCostAfterEntry recalcula el costo promedio cuando la entrada trae un costo total
// (no unitario): el costo unitario implícito es costoTotal / cantEntrada. El resultado se
// redondea a AvgCostPlaces, la precisión con que se guarda.
func AverageCostAfterEntry(stockActual, costoActual, cantEntrada, costoTotal decimal.Decimal) decimal.Decimal {
	if !cantEntrada.IsPositive() {
		return costoActual
	}
	unit := costoTotal.Div(cantEntrada)
	return CostCalculator(stockActual, costoActual, cantEntrada, unit).Round(domain.AvgCostPlaces)
}

// ApplyDelta devuelve el stock resultante y false si quedaría negativo.
// No hay surtido parcial: o se aplica completo o no se aplica.
// Requiere un delta ya validado con CheckDelta.
func ApplyDelta(stock, delta int64) (int64, bool) {
	if delta < 0 && stock < -delta {
		return stock, false
	}
	return stock + delta, true
}

// CheckDelta rechaza deltas que desbordarían int64 al sumarse a stock
// (o al negarse, en el caso de math.MinInt64).
func CheckDelta(stock, delta int64) error {
	if delta == math.MinInt64 || (delta > 0 && stock > math.MaxInt64-delta) {
		return domain.ErrInvalidAmount
	}
	return nil
}
