package domain

import "github.com/shopspring/decimal"

// Decimales que guarda el almacén: montos en centavos, cantidades de materia prima en milésimas
// y costo promedio con cuatro posiciones.
const (
	MoneyPlaces    int32 = 2
	QuantityPlaces int32 = 3
	AvgCostPlaces  int32 = 4
)

// FitsPlaces indica si d se representa sin pérdida con places decimales.
// "1.50" y "1.500" caben en 2; "0.333" no.
func FitsPlaces(d decimal.Decimal, places int32) bool {
	return d.Equal(d.Truncate(places))
}

// CheckMoney rechaza montos con fracciones de centavo. PostgreSQL los redondearía al guardar
// y el registro dejaría de cuadrar con lo que se devolvió al caller.
func CheckMoney(amounts ...decimal.Decimal) error {
	for _, a := range amounts {
		if !FitsPlaces(a, MoneyPlaces) {
			return ErrInvalidAmount
		}
	}
	return nil
}

// CheckQuantity igual que CheckMoney para cantidades de materia prima.
func CheckQuantity(q decimal.Decimal) error {
	if !FitsPlaces(q, QuantityPlaces) {
		return ErrInvalidAmount
	}
	return nil
}
