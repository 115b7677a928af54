package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Métodos de pago.
const (
	PaymentCash     = "efectivo"
	PaymentCard     = "tarjeta"
	PaymentTransfer = "transferencia"
	PaymentCredit   = "credito"
)

// Tipos de descuento.
const (
	DiscountAmount  = "amount"
	DiscountPercent = "percent"
)

// Sale es la cabecera inmutable de una venta. Los precios de las líneas son una
// copia del precio vigente al momento de la venta.
type Sale struct {
	ID            string
	Folio         string
	Date          time.Time
	Items         []SaleItem
	Subtotal      decimal.Decimal
	DiscountType  string          // amount | percent | "" (sin descuento)
	DiscountValue decimal.Decimal // valor capturado (monto o porcentaje)
	Discount      decimal.Decimal // descuento resuelto a monto absoluto
	Total         decimal.Decimal
	CustomerID    string // opcional
	CreditSale    bool
	PaymentMethod string
	CreatedAt     time.Time
}

// SaleItem línea de una venta.
type SaleItem struct {
	ProductID   string
	ProductName string
	Quantity    int64
	UnitPrice   decimal.Decimal
	Subtotal    decimal.Decimal
}
