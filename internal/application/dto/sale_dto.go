package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/hedelmia/pos-api/internal/domain/sale"
)

// SaleItemRequest renglón pedido.
type SaleItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int64  `json:"quantity"`
}

// DiscountRequest descuento capturado en caja.
type DiscountRequest struct {
	Type  string          `json:"type" validate:"required,oneof=amount percent"`
	Value decimal.Decimal `json:"value"`
}

// CheckoutRequest venta completa.
type CheckoutRequest struct {
	Items         []SaleItemRequest `json:"items" validate:"dive"`
	Discount      *DiscountRequest  `json:"discount" validate:"omitempty"`
	CustomerID    string            `json:"customer_id"`
	CreditSale    bool              `json:"credit_sale"`
	PaymentMethod string            `json:"payment_method" validate:"omitempty,oneof=efectivo tarjeta transferencia credito"`
}

// CartItemRequest alta de un producto en el carrito que mantiene el cliente HTTP.
type CartItemRequest struct {
	Cart      sale.Cart `json:"cart"`
	ProductID string    `json:"product_id" validate:"required"`
	Quantity  int64     `json:"quantity"`
	// Set fija la cantidad en lugar de sumarla.
	Set bool `json:"set"`
}

// CartResponse carrito resultante.
type CartResponse struct {
	Cart     sale.Cart       `json:"cart"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

// SaleItemResponse línea de venta.
type SaleItemResponse struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int64           `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// SaleResponse venta registrada.
type SaleResponse struct {
	ID            string             `json:"id"`
	Folio         string             `json:"folio"`
	Date          time.Time          `json:"date"`
	Items         []SaleItemResponse `json:"items"`
	Subtotal      decimal.Decimal    `json:"subtotal"`
	DiscountType  string             `json:"discount_type,omitempty"`
	DiscountValue decimal.Decimal    `json:"discount_value"`
	Discount      decimal.Decimal    `json:"discount"`
	Total         decimal.Decimal    `json:"total"`
	CustomerID    string             `json:"customer_id,omitempty"`
	CreditSale    bool               `json:"credit_sale"`
	PaymentMethod string             `json:"payment_method"`
}
