package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto. Stock inicial opcional.
type CreateProductRequest struct {
	Flavor       string          `json:"flavor" validate:"required,max=100"`
	Type         string          `json:"type" validate:"required,max=100"`
	Presentation string          `json:"presentation" validate:"max=100"`
	Name         string          `json:"name" validate:"max=200"`
	Price        decimal.Decimal `json:"price"`
	Cost         decimal.Decimal `json:"cost"`
	Stock        int64           `json:"stock" validate:"gte=0"`
}

// UpdateProductRequest entrada para actualizar un producto (sin Stock).
type UpdateProductRequest struct {
	Flavor       *string          `json:"flavor" validate:"omitempty,min=1,max=100"`
	Type         *string          `json:"type" validate:"omitempty,min=1,max=100"`
	Presentation *string          `json:"presentation" validate:"omitempty,max=100"`
	Name         *string          `json:"name" validate:"omitempty,max=200"`
	Price        *decimal.Decimal `json:"price"`
	Cost         *decimal.Decimal `json:"cost"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID           string          `json:"id"`
	Flavor       string          `json:"flavor"`
	Type         string          `json:"type"`
	Presentation string          `json:"presentation"`
	Name         string          `json:"name"`
	Price        decimal.Decimal `json:"price"`
	Cost         decimal.Decimal `json:"cost"`
	Stock        int64           `json:"stock"`
	Active       bool            `json:"active"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// AdjustStockRequest entrada/salida manual de stock de producto.
type AdjustStockRequest struct {
	Type      string `json:"type" validate:"required,oneof=entrada salida"`
	Quantity  int64  `json:"quantity" validate:"gt=0"`
	Reference string `json:"reference" validate:"max=200"`
}

// StockMovementResponse renglón del historial de stock.
type StockMovementResponse struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	Type      string    `json:"type"`
	Quantity  int64     `json:"quantity"`
	Reference string    `json:"reference"`
	CreatedAt time.Time `json:"created_at"`
}
