package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateCustomerRequest alta de cliente.
type CreateCustomerRequest struct {
	Name        string          `json:"name" validate:"required,max=200"`
	Phone       string          `json:"phone" validate:"max=30"`
	CreditLimit decimal.Decimal `json:"credit_limit"`
}

// UpdateCustomerRequest cambio de datos del cliente (sin saldo).
type UpdateCustomerRequest struct {
	Name        *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Phone       *string          `json:"phone" validate:"omitempty,max=30"`
	CreditLimit *decimal.Decimal `json:"credit_limit"`
	Active      *bool            `json:"active"`
}

// SetBalanceRequest ajuste administrativo del saldo.
type SetBalanceRequest struct {
	Balance decimal.Decimal `json:"balance"`
}

// CustomerResponse salida de un cliente.
type CustomerResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Phone       string          `json:"phone"`
	CreditLimit decimal.Decimal `json:"credit_limit"`
	Balance     decimal.Decimal `json:"balance"`
	Available   decimal.Decimal `json:"available"`
	Active      bool            `json:"active"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
