package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Errores de dominio (sin dependencias de infraestructura).
var (
	ErrNotFound             = errors.New("recurso no encontrado")
	ErrInvalidInput         = errors.New("entrada inválida")
	ErrInvalidAmount        = errors.New("monto o cantidad inválida")
	ErrConflict             = errors.New("conflicto con el estado actual")
	ErrInactive             = errors.New("recurso inactivo")
	ErrInsufficientStock    = errors.New("stock insuficiente")
	ErrEmptyCart            = errors.New("el carrito está vacío")
	ErrCreditLimitExceeded  = errors.New("límite de crédito excedido")
	ErrAmountExceedsBalance = errors.New("el monto excede el saldo del cliente")
	ErrPINInvalid           = errors.New("PIN incorrecto")
	ErrPINNotSet            = errors.New("PIN no configurado")
)

// Códigos estables que ve la capa de presentación.
const (
	CodeInsufficientStock    = "INSUFFICIENT_STOCK"
	CodeEmptyCart            = "EMPTY_CART"
	CodeCreditLimitExceeded  = "CREDIT_LIMIT_EXCEEDED"
	CodeAmountExceedsBalance = "AMOUNT_EXCEEDS_BALANCE"
	CodeInvalidAmount        = "INVALID_AMOUNT"
	CodeNotFound             = "NOT_FOUND"
	CodePINInvalid           = "PIN_INVALID"
	CodePINNotSet            = "PIN_NOT_SET"
	CodeValidation           = "VALIDATION"
	CodeInactive             = "INACTIVE"
	CodeConflict             = "CONFLICT"
	CodeInternal             = "INTERNAL"
)

// StockError indica que la cantidad pedida supera el stock disponible de un producto
// o materia prima. Se compara con errors.Is(err, ErrInsufficientStock).
type StockError struct {
	ProductID string
	Requested decimal.Decimal
	Available decimal.Decimal
}

func (e *StockError) Error() string {
	return fmt.Sprintf("stock insuficiente para %s: solicitado %s, disponible %s",
		e.ProductID, e.Requested.String(), e.Available.String())
}

func (e *StockError) Unwrap() error { return ErrInsufficientStock }

// NewStockError construye el error para cantidades enteras (productos).
func NewStockError(productID string, requested, available int64) *StockError {
	return &StockError{
		ProductID: productID,
		Requested: decimal.NewFromInt(requested),
		Available: decimal.NewFromInt(available),
	}
}

// CreditLimitError indica que un cargo dejaría el saldo del cliente por encima de su límite.
type CreditLimitError struct {
	CustomerID string
	Balance    decimal.Decimal
	Limit      decimal.Decimal
	Amount     decimal.Decimal
}

func (e *CreditLimitError) Error() string {
	return fmt.Sprintf("límite de crédito excedido para %s: saldo %s + cargo %s > límite %s",
		e.CustomerID, e.Balance.StringFixed(2), e.Amount.StringFixed(2), e.Limit.StringFixed(2))
}

func (e *CreditLimitError) Unwrap() error { return ErrCreditLimitExceeded }

// NotFoundError identifica la entidad faltante.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q no encontrado", e.Entity, e.ID)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// NotFound atajo para construir un NotFoundError.
func NotFound(entity, id string) error {
	return &NotFoundError{Entity: entity, ID: id}
}

// Code traduce un error de dominio a su código estable. Errores desconocidos
// (fallas del almacenamiento) se reportan como INTERNAL.
func Code(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInsufficientStock):
		return CodeInsufficientStock
	case errors.Is(err, ErrEmptyCart):
		return CodeEmptyCart
	case errors.Is(err, ErrCreditLimitExceeded):
		return CodeCreditLimitExceeded
	case errors.Is(err, ErrAmountExceedsBalance):
		return CodeAmountExceedsBalance
	case errors.Is(err, ErrInvalidAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrNotFound):
		return CodeNotFound
	case errors.Is(err, ErrPINInvalid):
		return CodePINInvalid
	case errors.Is(err, ErrPINNotSet):
		return CodePINNotSet
	case errors.Is(err, ErrInvalidInput):
		return CodeValidation
	case errors.Is(err, ErrInactive):
		return CodeInactive
	case errors.Is(err, ErrConflict):
		return CodeConflict
	default:
		return CodeInternal
	}
}

// IsValidation indica si el error es recuperable (falla de validación de negocio).
func IsValidation(err error) bool {
	return err != nil && Code(err) != CodeInternal
}
