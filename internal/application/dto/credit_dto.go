package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// IssueNoteRequest emisión de pagaré.
type IssueNoteRequest struct {
	CustomerID string          `json:"customer_id" validate:"required"`
	Amount     decimal.Decimal `json:"amount"`
	DueDate    *time.Time      `json:"due_date"`
	Note       string          `json:"note" validate:"max=500"`
}

// StatusRequest cambio de estado de pagaré o crédito.
type StatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// PromissoryNoteResponse pagaré.
type PromissoryNoteResponse struct {
	ID         string          `json:"id"`
	CustomerID string          `json:"customer_id"`
	Amount     decimal.Decimal `json:"amount"`
	IssueDate  time.Time       `json:"issue_date"`
	DueDate    *time.Time      `json:"due_date,omitempty"`
	Status     string          `json:"status"`
	Note       string          `json:"note"`
}

// CreateCreditRequest registro de crédito.
type CreateCreditRequest struct {
	CustomerID string          `json:"customer_id" validate:"required"`
	Amount     decimal.Decimal `json:"amount"`
	Date       *time.Time      `json:"date"`
	Note       string          `json:"note" validate:"max=500"`
}

// CreditPaymentRequest abono.
type CreditPaymentRequest struct {
	Amount decimal.Decimal `json:"amount"`
	Date   *time.Time      `json:"date"`
	Note   string          `json:"note" validate:"max=500"`
}

// CreditPaymentResponse abono registrado.
type CreditPaymentResponse struct {
	ID     string          `json:"id"`
	Amount decimal.Decimal `json:"amount"`
	Date   time.Time       `json:"date"`
	Note   string          `json:"note"`
}

// CreditResponse crédito con abonos y restante calculado.
type CreditResponse struct {
	ID         string                  `json:"id"`
	CustomerID string                  `json:"customer_id"`
	Amount     decimal.Decimal         `json:"amount"`
	Date       time.Time               `json:"date"`
	Status     string                  `json:"status"`
	Note       string                  `json:"note"`
	Payments   []CreditPaymentResponse `json:"payments"`
	Paid       decimal.Decimal         `json:"paid"`
	Remaining  decimal.Decimal         `json:"remaining"`
}
