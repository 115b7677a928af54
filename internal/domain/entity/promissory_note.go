package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un pagaré.
const (
	NoteStatusVigente   = "vigente"
	NoteStatusPagado    = "pagado"
	NoteStatusCancelado = "cancelado"
)

// PromissoryNote (pagaré) formaliza deuda existente de un cliente.
// No descuenta el saldo del cliente: es un libro aparte.
type PromissoryNote struct {
	ID         string
	CustomerID string
	Amount     decimal.Decimal
	IssueDate  time.Time
	DueDate    *time.Time
	Status     string
	Note       string
	CreatedAt  time.Time
}

// IsValidNoteStatus valida el estado de un pagaré.
func IsValidNoteStatus(s string) bool {
	switch s {
	case NoteStatusVigente, NoteStatusPagado, NoteStatusCancelado:
		return true
	}
	return false
}
