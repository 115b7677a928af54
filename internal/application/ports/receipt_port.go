package ports

import (
	"context"

	"github.com/hedelmia/pos-api/internal/domain/entity"
)

// ReceiptGenerator define el puerto de salida para documentos imprimibles.
// El adaptador actual es Maroto (internal/infrastructure/pdf).
type ReceiptGenerator interface {
	// SaleTicket genera el ticket de una venta. customer puede ser nil.
	SaleTicket(ctx context.Context, business string, sale *entity.Sale, customer *entity.Customer) ([]byte, error)
	// PromissoryNote genera el pagaré listo para firma.
	PromissoryNote(ctx context.Context, business string, note *entity.PromissoryNote, customer *entity.Customer) ([]byte, error)
}
