// Package receipts arma los documentos imprimibles (ticket y pagaré) a partir del almacén.
package receipts

import (
	"context"
	"fmt"

	"github.com/hedelmia/pos-api/internal/application/ports"
	"github.com/hedelmia/pos-api/internal/domain"
	"github.com/hedelmia/pos-api/internal/domain/entity"
	"github.com/hedelmia/pos-api/internal/domain/repository"
)

// UseCase genera tickets de venta y pagarés.
type UseCase struct {
	repos     repository.Repositories
	generator ports.ReceiptGenerator
	business  string
}

// NewUseCase construye el caso de uso. business es el nombre que aparece en los documentos.
func NewUseCase(repos repository.Repositories, generator ports.ReceiptGenerator, business string) *UseCase {
	return &UseCase{repos: repos, generator: generator, business: business}
}

// SaleTicket devuelve el PDF del ticket y el nombre de archivo sugerido.
func (uc *UseCase) SaleTicket(ctx context.Context, saleID string) (pdfBytes []byte, filename string, err error) {
	sale, err := uc.repos.Sales.GetByID(ctx, saleID)
	if err != nil {
		return nil, "", fmt.Errorf("ticket: obtener venta: %w", err)
	}
	if sale == nil {
		return nil, "", domain.NotFound("venta", saleID)
	}

	var customer *entity.Customer
	if sale.CustomerID != "" {
		customer, err = uc.repos.Customers.GetByID(ctx, sale.CustomerID)
		if err != nil {
			return nil, "", fmt.Errorf("ticket: obtener cliente: %w", err)
		}
	}

	pdfBytes, err = uc.generator.SaleTicket(ctx, uc.business, sale, customer)
	if err != nil {
		return nil, "", fmt.Errorf("ticket: generación fallida: %w", err)
	}
	return pdfBytes, fmt.Sprintf("ticket_%s.pdf", sale.Folio), nil
}

// PromissoryNote devuelve el PDF del pagaré. Un pagaré cancelado no se imprime.
func (uc *UseCase) PromissoryNote(ctx context.Context, noteID string) (pdfBytes []byte, filename string, err error) {
	note, err := uc.repos.Notes.GetByID(ctx, noteID)
	if err != nil {
		return nil, "", fmt.Errorf("pagaré: obtener: %w", err)
	}
	if note == nil {
		return nil, "", domain.NotFound("pagaré", noteID)
	}
	if note.Status == entity.NoteStatusCancelado {
		return nil, "", fmt.Errorf("%w: el pagaré está cancelado", domain.ErrConflict)
	}

	customer, err := uc.repos.Customers.GetByID(ctx, note.CustomerID)
	if err != nil {
		return nil, "", fmt.Errorf("pagaré: obtener cliente: %w", err)
	}
	if customer == nil {
		return nil, "", domain.NotFound("cliente", note.CustomerID)
	}

	pdfBytes, err = uc.generator.PromissoryNote(ctx, uc.business, note, customer)
	if err != nil {
		return nil, "", fmt.Errorf("pagaré: generación fallida: %w", err)
	}
	return pdfBytes, fmt.Sprintf("pagare_%s.pdf", note.IssueDate.Format("20060102")), nil
}
