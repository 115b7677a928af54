package repository

import (
	"context"

	"github.com/hedelmia/pos-api/internal/domain/entity"
)

// PromissoryNoteRepository define el puerto de persistencia para pagarés.
type PromissoryNoteRepository interface {
	Create(ctx context.Context, note *entity.PromissoryNote) error
	GetByID(ctx context.Context, id string) (*entity.PromissoryNote, error)
	ListByCustomer(ctx context.Context, customerID string) ([]*entity.PromissoryNote, error)
	UpdateStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
}

// CreditRepository define el puerto de persistencia para créditos y sus abonos.
// GetByID y GetForUpdate devuelven el crédito con Payments en orden de captura.
type CreditRepository interface {
	Create(ctx context.Context, credit *entity.Credit) error
	GetByID(ctx context.Context, id string) (*entity.Credit, error)
	GetForUpdate(ctx context.Context, id string) (*entity.Credit, error)
	ListByCustomer(ctx context.Context, customerID string) ([]*entity.Credit, error)
	UpdateStatus(ctx context.Context, id, status string) error
	// Delete elimina el crédito y sus abonos.
	Delete(ctx context.Context, id string) error
	AddPayment(ctx context.Context, payment *entity.CreditPayment) error
	DeletePayment(ctx context.Context, creditID, paymentID string) error
}
