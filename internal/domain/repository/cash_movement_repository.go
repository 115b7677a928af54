package repository

import (
	"context"
	"time"

	"github.com/hedelmia/pos-api/internal/domain/entity"
)

// CashMovementRepository libro de movimientos de caja. No existe un saldo almacenado:
// el saldo se recalcula siempre desde estos registros.
type CashMovementRepository interface {
	Create(ctx context.Context, movement *entity.CashMovement) error
	GetByID(ctx context.Context, id string) (*entity.CashMovement, error)
	// ListByBox lista en orden de inserción. box vacío = todas las cajas.
	ListByBox(ctx context.Context, box string, from, to *time.Time) ([]*entity.CashMovement, error)
	Delete(ctx context.Context, id string) error
}
