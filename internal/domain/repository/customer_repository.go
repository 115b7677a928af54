package repository

import (
	"context"

	"github.com/hedelmia/pos-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// CustomerRepository define el puerto de persistencia para Customer.
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, id string) (*entity.Customer, error)
	GetForUpdate(ctx context.Context, id string) (*entity.Customer, error)
	// Update actualiza nombre, teléfono, límite y estado. No toca Balance.
	Update(ctx context.Context, customer *entity.Customer) error
	UpdateBalance(ctx context.Context, id string, balance decimal.Decimal) error
	List(ctx context.Context, includeInactive bool) ([]*entity.Customer, error)
}
