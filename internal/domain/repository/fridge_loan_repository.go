package repository

import (
	"context"

	"github.com/hedelmia/pos-api/internal/domain/entity"
)

// FridgeLoanRepository define el puerto de persistencia para préstamos de refrigeradores.
type FridgeLoanRepository interface {
	Create(ctx context.Context, loan *entity.FridgeLoan) error
	GetByID(ctx context.Context, id string) (*entity.FridgeLoan, error)
	Update(ctx context.Context, loan *entity.FridgeLoan) error
	// List lista préstamos; customerID vacío = todos.
	List(ctx context.Context, customerID string) ([]*entity.FridgeLoan, error)
}
