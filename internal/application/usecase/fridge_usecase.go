package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/hedelmia/pos-api/internal/application/dto"
	"github.com/hedelmia/pos-api/internal/application/ports"
	"github.com/hedelmia/pos-api/internal/domain"
	"github.com/hedelmia/pos-api/internal/domain/entity"
	"github.com/hedelmia/pos-api/internal/domain/repository"
)

// FridgeLoanUseCase préstamos de refrigeradores a puntos de venta.
type FridgeLoanUseCase struct {
	tx    ports.TxRunner
	repos repository.Repositories
}

// NewFridgeLoanUseCase construye el caso de uso.
func NewFridgeLoanUseCase(tx ports.TxRunner, repos repository.Repositories) *FridgeLoanUseCase {
	return &FridgeLoanUseCase{tx: tx, repos: repos}
}

// Lend registra la entrega de refrigeradores a un cliente existente.
func (uc *FridgeLoanUseCase) Lend(ctx context.Context, in dto.LendFridgeRequest) (*dto.FridgeLoanResponse, error) {
	if in.CustomerID == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity <= 0 {
		return nil, domain.ErrInvalidAmount
	}
	now := time.Now()
	loan := &entity.FridgeLoan{
		ID:           uuid.New().String(),
		CustomerID:   in.CustomerID,
		Quantity:     in.Quantity,
		DeliveryDate: now,
		Status:       entity.FridgeStatusEntregado,
		Note:         in.Note,
		CreatedAt:    now,
	}
	if in.DeliveryDate != nil {
		loan.DeliveryDate = *in.DeliveryDate
	}
	err := uc.tx.Run(ctx, func(repos repository.Repositories) error {
		c, err := repos.Customers.GetByID(ctx, in.CustomerID)
		if err != nil {
			return err
		}
		if c == nil {
			return domain.NotFound("cliente", in.CustomerID)
		}
		return repos.FridgeLoans.Create(ctx, loan)
	})
	if err != nil {
		return nil, err
	}
	out := dto.FromFridgeLoan(loan)
	return &out, nil
}

// Return marca el préstamo como devuelto. Devolver dos veces es un conflicto.
func (uc *FridgeLoanUseCase) Return(ctx context.Context, id string, date *time.Time) (*dto.FridgeLoanResponse, error) {
	var out dto.FridgeLoanResponse
	err := uc.tx.Run(ctx, func(repos repository.Repositories) error {
		loan, err := repos.FridgeLoans.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if loan == nil {
			return domain.NotFound("préstamo", id)
		}
		if loan.Status == entity.FridgeStatusDevuelto {
			return domain.ErrConflict
		}
		returned := time.Now()
		if date != nil {
			returned = *date
		}
		loan.Status = entity.FridgeStatusDevuelto
		loan.ReturnDate = &returned
		if err := repos.FridgeLoans.Update(ctx, loan); err != nil {
			return err
		}
		out = dto.FromFridgeLoan(loan)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// List lista préstamos; customerID vacío = todos.
func (uc *FridgeLoanUseCase) List(ctx context.Context, customerID string) ([]dto.FridgeLoanResponse, error) {
	list, err := uc.repos.FridgeLoans.List(ctx, customerID)
	if err != nil {
		return nil, err
	}
	return dto.Map(list, dto.FromFridgeLoan), nil
}

// OutstandingByCustomer refrigeradores entregados y aún no devueltos, por cliente.
func (uc *FridgeLoanUseCase) OutstandingByCustomer(ctx context.Context) (map[string]int, error) {
	list, err := uc.repos.FridgeLoans.List(ctx, "")
	if err != nil {
		return nil, err
	}
	out := make(map[string]int)
	for _, l := range list {
		if l.Status == entity.FridgeStatusEntregado {
			out[l.CustomerID] += l.Quantity
		}
	}
	return out, nil
}
