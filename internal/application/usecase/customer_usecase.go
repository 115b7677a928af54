package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hedelmia/pos-api/internal/application/dto"
	"github.com/hedelmia/pos-api/internal/application/ports"
	"github.com/hedelmia/pos-api/internal/domain"
	"github.com/hedelmia/pos-api/internal/domain/entity"
	"github.com/hedelmia/pos-api/internal/domain/repository"
)

// CustomerUseCase casos de uso para clientes. El saldo solo cambia vía ventas a crédito
// o el ajuste administrativo del ledger de crédito.
type CustomerUseCase struct {
	tx    ports.TxRunner
	repos repository.Repositories
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(tx ports.TxRunner, repos repository.Repositories) *CustomerUseCase {
	return &CustomerUseCase{tx: tx, repos: repos}
}

// Create crea un nuevo cliente activo con saldo cero.
func (uc *CustomerUseCase) Create(ctx context.Context, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.CreditLimit.IsNegative() || domain.CheckMoney(in.CreditLimit) != nil {
		return nil, domain.ErrInvalidAmount
	}
	now := time.Now()
	customer := &entity.Customer{
		ID:          uuid.New().String(),
		Name:        name,
		Phone:       strings.TrimSpace(in.Phone),
		CreditLimit: in.CreditLimit,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	err := uc.tx.Run(ctx, func(repos repository.Repositories) error {
		return repos.Customers.Create(ctx, customer)
	})
	if err != nil {
		return nil, err
	}
	out := dto.FromCustomer(customer)
	return &out, nil
}

// GetByID obtiene un cliente por ID.
func (uc *CustomerUseCase) GetByID(ctx context.Context, id string) (*dto.CustomerResponse, error) {
	c, err := uc.repos.Customers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.NotFound("cliente", id)
	}
	out := dto.FromCustomer(c)
	return &out, nil
}

// Update cambia nombre, teléfono, límite o estado. Bajar el límite por debajo del saldo
// está permitido: solo bloquea nuevos cargos.
func (uc *CustomerUseCase) Update(ctx context.Context, id string, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	var out dto.CustomerResponse
	err := uc.tx.Run(ctx, func(repos repository.Repositories) error {
		c, err := repos.Customers.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if c == nil {
			return domain.NotFound("cliente", id)
		}
		if in.Name != nil {
			name := strings.TrimSpace(*in.Name)
			if name == "" {
				return domain.ErrInvalidInput
			}
			c.Name = name
		}
		if in.Phone != nil {
			c.Phone = strings.TrimSpace(*in.Phone)
		}
		if in.CreditLimit != nil {
			if in.CreditLimit.IsNegative() || domain.CheckMoney(*in.CreditLimit) != nil {
				return domain.ErrInvalidAmount
			}
			c.CreditLimit = *in.CreditLimit
		}
		if in.Active != nil {
			c.Active = *in.Active
		}
		c.UpdatedAt = time.Now()
		if err := repos.Customers.Update(ctx, c); err != nil {
			return err
		}
		out = dto.FromCustomer(c)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Deactivate desactiva al cliente. Conserva saldo e historial.
func (uc *CustomerUseCase) Deactivate(ctx context.Context, id string) (*dto.CustomerResponse, error) {
	inactive := false
	return uc.Update(ctx, id, dto.UpdateCustomerRequest{Active: &inactive})
}

// List lista clientes; includeInactive agrega los desactivados.
func (uc *CustomerUseCase) List(ctx context.Context, includeInactive bool) ([]dto.CustomerResponse, error) {
	list, err := uc.repos.Customers.List(ctx, includeInactive)
	if err != nil {
		return nil, err
	}
	return dto.Map(list, dto.FromCustomer), nil
}
