package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hedelmia/pos-api/internal/application/dto"
	"github.com/hedelmia/pos-api/internal/application/ports"
	"github.com/hedelmia/pos-api/internal/domain"
	"github.com/hedelmia/pos-api/internal/domain/entity"
	"github.com/hedelmia/pos-api/internal/domain/repository"
)

// MaterialUseCase catálogo de materias primas. Las existencias se mueven con inventory.Ledger.
type MaterialUseCase struct {
	tx    ports.TxRunner
	repos repository.Repositories
}

// NewMaterialUseCase construye el caso de uso.
func NewMaterialUseCase(tx ports.TxRunner, repos repository.Repositories) *MaterialUseCase {
	return &MaterialUseCase{tx: tx, repos: repos}
}

// Create da de alta una materia prima sin existencias.
func (uc *MaterialUseCase) Create(ctx context.Context, in dto.CreateMaterialRequest) (*dto.MaterialResponse, error) {
	name, unit := strings.TrimSpace(in.Name), strings.TrimSpace(in.Unit)
	if name == "" || unit == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	m := &entity.RawMaterial{
		ID:        uuid.New().String(),
		Name:      name,
		Unit:      unit,
		Stock:     decimal.Zero,
		AvgCost:   decimal.Zero,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.tx.Run(ctx, func(repos repository.Repositories) error {
		return repos.Materials.Create(ctx, m)
	}); err != nil {
		return nil, err
	}
	out := dto.FromMaterial(m)
	return &out, nil
}

// GetByID obtiene una materia prima.
func (uc *MaterialUseCase) GetByID(ctx context.Context, id string) (*dto.MaterialResponse, error) {
	m, err := uc.repos.Materials.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.NotFound("materia prima", id)
	}
	out := dto.FromMaterial(m)
	return &out, nil
}

// Update cambia nombre o unidad.
func (uc *MaterialUseCase) Update(ctx context.Context, id string, in dto.UpdateMaterialRequest) (*dto.MaterialResponse, error) {
	var out dto.MaterialResponse
	err := uc.tx.Run(ctx, func(repos repository.Repositories) error {
		m, err := repos.Materials.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if m == nil {
			return domain.NotFound("materia prima", id)
		}
		if in.Name != nil {
			if m.Name = strings.TrimSpace(*in.Name); m.Name == "" {
				return domain.ErrInvalidInput
			}
		}
		if in.Unit != nil {
			if m.Unit = strings.TrimSpace(*in.Unit); m.Unit == "" {
				return domain.ErrInvalidInput
			}
		}
		m.UpdatedAt = time.Now()
		if err := repos.Materials.Update(ctx, m); err != nil {
			return err
		}
		out = dto.FromMaterial(m)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// List lista todas las materias primas.
func (uc *MaterialUseCase) List(ctx context.Context) ([]dto.MaterialResponse, error) {
	list, err := uc.repos.Materials.List(ctx)
	if err != nil {
		return nil, err
	}
	return dto.Map(list, dto.FromMaterial), nil
}
