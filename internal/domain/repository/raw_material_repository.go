package repository

import (
	"context"

	"github.com/hedelmia/pos-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// RawMaterialRepository define el puerto de persistencia para materias primas.
type RawMaterialRepository interface {
	Create(ctx context.Context, material *entity.RawMaterial) error
	GetByID(ctx context.Context, id string) (*entity.RawMaterial, error)
	GetForUpdate(ctx context.Context, id string) (*entity.RawMaterial, error)
	// Update actualiza nombre y unidad. Stock y costo se manejan vía movimientos.
	Update(ctx context.Context, material *entity.RawMaterial) error
	UpdateStock(ctx context.Context, id string, stock, avgCost decimal.Decimal) error
	List(ctx context.Context) ([]*entity.RawMaterial, error)
}

// MaterialMovementRepository historial de entradas/salidas de materia prima.
type MaterialMovementRepository interface {
	Create(ctx context.Context, movement *entity.MaterialMovement) error
	ListByMaterial(ctx context.Context, materialID string, limit int) ([]*entity.MaterialMovement, error)
}
