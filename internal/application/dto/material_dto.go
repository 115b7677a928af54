package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateMaterialRequest alta de materia prima.
type CreateMaterialRequest struct {
	Name string `json:"name" validate:"required,max=200"`
	Unit string `json:"unit" validate:"required,max=20"`
}

// UpdateMaterialRequest cambio de nombre o unidad.
type UpdateMaterialRequest struct {
	Name *string `json:"name" validate:"omitempty,min=1,max=200"`
	Unit *string `json:"unit" validate:"omitempty,min=1,max=20"`
}

// MaterialResponse salida de una materia prima.
type MaterialResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Unit      string          `json:"unit"`
	Stock     decimal.Decimal `json:"stock"`
	AvgCost   decimal.Decimal `json:"avg_cost"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// MaterialMovementRequest entrada o salida de materia prima. TotalCost solo en entradas.
type MaterialMovementRequest struct {
	Type      string           `json:"type" validate:"required,oneof=entrada salida"`
	Quantity  decimal.Decimal  `json:"quantity"`
	TotalCost *decimal.Decimal `json:"total_cost"`
	Note      string           `json:"note" validate:"max=500"`
}

// MaterialMovementResponse renglón del historial de materia prima.
type MaterialMovementResponse struct {
	ID         string           `json:"id"`
	MaterialID string           `json:"material_id"`
	Type       string           `json:"type"`
	Quantity   decimal.Decimal  `json:"quantity"`
	TotalCost  *decimal.Decimal `json:"total_cost,omitempty"`
	Note       string           `json:"note"`
	CreatedAt  time.Time        `json:"created_at"`
}
