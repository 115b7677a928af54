package repository

import (
	"context"

	"github.com/hedelmia/pos-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product.
// GetByID y GetForUpdate devuelven (nil, nil) si el producto no existe.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	// GetForUpdate lee la versión más reciente y, si el almacén lo soporta, bloquea la fila
	// hasta el fin de la transacción (SELECT FOR UPDATE).
	GetForUpdate(ctx context.Context, id string) (*entity.Product, error)
	// Update actualiza datos de catálogo y Active. No toca Stock.
	Update(ctx context.Context, product *entity.Product) error
	UpdateStock(ctx context.Context, id string, stock int64) error
	List(ctx context.Context, includeInactive bool) ([]*entity.Product, error)
}

// StockMovementRepository historial de movimientos de stock de productos.
type StockMovementRepository interface {
	Create(ctx context.Context, movement *entity.StockMovement) error
	ListByProduct(ctx context.Context, productID string, limit int) ([]*entity.StockMovement, error)
}
