package repository

import (
	"context"
	"time"

	"github.com/hedelmia/pos-api/internal/domain/entity"
)

// FolioStreamVentas es el contador de folios de ventas.
const FolioStreamVentas = "venta"

// SaleRepository define el puerto de persistencia para ventas (cabecera + líneas).
type SaleRepository interface {
	// Create persiste la venta con todas sus líneas.
	Create(ctx context.Context, sale *entity.Sale) error
	GetByID(ctx context.Context, id string) (*entity.Sale, error)
	GetByFolio(ctx context.Context, folio string) (*entity.Sale, error)
	// List devuelve las ventas en [from, to] (nil = sin límite), más recientes primero.
	List(ctx context.Context, from, to *time.Time) ([]*entity.Sale, error)
	// NextFolioNumber incrementa y devuelve el contador del stream dentro de la transacción
	// actual. Si la transacción hace rollback, el número no se consume.
	NextFolioNumber(ctx context.Context, stream string) (int64, error)
}
