// Package inventory contiene el libro de inventario: ajustes de stock de productos,
// verificación previa a una venta y entradas/salidas de materia prima con costo promedio.
package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/hedelmia/pos-api/internal/application/ports"
	"github.com/hedelmia/pos-api/internal/domain"
	"github.com/hedelmia/pos-api/internal/domain/entity"
	"github.com/hedelmia/pos-api/internal/domain/inventory"
	"github.com/hedelmia/pos-api/internal/domain/repository"
	"github.com/hedelmia/pos-api/internal/domain/sale"
)

// Ledger aplica movimientos de stock dentro de una unidad de trabajo con bloqueo de fila
// (GetForUpdate). El stock nunca queda negativo y no hay surtido parcial.
type Ledger struct {
	tx    ports.TxRunner
	repos repository.Repositories
	log   zerolog.Logger
	now   func() time.Time
}

// NewLedger construye el libro. repos se usa solo para lecturas fuera de transacción.
func NewLedger(tx ports.TxRunner, repos repository.Repositories, log zerolog.Logger) *Ledger {
	return &Ledger{tx: tx, repos: repos, log: log, now: time.Now}
}

// AdjustStock aplica un delta con signo al stock del producto y registra el movimiento.
// delta > 0 es entrada, delta < 0 salida.
func (l *Ledger) AdjustStock(ctx context.Context, productID string, delta int64, reason string) (*entity.Product, error) {
	movType := entity.MovementTypeEntrada
	if delta < 0 {
		movType = entity.MovementTypeSalida
	}
	var out *entity.Product
	err := l.tx.Run(ctx, func(repos repository.Repositories) error {
		p, err := l.ApplyInTx(ctx, repos, productID, delta, movType, reason)
		out = p
		return err
	})
	if err != nil {
		l.log.Warn().Err(err).Str("product_id", productID).Int64("delta", delta).Msg("ajuste de stock rechazado")
		return nil, err
	}
	l.log.Info().Str("product_id", productID).Int64("delta", delta).Int64("stock", out.Stock).Msg("ajuste de stock")
	return out, nil
}

// AdjustProductStock punto de entrada de la presentación: tipo entrada|salida y cantidad positiva.
func (l *Ledger) AdjustProductStock(ctx context.Context, productID, movType string, amount int64, reference string) (*entity.Product, error) {
	if amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}
	switch movType {
	case entity.MovementTypeEntrada:
		return l.AdjustStock(ctx, productID, amount, reference)
	case entity.MovementTypeSalida:
		return l.AdjustStock(ctx, productID, -amount, reference)
	default:
		return nil, domain.ErrInvalidInput
	}
}

// ApplyInTx aplica el delta usando los repositorios del caller (misma transacción).
// Lee la versión más reciente del producto con bloqueo antes de validar.
func (l *Ledger) ApplyInTx(ctx context.Context, repos repository.Repositories, productID string, delta int64, movType, reference string) (*entity.Product, error) {
	if delta == 0 {
		return nil, domain.ErrInvalidAmount
	}
	p, err := repos.Products.GetForUpdate(ctx, productID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.NotFound("producto", productID)
	}
	if err := inventory.CheckDelta(p.Stock, delta); err != nil {
		return nil, err
	}
	next, ok := inventory.ApplyDelta(p.Stock, delta)
	if !ok {
		return nil, domain.NewStockError(p.ID, -delta, p.Stock)
	}
	if err := repos.Products.UpdateStock(ctx, p.ID, next); err != nil {
		return nil, err
	}
	mov := &entity.StockMovement{
		ID:        uuid.New().String(),
		ProductID: p.ID,
		Type:      movType,
		Quantity:  delta,
		Reference: reference,
		CreatedAt: l.now(),
	}
	if err := repos.StockMovements.Create(ctx, mov); err != nil {
		return nil, err
	}
	p.Stock = next
	return p, nil
}

// ReserveForSale verifica, contra el stock leído dentro de la unidad de trabajo, que todas las
// líneas se puedan surtir completas. No modifica nada. Devuelve los productos leídos (bloqueados)
// indexados por ID para que el caller calcule precios con la misma lectura.
func (l *Ledger) ReserveForSale(ctx context.Context, repos repository.Repositories, items []sale.Item) (map[string]*entity.Product, error) {
	products := make(map[string]*entity.Product, len(items))
	for _, it := range items {
		if it.Quantity <= 0 {
			return nil, domain.ErrInvalidAmount
		}
		p, err := repos.Products.GetForUpdate(ctx, it.ProductID)
		if err != nil {
			return nil, err
		}
		if p == nil {
			return nil, domain.NotFound("producto", it.ProductID)
		}
		if !p.Active {
			return nil, domain.ErrInactive
		}
		if it.Quantity > p.Stock {
			return nil, domain.NewStockError(p.ID, it.Quantity, p.Stock)
		}
		products[p.ID] = p
	}
	return products, nil
}

// AdjustMaterialStock registra una entrada o salida de materia prima.
// Una entrada con costo total recalcula el costo promedio ponderado; una salida solo descuenta.
func (l *Ledger) AdjustMaterialStock(ctx context.Context, materialID, movType string, amount decimal.Decimal, totalCost *decimal.Decimal, note string) (*entity.RawMaterial, error) {
	if !amount.IsPositive() || domain.CheckQuantity(amount) != nil {
		return nil, domain.ErrInvalidAmount
	}
	if movType != entity.MovementTypeEntrada && movType != entity.MovementTypeSalida {
		return nil, domain.ErrInvalidInput
	}
	if totalCost != nil && (totalCost.IsNegative() || domain.CheckMoney(*totalCost) != nil) {
		return nil, domain.ErrInvalidAmount
	}
	var out *entity.RawMaterial
	err := l.tx.Run(ctx, func(repos repository.Repositories) error {
		m, err := repos.Materials.GetForUpdate(ctx, materialID)
		if err != nil {
			return err
		}
		if m == nil {
			return domain.NotFound("materia prima", materialID)
		}
		stock, avg := m.Stock, m.AvgCost
		switch movType {
		case entity.MovementTypeEntrada:
			if totalCost != nil {
				avg = inventory.AverageCostAfterEntry(stock, avg, amount, *totalCost)
			}
			stock = stock.Add(amount)
		case entity.MovementTypeSalida:
			if amount.GreaterThan(stock) {
				return &domain.StockError{ProductID: m.ID, Requested: amount, Available: stock}
			}
			stock = stock.Sub(amount)
			totalCost = nil
		}
		if err := repos.Materials.UpdateStock(ctx, m.ID, stock, avg); err != nil {
			return err
		}
		mov := &entity.MaterialMovement{
			ID:         uuid.New().String(),
			MaterialID: m.ID,
			Type:       movType,
			Quantity:   amount,
			TotalCost:  totalCost,
			Note:       note,
			CreatedAt:  l.now(),
		}
		if err := repos.MaterialMovements.Create(ctx, mov); err != nil {
			return err
		}
		m.Stock, m.AvgCost = stock, avg
		out = m
		return nil
	})
	if err != nil {
		l.log.Warn().Err(err).Str("material_id", materialID).Str("type", movType).Msg("movimiento de materia prima rechazado")
		return nil, err
	}
	l.log.Info().Str("material_id", materialID).Str("type", movType).Str("stock", out.Stock.String()).Msg("movimiento de materia prima")
	return out, nil
}

// ProductMovements historial de stock de un producto, más recientes primero.
func (l *Ledger) ProductMovements(ctx context.Context, productID string, limit int) ([]*entity.StockMovement, error) {
	p, err := l.repos.Products.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.NotFound("producto", productID)
	}
	return l.repos.StockMovements.ListByProduct(ctx, productID, limit)
}

// MaterialMovements historial de una materia prima, más recientes primero.
func (l *Ledger) MaterialMovements(ctx context.Context, materialID string, limit int) ([]*entity.MaterialMovement, error) {
	m, err := l.repos.Materials.GetByID(ctx, materialID)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.NotFound("materia prima", materialID)
	}
	return l.repos.MaterialMovements.ListByMaterial(ctx, materialID, limit)
}
