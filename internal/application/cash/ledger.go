// Package cash contiene el libro de caja chica y caja grande.
package cash

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/hedelmia/pos-api/internal/application/ports"
	"github.com/hedelmia/pos-api/internal/domain"
	domaincash "github.com/hedelmia/pos-api/internal/domain/cash"
	"github.com/hedelmia/pos-api/internal/domain/entity"
	"github.com/hedelmia/pos-api/internal/domain/repository"
)

// Summary saldo de ambas cajas.
type Summary struct {
	Chica  decimal.Decimal
	Grande decimal.Decimal
}

// Ledger registra movimientos de caja. El saldo nunca se almacena: se recalcula del historial.
type Ledger struct {
	tx    ports.TxRunner
	repos repository.Repositories
	log   zerolog.Logger
	now   func() time.Time
}

// NewLedger construye el libro de caja.
func NewLedger(tx ports.TxRunner, repos repository.Repositories, log zerolog.Logger) *Ledger {
	return &Ledger{tx: tx, repos: repos, log: log, now: time.Now}
}

// PostMovement registra un movimiento manual. date nil = ahora.
func (l *Ledger) PostMovement(ctx context.Context, box, kind, concept string, amount decimal.Decimal, date *time.Time) (*entity.CashMovement, error) {
	m, err := l.newMovement(box, kind, concept, amount, date)
	if err != nil {
		return nil, err
	}
	m.Origin = entity.CashOriginManual
	if err := l.tx.Run(ctx, func(repos repository.Repositories) error {
		return repos.Cash.Create(ctx, m)
	}); err != nil {
		return nil, err
	}
	l.log.Info().Str("box", box).Str("kind", kind).Str("amount", amount.StringFixed(2)).Msg("movimiento de caja")
	return m, nil
}

// PostSaleEntryInTx registra la entrada automática de una venta en caja grande,
// usando los repositorios de la transacción del checkout.
func (l *Ledger) PostSaleEntryInTx(ctx context.Context, repos repository.Repositories, s *entity.Sale) (*entity.CashMovement, error) {
	date := s.Date
	m, err := l.newMovement(entity.CashBoxGrande, entity.CashKindEntrada, "Venta "+s.Folio, s.Total, &date)
	if err != nil {
		return nil, err
	}
	m.Origin = entity.CashOriginVenta
	m.SaleID = s.ID
	if err := repos.Cash.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (l *Ledger) newMovement(box, kind, concept string, amount decimal.Decimal, date *time.Time) (*entity.CashMovement, error) {
	if !entity.IsValidCashBox(box) || !entity.IsValidCashKind(kind) {
		return nil, domain.ErrInvalidInput
	}
	if !amount.IsPositive() {
		return nil, domain.ErrInvalidAmount
	}
	if err := domain.CheckMoney(amount); err != nil {
		return nil, err
	}
	now := l.now()
	when := now
	if date != nil && !date.IsZero() {
		when = *date
	}
	return &entity.CashMovement{
		ID:        uuid.New().String(),
		Box:       box,
		Kind:      kind,
		Concept:   strings.TrimSpace(concept),
		Amount:    amount,
		Date:      when,
		CreatedAt: now,
	}, nil
}

// Balance Σentrada − Σsalida de la caja, recalculado en cada llamada.
func (l *Ledger) Balance(ctx context.Context, box string) (decimal.Decimal, error) {
	if !entity.IsValidCashBox(box) {
		return decimal.Zero, domain.ErrInvalidInput
	}
	movs, err := l.repos.Cash.ListByBox(ctx, box, nil, nil)
	if err != nil {
		return decimal.Zero, err
	}
	return domaincash.Balance(box, movs), nil
}

// Summary saldo de caja chica y caja grande.
func (l *Ledger) Summary(ctx context.Context) (*Summary, error) {
	movs, err := l.repos.Cash.ListByBox(ctx, "", nil, nil)
	if err != nil {
		return nil, err
	}
	return &Summary{
		Chica:  domaincash.Balance(entity.CashBoxChica, movs),
		Grande: domaincash.Balance(entity.CashBoxGrande, movs),
	}, nil
}

// ListMovements lista los movimientos de una caja (vacío = ambas) en orden de captura.
func (l *Ledger) ListMovements(ctx context.Context, box string, from, to *time.Time) ([]*entity.CashMovement, error) {
	if box != "" && !entity.IsValidCashBox(box) {
		return nil, domain.ErrInvalidInput
	}
	return l.repos.Cash.ListByBox(ctx, box, from, to)
}

// DeleteMovement elimina un movimiento manual. Las entradas generadas por ventas no se
// pueden eliminar porque desbalancearían venta y caja.
func (l *Ledger) DeleteMovement(ctx context.Context, id string) error {
	err := l.tx.Run(ctx, func(repos repository.Repositories) error {
		m, err := repos.Cash.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if m == nil {
			return domain.NotFound("movimiento de caja", id)
		}
		if m.Origin == entity.CashOriginVenta {
			return domain.ErrConflict
		}
		return repos.Cash.Delete(ctx, id)
	})
	if err != nil {
		return err
	}
	l.log.Info().Str("movement_id", id).Msg("movimiento de caja eliminado")
	return nil
}
