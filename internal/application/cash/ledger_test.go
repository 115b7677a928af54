package cash_test

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hedelmia/pos-api/internal/application/cash"
	"github.com/hedelmia/pos-api/internal/domain"
	"github.com/hedelmia/pos-api/internal/domain/entity"
	"github.com/hedelmia/pos-api/internal/domain/repository"
	"github.com/hedelmia/pos-api/internal/infrastructure/memory"
)

func newLedger(t *testing.T) (*cash.Ledger, *memory.Store) {
	t.Helper()
	store, err := memory.NewStore("")
	require.NoError(t, err)
	return cash.NewLedger(store, store.Repositories(), zerolog.Nop()), store
}

func d(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

// Escenario E: entradas 500 y 200, salida 400 en caja grande → saldo 300.
func TestBalance_RecalculadoDelHistorial(t *testing.T) {
	ctx := context.Background()
	l, _ := newLedger(t)

	_, err := l.PostMovement(ctx, entity.CashBoxGrande, entity.CashKindEntrada, "fondo", d(500), nil)
	require.NoError(t, err)
	_, err = l.PostMovement(ctx, entity.CashBoxGrande, entity.CashKindEntrada, "depósito", d(200), nil)
	require.NoError(t, err)
	_, err = l.PostMovement(ctx, entity.CashBoxGrande, entity.CashKindSalida, "proveedor", d(400), nil)
	require.NoError(t, err)
	_, err = l.PostMovement(ctx, entity.CashBoxChica, entity.CashKindEntrada, "cambio", d(50), nil)
	require.NoError(t, err)

	bal, err := l.Balance(ctx, entity.CashBoxGrande)
	require.NoError(t, err)
	assert.Equal(t, "300.00", bal.StringFixed(2))

	sum, err := l.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, "50.00", sum.Chica.StringFixed(2))
	assert.Equal(t, "300.00", sum.Grande.StringFixed(2))
}

func TestPostMovement_Validaciones(t *testing.T) {
	ctx := context.Background()
	l, _ := newLedger(t)

	_, err := l.PostMovement(ctx, entity.CashBoxChica, entity.CashKindEntrada, "x", d(0), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
	_, err = l.PostMovement(ctx, entity.CashBoxChica, entity.CashKindSalida, "x", d(-5), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
	_, err = l.PostMovement(ctx, entity.CashBoxChica, entity.CashKindEntrada, "x", decimal.RequireFromString("0.004"), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
	_, err = l.PostMovement(ctx, entity.CashBoxGrande, entity.CashKindSalida, "x", decimal.RequireFromString("10.125"), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
	_, err = l.PostMovement(ctx, "fuerte", entity.CashKindEntrada, "x", d(5), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = l.PostMovement(ctx, entity.CashBoxChica, "traspaso", "x", d(5), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	movs, err := l.ListMovements(ctx, "", nil, nil)
	require.NoError(t, err)
	assert.Empty(t, movs)
}

func TestPostMovement_FechaExplicitaYFiltro(t *testing.T) {
	ctx := context.Background()
	l, _ := newLedger(t)

	ayer := time.Now().Add(-24 * time.Hour)
	_, err := l.PostMovement(ctx, entity.CashBoxChica, entity.CashKindEntrada, "ayer", d(10), &ayer)
	require.NoError(t, err)
	_, err = l.PostMovement(ctx, entity.CashBoxChica, entity.CashKindEntrada, "hoy", d(20), nil)
	require.NoError(t, err)

	desde := time.Now().Add(-time.Hour)
	movs, err := l.ListMovements(ctx, entity.CashBoxChica, &desde, nil)
	require.NoError(t, err)
	require.Len(t, movs, 1)
	assert.Equal(t, "hoy", movs[0].Concept)
	assert.Equal(t, entity.CashOriginManual, movs[0].Origin)
}

func TestDeleteMovement_SoloManuales(t *testing.T) {
	ctx := context.Background()
	l, store := newLedger(t)

	m, err := l.PostMovement(ctx, entity.CashBoxChica, entity.CashKindSalida, "garrafón", d(35), nil)
	require.NoError(t, err)
	require.NoError(t, l.DeleteMovement(ctx, m.ID))

	var ventaID string
	require.NoError(t, store.Run(ctx, func(repos repository.Repositories) error {
		mv, err := l.PostSaleEntryInTx(ctx, repos, &entity.Sale{ID: "s1", Folio: "V-000001", Total: d(80), Date: time.Now()})
		if err != nil {
			return err
		}
		ventaID = mv.ID
		return nil
	}))
	err = l.DeleteMovement(ctx, ventaID)
	assert.ErrorIs(t, err, domain.ErrConflict)

	err = l.DeleteMovement(ctx, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	bal, err := l.Balance(ctx, entity.CashBoxGrande)
	require.NoError(t, err)
	assert.Equal(t, "80.00", bal.StringFixed(2))
}
