package credit_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hedelmia/pos-api/internal/application/credit"
	"github.com/hedelmia/pos-api/internal/domain"
	domaincredit "github.com/hedelmia/pos-api/internal/domain/credit"
	"github.com/hedelmia/pos-api/internal/domain/entity"
	"github.com/hedelmia/pos-api/internal/domain/repository"
	"github.com/hedelmia/pos-api/internal/infrastructure/memory"
)

func d(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func newLedger(t *testing.T, limit, balance int64) (*credit.Ledger, *memory.Store) {
	t.Helper()
	store, err := memory.NewStore("")
	require.NoError(t, err)
	ctx := context.Background()
	require.NoError(t, store.Run(ctx, func(repos repository.Repositories) error {
		return repos.Customers.Create(ctx, &entity.Customer{
			ID: "tienda-lupita", Name: "Tienda Lupita", CreditLimit: d(limit), Balance: d(balance), Active: true,
		})
	}))
	return credit.NewLedger(store, store.Repositories(), zerolog.Nop()), store
}

func balanceOf(t *testing.T, store *memory.Store) string {
	t.Helper()
	c, err := store.Repositories().Customers.GetByID(context.Background(), "tienda-lupita")
	require.NoError(t, err)
	return c.Balance.StringFixed(2)
}

// Escenario C: límite 1000, saldo 900, cargo 200 → rechazado y el saldo sigue en 900.
func TestChargeCustomer_RebasaLimite(t *testing.T) {
	l, store := newLedger(t, 1000, 900)

	_, err := l.ChargeCustomer(context.Background(), "tienda-lupita", d(200))
	require.Error(t, err)
	var limitErr *domain.CreditLimitError
	require.True(t, errors.As(err, &limitErr))
	assert.Equal(t, "tienda-lupita", limitErr.CustomerID)
	assert.Equal(t, domain.CodeCreditLimitExceeded, domain.Code(err))
	assert.Equal(t, "900.00", balanceOf(t, store))
}

func TestChargeCustomer_HastaElLimiteExacto(t *testing.T) {
	l, store := newLedger(t, 1000, 900)
	c, err := l.ChargeCustomer(context.Background(), "tienda-lupita", d(100))
	require.NoError(t, err)
	assert.Equal(t, "1000.00", c.Balance.StringFixed(2))
	assert.Equal(t, "1000.00", balanceOf(t, store))
}

func TestSetCustomerBalance_IgnoraLimite(t *testing.T) {
	l, store := newLedger(t, 100, 0)
	_, err := l.SetCustomerBalance(context.Background(), "tienda-lupita", d(5000))
	require.NoError(t, err)
	assert.Equal(t, "5000.00", balanceOf(t, store))

	_, err = l.SetCustomerBalance(context.Background(), "tienda-lupita", d(-1))
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
}

// Escenario F: saldo 500, pagaré de 600 → rechazado; pagaré de 300 → emitido sin tocar el saldo.
func TestIssuePromissoryNote(t *testing.T) {
	ctx := context.Background()
	l, store := newLedger(t, 2000, 500)

	_, err := l.IssuePromissoryNote(ctx, "tienda-lupita", d(600), nil, "")
	assert.ErrorIs(t, err, domain.ErrAmountExceedsBalance)

	n, err := l.IssuePromissoryNote(ctx, "tienda-lupita", d(300), nil, "abril")
	require.NoError(t, err)
	assert.Equal(t, entity.NoteStatusVigente, n.Status)
	assert.Equal(t, "500.00", balanceOf(t, store))

	notes, err := l.ListPromissoryNotes(ctx, "tienda-lupita")
	require.NoError(t, err)
	assert.Len(t, notes, 1)

	n, err = l.SetPromissoryNoteStatus(ctx, n.ID, entity.NoteStatusPagado)
	require.NoError(t, err)
	assert.Equal(t, entity.NoteStatusPagado, n.Status)
	assert.Equal(t, "500.00", balanceOf(t, store))

	_, err = l.SetPromissoryNoteStatus(ctx, n.ID, "vencido")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	require.NoError(t, l.DeletePromissoryNote(ctx, n.ID))
	_, err = l.GetPromissoryNote(ctx, n.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreditPayments_NoCambianEstado(t *testing.T) {
	ctx := context.Background()
	l, _ := newLedger(t, 0, 0)

	cr, err := l.CreateCredit(ctx, "tienda-lupita", d(100), nil, "refrigerador")
	require.NoError(t, err)
	assert.Equal(t, entity.CreditStatusPendiente, cr.Status)

	_, err = l.RecordCreditPayment(ctx, cr.ID, d(60), nil, "")
	require.NoError(t, err)
	cr, err = l.RecordCreditPayment(ctx, cr.ID, d(60), nil, "")
	require.NoError(t, err)

	assert.Len(t, cr.Payments, 2)
	assert.Equal(t, "0.00", domaincredit.Remaining(cr).StringFixed(2), "el restante nunca es negativo")
	assert.Equal(t, entity.CreditStatusPendiente, cr.Status, "liquidar no cambia el estado")

	cr, err = l.SetCreditStatus(ctx, cr.ID, entity.CreditStatusPagado)
	require.NoError(t, err)
	assert.Equal(t, entity.CreditStatusPagado, cr.Status)

	cr, err = l.DeleteCreditPayment(ctx, cr.ID, cr.Payments[0].ID)
	require.NoError(t, err)
	assert.Len(t, cr.Payments, 1)

	stored, err := l.GetCredit(ctx, cr.ID)
	require.NoError(t, err)
	assert.Len(t, stored.Payments, 1)
	assert.Equal(t, "40.00", domaincredit.Remaining(stored).StringFixed(2))

	require.NoError(t, l.DeleteCredit(ctx, cr.ID))
	list, err := l.ListCredits(ctx, "tienda-lupita")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestRecordCreditPayment_Validaciones(t *testing.T) {
	ctx := context.Background()
	l, _ := newLedger(t, 0, 0)

	_, err := l.RecordCreditPayment(ctx, "no-existe", d(10), nil, "")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	cr, err := l.CreateCredit(ctx, "tienda-lupita", d(100), nil, "")
	require.NoError(t, err)
	_, err = l.RecordCreditPayment(ctx, cr.ID, d(0), nil, "")
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	_, err = l.CreateCredit(ctx, "nadie", d(10), nil, "")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLedger_RechazaFraccionesDeCentavo(t *testing.T) {
	ctx := context.Background()
	l, store := newLedger(t, 1000, 500)
	frac := decimal.RequireFromString("10.005")

	_, err := l.ChargeCustomer(ctx, "tienda-lupita", frac)
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
	_, err = l.SetCustomerBalance(ctx, "tienda-lupita", frac)
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
	_, err = l.IssuePromissoryNote(ctx, "tienda-lupita", frac, nil, "")
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
	_, err = l.CreateCredit(ctx, "tienda-lupita", frac, nil, "")
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	cr, err := l.CreateCredit(ctx, "tienda-lupita", decimal.RequireFromString("100.50"), nil, "")
	require.NoError(t, err)
	_, err = l.RecordCreditPayment(ctx, cr.ID, frac, nil, "")
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	assert.Equal(t, "500.00", balanceOf(t, store))
	notes, err := l.ListPromissoryNotes(ctx, "tienda-lupita")
	require.NoError(t, err)
	assert.Empty(t, notes)
}
