package receipts_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hedelmia/pos-api/internal/application/receipts"
	"github.com/hedelmia/pos-api/internal/domain"
	"github.com/hedelmia/pos-api/internal/domain/entity"
	"github.com/hedelmia/pos-api/internal/domain/repository"
	"github.com/hedelmia/pos-api/internal/infrastructure/memory"
)

type fakeGenerator struct {
	ticketFor   *entity.Sale
	customerFor *entity.Customer
}

func (f *fakeGenerator) SaleTicket(_ context.Context, _ string, sale *entity.Sale, customer *entity.Customer) ([]byte, error) {
	f.ticketFor, f.customerFor = sale, customer
	return []byte("%PDF-ticket"), nil
}

func (f *fakeGenerator) PromissoryNote(_ context.Context, _ string, _ *entity.PromissoryNote, customer *entity.Customer) ([]byte, error) {
	f.customerFor = customer
	return []byte("%PDF-pagare"), nil
}

func seed(t *testing.T) *memory.Store {
	t.Helper()
	ctx := context.Background()
	s, err := memory.NewStore("")
	require.NoError(t, err)
	require.NoError(t, s.Run(ctx, func(repos repository.Repositories) error {
		if err := repos.Customers.Create(ctx, &entity.Customer{ID: "c1", Name: "Don Pepe", Active: true}); err != nil {
			return err
		}
		if err := repos.Sales.Create(ctx, &entity.Sale{
			ID: "s1", Folio: "V-000007", CustomerID: "c1", Total: decimal.NewFromInt(90), Date: time.Now(),
		}); err != nil {
			return err
		}
		if err := repos.Notes.Create(ctx, &entity.PromissoryNote{
			ID: "n1", CustomerID: "c1", Amount: decimal.NewFromInt(50), Status: entity.NoteStatusVigente,
			IssueDate: time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC),
		}); err != nil {
			return err
		}
		return repos.Notes.Create(ctx, &entity.PromissoryNote{
			ID: "n2", CustomerID: "c1", Amount: decimal.NewFromInt(10), Status: entity.NoteStatusCancelado,
		})
	}))
	return s
}

func TestSaleTicket(t *testing.T) {
	s := seed(t)
	gen := &fakeGenerator{}
	uc := receipts.NewUseCase(s.Repositories(), gen, "Hedelmiá")

	b, name, err := uc.SaleTicket(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, "ticket_V-000007.pdf", name)
	assert.Equal(t, "%PDF-ticket", string(b))
	require.NotNil(t, gen.customerFor)
	assert.Equal(t, "Don Pepe", gen.customerFor.Name)

	_, _, err = uc.SaleTicket(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPromissoryNotePDF(t *testing.T) {
	s := seed(t)
	uc := receipts.NewUseCase(s.Repositories(), &fakeGenerator{}, "Hedelmiá")

	_, name, err := uc.PromissoryNote(context.Background(), "n1")
	require.NoError(t, err)
	assert.Equal(t, "pagare_20260402.pdf", name)

	_, _, err = uc.PromissoryNote(context.Background(), "n2")
	assert.ErrorIs(t, err, domain.ErrConflict)
}
