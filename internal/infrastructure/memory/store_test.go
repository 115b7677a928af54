package memory_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hedelmia/pos-api/internal/domain/entity"
	"github.com/hedelmia/pos-api/internal/domain/repository"
	"github.com/hedelmia/pos-api/internal/infrastructure/memory"
)

func seedProduct(t *testing.T, s *memory.Store, id string, stock int64) {
	t.Helper()
	err := s.Run(context.Background(), func(repos repository.Repositories) error {
		return repos.Products.Create(context.Background(), &entity.Product{
			ID: id, Name: "Paleta " + id, Price: decimal.NewFromInt(20), Stock: stock, Active: true,
		})
	})
	require.NoError(t, err)
}

func TestStore_RollbackRestauraEstado(t *testing.T) {
	ctx := context.Background()
	s, err := memory.NewStore("")
	require.NoError(t, err)
	seedProduct(t, s, "fresa", 10)

	boom := errors.New("falla simulada")
	err = s.Run(ctx, func(repos repository.Repositories) error {
		if _, err := repos.Sales.NextFolioNumber(ctx, repository.FolioStreamVentas); err != nil {
			return err
		}
		if err := repos.Products.UpdateStock(ctx, "fresa", 3); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	p, err := s.Repositories().Products.GetByID(ctx, "fresa")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, int64(10), p.Stock, "el stock debe volver al valor previo")

	// El folio no se consumió.
	var n int64
	require.NoError(t, s.Run(ctx, func(repos repository.Repositories) error {
		var err error
		n, err = repos.Sales.NextFolioNumber(ctx, repository.FolioStreamVentas)
		return err
	}))
	assert.Equal(t, int64(1), n)
}

func TestStore_CopiasIndependientes(t *testing.T) {
	ctx := context.Background()
	s, err := memory.NewStore("")
	require.NoError(t, err)
	seedProduct(t, s, "mango", 5)

	p, err := s.Repositories().Products.GetByID(ctx, "mango")
	require.NoError(t, err)
	p.Stock = 999

	again, err := s.Repositories().Products.GetByID(ctx, "mango")
	require.NoError(t, err)
	assert.Equal(t, int64(5), again.Stock)
}

func TestStore_SnapshotPersisteEntreInstancias(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "pos.json")

	s, err := memory.NewStore(path)
	require.NoError(t, err)
	seedProduct(t, s, "limon", 7)
	require.NoError(t, s.Run(ctx, func(repos repository.Repositories) error {
		return repos.Cash.Create(ctx, &entity.CashMovement{
			ID: "m1", Box: entity.CashBoxChica, Kind: entity.CashKindEntrada,
			Amount: decimal.RequireFromString("120.50"), Date: time.Now(), Origin: entity.CashOriginManual,
		})
	}))

	reopened, err := memory.NewStore(path)
	require.NoError(t, err)
	p, err := reopened.Repositories().Products.GetByID(ctx, "limon")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, int64(7), p.Stock)

	movs, err := reopened.Repositories().Cash.ListByBox(ctx, entity.CashBoxChica, nil, nil)
	require.NoError(t, err)
	require.Len(t, movs, 1)
	assert.Equal(t, "120.50", movs[0].Amount.StringFixed(2))
}

func TestStore_AbonosDeCredito(t *testing.T) {
	ctx := context.Background()
	s, err := memory.NewStore("")
	require.NoError(t, err)

	require.NoError(t, s.Run(ctx, func(repos repository.Repositories) error {
		if err := repos.Credits.Create(ctx, &entity.Credit{ID: "c1", CustomerID: "x", Amount: decimal.NewFromInt(100), Status: entity.CreditStatusPendiente}); err != nil {
			return err
		}
		if err := repos.Credits.AddPayment(ctx, &entity.CreditPayment{ID: "p1", CreditID: "c1", Amount: decimal.NewFromInt(30)}); err != nil {
			return err
		}
		return repos.Credits.AddPayment(ctx, &entity.CreditPayment{ID: "p2", CreditID: "c1", Amount: decimal.NewFromInt(20)})
	}))

	c, err := s.Repositories().Credits.GetByID(ctx, "c1")
	require.NoError(t, err)
	require.Len(t, c.Payments, 2)
	assert.Equal(t, "p1", c.Payments[0].ID)

	require.NoError(t, s.Run(ctx, func(repos repository.Repositories) error {
		return repos.Credits.DeletePayment(ctx, "c1", "p1")
	}))
	c, err = s.Repositories().Credits.GetByID(ctx, "c1")
	require.NoError(t, err)
	require.Len(t, c.Payments, 1)
	assert.Equal(t, "p2", c.Payments[0].ID)
}
