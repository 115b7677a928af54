package analytics_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hedelmia/pos-api/internal/application/analytics"
	"github.com/hedelmia/pos-api/internal/domain/entity"
	"github.com/hedelmia/pos-api/internal/domain/repository"
	"github.com/hedelmia/pos-api/internal/infrastructure/memory"
)

func TestDashboard_ResumenDelDia(t *testing.T) {
	ctx := context.Background()
	s, err := memory.NewStore("")
	require.NoError(t, err)

	day := time.Date(2026, 7, 15, 10, 0, 0, 0, time.UTC)
	yesterday := day.AddDate(0, 0, -1)
	d := decimal.NewFromInt

	require.NoError(t, s.Run(ctx, func(repos repository.Repositories) error {
		for _, p := range []*entity.Product{
			{ID: "fresa", Name: "Paleta de fresa", Stock: 2, Active: true},
			{ID: "mango", Name: "Paleta de mango", Stock: 40, Active: true},
			{ID: "coco", Name: "Paleta de coco", Stock: 0, Active: true},
			{ID: "nuez", Name: "Helado de nuez", Stock: 0, Active: false},
		} {
			if err := repos.Products.Create(ctx, p); err != nil {
				return err
			}
		}
		for _, c := range []*entity.Customer{
			{ID: "a", Name: "A", Balance: d(300), Active: true},
			{ID: "b", Name: "B", Balance: d(150), Active: false},
		} {
			if err := repos.Customers.Create(ctx, c); err != nil {
				return err
			}
		}
		for _, sale := range []*entity.Sale{
			{ID: "1", Folio: "V-000001", Date: day, Total: d(100), PaymentMethod: entity.PaymentCash},
			{ID: "2", Folio: "V-000002", Date: day.Add(time.Hour), Total: d(80), PaymentMethod: entity.PaymentCredit, CreditSale: true, CustomerID: "a"},
			{ID: "3", Folio: "V-000003", Date: yesterday, Total: d(999), PaymentMethod: entity.PaymentCash},
		} {
			if err := repos.Sales.Create(ctx, sale); err != nil {
				return err
			}
		}
		for _, m := range []*entity.CashMovement{
			{ID: "m1", Box: entity.CashBoxGrande, Kind: entity.CashKindEntrada, Amount: d(180), Date: day},
			{ID: "m2", Box: entity.CashBoxChica, Kind: entity.CashKindEntrada, Amount: d(50), Date: day},
			{ID: "m3", Box: entity.CashBoxChica, Kind: entity.CashKindSalida, Amount: d(20), Date: day},
		} {
			if err := repos.Cash.Create(ctx, m); err != nil {
				return err
			}
		}
		if err := repos.FridgeLoans.Create(ctx, &entity.FridgeLoan{ID: "f1", CustomerID: "a", Quantity: 2, Status: entity.FridgeStatusEntregado}); err != nil {
			return err
		}
		return repos.FridgeLoans.Create(ctx, &entity.FridgeLoan{ID: "f2", CustomerID: "a", Quantity: 1, Status: entity.FridgeStatusDevuelto})
	}))

	uc := analytics.NewDashboardUseCase(s.Repositories(), 5)
	out, err := uc.GetSummary(ctx, day)
	require.NoError(t, err)

	assert.Equal(t, "2026-07-15", out.Date)
	assert.Equal(t, 2, out.SalesCount)
	assert.Equal(t, "180", out.SalesTotal.String())
	assert.Equal(t, "80", out.CreditSales.String())
	assert.Equal(t, "100", out.ByPayment[entity.PaymentCash].String())
	assert.Equal(t, "30", out.Cash.Chica.String())
	assert.Equal(t, "180", out.Cash.Grande.String())
	assert.Equal(t, "450", out.Receivables.String())
	assert.Equal(t, 2, out.FridgesOut)

	require.Len(t, out.LowStock, 2)
	assert.Equal(t, "coco", out.LowStock[0].ProductID)
	assert.Equal(t, "fresa", out.LowStock[1].ProductID)
}
