package inventory_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hedelmia/pos-api/internal/application/inventory"
	"github.com/hedelmia/pos-api/internal/domain"
	"github.com/hedelmia/pos-api/internal/domain/entity"
	"github.com/hedelmia/pos-api/internal/domain/repository"
	"github.com/hedelmia/pos-api/internal/domain/sale"
	"github.com/hedelmia/pos-api/internal/infrastructure/memory"
)

func newLedger(t *testing.T) (*inventory.Ledger, *memory.Store) {
	t.Helper()
	store, err := memory.NewStore("")
	require.NoError(t, err)
	ctx := context.Background()
	require.NoError(t, store.Run(ctx, func(repos repository.Repositories) error {
		if err := repos.Products.Create(ctx, &entity.Product{ID: "fresa", Name: "Paleta fresa", Price: decimal.NewFromInt(20), Stock: 5, Active: true}); err != nil {
			return err
		}
		return repos.Materials.Create(ctx, &entity.RawMaterial{
			ID: "azucar", Name: "Azúcar", Unit: "kg",
			Stock: decimal.NewFromInt(10), AvgCost: decimal.RequireFromString("2.00"),
		})
	}))
	return inventory.NewLedger(store, store.Repositories(), zerolog.Nop()), store
}

func TestAdjustStock_EntradaYSalida(t *testing.T) {
	ctx := context.Background()
	l, _ := newLedger(t)

	p, err := l.AdjustStock(ctx, "fresa", 7, "producción")
	require.NoError(t, err)
	assert.Equal(t, int64(12), p.Stock)

	p, err = l.AdjustStock(ctx, "fresa", -12, "merma")
	require.NoError(t, err)
	assert.Equal(t, int64(0), p.Stock)

	movs, err := l.ProductMovements(ctx, "fresa", 0)
	require.NoError(t, err)
	require.Len(t, movs, 2)
	assert.Equal(t, int64(-12), movs[0].Quantity, "el más reciente primero")
	assert.Equal(t, entity.MovementTypeSalida, movs[0].Type)
}

func TestAdjustStock_NuncaQuedaNegativo(t *testing.T) {
	ctx := context.Background()
	l, store := newLedger(t)

	_, err := l.AdjustStock(ctx, "fresa", -6, "merma")
	require.Error(t, err)
	var stockErr *domain.StockError
	require.True(t, errors.As(err, &stockErr))
	assert.Equal(t, "fresa", stockErr.ProductID)

	p, err := store.Repositories().Products.GetByID(ctx, "fresa")
	require.NoError(t, err)
	assert.Equal(t, int64(5), p.Stock)

	movs, err := l.ProductMovements(ctx, "fresa", 0)
	require.NoError(t, err)
	assert.Empty(t, movs, "un ajuste rechazado no deja movimiento")
}

func TestAdjustStock_DeltaCero(t *testing.T) {
	l, _ := newLedger(t)
	_, err := l.AdjustStock(context.Background(), "fresa", 0, "")
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
}

func TestAdjustProductStock(t *testing.T) {
	ctx := context.Background()
	l, _ := newLedger(t)

	p, err := l.AdjustProductStock(ctx, "fresa", entity.MovementTypeSalida, 2, "degustación")
	require.NoError(t, err)
	assert.Equal(t, int64(3), p.Stock)

	_, err = l.AdjustProductStock(ctx, "fresa", entity.MovementTypeEntrada, -1, "")
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	_, err = l.AdjustProductStock(ctx, "fresa", "traspaso", 1, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = l.AdjustProductStock(ctx, "no-existe", entity.MovementTypeEntrada, 1, "")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestReserveForSale_NoModificaStock(t *testing.T) {
	ctx := context.Background()
	l, store := newLedger(t)

	err := store.Run(ctx, func(repos repository.Repositories) error {
		products, err := l.ReserveForSale(ctx, repos, []sale.Item{{ProductID: "fresa", Quantity: 5}})
		if err != nil {
			return err
		}
		assert.Contains(t, products, "fresa")
		_, err = l.ReserveForSale(ctx, repos, []sale.Item{{ProductID: "fresa", Quantity: 6}})
		assert.ErrorIs(t, err, domain.ErrInsufficientStock)
		return nil
	})
	require.NoError(t, err)

	p, err := store.Repositories().Products.GetByID(ctx, "fresa")
	require.NoError(t, err)
	assert.Equal(t, int64(5), p.Stock)
}

// Escenario D: 10 kg a 2.00, entrada de 10 kg con costo total 30 → 20 kg a 2.50.
func TestAdjustMaterialStock_CostoPromedio(t *testing.T) {
	ctx := context.Background()
	l, _ := newLedger(t)

	cost := decimal.NewFromInt(30)
	m, err := l.AdjustMaterialStock(ctx, "azucar", entity.MovementTypeEntrada, decimal.NewFromInt(10), &cost, "compra")
	require.NoError(t, err)
	assert.Equal(t, "20", m.Stock.String())
	assert.Equal(t, "2.50", m.AvgCost.StringFixed(2))

	m, err = l.AdjustMaterialStock(ctx, "azucar", entity.MovementTypeSalida, decimal.RequireFromString("4.5"), nil, "producción")
	require.NoError(t, err)
	assert.Equal(t, "15.5", m.Stock.String())
	assert.Equal(t, "2.50", m.AvgCost.StringFixed(2), "la salida no cambia el costo promedio")

	movs, err := l.MaterialMovements(ctx, "azucar", 10)
	require.NoError(t, err)
	require.Len(t, movs, 2)
	assert.Nil(t, movs[0].TotalCost)
	require.NotNil(t, movs[1].TotalCost)
}

func TestAdjustMaterialStock_EntradaSinCostoConservaPromedio(t *testing.T) {
	l, _ := newLedger(t)
	m, err := l.AdjustMaterialStock(context.Background(), "azucar", entity.MovementTypeEntrada, decimal.NewFromInt(5), nil, "")
	require.NoError(t, err)
	assert.Equal(t, "15", m.Stock.String())
	assert.Equal(t, "2.00", m.AvgCost.StringFixed(2))
}

func TestAdjustMaterialStock_SalidaMayorAlStock(t *testing.T) {
	ctx := context.Background()
	l, store := newLedger(t)

	_, err := l.AdjustMaterialStock(ctx, "azucar", entity.MovementTypeSalida, decimal.NewFromInt(11), nil, "")
	var stockErr *domain.StockError
	require.True(t, errors.As(err, &stockErr))
	assert.Equal(t, "azucar", stockErr.ProductID)

	m, err := store.Repositories().Materials.GetByID(ctx, "azucar")
	require.NoError(t, err)
	assert.Equal(t, "10", m.Stock.String())
}

func TestAdjustStock_DeltaQueDesbordaSeRechaza(t *testing.T) {
	ctx := context.Background()
	l, store := newLedger(t)

	_, err := l.AdjustStock(ctx, "fresa", math.MaxInt64, "captura errónea")
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
	_, err = l.AdjustStock(ctx, "fresa", math.MinInt64, "captura errónea")
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	p, err := store.Repositories().Products.GetByID(ctx, "fresa")
	require.NoError(t, err)
	assert.Equal(t, int64(5), p.Stock)
	movs, err := l.ProductMovements(ctx, "fresa", 0)
	require.NoError(t, err)
	assert.Empty(t, movs)
}

func TestAdjustMaterialStock_RechazaPrecisionExtra(t *testing.T) {
	ctx := context.Background()
	l, store := newLedger(t)

	_, err := l.AdjustMaterialStock(ctx, "azucar", entity.MovementTypeEntrada, decimal.RequireFromString("1.0005"), nil, "")
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
	cost := decimal.RequireFromString("30.005")
	_, err = l.AdjustMaterialStock(ctx, "azucar", entity.MovementTypeEntrada, decimal.NewFromInt(1), &cost, "")
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	m, err := store.Repositories().Materials.GetByID(ctx, "azucar")
	require.NoError(t, err)
	assert.Equal(t, "10", m.Stock.String())
}

// 10 kg a 2.00 más 3 kg por 10.00: el promedio 2.3077 se guarda con cuatro decimales.
func TestAdjustMaterialStock_PromedioConCuatroDecimales(t *testing.T) {
	l, _ := newLedger(t)
	cost := decimal.NewFromInt(10)
	m, err := l.AdjustMaterialStock(context.Background(), "azucar", entity.MovementTypeEntrada, decimal.NewFromInt(3), &cost, "")
	require.NoError(t, err)
	assert.Equal(t, "2.3077", m.AvgCost.String())
}

