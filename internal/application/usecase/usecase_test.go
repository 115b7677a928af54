package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hedelmia/pos-api/internal/application/dto"
	"github.com/hedelmia/pos-api/internal/application/usecase"
	"github.com/hedelmia/pos-api/internal/domain"
	"github.com/hedelmia/pos-api/internal/domain/entity"
	"github.com/hedelmia/pos-api/internal/infrastructure/memory"
)

func newStore(t *testing.T) *memory.Store {
	t.Helper()
	s, err := memory.NewStore("")
	require.NoError(t, err)
	return s
}

func TestProductUseCase_CreateConStockInicial(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	uc := usecase.NewProductUseCase(s, s.Repositories())

	p, err := uc.Create(ctx, dto.CreateProductRequest{
		Flavor: "fresa", Type: "Paleta de agua", Presentation: "pieza",
		Price: decimal.NewFromInt(20), Stock: 12,
	})
	require.NoError(t, err)
	assert.Equal(t, "Paleta de agua fresa pieza", p.Name)
	assert.Equal(t, int64(12), p.Stock)
	assert.True(t, p.Active)

	movs, err := s.Repositories().StockMovements.ListByProduct(ctx, p.ID, 0)
	require.NoError(t, err)
	require.Len(t, movs, 1)
	assert.Equal(t, entity.MovementTypeEntrada, movs[0].Type)
	assert.Equal(t, int64(12), movs[0].Quantity)
}

func TestProductUseCase_Validaciones(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	uc := usecase.NewProductUseCase(s, s.Repositories())

	_, err := uc.Create(ctx, dto.CreateProductRequest{Type: "Paleta"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(ctx, dto.CreateProductRequest{Flavor: "mango", Type: "Paleta", Price: decimal.NewFromInt(-1)})
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	_, err = uc.Create(ctx, dto.CreateProductRequest{Flavor: "mango", Type: "Paleta", Price: decimal.RequireFromString("0.333")})
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
	_, err = uc.Create(ctx, dto.CreateProductRequest{Flavor: "mango", Type: "Paleta", Price: decimal.NewFromInt(20), Cost: decimal.RequireFromString("7.125")})
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	_, err = uc.GetByID(ctx, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductUseCase_UpdateNoTocaStock(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	uc := usecase.NewProductUseCase(s, s.Repositories())

	p, err := uc.Create(ctx, dto.CreateProductRequest{Flavor: "limón", Type: "Paleta", Price: decimal.NewFromInt(18), Stock: 4})
	require.NoError(t, err)

	price := decimal.RequireFromString("21.50")
	updated, err := uc.Update(ctx, p.ID, dto.UpdateProductRequest{Price: &price})
	require.NoError(t, err)
	assert.Equal(t, "21.50", updated.Price.StringFixed(2))
	assert.Equal(t, int64(4), updated.Stock)

	neg := decimal.NewFromInt(-5)
	_, err = uc.Update(ctx, p.ID, dto.UpdateProductRequest{Price: &neg})
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	frac := decimal.RequireFromString("21.499")
	_, err = uc.Update(ctx, p.ID, dto.UpdateProductRequest{Cost: &frac})
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
}

func TestProductUseCase_DesactivarOcultaDelListado(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	uc := usecase.NewProductUseCase(s, s.Repositories())

	a, err := uc.Create(ctx, dto.CreateProductRequest{Flavor: "nuez", Type: "Helado", Price: decimal.NewFromInt(40)})
	require.NoError(t, err)
	_, err = uc.Create(ctx, dto.CreateProductRequest{Flavor: "coco", Type: "Helado", Price: decimal.NewFromInt(40)})
	require.NoError(t, err)

	off, err := uc.SetActive(ctx, a.ID, false)
	require.NoError(t, err)
	assert.False(t, off.Active)

	active, err := uc.List(ctx, false)
	require.NoError(t, err)
	assert.Len(t, active, 1)

	all, err := uc.List(ctx, true)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestCustomerUseCase_CRUD(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	uc := usecase.NewCustomerUseCase(s, s.Repositories())

	c, err := uc.Create(ctx, dto.CreateCustomerRequest{Name: " Tienda La Esquina ", CreditLimit: decimal.NewFromInt(500)})
	require.NoError(t, err)
	assert.Equal(t, "Tienda La Esquina", c.Name)
	assert.True(t, c.Balance.IsZero())
	assert.Equal(t, "500", c.Available.String())

	_, err = uc.Create(ctx, dto.CreateCustomerRequest{Name: "X", CreditLimit: decimal.NewFromInt(-1)})
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
	_, err = uc.Create(ctx, dto.CreateCustomerRequest{Name: "X", CreditLimit: decimal.RequireFromString("100.001")})
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
	limit := decimal.RequireFromString("750.255")
	_, err = uc.Update(ctx, c.ID, dto.UpdateCustomerRequest{CreditLimit: &limit})
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	phone := "555-0101"
	updated, err := uc.Update(ctx, c.ID, dto.UpdateCustomerRequest{Phone: &phone})
	require.NoError(t, err)
	assert.Equal(t, phone, updated.Phone)

	off, err := uc.Deactivate(ctx, c.ID)
	require.NoError(t, err)
	assert.False(t, off.Active)

	list, err := uc.List(ctx, false)
	require.NoError(t, err)
	assert.Empty(t, list)

	_, err = uc.GetByID(ctx, "nadie")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMaterialUseCase_CRUD(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	uc := usecase.NewMaterialUseCase(s, s.Repositories())

	m, err := uc.Create(ctx, dto.CreateMaterialRequest{Name: "Azúcar", Unit: "kg"})
	require.NoError(t, err)
	assert.True(t, m.Stock.IsZero())

	unit := "costal"
	updated, err := uc.Update(ctx, m.ID, dto.UpdateMaterialRequest{Unit: &unit})
	require.NoError(t, err)
	assert.Equal(t, "costal", updated.Unit)
	assert.Equal(t, "Azúcar", updated.Name)

	empty := "  "
	_, err = uc.Update(ctx, m.ID, dto.UpdateMaterialRequest{Name: &empty})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	list, err := uc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "costal", list[0].Unit)
}

func TestFridgeLoanUseCase_PrestamoYDevolucion(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	customers := usecase.NewCustomerUseCase(s, s.Repositories())
	uc := usecase.NewFridgeLoanUseCase(s, s.Repositories())

	c, err := customers.Create(ctx, dto.CreateCustomerRequest{Name: "Miscelánea Lupita"})
	require.NoError(t, err)

	_, err = uc.Lend(ctx, dto.LendFridgeRequest{CustomerID: "nadie", Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.Lend(ctx, dto.LendFridgeRequest{CustomerID: c.ID, Quantity: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	first, err := uc.Lend(ctx, dto.LendFridgeRequest{CustomerID: c.ID, Quantity: 2})
	require.NoError(t, err)
	_, err = uc.Lend(ctx, dto.LendFridgeRequest{CustomerID: c.ID, Quantity: 1})
	require.NoError(t, err)

	out, err := uc.OutstandingByCustomer(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, out[c.ID])

	when := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	returned, err := uc.Return(ctx, first.ID, &when)
	require.NoError(t, err)
	assert.Equal(t, entity.FridgeStatusDevuelto, returned.Status)
	require.NotNil(t, returned.ReturnDate)
	assert.True(t, returned.ReturnDate.Equal(when))

	_, err = uc.Return(ctx, first.ID, nil)
	assert.ErrorIs(t, err, domain.ErrConflict)

	out, err = uc.OutstandingByCustomer(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, out[c.ID])

	list, err := uc.List(ctx, c.ID)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}
