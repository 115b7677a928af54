package sale_test

import (
	"errors"
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hedelmia/pos-api/internal/domain"
	"github.com/hedelmia/pos-api/internal/domain/entity"
	"github.com/hedelmia/pos-api/internal/domain/sale"
)

func product(id string, price int64, stock int64) *entity.Product {
	return &entity.Product{ID: id, Name: "Paleta " + id, Price: decimal.NewFromInt(price), Stock: stock, Active: true}
}

// Escenario A: stock 3, se piden 2 y luego 2 más → el segundo incremento se rechaza
// y el carrito se queda en 2.
func TestCart_IncrementoMayorAlStockSeRechaza(t *testing.T) {
	p := product("fresa", 25, 3)
	var cart sale.Cart

	require.NoError(t, cart.Add(p, 2))
	err := cart.Add(p, 2)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInsufficientStock))

	var stockErr *domain.StockError
	require.True(t, errors.As(err, &stockErr))
	assert.Equal(t, "fresa", stockErr.ProductID)
	assert.Equal(t, int64(2), cart.Quantity("fresa"), "el carrito conserva la cantidad anterior")
}

func TestCart_RechazoNoAfectaOtrosRenglones(t *testing.T) {
	fresa := product("fresa", 25, 3)
	mango := product("mango", 30, 1)
	var cart sale.Cart

	require.NoError(t, cart.Add(fresa, 1))
	require.Error(t, cart.Add(mango, 2))
	assert.Len(t, cart.Lines, 1)
	assert.Equal(t, int64(1), cart.Quantity("fresa"))
}

func TestCart_SetQuantityYRemove(t *testing.T) {
	p := product("limon", 20, 10)
	var cart sale.Cart

	require.NoError(t, cart.SetQuantity(p, 4))
	assert.Equal(t, int64(4), cart.Quantity("limon"))
	assert.True(t, cart.Subtotal().Equal(decimal.NewFromInt(80)))

	require.NoError(t, cart.SetQuantity(p, 0))
	assert.True(t, cart.IsEmpty())

	require.NoError(t, cart.Add(p, 1))
	cart.Remove("limon")
	assert.True(t, cart.IsEmpty())
}

func TestCart_ProductoInactivo(t *testing.T) {
	p := product("uva", 20, 10)
	p.Active = false
	var cart sale.Cart
	assert.ErrorIs(t, cart.Add(p, 1), domain.ErrInactive)
}

// Escenario B: subtotal 200 con 10% de descuento → total 180.00.
func TestCompute_DescuentoPorcentaje(t *testing.T) {
	p := product("fresa", 50, 10)
	totals, err := sale.Compute(
		[]sale.Item{{ProductID: "fresa", Quantity: 4}},
		map[string]*entity.Product{"fresa": p},
		&sale.Discount{Type: entity.DiscountPercent, Value: decimal.NewFromInt(10)},
	)
	require.NoError(t, err)
	assert.Equal(t, "200.00", totals.Subtotal.StringFixed(2))
	assert.Equal(t, "20.00", totals.Discount.StringFixed(2))
	assert.Equal(t, "180.00", totals.Total.StringFixed(2))
}

func TestCompute_TotalIgualASumaMenosDescuento(t *testing.T) {
	products := map[string]*entity.Product{
		"a": product("a", 17, 100),
		"b": product("b", 33, 100),
	}
	items := []sale.Item{{ProductID: "a", Quantity: 3}, {ProductID: "b", Quantity: 7}}
	discounts := []*sale.Discount{
		nil,
		{Type: entity.DiscountAmount, Value: decimal.NewFromInt(15)},
		{Type: entity.DiscountAmount, Value: decimal.NewFromInt(100000)},
		{Type: entity.DiscountPercent, Value: decimal.RequireFromString("12.5")},
		{Type: entity.DiscountPercent, Value: decimal.NewFromInt(250)},
	}
	for _, disc := range discounts {
		totals, err := sale.Compute(items, products, disc)
		require.NoError(t, err)
		sum := decimal.Zero
		for _, l := range totals.Lines {
			sum = sum.Add(l.UnitPrice.Mul(decimal.NewFromInt(l.Quantity)))
		}
		assert.True(t, sum.Sub(totals.Discount).Equal(totals.Total))
		assert.False(t, totals.Total.IsNegative())
	}
}

func TestCompute_StockInsuficienteNombraProducto(t *testing.T) {
	_, err := sale.Compute(
		[]sale.Item{{ProductID: "mango", Quantity: 5}},
		map[string]*entity.Product{"mango": product("mango", 30, 4)},
		nil,
	)
	var stockErr *domain.StockError
	require.True(t, errors.As(err, &stockErr))
	assert.Equal(t, "mango", stockErr.ProductID)
}

func TestCompute_ProductoFaltante(t *testing.T) {
	_, err := sale.Compute([]sale.Item{{ProductID: "x", Quantity: 1}}, map[string]*entity.Product{}, nil)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCompute_PrecioConFraccionDeCentavo(t *testing.T) {
	p := product("tercio", 0, 5)
	p.Price = decimal.RequireFromString("0.333")
	_, err := sale.Compute([]sale.Item{{ProductID: "tercio", Quantity: 3}}, map[string]*entity.Product{"tercio": p}, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
}

func TestDiscount_Resolve(t *testing.T) {
	sub := decimal.NewFromInt(200)
	cases := []struct {
		name string
		d    *sale.Discount
		want string
		err  error
	}{
		{"sin descuento", nil, "0.00", nil},
		{"monto", &sale.Discount{Type: entity.DiscountAmount, Value: decimal.NewFromInt(30)}, "30.00", nil},
		{"monto mayor al subtotal", &sale.Discount{Type: entity.DiscountAmount, Value: decimal.NewFromInt(500)}, "200.00", nil},
		{"porcentaje", &sale.Discount{Type: entity.DiscountPercent, Value: decimal.NewFromInt(10)}, "20.00", nil},
		{"porcentaje tope 100", &sale.Discount{Type: entity.DiscountPercent, Value: decimal.NewFromInt(150)}, "200.00", nil},
		{"negativo", &sale.Discount{Type: entity.DiscountAmount, Value: decimal.NewFromInt(-1)}, "", domain.ErrInvalidAmount},
		{"monto con fracción de centavo", &sale.Discount{Type: entity.DiscountAmount, Value: decimal.RequireFromString("0.005")}, "", domain.ErrInvalidAmount},
		{"porcentaje con decimales", &sale.Discount{Type: entity.DiscountPercent, Value: decimal.RequireFromString("12.5")}, "25.00", nil},
		{"tipo desconocido", &sale.Discount{Type: "cupon", Value: decimal.NewFromInt(5)}, "", domain.ErrInvalidInput},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.d.Resolve(sub)
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.StringFixed(2))
		})
	}
}

func TestNormalize(t *testing.T) {
	_, err := sale.Normalize(nil)
	assert.ErrorIs(t, err, domain.ErrEmptyCart)

	_, err = sale.Normalize([]sale.Item{{ProductID: "a", Quantity: 0}})
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	items, err := sale.Normalize([]sale.Item{
		{ProductID: "a", Quantity: 1},
		{ProductID: "b", Quantity: 2},
		{ProductID: "a", Quantity: 3},
	})
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, sale.Item{ProductID: "a", Quantity: 4}, items[0])
	assert.Equal(t, sale.Item{ProductID: "b", Quantity: 2}, items[1])

	_, err = sale.Normalize([]sale.Item{{ProductID: "a", Quantity: math.MaxInt64}, {ProductID: "a", Quantity: 1}})
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
}

func TestFolio(t *testing.T) {
	assert.Equal(t, "V-000123", sale.FormatFolio(123))
	assert.Equal(t, "V-1234567", sale.FormatFolio(1234567))

	n, err := sale.ParseFolio("v-000123")
	require.NoError(t, err)
	assert.Equal(t, int64(123), n)

	_, err = sale.ParseFolio("V-abc")
	assert.Error(t, err)
}
