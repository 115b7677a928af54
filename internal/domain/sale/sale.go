// Package sale contiene las reglas puras de una venta: carrito, descuento, totales y folio.
package sale

import (
	"math"

	"github.com/hedelmia/pos-api/internal/domain"
	"github.com/hedelmia/pos-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// Item renglón pedido por la caja: producto y cantidad.
type Item struct {
	ProductID string
	Quantity  int64
}

// Normalize valida los renglones y agrupa productos repetidos conservando el orden
// de primera aparición.
func Normalize(items []Item) ([]Item, error) {
	if len(items) == 0 {
		return nil, domain.ErrEmptyCart
	}
	out := make([]Item, 0, len(items))
	index := make(map[string]int, len(items))
	for _, it := range items {
		if it.ProductID == "" {
			return nil, domain.ErrInvalidInput
		}
		if it.Quantity <= 0 {
			return nil, domain.ErrInvalidAmount
		}
		if i, ok := index[it.ProductID]; ok {
			if it.Quantity > math.MaxInt64-out[i].Quantity {
				return nil, domain.ErrInvalidAmount
			}
			out[i].Quantity += it.Quantity
			continue
		}
		index[it.ProductID] = len(out)
		out = append(out, it)
	}
	return out, nil
}

// Totals resultado del cálculo de una venta.
type Totals struct {
	Lines    []entity.SaleItem
	Subtotal decimal.Decimal
	Discount decimal.Decimal
	Total    decimal.Decimal
}

// Compute valida stock y calcula líneas y totales contra los productos leídos en la
// misma unidad de trabajo. No modifica nada.
func Compute(items []Item, products map[string]*entity.Product, discount *Discount) (*Totals, error) {
	t := &Totals{Lines: make([]entity.SaleItem, 0, len(items)), Subtotal: decimal.Zero}
	for _, it := range items {
		p, ok := products[it.ProductID]
		if !ok || p == nil {
			return nil, domain.NotFound("producto", it.ProductID)
		}
		if !p.Active {
			return nil, domain.ErrInactive
		}
		if it.Quantity > p.Stock {
			return nil, domain.NewStockError(p.ID, it.Quantity, p.Stock)
		}
		// Con fracciones de centavo el total no cuadraría con lo guardado.
		if err := domain.CheckMoney(p.Price); err != nil {
			return nil, err
		}
		sub := p.Price.Mul(decimal.NewFromInt(it.Quantity))
		t.Lines = append(t.Lines, entity.SaleItem{
			ProductID:   p.ID,
			ProductName: p.DisplayName(),
			Quantity:    it.Quantity,
			UnitPrice:   p.Price,
			Subtotal:    sub,
		})
		t.Subtotal = t.Subtotal.Add(sub)
	}
	disc, err := discount.Resolve(t.Subtotal)
	if err != nil {
		return nil, err
	}
	t.Discount = disc
	t.Total = t.Subtotal.Sub(disc)
	return t, nil
}
