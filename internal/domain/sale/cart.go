package sale

import (
	"github.com/hedelmia/pos-api/internal/domain"
	"github.com/hedelmia/pos-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// Cart es el carrito en construcción (estado BUILDING). Lo mantiene la capa de
// presentación; cada alta se valida contra el stock leído en ese momento.
type Cart struct {
	Lines []CartLine `json:"lines"`
}

// CartLine renglón del carrito con el precio mostrado al cajero.
type CartLine struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int64           `json:"quantity"`
}

func (c *Cart) find(productID string) int {
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			return i
		}
	}
	return -1
}

// Add suma qty unidades del producto. Si la cantidad acumulada supera el stock actual
// se rechaza solo este incremento y el carrito queda como estaba.
func (c *Cart) Add(p *entity.Product, qty int64) error {
	if qty <= 0 {
		return domain.ErrInvalidAmount
	}
	current := int64(0)
	i := c.find(p.ID)
	if i >= 0 {
		current = c.Lines[i].Quantity
	}
	return c.set(p, i, current+qty)
}

// SetQuantity fija la cantidad de un renglón; qty <= 0 lo elimina.
func (c *Cart) SetQuantity(p *entity.Product, qty int64) error {
	i := c.find(p.ID)
	if qty <= 0 {
		if i >= 0 {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
		}
		return nil
	}
	return c.set(p, i, qty)
}

func (c *Cart) set(p *entity.Product, i int, qty int64) error {
	if !p.Active {
		return domain.ErrInactive
	}
	if qty > p.Stock {
		return domain.NewStockError(p.ID, qty, p.Stock)
	}
	if i >= 0 {
		c.Lines[i].Quantity = qty
		c.Lines[i].UnitPrice = p.Price
		return nil
	}
	c.Lines = append(c.Lines, CartLine{
		ProductID: p.ID,
		Name:      p.DisplayName(),
		UnitPrice: p.Price,
		Quantity:  qty,
	})
	return nil
}

// Remove quita el renglón del producto.
func (c *Cart) Remove(productID string) {
	if i := c.find(productID); i >= 0 {
		c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
	}
}

// Quantity cantidad actual del producto en el carrito.
func (c *Cart) Quantity(productID string) int64 {
	if i := c.find(productID); i >= 0 {
		return c.Lines[i].Quantity
	}
	return 0
}

// IsEmpty indica si no hay renglones.
func (c *Cart) IsEmpty() bool { return len(c.Lines) == 0 }

// Items renglones listos para checkout.
func (c *Cart) Items() []Item {
	out := make([]Item, 0, len(c.Lines))
	for _, l := range c.Lines {
		out = append(out, Item{ProductID: l.ProductID, Quantity: l.Quantity})
	}
	return out
}

// Subtotal suma de precio × cantidad con los precios mostrados.
func (c *Cart) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.Lines {
		total = total.Add(l.UnitPrice.Mul(decimal.NewFromInt(l.Quantity)))
	}
	return total
}
