package sales

import (
	"context"

	"github.com/hedelmia/pos-api/internal/domain"
	"github.com/hedelmia/pos-api/internal/domain/entity"
	"github.com/hedelmia/pos-api/internal/domain/repository"
	"github.com/hedelmia/pos-api/internal/domain/sale"
)

// CartUseCase valida cada cambio del carrito contra el stock actual del producto.
// El carrito en sí lo conserva la presentación.
type CartUseCase struct {
	products repository.ProductRepository
}

// NewCartUseCase construye el caso de uso.
func NewCartUseCase(products repository.ProductRepository) *CartUseCase {
	return &CartUseCase{products: products}
}

func (uc *CartUseCase) product(ctx context.Context, productID string) (*entity.Product, error) {
	p, err := uc.products.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.NotFound("producto", productID)
	}
	return p, nil
}

// AddItem suma qty unidades. Si excede el stock se rechaza solo ese incremento.
func (uc *CartUseCase) AddItem(ctx context.Context, cart *sale.Cart, productID string, qty int64) error {
	p, err := uc.product(ctx, productID)
	if err != nil {
		return err
	}
	return cart.Add(p, qty)
}

// SetQuantity fija la cantidad de un renglón; 0 lo elimina.
func (uc *CartUseCase) SetQuantity(ctx context.Context, cart *sale.Cart, productID string, qty int64) error {
	if qty <= 0 {
		cart.Remove(productID)
		return nil
	}
	p, err := uc.product(ctx, productID)
	if err != nil {
		return err
	}
	return cart.SetQuantity(p, qty)
}

// RemoveItem quita el renglón.
func (uc *CartUseCase) RemoveItem(cart *sale.Cart, productID string) {
	cart.Remove(productID)
}
