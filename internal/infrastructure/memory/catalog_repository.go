package memory

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/hedelmia/pos-api/internal/domain"
	"github.com/hedelmia/pos-api/internal/domain/entity"
	"github.com/hedelmia/pos-api/internal/domain/repository"
)

var (
	_ repository.ProductRepository          = (*ProductRepo)(nil)
	_ repository.StockMovementRepository    = (*StockMovementRepo)(nil)
	_ repository.RawMaterialRepository      = (*RawMaterialRepo)(nil)
	_ repository.MaterialMovementRepository = (*MaterialMovementRepo)(nil)
	_ repository.CustomerRepository         = (*CustomerRepo)(nil)
)

// ProductRepo productos en memoria.
type ProductRepo struct{ base }

func (r *ProductRepo) find(d *data, id string) *entity.Product {
	for _, p := range d.Products {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func (r *ProductRepo) Create(_ context.Context, product *entity.Product) error {
	return r.do(func(d *data) error {
		if r.find(d, product.ID) != nil {
			return fmt.Errorf("producto %s: %w", product.ID, domain.ErrConflict)
		}
		cp := *product
		d.Products = append(d.Products, &cp)
		return nil
	})
}

func (r *ProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	var out *entity.Product
	err := r.do(func(d *data) error {
		if p := r.find(d, id); p != nil {
			cp := *p
			out = &cp
		}
		return nil
	})
	return out, err
}

// GetForUpdate en memoria equivale a GetByID: el mutex de la unidad de trabajo ya serializa.
func (r *ProductRepo) GetForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	return r.GetByID(ctx, id)
}

func (r *ProductRepo) Update(_ context.Context, product *entity.Product) error {
	return r.do(func(d *data) error {
		p := r.find(d, product.ID)
		if p == nil {
			return domain.NotFound("producto", product.ID)
		}
		stock := p.Stock
		*p = *product
		p.Stock = stock
		return nil
	})
}

func (r *ProductRepo) UpdateStock(_ context.Context, id string, stock int64) error {
	return r.do(func(d *data) error {
		p := r.find(d, id)
		if p == nil {
			return domain.NotFound("producto", id)
		}
		p.Stock = stock
		return nil
	})
}

func (r *ProductRepo) List(_ context.Context, includeInactive bool) ([]*entity.Product, error) {
	var out []*entity.Product
	err := r.do(func(d *data) error {
		for _, p := range d.Products {
			if !includeInactive && !p.Active {
				continue
			}
			cp := *p
			out = append(out, &cp)
		}
		return nil
	})
	return out, err
}

// StockMovementRepo historial de stock en memoria.
type StockMovementRepo struct{ base }

func (r *StockMovementRepo) Create(_ context.Context, movement *entity.StockMovement) error {
	return r.do(func(d *data) error {
		cp := *movement
		d.StockMovements = append(d.StockMovements, &cp)
		return nil
	})
}

// ListByProduct devuelve los más recientes primero; limit <= 0 = todos.
func (r *StockMovementRepo) ListByProduct(_ context.Context, productID string, limit int) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	err := r.do(func(d *data) error {
		for i := len(d.StockMovements) - 1; i >= 0; i-- {
			m := d.StockMovements[i]
			if m.ProductID != productID {
				continue
			}
			cp := *m
			out = append(out, &cp)
			if limit > 0 && len(out) == limit {
				break
			}
		}
		return nil
	})
	return out, err
}

// RawMaterialRepo materias primas en memoria.
type RawMaterialRepo struct{ base }

func (r *RawMaterialRepo) find(d *data, id string) *entity.RawMaterial {
	for _, m := range d.Materials {
		if m.ID == id {
			return m
		}
	}
	return nil
}

func (r *RawMaterialRepo) Create(_ context.Context, material *entity.RawMaterial) error {
	return r.do(func(d *data) error {
		if r.find(d, material.ID) != nil {
			return fmt.Errorf("materia prima %s: %w", material.ID, domain.ErrConflict)
		}
		cp := *material
		d.Materials = append(d.Materials, &cp)
		return nil
	})
}

func (r *RawMaterialRepo) GetByID(_ context.Context, id string) (*entity.RawMaterial, error) {
	var out *entity.RawMaterial
	err := r.do(func(d *data) error {
		if m := r.find(d, id); m != nil {
			cp := *m
			out = &cp
		}
		return nil
	})
	return out, err
}

func (r *RawMaterialRepo) GetForUpdate(ctx context.Context, id string) (*entity.RawMaterial, error) {
	return r.GetByID(ctx, id)
}

func (r *RawMaterialRepo) Update(_ context.Context, material *entity.RawMaterial) error {
	return r.do(func(d *data) error {
		m := r.find(d, material.ID)
		if m == nil {
			return domain.NotFound("materia prima", material.ID)
		}
		m.Name = material.Name
		m.Unit = material.Unit
		m.UpdatedAt = material.UpdatedAt
		return nil
	})
}

func (r *RawMaterialRepo) UpdateStock(_ context.Context, id string, stock, avgCost decimal.Decimal) error {
	return r.do(func(d *data) error {
		m := r.find(d, id)
		if m == nil {
			return domain.NotFound("materia prima", id)
		}
		m.Stock = stock
		m.AvgCost = avgCost
		return nil
	})
}

func (r *RawMaterialRepo) List(_ context.Context) ([]*entity.RawMaterial, error) {
	var out []*entity.RawMaterial
	err := r.do(func(d *data) error {
		for _, m := range d.Materials {
			cp := *m
			out = append(out, &cp)
		}
		return nil
	})
	return out, err
}

// MaterialMovementRepo historial de materias primas en memoria.
type MaterialMovementRepo struct{ base }

func (r *MaterialMovementRepo) Create(_ context.Context, movement *entity.MaterialMovement) error {
	return r.do(func(d *data) error {
		cp := *movement
		if movement.TotalCost != nil {
			tc := *movement.TotalCost
			cp.TotalCost = &tc
		}
		d.MaterialMovements = append(d.MaterialMovements, &cp)
		return nil
	})
}

func (r *MaterialMovementRepo) ListByMaterial(_ context.Context, materialID string, limit int) ([]*entity.MaterialMovement, error) {
	var out []*entity.MaterialMovement
	err := r.do(func(d *data) error {
		for i := len(d.MaterialMovements) - 1; i >= 0; i-- {
			m := d.MaterialMovements[i]
			if m.MaterialID != materialID {
				continue
			}
			cp := *m
			out = append(out, &cp)
			if limit > 0 && len(out) == limit {
				break
			}
		}
		return nil
	})
	return out, err
}

// CustomerRepo clientes en memoria.
type CustomerRepo struct{ base }

func (r *CustomerRepo) find(d *data, id string) *entity.Customer {
	for _, c := range d.Customers {
		if c.ID == id {
			return c
		}
	}
	return nil
}

func (r *CustomerRepo) Create(_ context.Context, customer *entity.Customer) error {
	return r.do(func(d *data) error {
		if r.find(d, customer.ID) != nil {
			return fmt.Errorf("cliente %s: %w", customer.ID, domain.ErrConflict)
		}
		cp := *customer
		d.Customers = append(d.Customers, &cp)
		return nil
	})
}

func (r *CustomerRepo) GetByID(_ context.Context, id string) (*entity.Customer, error) {
	var out *entity.Customer
	err := r.do(func(d *data) error {
		if c := r.find(d, id); c != nil {
			cp := *c
			out = &cp
		}
		return nil
	})
	return out, err
}

func (r *CustomerRepo) GetForUpdate(ctx context.Context, id string) (*entity.Customer, error) {
	return r.GetByID(ctx, id)
}

func (r *CustomerRepo) Update(_ context.Context, customer *entity.Customer) error {
	return r.do(func(d *data) error {
		c := r.find(d, customer.ID)
		if c == nil {
			return domain.NotFound("cliente", customer.ID)
		}
		balance := c.Balance
		*c = *customer
		c.Balance = balance
		return nil
	})
}

func (r *CustomerRepo) UpdateBalance(_ context.Context, id string, balance decimal.Decimal) error {
	return r.do(func(d *data) error {
		c := r.find(d, id)
		if c == nil {
			return domain.NotFound("cliente", id)
		}
		c.Balance = balance
		return nil
	})
}

func (r *CustomerRepo) List(_ context.Context, includeInactive bool) ([]*entity.Customer, error) {
	var out []*entity.Customer
	err := r.do(func(d *data) error {
		for _, c := range d.Customers {
			if !includeInactive && !c.Active {
				continue
			}
			cp := *c
			out = append(out, &cp)
		}
		return nil
	})
	return out, err
}
