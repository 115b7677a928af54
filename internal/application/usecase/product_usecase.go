package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hedelmia/pos-api/internal/application/dto"
	"github.com/hedelmia/pos-api/internal/application/ports"
	"github.com/hedelmia/pos-api/internal/domain"
	"github.com/hedelmia/pos-api/internal/domain/entity"
	"github.com/hedelmia/pos-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos. Stock se maneja vía movimientos;
// los productos no se eliminan, se desactivan.
type ProductUseCase struct {
	tx    ports.TxRunner
	repos repository.Repositories
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(tx ports.TxRunner, repos repository.Repositories) *ProductUseCase {
	return &ProductUseCase{tx: tx, repos: repos}
}

// Create crea un nuevo producto activo. Si trae stock inicial se registra como entrada.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if strings.TrimSpace(in.Flavor) == "" || strings.TrimSpace(in.Type) == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Price.IsNegative() || in.Cost.IsNegative() || in.Stock < 0 {
		return nil, domain.ErrInvalidAmount
	}
	if err := domain.CheckMoney(in.Price, in.Cost); err != nil {
		return nil, err
	}
	now := time.Now()
	product := &entity.Product{
		ID:           uuid.New().String(),
		Flavor:       strings.TrimSpace(in.Flavor),
		Type:         strings.TrimSpace(in.Type),
		Presentation: strings.TrimSpace(in.Presentation),
		Name:         strings.TrimSpace(in.Name),
		Price:        in.Price,
		Cost:         in.Cost,
		Stock:        in.Stock,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	err := uc.tx.Run(ctx, func(repos repository.Repositories) error {
		if err := repos.Products.Create(ctx, product); err != nil {
			return err
		}
		if product.Stock == 0 {
			return nil
		}
		return repos.StockMovements.Create(ctx, &entity.StockMovement{
			ID:        uuid.New().String(),
			ProductID: product.ID,
			Type:      entity.MovementTypeEntrada,
			Quantity:  product.Stock,
			Reference: "stock inicial",
			CreatedAt: now,
		})
	})
	if err != nil {
		return nil, err
	}
	out := dto.FromProduct(product)
	return &out, nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.repos.Products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.NotFound("producto", id)
	}
	out := dto.FromProduct(product)
	return &out, nil
}

// Update actualiza datos de catálogo. No permite modificar Stock.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	var out dto.ProductResponse
	err := uc.tx.Run(ctx, func(repos repository.Repositories) error {
		product, err := repos.Products.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.NotFound("producto", id)
		}
		if in.Flavor != nil {
			product.Flavor = strings.TrimSpace(*in.Flavor)
		}
		if in.Type != nil {
			product.Type = strings.TrimSpace(*in.Type)
		}
		if in.Presentation != nil {
			product.Presentation = strings.TrimSpace(*in.Presentation)
		}
		if in.Name != nil {
			product.Name = strings.TrimSpace(*in.Name)
		}
		if in.Price != nil {
			if in.Price.IsNegative() || domain.CheckMoney(*in.Price) != nil {
				return domain.ErrInvalidAmount
			}
			product.Price = *in.Price
		}
		if in.Cost != nil {
			if in.Cost.IsNegative() || domain.CheckMoney(*in.Cost) != nil {
				return domain.ErrInvalidAmount
			}
			product.Cost = *in.Cost
		}
		product.UpdatedAt = time.Now()
		if err := repos.Products.Update(ctx, product); err != nil {
			return err
		}
		out = dto.FromProduct(product)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// SetActive activa o desactiva un producto.
func (uc *ProductUseCase) SetActive(ctx context.Context, id string, active bool) (*dto.ProductResponse, error) {
	var out dto.ProductResponse
	err := uc.tx.Run(ctx, func(repos repository.Repositories) error {
		product, err := repos.Products.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.NotFound("producto", id)
		}
		product.Active = active
		product.UpdatedAt = time.Now()
		if err := repos.Products.Update(ctx, product); err != nil {
			return err
		}
		out = dto.FromProduct(product)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// List lista productos; includeInactive agrega los desactivados.
func (uc *ProductUseCase) List(ctx context.Context, includeInactive bool) ([]dto.ProductResponse, error) {
	list, err := uc.repos.Products.List(ctx, includeInactive)
	if err != nil {
		return nil, err
	}
	return dto.Map(list, dto.FromProduct), nil
}
