package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

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

// ProductRepo productos sobre SQLite.
type ProductRepo struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepo {
	return &ProductRepo{db: db}
}

func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	if p.Stock < 0 {
		return domain.NewStockError(p.ID, -p.Stock, 0)
	}
	err := r.db.WithContext(ctx).Create(productModel(p)).Error
	return translate(err, "producto", p.ID)
}

func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	var m ProductModel
	ok, err := first(r.db.WithContext(ctx).Where("id = ?", id), &m)
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	if !ok {
		return nil, nil
	}
	return m.ToDomain(), nil
}

// GetForUpdate equivale a GetByID: la única conexión ya serializa las transacciones.
func (r *ProductRepo) GetForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	return r.GetByID(ctx, id)
}

func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	res := r.db.WithContext(ctx).Model(&ProductModel{}).Where("id = ?", p.ID).Updates(map[string]any{
		"flavor":       p.Flavor,
		"type":         p.Type,
		"presentation": p.Presentation,
		"name":         p.Name,
		"price":        p.Price,
		"cost":         p.Cost,
		"active":       p.Active,
		"updated_at":   p.UpdatedAt,
	})
	if res.Error != nil {
		return fmt.Errorf("update product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.NotFound("producto", p.ID)
	}
	return nil
}

func (r *ProductRepo) UpdateStock(ctx context.Context, id string, stock int64) error {
	if stock < 0 {
		return domain.NewStockError(id, -stock, 0)
	}
	res := r.db.WithContext(ctx).Model(&ProductModel{}).Where("id = ?", id).
		Updates(map[string]any{"stock": stock, "updated_at": time.Now()})
	if res.Error != nil {
		return fmt.Errorf("update stock: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.NotFound("producto", id)
	}
	return nil
}

func (r *ProductRepo) List(ctx context.Context, includeInactive bool) ([]*entity.Product, error) {
	q := r.db.WithContext(ctx).Order("rowid")
	if !includeInactive {
		q = q.Where("active = ?", true)
	}
	var rows []ProductModel
	if err := q.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	out := make([]*entity.Product, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToDomain())
	}
	return out, nil
}

// StockMovementRepo historial de stock.
type StockMovementRepo struct {
	db *gorm.DB
}

func (r *StockMovementRepo) Create(ctx context.Context, m *entity.StockMovement) error {
	err := r.db.WithContext(ctx).Create(&StockMovementModel{
		ID: m.ID, ProductID: m.ProductID, Type: m.Type, Quantity: m.Quantity,
		Reference: m.Reference, CreatedAt: m.CreatedAt,
	}).Error
	return translate(err, "movimiento de stock", m.ID)
}

// ListByProduct más recientes primero; limit <= 0 = todos.
func (r *StockMovementRepo) ListByProduct(ctx context.Context, productID string, limit int) ([]*entity.StockMovement, error) {
	q := r.db.WithContext(ctx).Where("product_id = ?", productID).Order("rowid DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	var rows []StockMovementModel
	if err := q.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list stock movements: %w", err)
	}
	out := make([]*entity.StockMovement, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToDomain())
	}
	return out, nil
}

// RawMaterialRepo materias primas.
type RawMaterialRepo struct {
	db *gorm.DB
}

func (r *RawMaterialRepo) Create(ctx context.Context, m *entity.RawMaterial) error {
	err := r.db.WithContext(ctx).Create(&RawMaterialModel{
		ID: m.ID, Name: m.Name, Unit: m.Unit, Stock: m.Stock, AvgCost: m.AvgCost,
		CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt,
	}).Error
	return translate(err, "materia prima", m.ID)
}

func (r *RawMaterialRepo) GetByID(ctx context.Context, id string) (*entity.RawMaterial, error) {
	var m RawMaterialModel
	ok, err := first(r.db.WithContext(ctx).Where("id = ?", id), &m)
	if err != nil {
		return nil, fmt.Errorf("get material: %w", err)
	}
	if !ok {
		return nil, nil
	}
	return m.ToDomain(), nil
}

func (r *RawMaterialRepo) GetForUpdate(ctx context.Context, id string) (*entity.RawMaterial, error) {
	return r.GetByID(ctx, id)
}

func (r *RawMaterialRepo) Update(ctx context.Context, m *entity.RawMaterial) error {
	res := r.db.WithContext(ctx).Model(&RawMaterialModel{}).Where("id = ?", m.ID).
		Updates(map[string]any{"name": m.Name, "unit": m.Unit, "updated_at": m.UpdatedAt})
	if res.Error != nil {
		return fmt.Errorf("update material: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.NotFound("materia prima", m.ID)
	}
	return nil
}

func (r *RawMaterialRepo) UpdateStock(ctx context.Context, id string, stock, avgCost decimal.Decimal) error {
	if stock.IsNegative() {
		return &domain.StockError{ProductID: id, Requested: stock.Neg(), Available: decimal.Zero}
	}
	res := r.db.WithContext(ctx).Model(&RawMaterialModel{}).Where("id = ?", id).
		Updates(map[string]any{"stock": stock, "avg_cost": avgCost, "updated_at": time.Now()})
	if res.Error != nil {
		return fmt.Errorf("update material stock: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.NotFound("materia prima", id)
	}
	return nil
}

func (r *RawMaterialRepo) List(ctx context.Context) ([]*entity.RawMaterial, error) {
	var rows []RawMaterialModel
	if err := r.db.WithContext(ctx).Order("rowid").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list materials: %w", err)
	}
	out := make([]*entity.RawMaterial, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToDomain())
	}
	return out, nil
}

// MaterialMovementRepo historial de materias primas.
type MaterialMovementRepo struct {
	db *gorm.DB
}

func (r *MaterialMovementRepo) Create(ctx context.Context, m *entity.MaterialMovement) error {
	model := &MaterialMovementModel{
		ID: m.ID, MaterialID: m.MaterialID, Type: m.Type, Quantity: m.Quantity,
		Note: m.Note, CreatedAt: m.CreatedAt,
	}
	if m.TotalCost != nil {
		model.TotalCost = decimal.NewNullDecimal(*m.TotalCost)
	}
	return translate(r.db.WithContext(ctx).Create(model).Error, "movimiento de materia prima", m.ID)
}

func (r *MaterialMovementRepo) ListByMaterial(ctx context.Context, materialID string, limit int) ([]*entity.MaterialMovement, error) {
	q := r.db.WithContext(ctx).Where("material_id = ?", materialID).Order("rowid DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	var rows []MaterialMovementModel
	if err := q.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list material movements: %w", err)
	}
	out := make([]*entity.MaterialMovement, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToDomain())
	}
	return out, nil
}

// CustomerRepo clientes.
type CustomerRepo struct {
	db *gorm.DB
}

func (r *CustomerRepo) Create(ctx context.Context, c *entity.Customer) error {
	err := r.db.WithContext(ctx).Create(&CustomerModel{
		ID: c.ID, Name: c.Name, Phone: c.Phone, CreditLimit: c.CreditLimit, Balance: c.Balance,
		Active: c.Active, CreatedAt: c.CreatedAt, UpdatedAt: c.UpdatedAt,
	}).Error
	return translate(err, "cliente", c.ID)
}

func (r *CustomerRepo) GetByID(ctx context.Context, id string) (*entity.Customer, error) {
	var m CustomerModel
	ok, err := first(r.db.WithContext(ctx).Where("id = ?", id), &m)
	if err != nil {
		return nil, fmt.Errorf("get customer: %w", err)
	}
	if !ok {
		return nil, nil
	}
	return m.ToDomain(), nil
}

func (r *CustomerRepo) GetForUpdate(ctx context.Context, id string) (*entity.Customer, error) {
	return r.GetByID(ctx, id)
}

func (r *CustomerRepo) Update(ctx context.Context, c *entity.Customer) error {
	res := r.db.WithContext(ctx).Model(&CustomerModel{}).Where("id = ?", c.ID).Updates(map[string]any{
		"name":         c.Name,
		"phone":        c.Phone,
		"credit_limit": c.CreditLimit,
		"active":       c.Active,
		"updated_at":   c.UpdatedAt,
	})
	if res.Error != nil {
		return fmt.Errorf("update customer: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.NotFound("cliente", c.ID)
	}
	return nil
}

func (r *CustomerRepo) UpdateBalance(ctx context.Context, id string, balance decimal.Decimal) error {
	if balance.IsNegative() {
		return fmt.Errorf("cliente %s: %w", id, domain.ErrInvalidAmount)
	}
	res := r.db.WithContext(ctx).Model(&CustomerModel{}).Where("id = ?", id).
		Updates(map[string]any{"balance": balance, "updated_at": time.Now()})
	if res.Error != nil {
		return fmt.Errorf("update balance: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.NotFound("cliente", id)
	}
	return nil
}

func (r *CustomerRepo) List(ctx context.Context, includeInactive bool) ([]*entity.Customer, error) {
	q := r.db.WithContext(ctx).Order("rowid")
	if !includeInactive {
		q = q.Where("active = ?", true)
	}
	var rows []CustomerModel
	if err := q.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	out := make([]*entity.Customer, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToDomain())
	}
	return out, nil
}
