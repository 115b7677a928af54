package sqlite

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/hedelmia/pos-api/internal/domain/entity"
)

// Los montos se guardan como TEXT para no pasar por REAL en SQLite.

// ProductModel fila de products.
type ProductModel struct {
	ID           string          `gorm:"primaryKey"`
	Flavor       string          `gorm:"not null;default:''"`
	Type         string          `gorm:"not null;default:''"`
	Presentation string          `gorm:"not null;default:''"`
	Name         string          `gorm:"not null;default:''"`
	Price        decimal.Decimal `gorm:"type:text;not null"`
	Cost         decimal.Decimal `gorm:"type:text;not null"`
	Stock        int64           `gorm:"not null;default:0"`
	Active       bool            `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (ProductModel) TableName() string { return "products" }

func (m *ProductModel) ToDomain() *entity.Product {
	return &entity.Product{
		ID: m.ID, Flavor: m.Flavor, Type: m.Type, Presentation: m.Presentation, Name: m.Name,
		Price: m.Price, Cost: m.Cost, Stock: m.Stock, Active: m.Active,
		CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt,
	}
}

func productModel(p *entity.Product) *ProductModel {
	return &ProductModel{
		ID: p.ID, Flavor: p.Flavor, Type: p.Type, Presentation: p.Presentation, Name: p.Name,
		Price: p.Price, Cost: p.Cost, Stock: p.Stock, Active: p.Active,
		CreatedAt: p.CreatedAt, UpdatedAt: p.UpdatedAt,
	}
}

// StockMovementModel fila de stock_movements.
type StockMovementModel struct {
	ID        string `gorm:"primaryKey"`
	ProductID string `gorm:"not null;index"`
	Type      string `gorm:"not null"`
	Quantity  int64  `gorm:"not null"`
	Reference string `gorm:"not null;default:''"`
	CreatedAt time.Time
}

func (StockMovementModel) TableName() string { return "stock_movements" }

func (m *StockMovementModel) ToDomain() *entity.StockMovement {
	return &entity.StockMovement{
		ID: m.ID, ProductID: m.ProductID, Type: m.Type, Quantity: m.Quantity,
		Reference: m.Reference, CreatedAt: m.CreatedAt,
	}
}

// RawMaterialModel fila de raw_materials.
type RawMaterialModel struct {
	ID        string          `gorm:"primaryKey"`
	Name      string          `gorm:"not null"`
	Unit      string          `gorm:"not null"`
	Stock     decimal.Decimal `gorm:"type:text;not null"`
	AvgCost   decimal.Decimal `gorm:"type:text;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (RawMaterialModel) TableName() string { return "raw_materials" }

func (m *RawMaterialModel) ToDomain() *entity.RawMaterial {
	return &entity.RawMaterial{
		ID: m.ID, Name: m.Name, Unit: m.Unit, Stock: m.Stock, AvgCost: m.AvgCost,
		CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt,
	}
}

// MaterialMovementModel fila de material_movements.
type MaterialMovementModel struct {
	ID         string              `gorm:"primaryKey"`
	MaterialID string              `gorm:"not null;index"`
	Type       string              `gorm:"not null"`
	Quantity   decimal.Decimal     `gorm:"type:text;not null"`
	TotalCost  decimal.NullDecimal `gorm:"type:text"`
	Note       string              `gorm:"not null;default:''"`
	CreatedAt  time.Time
}

func (MaterialMovementModel) TableName() string { return "material_movements" }

func (m *MaterialMovementModel) ToDomain() *entity.MaterialMovement {
	mv := &entity.MaterialMovement{
		ID: m.ID, MaterialID: m.MaterialID, Type: m.Type, Quantity: m.Quantity,
		Note: m.Note, CreatedAt: m.CreatedAt,
	}
	if m.TotalCost.Valid {
		tc := m.TotalCost.Decimal
		mv.TotalCost = &tc
	}
	return mv
}

// CustomerModel fila de customers.
type CustomerModel struct {
	ID          string          `gorm:"primaryKey"`
	Name        string          `gorm:"not null"`
	Phone       string          `gorm:"not null;default:''"`
	CreditLimit decimal.Decimal `gorm:"type:text;not null"`
	Balance     decimal.Decimal `gorm:"type:text;not null"`
	Active      bool            `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (CustomerModel) TableName() string { return "customers" }

func (m *CustomerModel) ToDomain() *entity.Customer {
	return &entity.Customer{
		ID: m.ID, Name: m.Name, Phone: m.Phone, CreditLimit: m.CreditLimit, Balance: m.Balance,
		Active: m.Active, CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt,
	}
}

// SaleModel cabecera de venta.
type SaleModel struct {
	ID            string          `gorm:"primaryKey"`
	Folio         string          `gorm:"not null;uniqueIndex"`
	Date          time.Time       `gorm:"not null;index"`
	Subtotal      decimal.Decimal `gorm:"type:text;not null"`
	DiscountType  string          `gorm:"not null;default:''"`
	DiscountValue decimal.Decimal `gorm:"type:text;not null"`
	Discount      decimal.Decimal `gorm:"type:text;not null"`
	Total         decimal.Decimal `gorm:"type:text;not null"`
	CustomerID    string          `gorm:"not null;default:''"`
	CreditSale    bool            `gorm:"not null"`
	PaymentMethod string          `gorm:"not null"`
	CreatedAt     time.Time
	Items         []SaleItemModel `gorm:"foreignKey:SaleID"`
}

func (SaleModel) TableName() string { return "sales" }

// SaleItemModel línea de venta.
type SaleItemModel struct {
	SaleID      string          `gorm:"primaryKey"`
	Line        int             `gorm:"primaryKey;autoIncrement:false"`
	ProductID   string          `gorm:"not null"`
	ProductName string          `gorm:"not null"`
	Quantity    int64           `gorm:"not null"`
	UnitPrice   decimal.Decimal `gorm:"type:text;not null"`
	Subtotal    decimal.Decimal `gorm:"type:text;not null"`
}

func (SaleItemModel) TableName() string { return "sale_items" }

func (m *SaleModel) ToDomain() *entity.Sale {
	s := &entity.Sale{
		ID: m.ID, Folio: m.Folio, Date: m.Date, Subtotal: m.Subtotal,
		DiscountType: m.DiscountType, DiscountValue: m.DiscountValue, Discount: m.Discount, Total: m.Total,
		CustomerID: m.CustomerID, CreditSale: m.CreditSale, PaymentMethod: m.PaymentMethod, CreatedAt: m.CreatedAt,
		Items: make([]entity.SaleItem, 0, len(m.Items)),
	}
	for _, it := range m.Items {
		s.Items = append(s.Items, entity.SaleItem{
			ProductID: it.ProductID, ProductName: it.ProductName, Quantity: it.Quantity,
			UnitPrice: it.UnitPrice, Subtotal: it.Subtotal,
		})
	}
	return s
}

func saleModel(s *entity.Sale) *SaleModel {
	m := &SaleModel{
		ID: s.ID, Folio: s.Folio, Date: s.Date, Subtotal: s.Subtotal,
		DiscountType: s.DiscountType, DiscountValue: s.DiscountValue, Discount: s.Discount, Total: s.Total,
		CustomerID: s.CustomerID, CreditSale: s.CreditSale, PaymentMethod: s.PaymentMethod, CreatedAt: s.CreatedAt,
	}
	for i, it := range s.Items {
		m.Items = append(m.Items, SaleItemModel{
			SaleID: s.ID, Line: i + 1, ProductID: it.ProductID, ProductName: it.ProductName,
			Quantity: it.Quantity, UnitPrice: it.UnitPrice, Subtotal: it.Subtotal,
		})
	}
	return m
}

// FolioCounterModel contador de folios por stream.
type FolioCounterModel struct {
	Stream     string `gorm:"primaryKey"`
	LastNumber int64  `gorm:"not null"`
}

func (FolioCounterModel) TableName() string { return "folio_counters" }

// CashMovementModel asiento de caja.
type CashMovementModel struct {
	ID        string          `gorm:"primaryKey"`
	Box       string          `gorm:"not null;index"`
	Kind      string          `gorm:"not null"`
	Concept   string          `gorm:"not null;default:''"`
	Amount    decimal.Decimal `gorm:"type:text;not null"`
	Date      time.Time       `gorm:"not null"`
	Origin    string          `gorm:"not null"`
	SaleID    string          `gorm:"not null;default:''"`
	CreatedAt time.Time
}

func (CashMovementModel) TableName() string { return "cash_movements" }

func (m *CashMovementModel) ToDomain() *entity.CashMovement {
	return &entity.CashMovement{
		ID: m.ID, Box: m.Box, Kind: m.Kind, Concept: m.Concept, Amount: m.Amount,
		Date: m.Date, Origin: m.Origin, SaleID: m.SaleID, CreatedAt: m.CreatedAt,
	}
}

// PromissoryNoteModel pagaré.
type PromissoryNoteModel struct {
	ID         string          `gorm:"primaryKey"`
	CustomerID string          `gorm:"not null;index"`
	Amount     decimal.Decimal `gorm:"type:text;not null"`
	IssueDate  time.Time       `gorm:"not null"`
	DueDate    *time.Time
	Status     string `gorm:"not null"`
	Note       string `gorm:"not null;default:''"`
	CreatedAt  time.Time
}

func (PromissoryNoteModel) TableName() string { return "promissory_notes" }

func (m *PromissoryNoteModel) ToDomain() *entity.PromissoryNote {
	return &entity.PromissoryNote{
		ID: m.ID, CustomerID: m.CustomerID, Amount: m.Amount, IssueDate: m.IssueDate,
		DueDate: m.DueDate, Status: m.Status, Note: m.Note, CreatedAt: m.CreatedAt,
	}
}

// CreditModel crédito.
type CreditModel struct {
	ID         string          `gorm:"primaryKey"`
	CustomerID string          `gorm:"not null;index"`
	Amount     decimal.Decimal `gorm:"type:text;not null"`
	Date       time.Time       `gorm:"not null"`
	Status     string          `gorm:"not null"`
	Note       string          `gorm:"not null;default:''"`
	CreatedAt  time.Time
	Payments   []CreditPaymentModel `gorm:"foreignKey:CreditID;constraint:OnDelete:CASCADE"`
}

func (CreditModel) TableName() string { return "credits" }

// CreditPaymentModel abono.
type CreditPaymentModel struct {
	ID        string          `gorm:"primaryKey"`
	CreditID  string          `gorm:"not null;index"`
	Amount    decimal.Decimal `gorm:"type:text;not null"`
	Date      time.Time       `gorm:"not null"`
	Note      string          `gorm:"not null;default:''"`
	CreatedAt time.Time
}

func (CreditPaymentModel) TableName() string { return "credit_payments" }

func (m *CreditModel) ToDomain() *entity.Credit {
	c := &entity.Credit{
		ID: m.ID, CustomerID: m.CustomerID, Amount: m.Amount, Date: m.Date,
		Status: m.Status, Note: m.Note, CreatedAt: m.CreatedAt,
	}
	for _, p := range m.Payments {
		c.Payments = append(c.Payments, entity.CreditPayment{
			ID: p.ID, CreditID: p.CreditID, Amount: p.Amount, Date: p.Date, Note: p.Note, CreatedAt: p.CreatedAt,
		})
	}
	return c
}

// FridgeLoanModel préstamo de refrigeradores.
type FridgeLoanModel struct {
	ID           string    `gorm:"primaryKey"`
	CustomerID   string    `gorm:"not null;index"`
	Quantity     int       `gorm:"not null"`
	DeliveryDate time.Time `gorm:"not null"`
	Status       string    `gorm:"not null"`
	ReturnDate   *time.Time
	Note         string `gorm:"not null;default:''"`
	CreatedAt    time.Time
}

func (FridgeLoanModel) TableName() string { return "fridge_loans" }

func (m *FridgeLoanModel) ToDomain() *entity.FridgeLoan {
	return &entity.FridgeLoan{
		ID: m.ID, CustomerID: m.CustomerID, Quantity: m.Quantity, DeliveryDate: m.DeliveryDate,
		Status: m.Status, ReturnDate: m.ReturnDate, Note: m.Note, CreatedAt: m.CreatedAt,
	}
}

// SettingModel ajuste clave/valor.
type SettingModel struct {
	Key   string `gorm:"primaryKey"`
	Value string `gorm:"not null"`
}

func (SettingModel) TableName() string { return "settings" }

// allModels en orden de creación.
func allModels() []any {
	return []any{
		&ProductModel{}, &StockMovementModel{}, &RawMaterialModel{}, &MaterialMovementModel{},
		&CustomerModel{}, &SaleModel{}, &SaleItemModel{}, &FolioCounterModel{}, &CashMovementModel{},
		&PromissoryNoteModel{}, &CreditModel{}, &CreditPaymentModel{}, &FridgeLoanModel{}, &SettingModel{},
	}
}
