package dto

import (
	"github.com/hedelmia/pos-api/internal/domain/credit"
	"github.com/hedelmia/pos-api/internal/domain/entity"
)

// Conversión de entidades a respuestas HTTP.

func FromProduct(p *entity.Product) ProductResponse {
	return ProductResponse{
		ID:           p.ID,
		Flavor:       p.Flavor,
		Type:         p.Type,
		Presentation: p.Presentation,
		Name:         p.DisplayName(),
		Price:        p.Price,
		Cost:         p.Cost,
		Stock:        p.Stock,
		Active:       p.Active,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func FromStockMovement(m *entity.StockMovement) StockMovementResponse {
	return StockMovementResponse{
		ID:        m.ID,
		ProductID: m.ProductID,
		Type:      m.Type,
		Quantity:  m.Quantity,
		Reference: m.Reference,
		CreatedAt: m.CreatedAt,
	}
}

func FromMaterial(m *entity.RawMaterial) MaterialResponse {
	return MaterialResponse{
		ID:        m.ID,
		Name:      m.Name,
		Unit:      m.Unit,
		Stock:     m.Stock,
		AvgCost:   m.AvgCost,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func FromMaterialMovement(m *entity.MaterialMovement) MaterialMovementResponse {
	return MaterialMovementResponse{
		ID:         m.ID,
		MaterialID: m.MaterialID,
		Type:       m.Type,
		Quantity:   m.Quantity,
		TotalCost:  m.TotalCost,
		Note:       m.Note,
		CreatedAt:  m.CreatedAt,
	}
}

func FromCustomer(c *entity.Customer) CustomerResponse {
	return CustomerResponse{
		ID:          c.ID,
		Name:        c.Name,
		Phone:       c.Phone,
		CreditLimit: c.CreditLimit,
		Balance:     c.Balance,
		Available:   c.Available(),
		Active:      c.Active,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func FromSale(s *entity.Sale) SaleResponse {
	items := make([]SaleItemResponse, 0, len(s.Items))
	for _, it := range s.Items {
		items = append(items, SaleItemResponse{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Subtotal:    it.Subtotal,
		})
	}
	return SaleResponse{
		ID:            s.ID,
		Folio:         s.Folio,
		Date:          s.Date,
		Items:         items,
		Subtotal:      s.Subtotal,
		DiscountType:  s.DiscountType,
		DiscountValue: s.DiscountValue,
		Discount:      s.Discount,
		Total:         s.Total,
		CustomerID:    s.CustomerID,
		CreditSale:    s.CreditSale,
		PaymentMethod: s.PaymentMethod,
	}
}

func FromCashMovement(m *entity.CashMovement) CashMovementResponse {
	return CashMovementResponse{
		ID:      m.ID,
		Box:     m.Box,
		Kind:    m.Kind,
		Concept: m.Concept,
		Amount:  m.Amount,
		Date:    m.Date,
		Origin:  m.Origin,
		SaleID:  m.SaleID,
	}
}

func FromPromissoryNote(n *entity.PromissoryNote) PromissoryNoteResponse {
	return PromissoryNoteResponse{
		ID:         n.ID,
		CustomerID: n.CustomerID,
		Amount:     n.Amount,
		IssueDate:  n.IssueDate,
		DueDate:    n.DueDate,
		Status:     n.Status,
		Note:       n.Note,
	}
}

func FromCredit(c *entity.Credit) CreditResponse {
	payments := make([]CreditPaymentResponse, 0, len(c.Payments))
	for _, p := range c.Payments {
		payments = append(payments, CreditPaymentResponse{ID: p.ID, Amount: p.Amount, Date: p.Date, Note: p.Note})
	}
	return CreditResponse{
		ID:         c.ID,
		CustomerID: c.CustomerID,
		Amount:     c.Amount,
		Date:       c.Date,
		Status:     c.Status,
		Note:       c.Note,
		Payments:   payments,
		Paid:       credit.Paid(c),
		Remaining:  credit.Remaining(c),
	}
}

func FromFridgeLoan(l *entity.FridgeLoan) FridgeLoanResponse {
	return FridgeLoanResponse{
		ID:           l.ID,
		CustomerID:   l.CustomerID,
		Quantity:     l.Quantity,
		DeliveryDate: l.DeliveryDate,
		Status:       l.Status,
		ReturnDate:   l.ReturnDate,
		Note:         l.Note,
	}
}

// Map aplica fn a cada elemento.
func Map[E any, R any](in []*E, fn func(*E) R) []R {
	out := make([]R, 0, len(in))
	for _, e := range in {
		out = append(out, fn(e))
	}
	return out
}
