// Package sales contiene el motor de transacción de venta: carrito, validación y commit
// atómico de venta, caja, crédito e inventario.
package sales

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/hedelmia/pos-api/internal/application/cash"
	"github.com/hedelmia/pos-api/internal/application/credit"
	"github.com/hedelmia/pos-api/internal/application/inventory"
	"github.com/hedelmia/pos-api/internal/application/ports"
	"github.com/hedelmia/pos-api/internal/domain"
	domaincredit "github.com/hedelmia/pos-api/internal/domain/credit"
	"github.com/hedelmia/pos-api/internal/domain/entity"
	"github.com/hedelmia/pos-api/internal/domain/repository"
	"github.com/hedelmia/pos-api/internal/domain/sale"
)

// CheckoutInput venta capturada en caja.
type CheckoutInput struct {
	Items         []sale.Item
	Discount      *sale.Discount
	CustomerID    string // opcional; sin CreditSale es solo informativo
	CreditSale    bool
	PaymentMethod string // vacío = efectivo (o crédito si CreditSale)
}

// CheckoutUseCase valida y confirma ventas en una sola unidad de trabajo.
type CheckoutUseCase struct {
	tx        ports.TxRunner
	repos     repository.Repositories
	inventory *inventory.Ledger
	cash      *cash.Ledger
	credit    *credit.Ledger
	log       zerolog.Logger
	now       func() time.Time
}

// NewCheckoutUseCase construye el caso de uso.
func NewCheckoutUseCase(
	tx ports.TxRunner,
	repos repository.Repositories,
	inv *inventory.Ledger,
	cashLedger *cash.Ledger,
	creditLedger *credit.Ledger,
	log zerolog.Logger,
) *CheckoutUseCase {
	return &CheckoutUseCase{
		tx:        tx,
		repos:     repos,
		inventory: inv,
		cash:      cashLedger,
		credit:    creditLedger,
		log:       log,
		now:       time.Now,
	}
}

func paymentMethod(in CheckoutInput) (string, error) {
	m := strings.ToLower(strings.TrimSpace(in.PaymentMethod))
	if m == "" {
		if in.CreditSale {
			return entity.PaymentCredit, nil
		}
		return entity.PaymentCash, nil
	}
	switch m {
	case entity.PaymentCash, entity.PaymentCard, entity.PaymentTransfer, entity.PaymentCredit:
		return m, nil
	}
	return "", domain.ErrInvalidInput
}

// Checkout valida el carrito completo contra el estado leído dentro de la transacción y,
// solo si todo es válido, escribe en este orden: folio, venta, entrada en caja grande,
// cargo a crédito (solo si CreditSale) y descuentos de stock. Si algo falla no queda nada escrito.
func (uc *CheckoutUseCase) Checkout(ctx context.Context, in CheckoutInput) (*entity.Sale, error) {
	s, err := uc.checkout(ctx, in)
	if err != nil {
		uc.log.Warn().Err(err).Str("code", domain.Code(err)).Int("lines", len(in.Items)).
			Bool("credit_sale", in.CreditSale).Msg("venta rechazada")
		return nil, err
	}
	uc.log.Info().Str("folio", s.Folio).Str("sale_id", s.ID).Str("total", s.Total.StringFixed(2)).
		Int("lines", len(s.Items)).Bool("credit_sale", s.CreditSale).Msg("venta registrada")
	return s, nil
}

func (uc *CheckoutUseCase) checkout(ctx context.Context, in CheckoutInput) (*entity.Sale, error) {
	items, err := sale.Normalize(in.Items)
	if err != nil {
		return nil, err
	}
	if in.Discount != nil && (in.Discount.Value.IsNegative() || domain.CheckMoney(in.Discount.Value) != nil) {
		return nil, domain.ErrInvalidAmount
	}
	customerID := strings.TrimSpace(in.CustomerID)
	if in.CreditSale && customerID == "" {
		return nil, domain.ErrInvalidInput
	}
	method, err := paymentMethod(in)
	if err != nil {
		return nil, err
	}

	var out *entity.Sale
	err = uc.tx.Run(ctx, func(repos repository.Repositories) error {
		// Validación: todo se lee y verifica antes de la primera escritura.
		products, err := uc.inventory.ReserveForSale(ctx, repos, items)
		if err != nil {
			return err
		}
		totals, err := sale.Compute(items, products, in.Discount)
		if err != nil {
			return err
		}
		if customerID != "" {
			c, err := repos.Customers.GetForUpdate(ctx, customerID)
			if err != nil {
				return err
			}
			if c == nil {
				return domain.NotFound("cliente", customerID)
			}
			if in.CreditSale && totals.Total.IsPositive() {
				if err := domaincredit.CheckCharge(c, totals.Total); err != nil {
					return err
				}
			}
		}

		// Escrituras.
		n, err := repos.Sales.NextFolioNumber(ctx, repository.FolioStreamVentas)
		if err != nil {
			return err
		}
		now := uc.now()
		s := &entity.Sale{
			ID:            uuid.New().String(),
			Folio:         sale.FormatFolio(n),
			Date:          now,
			Items:         totals.Lines,
			Subtotal:      totals.Subtotal,
			Discount:      totals.Discount,
			Total:         totals.Total,
			CustomerID:    customerID,
			CreditSale:    in.CreditSale,
			PaymentMethod: method,
			CreatedAt:     now,
		}
		if in.Discount != nil && !in.Discount.Value.IsZero() {
			s.DiscountType = in.Discount.Type
			s.DiscountValue = in.Discount.Value
		}
		if err := repos.Sales.Create(ctx, s); err != nil {
			return err
		}
		if s.Total.IsPositive() {
			if _, err := uc.cash.PostSaleEntryInTx(ctx, repos, s); err != nil {
				return err
			}
			if s.CreditSale {
				if _, err := uc.credit.ChargeInTx(ctx, repos, customerID, s.Total); err != nil {
					return err
				}
			}
		}
		for _, line := range s.Items {
			if _, err := uc.inventory.ApplyInTx(ctx, repos, line.ProductID, -line.Quantity, entity.MovementTypeVenta, s.Folio); err != nil {
				return err
			}
		}
		out = s
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GetSale obtiene una venta por ID.
func (uc *CheckoutUseCase) GetSale(ctx context.Context, id string) (*entity.Sale, error) {
	s, err := uc.repos.Sales.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.NotFound("venta", id)
	}
	return s, nil
}

// GetSaleByFolio obtiene una venta por folio. Acepta "V-000123", "v-123" o "123".
func (uc *CheckoutUseCase) GetSaleByFolio(ctx context.Context, folio string) (*entity.Sale, error) {
	n, err := sale.ParseFolio(folio)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	normalized := sale.FormatFolio(n)
	s, err := uc.repos.Sales.GetByFolio(ctx, normalized)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.NotFound("venta", normalized)
	}
	return s, nil
}

// ListSales ventas en el rango (extremos opcionales), más recientes primero.
func (uc *CheckoutUseCase) ListSales(ctx context.Context, from, to *time.Time) ([]*entity.Sale, error) {
	return uc.repos.Sales.List(ctx, from, to)
}
