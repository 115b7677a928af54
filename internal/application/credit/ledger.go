// Package credit contiene el libro de crédito de clientes: saldo con límite, pagarés y
// créditos con abonos.
package credit

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/hedelmia/pos-api/internal/application/ports"
	"github.com/hedelmia/pos-api/internal/domain"
	domaincredit "github.com/hedelmia/pos-api/internal/domain/credit"
	"github.com/hedelmia/pos-api/internal/domain/entity"
	"github.com/hedelmia/pos-api/internal/domain/repository"
)

// Ledger libro de crédito.
type Ledger struct {
	tx    ports.TxRunner
	repos repository.Repositories
	log   zerolog.Logger
	now   func() time.Time
}

// NewLedger construye el libro de crédito.
func NewLedger(tx ports.TxRunner, repos repository.Repositories, log zerolog.Logger) *Ledger {
	return &Ledger{tx: tx, repos: repos, log: log, now: time.Now}
}

// ChargeCustomer suma amount al saldo del cliente si no rebasa su límite.
// Si lo rebasa el saldo queda intacto.
func (l *Ledger) ChargeCustomer(ctx context.Context, customerID string, amount decimal.Decimal) (*entity.Customer, error) {
	var out *entity.Customer
	err := l.tx.Run(ctx, func(repos repository.Repositories) error {
		c, err := l.ChargeInTx(ctx, repos, customerID, amount)
		out = c
		return err
	})
	if err != nil {
		l.log.Warn().Err(err).Str("customer_id", customerID).Str("amount", amount.StringFixed(2)).Msg("cargo a crédito rechazado")
		return nil, err
	}
	return out, nil
}

// ChargeInTx aplica el cargo con los repositorios de la transacción del caller.
func (l *Ledger) ChargeInTx(ctx context.Context, repos repository.Repositories, customerID string, amount decimal.Decimal) (*entity.Customer, error) {
	c, err := repos.Customers.GetForUpdate(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.NotFound("cliente", customerID)
	}
	if err := domaincredit.CheckCharge(c, amount); err != nil {
		return nil, err
	}
	c.Balance = c.Balance.Add(amount)
	if err := repos.Customers.UpdateBalance(ctx, c.ID, c.Balance); err != nil {
		return nil, err
	}
	return c, nil
}

// SetCustomerBalance ajuste administrativo del saldo. No valida contra el límite.
func (l *Ledger) SetCustomerBalance(ctx context.Context, customerID string, balance decimal.Decimal) (*entity.Customer, error) {
	if balance.IsNegative() {
		return nil, domain.ErrInvalidAmount
	}
	if err := domain.CheckMoney(balance); err != nil {
		return nil, err
	}
	var out *entity.Customer
	err := l.tx.Run(ctx, func(repos repository.Repositories) error {
		c, err := repos.Customers.GetForUpdate(ctx, customerID)
		if err != nil {
			return err
		}
		if c == nil {
			return domain.NotFound("cliente", customerID)
		}
		if err := repos.Customers.UpdateBalance(ctx, c.ID, balance); err != nil {
			return err
		}
		c.Balance = balance
		out = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	l.log.Info().Str("customer_id", customerID).Str("balance", balance.StringFixed(2)).Msg("saldo de cliente ajustado")
	return out, nil
}

// IssuePromissoryNote emite un pagaré por deuda existente. No modifica el saldo del cliente.
func (l *Ledger) IssuePromissoryNote(ctx context.Context, customerID string, amount decimal.Decimal, dueDate *time.Time, note string) (*entity.PromissoryNote, error) {
	var (
		out     *entity.PromissoryNote
		balance decimal.Decimal
	)
	err := l.tx.Run(ctx, func(repos repository.Repositories) error {
		c, err := repos.Customers.GetForUpdate(ctx, customerID)
		if err != nil {
			return err
		}
		if c == nil {
			return domain.NotFound("cliente", customerID)
		}
		balance = c.Balance
		if err := domaincredit.CheckNote(c, amount); err != nil {
			return err
		}
		now := l.now()
		n := &entity.PromissoryNote{
			ID:         uuid.New().String(),
			CustomerID: c.ID,
			Amount:     amount,
			IssueDate:  now,
			DueDate:    dueDate,
			Status:     entity.NoteStatusVigente,
			Note:       note,
			CreatedAt:  now,
		}
		if err := repos.Notes.Create(ctx, n); err != nil {
			return err
		}
		out = n
		return nil
	})
	if err != nil {
		l.log.Warn().Err(err).Str("customer_id", customerID).Msg("pagaré rechazado")
		return nil, err
	}
	l.log.Info().Str("customer_id", customerID).Str("note_id", out.ID).Str("amount", amount.StringFixed(2)).
		Str("balance", balance.StringFixed(2)).Msg("pagaré emitido")
	return out, nil
}

// GetPromissoryNote obtiene un pagaré.
func (l *Ledger) GetPromissoryNote(ctx context.Context, id string) (*entity.PromissoryNote, error) {
	n, err := l.repos.Notes.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, domain.NotFound("pagaré", id)
	}
	return n, nil
}

// SetPromissoryNoteStatus cambia el estado de un pagaré (vigente, pagado o cancelado).
func (l *Ledger) SetPromissoryNoteStatus(ctx context.Context, id, status string) (*entity.PromissoryNote, error) {
	if !entity.IsValidNoteStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	var out *entity.PromissoryNote
	err := l.tx.Run(ctx, func(repos repository.Repositories) error {
		n, err := repos.Notes.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if n == nil {
			return domain.NotFound("pagaré", id)
		}
		if err := repos.Notes.UpdateStatus(ctx, id, status); err != nil {
			return err
		}
		n.Status = status
		out = n
		return nil
	})
	return out, err
}

// ListPromissoryNotes pagarés del cliente.
func (l *Ledger) ListPromissoryNotes(ctx context.Context, customerID string) ([]*entity.PromissoryNote, error) {
	return l.repos.Notes.ListByCustomer(ctx, customerID)
}

// DeletePromissoryNote elimina un pagaré.
func (l *Ledger) DeletePromissoryNote(ctx context.Context, id string) error {
	return l.tx.Run(ctx, func(repos repository.Repositories) error {
		n, err := repos.Notes.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if n == nil {
			return domain.NotFound("pagaré", id)
		}
		return repos.Notes.Delete(ctx, id)
	})
}

// CreateCredit registra un crédito pendiente para el cliente. date nil = ahora.
func (l *Ledger) CreateCredit(ctx context.Context, customerID string, amount decimal.Decimal, date *time.Time, note string) (*entity.Credit, error) {
	if !amount.IsPositive() {
		return nil, domain.ErrInvalidAmount
	}
	if err := domain.CheckMoney(amount); err != nil {
		return nil, err
	}
	var out *entity.Credit
	err := l.tx.Run(ctx, func(repos repository.Repositories) error {
		c, err := repos.Customers.GetByID(ctx, customerID)
		if err != nil {
			return err
		}
		if c == nil {
			return domain.NotFound("cliente", customerID)
		}
		now := l.now()
		cr := &entity.Credit{
			ID:         uuid.New().String(),
			CustomerID: customerID,
			Amount:     amount,
			Date:       dateOr(date, now),
			Status:     entity.CreditStatusPendiente,
			Note:       note,
			Payments:   []entity.CreditPayment{},
			CreatedAt:  now,
		}
		if err := repos.Credits.Create(ctx, cr); err != nil {
			return err
		}
		out = cr
		return nil
	})
	if err != nil {
		return nil, err
	}
	l.log.Info().Str("customer_id", customerID).Str("credit_id", out.ID).Str("amount", amount.StringFixed(2)).Msg("crédito registrado")
	return out, nil
}

// RecordCreditPayment agrega un abono. El estado del crédito no cambia aunque quede liquidado.
func (l *Ledger) RecordCreditPayment(ctx context.Context, creditID string, amount decimal.Decimal, date *time.Time, note string) (*entity.Credit, error) {
	if !amount.IsPositive() {
		return nil, domain.ErrInvalidAmount
	}
	if err := domain.CheckMoney(amount); err != nil {
		return nil, err
	}
	var out *entity.Credit
	err := l.tx.Run(ctx, func(repos repository.Repositories) error {
		cr, err := repos.Credits.GetForUpdate(ctx, creditID)
		if err != nil {
			return err
		}
		if cr == nil {
			return domain.NotFound("crédito", creditID)
		}
		now := l.now()
		p := entity.CreditPayment{
			ID:        uuid.New().String(),
			CreditID:  cr.ID,
			Amount:    amount,
			Date:      dateOr(date, now),
			Note:      note,
			CreatedAt: now,
		}
		if err := repos.Credits.AddPayment(ctx, &p); err != nil {
			return err
		}
		cr.Payments = append(cr.Payments, p)
		out = cr
		return nil
	})
	if err != nil {
		return nil, err
	}
	l.log.Info().Str("credit_id", creditID).Str("amount", amount.StringFixed(2)).
		Str("remaining", domaincredit.Remaining(out).StringFixed(2)).Msg("abono registrado")
	return out, nil
}

// SetCreditStatus único camino para marcar un crédito como pagado (o reabrirlo).
func (l *Ledger) SetCreditStatus(ctx context.Context, creditID, status string) (*entity.Credit, error) {
	if !entity.IsValidCreditStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	var out *entity.Credit
	err := l.tx.Run(ctx, func(repos repository.Repositories) error {
		cr, err := repos.Credits.GetForUpdate(ctx, creditID)
		if err != nil {
			return err
		}
		if cr == nil {
			return domain.NotFound("crédito", creditID)
		}
		if err := repos.Credits.UpdateStatus(ctx, creditID, status); err != nil {
			return err
		}
		cr.Status = status
		out = cr
		return nil
	})
	return out, err
}

// GetCredit obtiene un crédito con sus abonos.
func (l *Ledger) GetCredit(ctx context.Context, id string) (*entity.Credit, error) {
	cr, err := l.repos.Credits.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cr == nil {
		return nil, domain.NotFound("crédito", id)
	}
	return cr, nil
}

// ListCredits créditos del cliente.
func (l *Ledger) ListCredits(ctx context.Context, customerID string) ([]*entity.Credit, error) {
	return l.repos.Credits.ListByCustomer(ctx, customerID)
}

// DeleteCredit elimina el crédito y sus abonos.
func (l *Ledger) DeleteCredit(ctx context.Context, id string) error {
	return l.tx.Run(ctx, func(repos repository.Repositories) error {
		cr, err := repos.Credits.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if cr == nil {
			return domain.NotFound("crédito", id)
		}
		return repos.Credits.Delete(ctx, id)
	})
}

// DeleteCreditPayment elimina un abono.
func (l *Ledger) DeleteCreditPayment(ctx context.Context, creditID, paymentID string) (*entity.Credit, error) {
	var out *entity.Credit
	err := l.tx.Run(ctx, func(repos repository.Repositories) error {
		cr, err := repos.Credits.GetForUpdate(ctx, creditID)
		if err != nil {
			return err
		}
		if cr == nil {
			return domain.NotFound("crédito", creditID)
		}
		idx := -1
		for i := range cr.Payments {
			if cr.Payments[i].ID == paymentID {
				idx = i
				break
			}
		}
		if idx < 0 {
			return domain.NotFound("abono", paymentID)
		}
		if err := repos.Credits.DeletePayment(ctx, creditID, paymentID); err != nil {
			return err
		}
		cr.Payments = append(cr.Payments[:idx], cr.Payments[idx+1:]...)
		out = cr
		return nil
	})
	return out, err
}

func dateOr(d *time.Time, def time.Time) time.Time {
	if d == nil || d.IsZero() {
		return def
	}
	return *d
}
