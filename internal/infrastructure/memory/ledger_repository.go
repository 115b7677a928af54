package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/hedelmia/pos-api/internal/domain"
	"github.com/hedelmia/pos-api/internal/domain/entity"
	"github.com/hedelmia/pos-api/internal/domain/repository"
)

var (
	_ repository.SaleRepository           = (*SaleRepo)(nil)
	_ repository.CashMovementRepository   = (*CashMovementRepo)(nil)
	_ repository.PromissoryNoteRepository = (*PromissoryNoteRepo)(nil)
	_ repository.CreditRepository         = (*CreditRepo)(nil)
	_ repository.FridgeLoanRepository     = (*FridgeLoanRepo)(nil)
	_ repository.SettingRepository        = (*SettingRepo)(nil)
)

func inRange(t time.Time, from, to *time.Time) bool {
	if from != nil && t.Before(*from) {
		return false
	}
	if to != nil && t.After(*to) {
		return false
	}
	return true
}

func copySale(s *entity.Sale) *entity.Sale {
	cp := *s
	cp.Items = append([]entity.SaleItem(nil), s.Items...)
	return &cp
}

// SaleRepo ventas en memoria.
type SaleRepo struct{ base }

func (r *SaleRepo) Create(_ context.Context, sale *entity.Sale) error {
	return r.do(func(d *data) error {
		for _, s := range d.Sales {
			if s.ID == sale.ID || s.Folio == sale.Folio {
				return fmt.Errorf("venta %s: %w", sale.Folio, domain.ErrConflict)
			}
		}
		d.Sales = append(d.Sales, copySale(sale))
		return nil
	})
}

func (r *SaleRepo) GetByID(_ context.Context, id string) (*entity.Sale, error) {
	var out *entity.Sale
	err := r.do(func(d *data) error {
		for _, s := range d.Sales {
			if s.ID == id {
				out = copySale(s)
				break
			}
		}
		return nil
	})
	return out, err
}

func (r *SaleRepo) GetByFolio(_ context.Context, folio string) (*entity.Sale, error) {
	var out *entity.Sale
	err := r.do(func(d *data) error {
		for _, s := range d.Sales {
			if s.Folio == folio {
				out = copySale(s)
				break
			}
		}
		return nil
	})
	return out, err
}

func (r *SaleRepo) List(_ context.Context, from, to *time.Time) ([]*entity.Sale, error) {
	var out []*entity.Sale
	err := r.do(func(d *data) error {
		for i := len(d.Sales) - 1; i >= 0; i-- {
			if inRange(d.Sales[i].Date, from, to) {
				out = append(out, copySale(d.Sales[i]))
			}
		}
		return nil
	})
	return out, err
}

func (r *SaleRepo) NextFolioNumber(_ context.Context, stream string) (int64, error) {
	var n int64
	err := r.do(func(d *data) error {
		d.Folios[stream]++
		n = d.Folios[stream]
		return nil
	})
	return n, err
}

// CashMovementRepo libro de caja en memoria.
type CashMovementRepo struct{ base }

func (r *CashMovementRepo) Create(_ context.Context, movement *entity.CashMovement) error {
	return r.do(func(d *data) error {
		cp := *movement
		d.Cash = append(d.Cash, &cp)
		return nil
	})
}

func (r *CashMovementRepo) GetByID(_ context.Context, id string) (*entity.CashMovement, error) {
	var out *entity.CashMovement
	err := r.do(func(d *data) error {
		for _, m := range d.Cash {
			if m.ID == id {
				cp := *m
				out = &cp
				break
			}
		}
		return nil
	})
	return out, err
}

func (r *CashMovementRepo) ListByBox(_ context.Context, box string, from, to *time.Time) ([]*entity.CashMovement, error) {
	var out []*entity.CashMovement
	err := r.do(func(d *data) error {
		for _, m := range d.Cash {
			if box != "" && m.Box != box {
				continue
			}
			if !inRange(m.Date, from, to) {
				continue
			}
			cp := *m
			out = append(out, &cp)
		}
		return nil
	})
	return out, err
}

func (r *CashMovementRepo) Delete(_ context.Context, id string) error {
	return r.do(func(d *data) error {
		for i, m := range d.Cash {
			if m.ID == id {
				d.Cash = append(d.Cash[:i], d.Cash[i+1:]...)
				return nil
			}
		}
		return domain.NotFound("movimiento de caja", id)
	})
}

// PromissoryNoteRepo pagarés en memoria.
type PromissoryNoteRepo struct{ base }

func copyNote(n *entity.PromissoryNote) *entity.PromissoryNote {
	cp := *n
	if n.DueDate != nil {
		due := *n.DueDate
		cp.DueDate = &due
	}
	return &cp
}

func (r *PromissoryNoteRepo) Create(_ context.Context, note *entity.PromissoryNote) error {
	return r.do(func(d *data) error {
		d.Notes = append(d.Notes, copyNote(note))
		return nil
	})
}

func (r *PromissoryNoteRepo) GetByID(_ context.Context, id string) (*entity.PromissoryNote, error) {
	var out *entity.PromissoryNote
	err := r.do(func(d *data) error {
		for _, n := range d.Notes {
			if n.ID == id {
				out = copyNote(n)
				break
			}
		}
		return nil
	})
	return out, err
}

func (r *PromissoryNoteRepo) ListByCustomer(_ context.Context, customerID string) ([]*entity.PromissoryNote, error) {
	var out []*entity.PromissoryNote
	err := r.do(func(d *data) error {
		for _, n := range d.Notes {
			if n.CustomerID == customerID {
				out = append(out, copyNote(n))
			}
		}
		return nil
	})
	return out, err
}

func (r *PromissoryNoteRepo) UpdateStatus(_ context.Context, id, status string) error {
	return r.do(func(d *data) error {
		for _, n := range d.Notes {
			if n.ID == id {
				n.Status = status
				return nil
			}
		}
		return domain.NotFound("pagaré", id)
	})
}

func (r *PromissoryNoteRepo) Delete(_ context.Context, id string) error {
	return r.do(func(d *data) error {
		for i, n := range d.Notes {
			if n.ID == id {
				d.Notes = append(d.Notes[:i], d.Notes[i+1:]...)
				return nil
			}
		}
		return domain.NotFound("pagaré", id)
	})
}

// CreditRepo créditos y abonos en memoria.
type CreditRepo struct{ base }

func copyCredit(c *entity.Credit) *entity.Credit {
	cp := *c
	cp.Payments = append([]entity.CreditPayment(nil), c.Payments...)
	return &cp
}

func (r *CreditRepo) find(d *data, id string) (int, *entity.Credit) {
	for i, c := range d.Credits {
		if c.ID == id {
			return i, c
		}
	}
	return -1, nil
}

func (r *CreditRepo) Create(_ context.Context, credit *entity.Credit) error {
	return r.do(func(d *data) error {
		d.Credits = append(d.Credits, copyCredit(credit))
		return nil
	})
}

func (r *CreditRepo) GetByID(_ context.Context, id string) (*entity.Credit, error) {
	var out *entity.Credit
	err := r.do(func(d *data) error {
		if _, c := r.find(d, id); c != nil {
			out = copyCredit(c)
		}
		return nil
	})
	return out, err
}

func (r *CreditRepo) GetForUpdate(ctx context.Context, id string) (*entity.Credit, error) {
	return r.GetByID(ctx, id)
}

func (r *CreditRepo) ListByCustomer(_ context.Context, customerID string) ([]*entity.Credit, error) {
	var out []*entity.Credit
	err := r.do(func(d *data) error {
		for _, c := range d.Credits {
			if c.CustomerID == customerID {
				out = append(out, copyCredit(c))
			}
		}
		return nil
	})
	return out, err
}

func (r *CreditRepo) UpdateStatus(_ context.Context, id, status string) error {
	return r.do(func(d *data) error {
		_, c := r.find(d, id)
		if c == nil {
			return domain.NotFound("crédito", id)
		}
		c.Status = status
		return nil
	})
}

func (r *CreditRepo) Delete(_ context.Context, id string) error {
	return r.do(func(d *data) error {
		i, c := r.find(d, id)
		if c == nil {
			return domain.NotFound("crédito", id)
		}
		d.Credits = append(d.Credits[:i], d.Credits[i+1:]...)
		return nil
	})
}

func (r *CreditRepo) AddPayment(_ context.Context, payment *entity.CreditPayment) error {
	return r.do(func(d *data) error {
		_, c := r.find(d, payment.CreditID)
		if c == nil {
			return domain.NotFound("crédito", payment.CreditID)
		}
		c.Payments = append(c.Payments, *payment)
		return nil
	})
}

func (r *CreditRepo) DeletePayment(_ context.Context, creditID, paymentID string) error {
	return r.do(func(d *data) error {
		_, c := r.find(d, creditID)
		if c == nil {
			return domain.NotFound("crédito", creditID)
		}
		for i, p := range c.Payments {
			if p.ID == paymentID {
				c.Payments = append(c.Payments[:i], c.Payments[i+1:]...)
				return nil
			}
		}
		return domain.NotFound("abono", paymentID)
	})
}

// FridgeLoanRepo préstamos de refrigeradores en memoria.
type FridgeLoanRepo struct{ base }

func copyLoan(l *entity.FridgeLoan) *entity.FridgeLoan {
	cp := *l
	if l.ReturnDate != nil {
		rd := *l.ReturnDate
		cp.ReturnDate = &rd
	}
	return &cp
}

func (r *FridgeLoanRepo) Create(_ context.Context, loan *entity.FridgeLoan) error {
	return r.do(func(d *data) error {
		d.FridgeLoans = append(d.FridgeLoans, copyLoan(loan))
		return nil
	})
}

func (r *FridgeLoanRepo) GetByID(_ context.Context, id string) (*entity.FridgeLoan, error) {
	var out *entity.FridgeLoan
	err := r.do(func(d *data) error {
		for _, l := range d.FridgeLoans {
			if l.ID == id {
				out = copyLoan(l)
				break
			}
		}
		return nil
	})
	return out, err
}

func (r *FridgeLoanRepo) Update(_ context.Context, loan *entity.FridgeLoan) error {
	return r.do(func(d *data) error {
		for i, l := range d.FridgeLoans {
			if l.ID == loan.ID {
				d.FridgeLoans[i] = copyLoan(loan)
				return nil
			}
		}
		return domain.NotFound("préstamo", loan.ID)
	})
}

func (r *FridgeLoanRepo) List(_ context.Context, customerID string) ([]*entity.FridgeLoan, error) {
	var out []*entity.FridgeLoan
	err := r.do(func(d *data) error {
		for _, l := range d.FridgeLoans {
			if customerID == "" || l.CustomerID == customerID {
				out = append(out, copyLoan(l))
			}
		}
		return nil
	})
	return out, err
}

// SettingRepo ajustes clave/valor en memoria.
type SettingRepo struct{ base }

func (r *SettingRepo) Get(_ context.Context, key string) (string, bool, error) {
	var (
		v  string
		ok bool
	)
	err := r.do(func(d *data) error {
		v, ok = d.Settings[key]
		return nil
	})
	return v, ok, err
}

func (r *SettingRepo) Set(_ context.Context, key, value string) error {
	return r.do(func(d *data) error {
		d.Settings[key] = value
		return nil
	})
}
