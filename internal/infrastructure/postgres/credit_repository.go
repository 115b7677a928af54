package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/hedelmia/pos-api/internal/domain"
	"github.com/hedelmia/pos-api/internal/domain/entity"
	"github.com/hedelmia/pos-api/internal/domain/repository"
)

var (
	_ repository.PromissoryNoteRepository = (*PromissoryNoteRepo)(nil)
	_ repository.CreditRepository         = (*CreditRepo)(nil)
)

const noteColumns = `id, customer_id, amount, issue_date, due_date, status, note, created_at`

// PromissoryNoteRepo pagarés sobre PostgreSQL.
type PromissoryNoteRepo struct {
	q Querier
}

// NewPromissoryNoteRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPromissoryNoteRepository(q Querier) *PromissoryNoteRepo {
	return &PromissoryNoteRepo{q: q}
}

func scanNote(row pgx.Row) (*entity.PromissoryNote, error) {
	var n entity.PromissoryNote
	if err := row.Scan(&n.ID, &n.CustomerID, &n.Amount, &n.IssueDate, &n.DueDate, &n.Status, &n.Note, &n.CreatedAt); err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *PromissoryNoteRepo) Create(ctx context.Context, n *entity.PromissoryNote) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO promissory_notes (`+noteColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		n.ID, n.CustomerID, n.Amount, n.IssueDate, n.DueDate, n.Status, n.Note, n.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert promissory note: %w", err)
	}
	return nil
}

func (r *PromissoryNoteRepo) GetByID(ctx context.Context, id string) (*entity.PromissoryNote, error) {
	n, err := scanNote(r.q.QueryRow(ctx, `SELECT `+noteColumns+` FROM promissory_notes WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get promissory note: %w", err)
	}
	return n, nil
}

func (r *PromissoryNoteRepo) ListByCustomer(ctx context.Context, customerID string) ([]*entity.PromissoryNote, error) {
	rows, err := r.q.Query(ctx, `SELECT `+noteColumns+` FROM promissory_notes WHERE customer_id = $1 ORDER BY seq`, customerID)
	if err != nil {
		return nil, fmt.Errorf("list promissory notes: %w", err)
	}
	defer rows.Close()
	var list []*entity.PromissoryNote
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, fmt.Errorf("scan promissory note: %w", err)
		}
		list = append(list, n)
	}
	return list, rows.Err()
}

func (r *PromissoryNoteRepo) UpdateStatus(ctx context.Context, id, status string) error {
	cmd, err := r.q.Exec(ctx, `UPDATE promissory_notes SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update promissory note: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.NotFound("pagaré", id)
	}
	return nil
}

func (r *PromissoryNoteRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM promissory_notes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete promissory note: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.NotFound("pagaré", id)
	}
	return nil
}

const creditColumns = `id, customer_id, amount, date, status, note, created_at`

// CreditRepo créditos y abonos sobre PostgreSQL.
type CreditRepo struct {
	q Querier
}

// NewCreditRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCreditRepository(q Querier) *CreditRepo {
	return &CreditRepo{q: q}
}

func scanCredit(row pgx.Row) (*entity.Credit, error) {
	var c entity.Credit
	if err := row.Scan(&c.ID, &c.CustomerID, &c.Amount, &c.Date, &c.Status, &c.Note, &c.CreatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CreditRepo) Create(ctx context.Context, c *entity.Credit) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO credits (`+creditColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		c.ID, c.CustomerID, c.Amount, c.Date, c.Status, c.Note, c.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert credit: %w", err)
	}
	for i := range c.Payments {
		if err := r.AddPayment(ctx, &c.Payments[i]); err != nil {
			return err
		}
	}
	return nil
}

func (r *CreditRepo) get(ctx context.Context, query, id string) (*entity.Credit, error) {
	c, err := scanCredit(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get credit: %w", err)
	}
	if err := r.loadPayments(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (r *CreditRepo) GetByID(ctx context.Context, id string) (*entity.Credit, error) {
	return r.get(ctx, `SELECT `+creditColumns+` FROM credits WHERE id = $1`, id)
}

func (r *CreditRepo) GetForUpdate(ctx context.Context, id string) (*entity.Credit, error) {
	return r.get(ctx, `SELECT `+creditColumns+` FROM credits WHERE id = $1 FOR UPDATE`, id)
}

func (r *CreditRepo) loadPayments(ctx context.Context, c *entity.Credit) error {
	rows, err := r.q.Query(ctx, `
		SELECT id, credit_id, amount, date, note, created_at
		FROM credit_payments WHERE credit_id = $1 ORDER BY seq`, c.ID)
	if err != nil {
		return fmt.Errorf("list credit payments: %w", err)
	}
	defer rows.Close()
	c.Payments = nil
	for rows.Next() {
		var p entity.CreditPayment
		if err := rows.Scan(&p.ID, &p.CreditID, &p.Amount, &p.Date, &p.Note, &p.CreatedAt); err != nil {
			return fmt.Errorf("scan credit payment: %w", err)
		}
		c.Payments = append(c.Payments, p)
	}
	return rows.Err()
}

func (r *CreditRepo) ListByCustomer(ctx context.Context, customerID string) ([]*entity.Credit, error) {
	rows, err := r.q.Query(ctx, `SELECT `+creditColumns+` FROM credits WHERE customer_id = $1 ORDER BY seq`, customerID)
	if err != nil {
		return nil, fmt.Errorf("list credits: %w", err)
	}
	var list []*entity.Credit
	for rows.Next() {
		c, err := scanCredit(rows)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan credit: %w", err)
		}
		list = append(list, c)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list credits: %w", err)
	}
	for _, c := range list {
		if err := r.loadPayments(ctx, c); err != nil {
			return nil, err
		}
	}
	return list, nil
}

func (r *CreditRepo) UpdateStatus(ctx context.Context, id, status string) error {
	cmd, err := r.q.Exec(ctx, `UPDATE credits SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update credit: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.NotFound("crédito", id)
	}
	return nil
}

// Delete elimina el crédito; los abonos caen por ON DELETE CASCADE.
func (r *CreditRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM credits WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete credit: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.NotFound("crédito", id)
	}
	return nil
}

func (r *CreditRepo) AddPayment(ctx context.Context, p *entity.CreditPayment) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO credit_payments (id, credit_id, amount, date, note, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		p.ID, p.CreditID, p.Amount, p.Date, p.Note, p.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert credit payment: %w", err)
	}
	return nil
}

func (r *CreditRepo) DeletePayment(ctx context.Context, creditID, paymentID string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM credit_payments WHERE id = $1 AND credit_id = $2`, paymentID, creditID)
	if err != nil {
		return fmt.Errorf("delete credit payment: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.NotFound("abono", paymentID)
	}
	return nil
}
