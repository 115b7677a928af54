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

var _ repository.FridgeLoanRepository = (*FridgeLoanRepo)(nil)

const loanColumns = `id, customer_id, quantity, delivery_date, status, return_date, note, created_at`

// FridgeLoanRepo préstamos de refrigeradores sobre PostgreSQL.
type FridgeLoanRepo struct {
	q Querier
}

// NewFridgeLoanRepository construye el adaptador. Pasar pool o tx (Querier).
func NewFridgeLoanRepository(q Querier) *FridgeLoanRepo {
	return &FridgeLoanRepo{q: q}
}

func scanLoan(row pgx.Row) (*entity.FridgeLoan, error) {
	var l entity.FridgeLoan
	if err := row.Scan(&l.ID, &l.CustomerID, &l.Quantity, &l.DeliveryDate, &l.Status, &l.ReturnDate, &l.Note, &l.CreatedAt); err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *FridgeLoanRepo) Create(ctx context.Context, l *entity.FridgeLoan) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO fridge_loans (`+loanColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		l.ID, l.CustomerID, l.Quantity, l.DeliveryDate, l.Status, l.ReturnDate, l.Note, l.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert fridge loan: %w", err)
	}
	return nil
}

func (r *FridgeLoanRepo) GetByID(ctx context.Context, id string) (*entity.FridgeLoan, error) {
	l, err := scanLoan(r.q.QueryRow(ctx, `SELECT `+loanColumns+` FROM fridge_loans WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get fridge loan: %w", err)
	}
	return l, nil
}

func (r *FridgeLoanRepo) Update(ctx context.Context, l *entity.FridgeLoan) error {
	cmd, err := r.q.Exec(ctx, `
		UPDATE fridge_loans SET quantity = $2, delivery_date = $3, status = $4, return_date = $5, note = $6
		WHERE id = $1`,
		l.ID, l.Quantity, l.DeliveryDate, l.Status, l.ReturnDate, l.Note,
	)
	if err != nil {
		return fmt.Errorf("update fridge loan: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.NotFound("préstamo", l.ID)
	}
	return nil
}

func (r *FridgeLoanRepo) List(ctx context.Context, customerID string) ([]*entity.FridgeLoan, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+loanColumns+` FROM fridge_loans WHERE ($1 = '' OR customer_id = $1) ORDER BY seq`, customerID)
	if err != nil {
		return nil, fmt.Errorf("list fridge loans: %w", err)
	}
	defer rows.Close()
	var list []*entity.FridgeLoan
	for rows.Next() {
		l, err := scanLoan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan fridge loan: %w", err)
		}
		list = append(list, l)
	}
	return list, rows.Err()
}
