package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/hedelmia/pos-api/internal/domain"
	"github.com/hedelmia/pos-api/internal/domain/entity"
	"github.com/hedelmia/pos-api/internal/domain/repository"
)

var _ repository.CashMovementRepository = (*CashMovementRepo)(nil)

const cashColumns = `id, box, kind, concept, amount, date, origin, sale_id, created_at`

// CashMovementRepo libro de caja sobre PostgreSQL.
type CashMovementRepo struct {
	q Querier
}

// NewCashMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCashMovementRepository(q Querier) *CashMovementRepo {
	return &CashMovementRepo{q: q}
}

func scanCash(row pgx.Row) (*entity.CashMovement, error) {
	var (
		m      entity.CashMovement
		saleID *string
	)
	if err := row.Scan(&m.ID, &m.Box, &m.Kind, &m.Concept, &m.Amount, &m.Date, &m.Origin, &saleID, &m.CreatedAt); err != nil {
		return nil, err
	}
	m.SaleID = deref(saleID)
	return &m, nil
}

func (r *CashMovementRepo) Create(ctx context.Context, m *entity.CashMovement) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO cash_movements (`+cashColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		m.ID, m.Box, m.Kind, m.Concept, m.Amount, m.Date, m.Origin, nullIfEmpty(m.SaleID), m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert cash movement: %w", err)
	}
	return nil
}

func (r *CashMovementRepo) GetByID(ctx context.Context, id string) (*entity.CashMovement, error) {
	m, err := scanCash(r.q.QueryRow(ctx, `SELECT `+cashColumns+` FROM cash_movements WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cash movement: %w", err)
	}
	return m, nil
}

func (r *CashMovementRepo) ListByBox(ctx context.Context, box string, from, to *time.Time) ([]*entity.CashMovement, error) {
	query := `
		SELECT ` + cashColumns + ` FROM cash_movements
		WHERE ($1 = '' OR box = $1)
			AND ($2::timestamptz IS NULL OR date >= $2)
			AND ($3::timestamptz IS NULL OR date <= $3)
		ORDER BY seq`
	rows, err := r.q.Query(ctx, query, box, from, to)
	if err != nil {
		return nil, fmt.Errorf("list cash movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.CashMovement
	for rows.Next() {
		m, err := scanCash(rows)
		if err != nil {
			return nil, fmt.Errorf("scan cash movement: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

func (r *CashMovementRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM cash_movements WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete cash movement: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.NotFound("movimiento de caja", id)
	}
	return nil
}
