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

var _ repository.SaleRepository = (*SaleRepo)(nil)

const saleColumns = `id, folio, date, subtotal, discount_type, discount_value, discount, total,
	customer_id, credit_sale, payment_method, created_at`

// SaleRepo ventas (cabecera + líneas) sobre PostgreSQL.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

func scanSale(row pgx.Row) (*entity.Sale, error) {
	var (
		s          entity.Sale
		customerID *string
	)
	err := row.Scan(&s.ID, &s.Folio, &s.Date, &s.Subtotal, &s.DiscountType, &s.DiscountValue, &s.Discount,
		&s.Total, &customerID, &s.CreditSale, &s.PaymentMethod, &s.CreatedAt)
	if err != nil {
		return nil, err
	}
	s.CustomerID = deref(customerID)
	return &s, nil
}

// Create persiste la venta con sus líneas. Debe correr dentro de una transacción.
func (r *SaleRepo) Create(ctx context.Context, s *entity.Sale) error {
	query := `
		INSERT INTO sales (` + saleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(ctx, query,
		s.ID, s.Folio, s.Date, s.Subtotal, s.DiscountType, s.DiscountValue, s.Discount, s.Total,
		nullIfEmpty(s.CustomerID), s.CreditSale, s.PaymentMethod, s.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("venta %s: %w", s.Folio, domain.ErrConflict)
		}
		return fmt.Errorf("insert sale: %w", err)
	}
	for i, it := range s.Items {
		_, err := r.q.Exec(ctx, `
			INSERT INTO sale_items (sale_id, line, product_id, product_name, quantity, unit_price, subtotal)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			s.ID, i+1, it.ProductID, it.ProductName, it.Quantity, it.UnitPrice, it.Subtotal,
		)
		if err != nil {
			return fmt.Errorf("insert sale item: %w", err)
		}
	}
	return nil
}

func (r *SaleRepo) getOne(ctx context.Context, where string, arg string) (*entity.Sale, error) {
	s, err := scanSale(r.q.QueryRow(ctx, `SELECT `+saleColumns+` FROM sales WHERE `+where, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	if err := r.loadItems(ctx, []*entity.Sale{s}); err != nil {
		return nil, err
	}
	return s, nil
}

// GetByID obtiene una venta con sus líneas.
func (r *SaleRepo) GetByID(ctx context.Context, id string) (*entity.Sale, error) {
	return r.getOne(ctx, `id = $1`, id)
}

// GetByFolio obtiene una venta por folio.
func (r *SaleRepo) GetByFolio(ctx context.Context, folio string) (*entity.Sale, error) {
	return r.getOne(ctx, `folio = $1`, folio)
}

// List ventas en [from, to], más recientes primero.
func (r *SaleRepo) List(ctx context.Context, from, to *time.Time) ([]*entity.Sale, error) {
	query := `
		SELECT ` + saleColumns + ` FROM sales
		WHERE ($1::timestamptz IS NULL OR date >= $1) AND ($2::timestamptz IS NULL OR date <= $2)
		ORDER BY seq DESC`
	rows, err := r.q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	var list []*entity.Sale
	for rows.Next() {
		s, err := scanSale(rows)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, s)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	if err := r.loadItems(ctx, list); err != nil {
		return nil, err
	}
	return list, nil
}

// loadItems carga las líneas de todas las ventas en una sola consulta.
func (r *SaleRepo) loadItems(ctx context.Context, sales []*entity.Sale) error {
	if len(sales) == 0 {
		return nil
	}
	ids := make([]string, 0, len(sales))
	byID := make(map[string]*entity.Sale, len(sales))
	for _, s := range sales {
		ids = append(ids, s.ID)
		byID[s.ID] = s
	}
	rows, err := r.q.Query(ctx, `
		SELECT sale_id, product_id, product_name, quantity, unit_price, subtotal
		FROM sale_items WHERE sale_id = ANY($1) ORDER BY sale_id, line`, ids)
	if err != nil {
		return fmt.Errorf("list sale items: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var (
			saleID string
			it     entity.SaleItem
		)
		if err := rows.Scan(&saleID, &it.ProductID, &it.ProductName, &it.Quantity, &it.UnitPrice, &it.Subtotal); err != nil {
			return fmt.Errorf("scan sale item: %w", err)
		}
		if s := byID[saleID]; s != nil {
			s.Items = append(s.Items, it)
		}
	}
	return rows.Err()
}

// NextFolioNumber incrementa el contador del stream. La fila queda bloqueada hasta el fin
// de la transacción, así que dos ventas concurrentes nunca obtienen el mismo número.
func (r *SaleRepo) NextFolioNumber(ctx context.Context, stream string) (int64, error) {
	var n int64
	err := r.q.QueryRow(ctx, `
		INSERT INTO folio_counters (stream, last) VALUES ($1, 1)
		ON CONFLICT (stream) DO UPDATE SET last = folio_counters.last + 1
		RETURNING last`, stream).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("next folio: %w", err)
	}
	return n, nil
}
