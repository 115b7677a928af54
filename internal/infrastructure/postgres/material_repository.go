package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/hedelmia/pos-api/internal/domain"
	"github.com/hedelmia/pos-api/internal/domain/entity"
	"github.com/hedelmia/pos-api/internal/domain/repository"
)

var (
	_ repository.RawMaterialRepository      = (*RawMaterialRepo)(nil)
	_ repository.MaterialMovementRepository = (*MaterialMovementRepo)(nil)
)

const materialColumns = `id, name, unit, stock, avg_cost, created_at, updated_at`

// RawMaterialRepo materias primas sobre PostgreSQL.
type RawMaterialRepo struct {
	q Querier
}

// NewRawMaterialRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRawMaterialRepository(q Querier) *RawMaterialRepo {
	return &RawMaterialRepo{q: q}
}

func scanMaterial(row pgx.Row) (*entity.RawMaterial, error) {
	var m entity.RawMaterial
	if err := row.Scan(&m.ID, &m.Name, &m.Unit, &m.Stock, &m.AvgCost, &m.CreatedAt, &m.UpdatedAt); err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *RawMaterialRepo) Create(ctx context.Context, m *entity.RawMaterial) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO raw_materials (`+materialColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		m.ID, m.Name, m.Unit, m.Stock, m.AvgCost, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("materia prima %s: %w", m.ID, domain.ErrConflict)
		}
		return fmt.Errorf("insert raw material: %w", err)
	}
	return nil
}

func (r *RawMaterialRepo) get(ctx context.Context, query, id string) (*entity.RawMaterial, error) {
	m, err := scanMaterial(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get raw material: %w", err)
	}
	return m, nil
}

func (r *RawMaterialRepo) GetByID(ctx context.Context, id string) (*entity.RawMaterial, error) {
	return r.get(ctx, `SELECT `+materialColumns+` FROM raw_materials WHERE id = $1`, id)
}

func (r *RawMaterialRepo) GetForUpdate(ctx context.Context, id string) (*entity.RawMaterial, error) {
	return r.get(ctx, `SELECT `+materialColumns+` FROM raw_materials WHERE id = $1 FOR UPDATE`, id)
}

func (r *RawMaterialRepo) Update(ctx context.Context, m *entity.RawMaterial) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE raw_materials SET name = $2, unit = $3, updated_at = $4 WHERE id = $1`,
		m.ID, m.Name, m.Unit, m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update raw material: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.NotFound("materia prima", m.ID)
	}
	return nil
}

func (r *RawMaterialRepo) UpdateStock(ctx context.Context, id string, stock, avgCost decimal.Decimal) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE raw_materials SET stock = $2, avg_cost = $3, updated_at = now() WHERE id = $1`,
		id, stock, avgCost,
	)
	if err != nil {
		if isCheckViolation(err) {
			return fmt.Errorf("materia prima %s: %w", id, domain.ErrInsufficientStock)
		}
		return fmt.Errorf("update raw material stock: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.NotFound("materia prima", id)
	}
	return nil
}

func (r *RawMaterialRepo) List(ctx context.Context) ([]*entity.RawMaterial, error) {
	rows, err := r.q.Query(ctx, `SELECT `+materialColumns+` FROM raw_materials ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("list raw materials: %w", err)
	}
	defer rows.Close()
	var list []*entity.RawMaterial
	for rows.Next() {
		m, err := scanMaterial(rows)
		if err != nil {
			return nil, fmt.Errorf("scan raw material: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// MaterialMovementRepo historial de materias primas sobre PostgreSQL.
type MaterialMovementRepo struct {
	q Querier
}

// NewMaterialMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMaterialMovementRepository(q Querier) *MaterialMovementRepo {
	return &MaterialMovementRepo{q: q}
}

func (r *MaterialMovementRepo) Create(ctx context.Context, m *entity.MaterialMovement) error {
	query := `
		INSERT INTO material_movements (id, material_id, type, quantity, total_cost, note, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	if _, err := r.q.Exec(ctx, query, m.ID, m.MaterialID, m.Type, m.Quantity, m.TotalCost, m.Note, m.CreatedAt); err != nil {
		return fmt.Errorf("insert material movement: %w", err)
	}
	return nil
}

func (r *MaterialMovementRepo) ListByMaterial(ctx context.Context, materialID string, limit int) ([]*entity.MaterialMovement, error) {
	query := `
		SELECT id, material_id, type, quantity, total_cost, note, created_at
		FROM material_movements WHERE material_id = $1
		ORDER BY seq DESC
		LIMIT CASE WHEN $2 > 0 THEN $2 END`
	rows, err := r.q.Query(ctx, query, materialID, limit)
	if err != nil {
		return nil, fmt.Errorf("list material movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.MaterialMovement
	for rows.Next() {
		var m entity.MaterialMovement
		if err := rows.Scan(&m.ID, &m.MaterialID, &m.Type, &m.Quantity, &m.TotalCost, &m.Note, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan material movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
