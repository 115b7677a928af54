package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hedelmia/pos-api/internal/application/ports"
	"github.com/hedelmia/pos-api/internal/domain/repository"
)

var _ ports.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(repos repository.Repositories) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(Repositories(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// Repositories construye el juego completo de repositorios sobre q (pool para lecturas, tx dentro de Run).
func Repositories(q Querier) repository.Repositories {
	return repository.Repositories{
		Products:          NewProductRepository(q),
		StockMovements:    NewStockMovementRepository(q),
		Materials:         NewRawMaterialRepository(q),
		MaterialMovements: NewMaterialMovementRepository(q),
		Customers:         NewCustomerRepository(q),
		Sales:             NewSaleRepository(q),
		Cash:              NewCashMovementRepository(q),
		Notes:             NewPromissoryNoteRepository(q),
		Credits:           NewCreditRepository(q),
		FridgeLoans:       NewFridgeLoanRepository(q),
		Settings:          NewSettingRepository(q),
	}
}
