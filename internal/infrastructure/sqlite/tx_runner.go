package sqlite

import (
	"context"

	"gorm.io/gorm"

	"github.com/hedelmia/pos-api/internal/application/ports"
	"github.com/hedelmia/pos-api/internal/domain/repository"
)

var _ ports.TxRunner = (*TxRunner)(nil)

// TxRunner unidad de trabajo sobre una transacción GORM.
type TxRunner struct {
	db *gorm.DB
}

func NewTxRunner(db *gorm.DB) *TxRunner {
	return &TxRunner{db: db}
}

// Run abre la transacción, construye los repositorios sobre ella y hace Commit si fn
// no falla. Cualquier error (o panic) produce Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(repos repository.Repositories) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(Repositories(tx))
	})
}

// Repositories construye todos los repositorios sobre db (conexión o transacción).
func Repositories(db *gorm.DB) repository.Repositories {
	return repository.Repositories{
		Products:          &ProductRepo{db: db},
		StockMovements:    &StockMovementRepo{db: db},
		Materials:         &RawMaterialRepo{db: db},
		MaterialMovements: &MaterialMovementRepo{db: db},
		Customers:         &CustomerRepo{db: db},
		Sales:             &SaleRepo{db: db},
		Cash:              &CashMovementRepo{db: db},
		Notes:             &PromissoryNoteRepo{db: db},
		Credits:           &CreditRepo{db: db},
		FridgeLoans:       &FridgeLoanRepo{db: db},
		Settings:          &SettingRepo{db: db},
	}
}
