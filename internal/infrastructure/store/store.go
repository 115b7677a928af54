// Package store abre la variante del almacén indicada por la configuración.
package store

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/hedelmia/pos-api/internal/application/ports"
	"github.com/hedelmia/pos-api/internal/domain/repository"
	"github.com/hedelmia/pos-api/internal/infrastructure/memory"
	"github.com/hedelmia/pos-api/internal/infrastructure/postgres"
	"github.com/hedelmia/pos-api/internal/infrastructure/sqlite"
	"github.com/hedelmia/pos-api/pkg/config"
)

// Store unidad de trabajo y repositorios de lectura de la variante elegida.
type Store struct {
	Driver string
	Tx     ports.TxRunner
	Repos  repository.Repositories
	close  func()
}

// Close libera conexiones o archivos abiertos.
func (s *Store) Close() {
	if s.close != nil {
		s.close()
	}
}

// Open construye el almacén según cfg.Store.Driver.
func Open(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*Store, error) {
	switch cfg.Store.Driver {
	case config.StorePostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		if cfg.Store.AutoMigrate {
			if err := postgres.Migrate(ctx, pool); err != nil {
				pool.Close()
				return nil, fmt.Errorf("migrar PostgreSQL: %w", err)
			}
		}
		return &Store{
			Driver: cfg.Store.Driver,
			Tx:     postgres.NewTxRunner(pool),
			Repos:  postgres.Repositories(pool),
			close:  pool.Close,
		}, nil

	case config.StoreSQLite:
		db, err := sqlite.Open(cfg.Store.SQLitePath, cfg.Store.AutoMigrate)
		if err != nil {
			return nil, fmt.Errorf("abrir SQLite %s: %w", cfg.Store.SQLitePath, err)
		}
		return &Store{
			Driver: cfg.Store.Driver,
			Tx:     sqlite.NewTxRunner(db),
			Repos:  sqlite.Repositories(db),
			close:  func() {
				if err := sqlite.Close(db); err != nil {
					log.Error().Err(err).Msg("cerrar SQLite")
				}
			},
		}, nil

	case config.StoreMemory:
		s, err := memory.NewStore(cfg.Store.MemorySnapshotPath)
		if err != nil {
			return nil, fmt.Errorf("almacén en memoria: %w", err)
		}
		return &Store{Driver: cfg.Store.Driver, Tx: s, Repos: s.Repositories()}, nil
	}
	return nil, fmt.Errorf("driver de almacén desconocido %q", cfg.Store.Driver)
}
