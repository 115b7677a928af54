package ports

import (
	"context"

	"github.com/hedelmia/pos-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una unidad de trabajo, pasando repositorios atados a ella.
// Si fn retorna error no queda ningún cambio persistido (Rollback); si no, Commit.
// Cada adaptador de almacenamiento (postgres, sqlite, memory) provee su implementación.
type TxRunner interface {
	Run(ctx context.Context, fn func(repos repository.Repositories) error) error
}
