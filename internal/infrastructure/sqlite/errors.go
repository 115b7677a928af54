package sqlite

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/hedelmia/pos-api/internal/domain"
)

// translate convierte errores de GORM en errores de dominio.
func translate(err error, what, id string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%s %s: %w", what, id, domain.ErrConflict)
	default:
		return fmt.Errorf("%s: %w", what, err)
	}
}

// first ejecuta q.First y devuelve (false, nil) si no hay fila.
func first(q *gorm.DB, dest any) (bool, error) {
	err := q.First(dest).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// inRange filtra fechas en Go: el texto de fechas que guarda el driver no compara
// bien entre zonas horarias.
func inRange(t time.Time, from, to *time.Time) bool {
	if from != nil && t.Before(*from) {
		return false
	}
	if to != nil && t.After(*to) {
		return false
	}
	return true
}
