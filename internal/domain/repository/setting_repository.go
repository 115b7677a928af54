package repository

import "context"

// SettingRepository almacén clave/valor para ajustes (hash del PIN, etc.).
type SettingRepository interface {
	// Get devuelve ("", false, nil) si la clave no existe.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}
