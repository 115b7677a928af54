package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo (sabor + tipo + presentación).
// El stock es un entero no negativo; solo cambia por movimientos y ventas.
// Nunca se elimina físicamente: se desactiva.
type Product struct {
	ID           string
	Flavor       string // sabor: fresa, mango, limón...
	Type         string // paleta de agua, paleta de leche, helado...
	Presentation string // pieza, litro, medio litro...
	Name         string // nombre para mostrar
	Price        decimal.Decimal
	Cost         decimal.Decimal
	Stock        int64
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// DisplayName devuelve Name o, si está vacío, la composición sabor/tipo/presentación.
func (p *Product) DisplayName() string {
	if strings.TrimSpace(p.Name) != "" {
		return p.Name
	}
	parts := make([]string, 0, 3)
	for _, s := range []string{p.Type, p.Flavor, p.Presentation} {
		if s = strings.TrimSpace(s); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}
