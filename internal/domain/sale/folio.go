package sale

import (
	"fmt"
	"strconv"
	"strings"
)

// FolioPrefix prefijo de los folios de venta.
const FolioPrefix = "V-"

// FormatFolio da formato de ancho fijo al número de venta: 123 → "V-000123".
func FormatFolio(n int64) string {
	return fmt.Sprintf("%s%06d", FolioPrefix, n)
}

// ParseFolio extrae el número de un folio. Acepta también el número sin prefijo.
func ParseFolio(folio string) (int64, error) {
	s := strings.TrimPrefix(strings.ToUpper(strings.TrimSpace(folio)), FolioPrefix)
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("folio inválido %q", folio)
	}
	return n, nil
}
