// Package csvimport lee los catálogos exportados de la hoja de cálculo del negocio
// (productos y clientes). Las exportaciones viejas vienen en Latin-1 con ';' como separador.
package csvimport

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/hedelmia/pos-api/internal/application/dto"
)

var (
	ErrEmptyFile     = errors.New("archivo vacío")
	ErrMissingColumn = errors.New("falta columna obligatoria")
)

const sniffSize = 4096

// RowError error de una fila concreta; las demás filas siguen procesándose.
type RowError struct {
	Line int
	Err  error
}

func (e RowError) Error() string { return fmt.Sprintf("línea %d: %v", e.Line, e.Err) }

// Key normaliza texto para comparar: sin acentos, minúsculas y espacios simples.
// "Limón " y "limon" dan la misma clave.
func Key(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.Join(strings.Fields(strings.ToLower(out)), " ")
}

// table lector con encabezado ya indexado por Key.
type table struct {
	r    *csv.Reader
	cols map[string]int
	line int
}

// open detecta BOM y codificación. Si el inicio no es UTF-8 válido se decodifica como Windows-1252
// (superconjunto práctico de Latin-1 en las exportaciones de Excel).
func open(r io.Reader) (*table, error) {
	br := bufio.NewReader(r)
	head, err := br.Peek(sniffSize)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, bufio.ErrBufferFull) {
		return nil, fmt.Errorf("leer archivo: %w", err)
	}
	if len(head) == 0 {
		return nil, ErrEmptyFile
	}
	var src io.Reader = br
	switch {
	case len(head) >= 3 && head[0] == 0xEF && head[1] == 0xBB && head[2] == 0xBF:
		_, _ = br.Discard(3)
	case !utf8.Valid(trimPartialRune(head)):
		src = transform.NewReader(br, charmap.Windows1252.NewDecoder())
	}

	cr := csv.NewReader(src)
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1
	cr.Comma = delimiter(head)

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmptyFile
	}
	if err != nil {
		return nil, fmt.Errorf("leer encabezado: %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[Key(h)] = i
	}
	return &table{r: cr, cols: cols, line: 1}, nil
}

// trimPartialRune quita una secuencia UTF-8 cortada por el límite del búfer.
func trimPartialRune(b []byte) []byte {
	for i := 0; i < utf8.UTFMax && len(b) > 0; i++ {
		if utf8.Valid(b) {
			return b
		}
		b = b[:len(b)-1]
	}
	return b
}

// delimiter elige ';' si la primera línea tiene más ';' que ','.
func delimiter(head []byte) rune {
	first := string(head)
	if i := strings.IndexByte(first, '\n'); i >= 0 {
		first = first[:i]
	}
	if strings.Count(first, ";") > strings.Count(first, ",") {
		return ';'
	}
	return ','
}

func (t *table) require(names ...string) error {
	for _, n := range names {
		if _, ok := t.cols[n]; !ok {
			return fmt.Errorf("%w: %s", ErrMissingColumn, n)
		}
	}
	return nil
}

// next devuelve la siguiente fila no vacía y deja en t.line su línea en el archivo; io.EOF al terminar.
func (t *table) next() ([]string, error) {
	for {
		rec, err := t.r.Read()
		if err != nil {
			return nil, err
		}
		t.line, _ = t.r.FieldPos(0)
		for _, f := range rec {
			if strings.TrimSpace(f) != "" {
				return rec, nil
			}
		}
	}
}

func (t *table) get(rec []string, col string) string {
	i, ok := t.cols[col]
	if !ok || i >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[i])
}

// money acepta "$1,250.50", "1250.5" y vacío (cero).
func money(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "$"))
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("monto inválido %q", s)
	}
	return d, nil
}

// ProductRow fila de producto lista para el caso de uso.
type ProductRow struct {
	Line    int
	Request dto.CreateProductRequest
}

// ReadProducts lee columnas sabor, tipo, presentacion, nombre, precio, costo, stock.
// Solo sabor y tipo son obligatorias. Las filas inválidas se reportan en []RowError.
func ReadProducts(r io.Reader) ([]ProductRow, []RowError, error) {
	t, err := open(r)
	if err != nil {
		return nil, nil, err
	}
	if err := t.require("sabor", "tipo"); err != nil {
		return nil, nil, err
	}
	var (
		rows []ProductRow
		bad  []RowError
	)
	for {
		rec, err := t.next()
		if errors.Is(err, io.EOF) {
			return rows, bad, nil
		}
		if err != nil {
			return rows, bad, err
		}
		req, err := t.product(rec)
		if err != nil {
			bad = append(bad, RowError{Line: t.line, Err: err})
			continue
		}
		rows = append(rows, ProductRow{Line: t.line, Request: req})
	}
}

func (t *table) product(rec []string) (dto.CreateProductRequest, error) {
	req := dto.CreateProductRequest{
		Flavor:       t.get(rec, "sabor"),
		Type:         t.get(rec, "tipo"),
		Presentation: t.get(rec, "presentacion"),
		Name:         t.get(rec, "nombre"),
	}
	if req.Flavor == "" || req.Type == "" {
		return req, errors.New("sabor y tipo son obligatorios")
	}
	var err error
	if req.Price, err = money(t.get(rec, "precio")); err != nil {
		return req, err
	}
	if req.Cost, err = money(t.get(rec, "costo")); err != nil {
		return req, err
	}
	if s := t.get(rec, "stock"); s != "" {
		if req.Stock, err = strconv.ParseInt(s, 10, 64); err != nil || req.Stock < 0 {
			return req, fmt.Errorf("stock inválido %q", s)
		}
	}
	if req.Price.IsNegative() || req.Cost.IsNegative() {
		return req, errors.New("precio y costo no pueden ser negativos")
	}
	return req, nil
}

// CustomerRow fila de cliente lista para el caso de uso.
type CustomerRow struct {
	Line    int
	Request dto.CreateCustomerRequest
}

// ReadCustomers lee columnas nombre, telefono, limite.
func ReadCustomers(r io.Reader) ([]CustomerRow, []RowError, error) {
	t, err := open(r)
	if err != nil {
		return nil, nil, err
	}
	if err := t.require("nombre"); err != nil {
		return nil, nil, err
	}
	var (
		rows []CustomerRow
		bad  []RowError
	)
	for {
		rec, err := t.next()
		if errors.Is(err, io.EOF) {
			return rows, bad, nil
		}
		if err != nil {
			return rows, bad, err
		}
		req := dto.CreateCustomerRequest{Name: t.get(rec, "nombre"), Phone: t.get(rec, "telefono")}
		if req.Name == "" {
			bad = append(bad, RowError{Line: t.line, Err: errors.New("nombre obligatorio")})
			continue
		}
		if req.CreditLimit, err = money(t.get(rec, "limite")); err != nil || req.CreditLimit.IsNegative() {
			bad = append(bad, RowError{Line: t.line, Err: fmt.Errorf("límite inválido %q", t.get(rec, "limite"))})
			continue
		}
		rows = append(rows, CustomerRow{Line: t.line, Request: req})
	}
}
