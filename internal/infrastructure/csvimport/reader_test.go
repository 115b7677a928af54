package csvimport_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/hedelmia/pos-api/internal/infrastructure/csvimport"
)

func TestKey(t *testing.T) {
	assert.Equal(t, "limon", csvimport.Key("  Limón "))
	assert.Equal(t, "pina colada", csvimport.Key("Piña   Colada"))
	assert.Equal(t, "presentacion", csvimport.Key("Presentación"))
}

func TestReadProducts_UTF8ConComas(t *testing.T) {
	in := "Sabor,Tipo,Presentación,Nombre,Precio,Costo,Stock\n" +
		"fresa,paleta de agua,pieza,,$25.00,8,30\n" +
		"\n" +
		"mango,paleta de leche,pieza,Paleta de mango,\"$1,250.50\",,\n"
	rows, bad, err := csvimport.ReadProducts(strings.NewReader(in))
	require.NoError(t, err)
	assert.Empty(t, bad)
	require.Len(t, rows, 2)

	assert.Equal(t, "fresa", rows[0].Request.Flavor)
	assert.Equal(t, "pieza", rows[0].Request.Presentation)
	assert.Equal(t, "25", rows[0].Request.Price.String())
	assert.Equal(t, int64(30), rows[0].Request.Stock)

	assert.Equal(t, "1250.5", rows[1].Request.Price.String())
	assert.True(t, rows[1].Request.Cost.IsZero())
	assert.Equal(t, 4, rows[1].Line)
}

func TestReadProducts_Latin1ConPuntoYComa(t *testing.T) {
	utf := "sabor;tipo;presentación;precio\nlimón;paleta de agua;pieza;20\n"
	latin1, err := charmap.ISO8859_1.NewEncoder().String(utf)
	require.NoError(t, err)
	require.NotEqual(t, utf, latin1)

	rows, bad, err := csvimport.ReadProducts(strings.NewReader(latin1))
	require.NoError(t, err)
	assert.Empty(t, bad)
	require.Len(t, rows, 1)
	assert.Equal(t, "limón", rows[0].Request.Flavor)
	assert.Equal(t, "pieza", rows[0].Request.Presentation)
}

func TestReadProducts_BOM(t *testing.T) {
	in := append([]byte{0xEF, 0xBB, 0xBF}, []byte("sabor,tipo\nnuez,helado\n")...)
	rows, _, err := csvimport.ReadProducts(bytes.NewReader(in))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "nuez", rows[0].Request.Flavor)
}

func TestReadProducts_FilasInvalidas(t *testing.T) {
	in := "sabor,tipo,precio,stock\n" +
		",paleta,10,1\n" +
		"fresa,paleta,abc,1\n" +
		"mango,paleta,10,-2\n" +
		"uva,paleta,10,2\n"
	rows, bad, err := csvimport.ReadProducts(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "uva", rows[0].Request.Flavor)
	require.Len(t, bad, 3)
	assert.Equal(t, 2, bad[0].Line)
	assert.Equal(t, 4, bad[2].Line)
}

func TestReadProducts_FaltaColumna(t *testing.T) {
	_, _, err := csvimport.ReadProducts(strings.NewReader("sabor,precio\nfresa,10\n"))
	require.ErrorIs(t, err, csvimport.ErrMissingColumn)

	_, _, err = csvimport.ReadProducts(strings.NewReader(""))
	require.ErrorIs(t, err, csvimport.ErrEmptyFile)
}

func TestReadCustomers(t *testing.T) {
	in := "Nombre;Teléfono;Límite\nAbarrotes Don Pepe;555-1234;1000\n;555;10\nLa Esquina;;-5\n"
	rows, bad, err := csvimport.ReadCustomers(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Abarrotes Don Pepe", rows[0].Request.Name)
	assert.Equal(t, "555-1234", rows[0].Request.Phone)
	assert.Equal(t, "1000", rows[0].Request.CreditLimit.String())
	assert.Len(t, bad, 2)
}
