// Package pdf genera los documentos imprimibles del punto de venta con Maroto v2:
// el ticket de venta (A6) y el pagaré (A4, listo para firma).
//
// Ticket:
//
//	┌───────────────────────────────┐
//	│  NEGOCIO          Folio/Fecha │
//	│  Cliente (opcional)           │
//	│  Cant | Producto | Importe    │
//	│  Subtotal / Descuento / TOTAL │
//	│  Forma de pago + QR del folio │
//	└───────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/hedelmia/pos-api/internal/application/ports"
	"github.com/hedelmia/pos-api/internal/domain/entity"
)

var _ ports.ReceiptGenerator = (*MarotoReceiptGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 196, Green: 30, Blue: 88}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var paymentLabels = map[string]string{
	entity.PaymentCash:     "Efectivo",
	entity.PaymentCard:     "Tarjeta",
	entity.PaymentTransfer: "Transferencia",
	entity.PaymentCredit:   "Crédito",
}

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReceiptGenerator implementa ports.ReceiptGenerator usando Maroto v2.
type MarotoReceiptGenerator struct{}

// NewMarotoReceiptGenerator construye el generador.
func NewMarotoReceiptGenerator() *MarotoReceiptGenerator { return &MarotoReceiptGenerator{} }

// SaleTicket genera el ticket de una venta.
func (g *MarotoReceiptGenerator) SaleTicket(
	_ context.Context,
	business string,
	sale *entity.Sale,
	customer *entity.Customer,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A6).
		WithLeftMargin(6).WithRightMargin(6).
		WithTopMargin(6).WithBottomMargin(6).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle("Ticket "+sale.Folio, true).
		WithAuthor(business, true).
		Build()

	m := maroto.New(cfg)
	m.AddRows(ticketHeaderRow(business, sale))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.4}))
	if customer != nil {
		m.AddRows(ticketCustomerRow(customer, sale.CreditSale))
	}
	m.AddRows(itemsHeaderRow())
	for _, r := range itemRows(sale.Items) {
		m.AddRows(r)
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(ticketTotalsRow(sale))
	m.AddRows(ticketFooterRow(sale))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar ticket: %w", err)
	}
	return doc.GetBytes(), nil
}

// PromissoryNote genera el pagaré por el monto del documento.
func (g *MarotoReceiptGenerator) PromissoryNote(
	_ context.Context,
	business string,
	note *entity.PromissoryNote,
	customer *entity.Customer,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(15).WithBottomMargin(15).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		WithTitle("Pagaré", true).
		WithAuthor(business, true).
		Build()

	m := maroto.New(cfg)
	m.AddRows(row.New(20).Add(
		col.New(8).Add(text.New("PAGARÉ", props.Text{
			Style: fontstyle.Bold, Size: 18, Color: colorPrimary, Top: 2,
		})),
		col.New(4).Add(
			text.New("Bueno por", props.Text{Size: 9, Align: align.Right, Color: colorGray, Top: 2}),
			text.New("$"+formatMoney(note.Amount), props.Text{
				Style: fontstyle.Bold, Size: 14, Align: align.Right, Top: 8,
			}),
		),
	))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	due := "a la vista"
	if note.DueDate != nil {
		due = "el día " + note.DueDate.Format("02/01/2006")
	}
	body := fmt.Sprintf(
		"Debo y pagaré incondicionalmente por este pagaré a la orden de %s la cantidad de $%s "+
			"(M.N.), %s. Valor recibido a mi entera satisfacción.",
		business, formatMoney(note.Amount), due)
	m.AddRows(row.New(30).Add(col.New(12).Add(
		text.New(body, props.Text{Size: 11, Top: 6}),
	)))
	if strings.TrimSpace(note.Note) != "" {
		m.AddRows(row.New(10).Add(col.New(12).Add(
			text.New("Concepto: "+note.Note, props.Text{Size: 9, Color: colorGray, Top: 2}),
		)))
	}

	m.AddRows(row.New(22).Add(
		col.New(6).Add(
			text.New("SUSCRIPTOR", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2}),
			text.New(customer.Name, props.Text{Style: fontstyle.Bold, Size: 11, Top: 8}),
			text.New("Tel: "+nonEmpty(customer.Phone, "—"), props.Text{Size: 9, Color: colorGray, Top: 15}),
		),
		col.New(6).Add(
			text.New("Fecha de emisión: "+note.IssueDate.Format("02/01/2006"), props.Text{
				Size: 9, Align: align.Right, Top: 8,
			}),
			text.New("Folio interno: "+shortID(note.ID), props.Text{
				Size: 8, Align: align.Right, Color: colorGray, Top: 15,
			}),
		),
	))

	m.AddRows(row.New(30))
	m.AddRows(row.New(12).Add(
		col.New(3),
		col.New(6).Add(
			line.New(props.Line{Color: colorGray, Thickness: 0.3}),
			text.New("Firma del suscriptor", props.Text{Size: 8, Align: align.Center, Top: 3, Color: colorGray}),
		),
		col.New(3),
	))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar pagaré: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones del ticket ──────────────────────────────────────────────────────

func ticketHeaderRow(business string, sale *entity.Sale) core.Row {
	return row.New(14).Add(
		col.New(7).Add(
			text.New(business, props.Text{Style: fontstyle.Bold, Size: 11, Color: colorPrimary, Top: 1}),
		),
		col.New(5).Add(
			text.New(sale.Folio, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 1}),
			text.New(sale.Date.Format("02/01/2006 15:04"), props.Text{
				Size: 7, Align: align.Right, Top: 7, Color: colorGray,
			}),
		),
	)
}

func ticketCustomerRow(customer *entity.Customer, credit bool) core.Row {
	label := "Cliente: " + customer.Name
	if credit {
		label += "  (venta a crédito)"
	}
	return row.New(6).Add(col.New(12).Add(
		text.New(label, props.Text{Size: 7, Top: 1}),
	))
}

func itemsHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 7, Align: a, Top: 1,
		}))
	}
	return row.New(6).Add(
		h("Cant.", 2, align.Center),
		h("Producto", 6, align.Left),
		h("Importe", 4, align.Right),
	)
}

func itemRows(items []entity.SaleItem) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		result = append(result, row.New(5).Add(
			col.New(2).Add(text.New(fmt.Sprintf("%d", it.Quantity), props.Text{Size: 7, Align: align.Center})),
			col.New(6).Add(text.New(it.ProductName, props.Text{Size: 7})),
			col.New(4).Add(text.New("$"+formatMoney(it.Subtotal), props.Text{Size: 7, Align: align.Right})),
		))
	}
	return result
}

func ticketTotalsRow(sale *entity.Sale) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right, Right: 2})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 8, Align: align.Right})
	}
	return row.New(16).Add(
		col.New(4),
		col.New(4).Add(
			label("Subtotal:"),
			text.New("Descuento:", props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right, Right: 2, Top: 5}),
			text.New("TOTAL:", props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Right: 2, Top: 10, Color: colorPrimary}),
		),
		col.New(4).Add(
			value("$"+formatMoney(sale.Subtotal)),
			text.New("-$"+formatMoney(sale.Discount), props.Text{Size: 8, Align: align.Right, Top: 5}),
			text.New("$"+formatMoney(sale.Total), props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 10, Color: colorPrimary}),
		),
	)
}

func ticketFooterRow(sale *entity.Sale) core.Row {
	return row.New(26).Add(
		col.New(4).Add(code.NewQr(sale.Folio, props.Rect{Percent: 90, Center: true})),
		col.New(8).Add(
			text.New("Forma de pago: "+nonEmpty(paymentLabels[sale.PaymentMethod], sale.PaymentMethod), props.Text{
				Size: 7, Top: 4, Left: 2,
			}),
			text.New("¡Gracias por su compra!", props.Text{
				Style: fontstyle.Bold, Size: 8, Top: 12, Left: 2, Color: colorPrimary,
			}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

func shortID(id string) string {
	if len(id) > 8 {
		return strings.ToUpper(id[:8])
	}
	return strings.ToUpper(id)
}

// formatMoney formatea con separador de miles y dos decimales.
// Ej: 25000 → "25,000.00", 1234567.5 → "1,234,567.50"
func formatMoney(d decimal.Decimal) string {
	s := d.Abs().StringFixed(2)
	intPart, frac := s[:len(s)-3], s[len(s)-3:]
	n := len(intPart)
	buf := make([]byte, 0, n+n/3+3)
	if d.IsNegative() {
		buf = append(buf, '-')
	}
	for i, c := range []byte(intPart) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, c)
	}
	return string(buf) + frac
}
