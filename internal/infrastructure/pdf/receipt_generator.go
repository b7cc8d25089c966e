// Package pdf genera el comprobante de pago de una reserva en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Proveedor            │  N° Recibo + Fecha           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: Nombre + ID                                        │
//	│  RESERVA: Servicio / Evento / Fecha del servicio             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PAGO: Método | Transacción | Estado                         │
//	│  TOTAL PAGADO                                                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: QR con la transacción + leyenda                     │
//	└─────────────────────────────────────────────────────────────┘
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

	appbilling "github.com/jhoicas/weddingvendor-api/internal/application/billing"
	"github.com/jhoicas/weddingvendor-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 128, Green: 54, Blue: 86}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ appbilling.ReceiptPDFGenerator = (*MarotoReceiptGenerator)(nil)

// MarotoReceiptGenerator implementa billing.ReceiptPDFGenerator usando Maroto v2.
type MarotoReceiptGenerator struct {
	issuer string
}

// NewMarotoReceiptGenerator construye el generador; issuer aparece como autor del documento.
func NewMarotoReceiptGenerator(issuer string) *MarotoReceiptGenerator {
	return &MarotoReceiptGenerator{issuer: issuer}
}

// GenerateReceiptPDF genera el PDF y devuelve sus bytes.
func (g *MarotoReceiptGenerator) GenerateReceiptPDF(_ context.Context, r appbilling.ReceiptForPDF) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Payment receipt "+r.Payment.ID, true).
		WithAuthor(g.issuer, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(r))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(customerRow(r))
	m.AddRows(bookingRow(r))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(paymentHeaderRow())
	m.AddRows(paymentDetailRow(r.Payment))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(r.Payment))

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(r.Payment))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: proveedor (izq) y N° de recibo + fecha (der).
func headerRow(r appbilling.ReceiptForPDF) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(nonEmpty(r.VendorName, r.Payment.VendorID), props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Vendor ID: "+r.Payment.VendorID, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("PAYMENT RECEIPT", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(r.Payment.ID, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Date: "+r.Payment.CreatedAt.Format("2006-01-02 15:04 MST"), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// customerRow: datos del cliente.
func customerRow(r appbilling.ReceiptForPDF) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("BILLED TO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(r.UserName, "-"), props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New("Customer ID: "+r.Payment.UserID, props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// bookingRow: servicio reservado.
func bookingRow(r appbilling.ReceiptForPDF) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("BOOKING "+r.Payment.BookingID, props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Service: %s   |   Event: %s   |   Service date: %s",
				nonEmpty(r.ServiceName, "-"),
				nonEmpty(r.EventType, "-"),
				nonEmpty(r.ServiceDate, "-"),
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

// paymentHeaderRow: cabecera de la tabla del pago.
func paymentHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Method", 3, align.Left),
		h("Transaction", 4, align.Left),
		h("Status", 2, align.Center),
		h("Amount", 3, align.Right),
	)
}

func paymentDetailRow(p entity.Payment) core.Row {
	return row.New(7).Add(
		col.New(3).Add(text.New(methodLabel(p.PaymentMethod), props.Text{Size: 8, Top: 1, Left: 1})),
		col.New(4).Add(text.New(p.TransactionID, props.Text{Size: 8, Top: 1, Left: 1})),
		col.New(2).Add(text.New(p.Status, props.Text{Size: 8, Align: align.Center, Top: 1})),
		col.New(3).Add(text.New(formatMoney(p.Amount.StringFixed(2))+" "+p.Currency, props.Text{
			Size: 8, Align: align.Right, Top: 1, Right: 1,
		})),
	)
}

// totalRow: total pagado alineado a la derecha.
func totalRow(p entity.Payment) core.Row {
	return row.New(12).Add(
		col.New(6),
		col.New(3).Add(text.New("TOTAL PAID:", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2, Top: 3,
		})),
		col.New(3).Add(text.New("$"+formatMoney(p.Amount.StringFixed(2))+" "+p.Currency, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1, Top: 3,
		})),
	)
}

// footerRow: QR con la referencia de la transacción + leyenda.
func footerRow(p entity.Payment) core.Row {
	return row.New(40).Add(
		col.New(3).Add(code.NewQr(p.ID+"|"+p.TransactionID, props.Rect{
			Percent: 95,
			Center:  true,
		})),
		col.New(9).Add(
			text.New("Keep this receipt as proof of payment for your booking.", props.Text{
				Size: 8, Top: 4, Left: 3, Color: colorGray,
			}),
			text.New("Thank you for planning your wedding with us!", props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 16, Left: 3, Color: colorPrimary,
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

func methodLabel(method string) string {
	switch method {
	case entity.PaymentMethodCreditCard:
		return "Credit card"
	case entity.PaymentMethodPayPal:
		return "PayPal"
	default:
		return method
	}
}

// formatMoney inserta comas de miles en la parte entera de un número con decimales.
// Ej: "2500.00" → "2,500.00", "-1234567.5" → "-1,234,567.5"
func formatMoney(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, frac = s[:i], s[i:]
	}
	n := len(intPart)
	if n <= 3 {
		return sign + intPart + frac
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(intPart) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, c)
	}
	return sign + string(buf) + frac
}
