// Package pdf implementa la representación PDF de un documento comercial
// usando Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del negocio  │  Tipo + Número + Fecha       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FROM: teléfono / ubicación / email                          │
//	│  TO / SUPPLIER: contraparte + contacto                       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Descripción | P.Unit | Total                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Subtotal / Impuesto / TOTAL                        │
//	│  TÉRMINOS DE PAGO / NOTAS / QR opcional / Pie               │
//	└─────────────────────────────────────────────────────────────┘
//
// El acento de color sale de template.Styling.PrimaryColor, igual que en el
// HTML; los montos usan money.Format, las mismas cifras de las otras salidas.
package pdf

import (
	"context"
	"fmt"
	"strconv"

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

	"github.com/tu-usuario/negocio-pro/internal/domain/entity"
	"github.com/tu-usuario/negocio-pro/internal/domain/money"
)

// ── Paleta base ───────────────────────────────────────────────────────────────

var (
	colorDefault = &props.Color{Red: 37, Green: 99, Blue: 235} // #2563EB
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa render.DocumentPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GeneratePDF genera el PDF del documento y devuelve sus bytes.
func (g *MarotoPDFGenerator) GeneratePDF(
	_ context.Context,
	doc *entity.Document,
	profile entity.BusinessProfile,
	tpl entity.DocumentTemplate,
) ([]byte, error) {
	accent := parseHexColor(tpl.Styling.PrimaryColor)

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(entity.TypeLabel(doc.Type)+" "+doc.Number, true).
		WithAuthor(profile.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(doc, profile, accent))
	m.AddRows(line.NewRow(1, props.Line{Color: accent, Thickness: 0.5}))
	m.AddRows(fromRow(profile, accent))
	m.AddRows(counterpartyRow(doc, accent))
	m.AddRows(line.NewRow(1, props.Line{Color: accent, Thickness: 0.3}))

	m.AddRows(tableHeaderRow(accent))
	for _, r := range tableItemRows(doc) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: accent, Thickness: 0.3}))
	m.AddRows(totalsRow(doc, accent))

	for _, r := range extrasRows(doc, tpl, accent) {
		m.AddRows(r)
	}

	pdfDoc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return pdfDoc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre del negocio (izq) y tipo + número + fecha (der).
func headerRow(doc *entity.Document, profile entity.BusinessProfile, accent *props.Color) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(profile.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: accent, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New(entity.TypeLabel(doc.Type), props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: accent, Top: 1,
			}),
			text.New("#"+doc.Number, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Date: "+doc.Date.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// fromRow: datos del negocio emisor.
func fromRow(profile entity.BusinessProfile, accent *props.Color) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("FROM", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: accent, Top: 1,
			}),
			text.New(fmt.Sprintf("%s   |   Phone: %s   |   %s   |   %s",
				profile.Name,
				nonEmpty(profile.Phone, "—"),
				nonEmpty(profile.Location, "—"),
				nonEmpty(profile.Email, "—"),
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

// counterpartyRow: datos de la contraparte (cliente o proveedor según tipo).
func counterpartyRow(doc *entity.Document, accent *props.Color) core.Row {
	label := "TO"
	if entity.IsSupplierType(doc.Type) {
		label = "SUPPLIER"
	}
	return row.New(14).Add(
		col.New(12).Add(
			text.New(label, props.Text{
				Style: fontstyle.Bold, Size: 8, Color: accent, Top: 1,
			}),
			text.New(doc.CounterpartyName, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("Phone: %s   |   Email: %s",
				nonEmpty(doc.CounterpartyPhone, "—"),
				nonEmpty(doc.CounterpartyEmail, "—"),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de ítems.
func tableHeaderRow(accent *props.Color) core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).WithStyle(&props.Cell{BackgroundColor: accent}).Add(
		h("#", 1, align.Center),
		h("Description", 6, align.Left),
		h("Qty", 1, align.Center),
		h("Unit Price", 2, align.Right),
		h("Total", 2, align.Right),
	)
}

// tableItemRows: una fila por línea del documento.
func tableItemRows(doc *entity.Document) []core.Row {
	result := make([]core.Row, 0, len(doc.Items))
	for i, item := range doc.Items {
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				strconv.Itoa(i+1),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(6).Add(text.New(
				item.Description,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(1).Add(text.New(
				item.Quantity.String(),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				money.Format(item.UnitPrice, doc.Currency),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				money.Format(item.Total, doc.Currency),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow: bloque de totales alineado a la derecha; la línea de impuesto
// solo aparece cuando hay impuesto.
func totalsRow(doc *entity.Document, accent *props.Color) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandLabel := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: accent, Right: 2,
		})
	}
	grandValue := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: accent, Right: 1,
		})
	}

	labels := []core.Component{label("Subtotal:")}
	values := []core.Component{value(money.Format(doc.Subtotal, doc.Currency))}
	if !doc.Tax.IsZero() {
		labels = append(labels, label("Tax:"))
		values = append(values, value(money.Format(doc.Tax, doc.Currency)))
	}
	labels = append(labels, grandLabel("TOTAL:"))
	values = append(values, grandValue(money.Format(doc.Total, doc.Currency)))

	return row.New(26).Add(
		col.New(3),
		col.New(3).Add(labels...),
		col.New(3).Add(values...),
		col.New(3),
	)
}

// extrasRows: términos de pago, notas, QR opcional y pie fijo.
func extrasRows(doc *entity.Document, tpl entity.DocumentTemplate, accent *props.Color) []core.Row {
	rows := []core.Row{line.NewRow(3)}

	if tpl.Styling.ShowPaymentTerms && doc.DueDate != nil {
		rows = append(rows,
			row.New(5).Add(col.New(12).Add(
				text.New("PAYMENT TERMS", props.Text{
					Style: fontstyle.Bold, Size: 8, Color: accent, Top: 1,
				}),
			)),
			row.New(5).Add(col.New(12).Add(
				text.New("Due by "+doc.DueDate.Format("02/01/2006"), props.Text{
					Size: 8, Color: colorGray, Top: 1, Left: 2,
				}),
			)),
		)
	}

	rows = append(rows, notesRows(doc, tpl, accent)...)

	if tpl.Styling.ShowQRCode {
		// Payload de verificación: número | fecha | total
		payload := doc.Number + "|" + doc.Date.Format("2006-01-02") + "|" + doc.Total.StringFixed(2)
		rows = append(rows, row.New(30).Add(
			col.New(4).Add(code.NewQr(payload, props.Rect{Percent: 90, Center: true})),
			col.New(8).Add(text.New("Scan to verify this document.", props.Text{
				Size: 8, Top: 12, Left: 3, Color: colorGray,
			})),
		))
	}

	rows = append(rows, row.New(10).Add(col.New(12).Add(
		text.New("Thank you for your business!", props.Text{
			Style: fontstyle.Italic, Size: 9, Align: align.Center,
			Color: colorGray, Top: 3,
		}),
	)))
	return rows
}

// notesRows: campos de plantilla con valor, o texto libre.
func notesRows(doc *entity.Document, tpl entity.DocumentTemplate, accent *props.Color) []core.Row {
	if doc.Notes.IsZero() {
		return nil
	}

	rows := []core.Row{row.New(5).Add(col.New(12).Add(
		text.New("NOTES", props.Text{
			Style: fontstyle.Bold, Size: 8, Color: accent, Top: 1,
		}),
	))}

	if doc.Notes.IsStructured() {
		count := 0
		for _, f := range tpl.Fields {
			v, ok := doc.Notes.Fields[f.ID]
			if !ok || v == "" {
				continue
			}
			rows = append(rows, row.New(4).Add(col.New(12).Add(
				text.New(f.Label+": "+v, props.Text{
					Size: 7.5, Color: colorGray, Top: 0.5, Left: 2,
				}),
			)))
			count++
		}
		if count == 0 {
			return nil
		}
		return rows
	}

	rows = append(rows, row.New(6).Add(col.New(12).Add(
		text.New(doc.Notes.Text, props.Text{
			Size: 7.5, Color: colorGray, Top: 0.5, Left: 2,
		}),
	)))
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// parseHexColor convierte "#RRGGBB" (o "#RGB") a color de Maroto; cualquier
// valor inválido cae al acento por defecto.
func parseHexColor(s string) *props.Color {
	if len(s) == 4 && s[0] == '#' {
		s = "#" + string([]byte{s[1], s[1], s[2], s[2], s[3], s[3]})
	}
	if len(s) != 7 || s[0] != '#' {
		return colorDefault
	}
	r, err1 := strconv.ParseUint(s[1:3], 16, 8)
	g, err2 := strconv.ParseUint(s[3:5], 16, 8)
	b, err3 := strconv.ParseUint(s[5:7], 16, 8)
	if err1 != nil || err2 != nil || err3 != nil {
		return colorDefault
	}
	return &props.Color{Red: int(r), Green: int(g), Blue: int(b)}
}
