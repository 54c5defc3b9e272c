package render

import (
	"html"
	"regexp"
	"strconv"
	"strings"

	"github.com/tu-usuario/negocio-pro/internal/domain/entity"
)

// hexColor valida el acento de la plantilla antes de inyectarlo al CSS.
var hexColor = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// renderHTML produce un documento HTML autocontenido (CSS embebido) con el
// mismo contenido informativo que la salida de texto. Las cifras vienen ya
// formateadas en el viewModel; aquí no se recalcula nada.
func renderHTML(vm viewModel) string {
	accent := vm.PrimaryColor
	if !hexColor.MatchString(accent) {
		accent = "#2563EB"
	}

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n<meta charset=\"utf-8\">\n")
	b.WriteString("<title>" + esc(vm.Title) + "</title>\n")
	writeStyles(&b, accent, vm.HeaderStyle)
	b.WriteString("</head>\n<body>\n")

	// Cabecera con el nombre del negocio.
	b.WriteString("<header class=\"banner\"><h1>" + esc(vm.BusinessName) + "</h1></header>\n")
	b.WriteString("<p class=\"doc-title\">" + esc(vm.Title) + "</p>\n")

	// Bloque From.
	b.WriteString("<section class=\"party\">\n<h2>From</h2>\n<p>" + esc(vm.BusinessName) + "</p>\n")
	writeOptional(&b, "Phone", vm.BusinessPhone)
	writeOptional(&b, "Location", vm.BusinessLocation)
	writeOptional(&b, "Email", vm.BusinessEmail)
	b.WriteString("</section>\n")

	// Bloque contraparte.
	b.WriteString("<section class=\"party\">\n<h2>" + esc(vm.PartyLabel) + "</h2>\n<p>" + esc(vm.PartyName) + "</p>\n")
	writeOptional(&b, "Phone", vm.PartyPhone)
	writeOptional(&b, "Email", vm.PartyEmail)
	b.WriteString("</section>\n")

	// Tabla de ítems.
	b.WriteString("<table class=\"items\">\n<thead><tr><th>#</th><th>Description</th><th>Qty</th><th>Unit Price</th><th>Total</th></tr></thead>\n<tbody>\n")
	for _, it := range vm.Items {
		b.WriteString("<tr><td>" + strconv.Itoa(it.Index) + "</td><td>" + esc(it.Description) +
			"</td><td>" + esc(it.Quantity) + "</td><td>" + esc(it.UnitPrice) +
			"</td><td>" + esc(it.Total) + "</td></tr>\n")
	}
	b.WriteString("</tbody>\n</table>\n")

	// Totales: mismas cifras del viewModel.
	b.WriteString("<table class=\"totals\">\n")
	b.WriteString("<tr><td>Subtotal</td><td>" + esc(vm.Subtotal) + "</td></tr>\n")
	if vm.Tax != "" {
		b.WriteString("<tr><td>Tax</td><td>" + esc(vm.Tax) + "</td></tr>\n")
	}
	b.WriteString("<tr class=\"grand\"><td>Total</td><td>" + esc(vm.Total) + "</td></tr>\n")
	b.WriteString("</table>\n")

	if vm.PaymentTerms != "" {
		b.WriteString("<section class=\"terms\">\n<h2>Payment Terms</h2>\n<p>" + esc(vm.PaymentTerms) + "</p>\n</section>\n")
	}

	if len(vm.NotesFields) > 0 {
		b.WriteString("<section class=\"notes\">\n<h2>Notes</h2>\n<dl>\n")
		for _, f := range vm.NotesFields {
			b.WriteString("<dt>" + esc(f.Label) + "</dt><dd>" + esc(f.Value) + "</dd>\n")
		}
		b.WriteString("</dl>\n</section>\n")
	} else if vm.NotesText != "" {
		b.WriteString("<section class=\"notes\">\n<h2>Notes</h2>\n<p>" + escMultiline(vm.NotesText) + "</p>\n</section>\n")
	}

	b.WriteString("<footer>" + esc(vm.Footer) + "</footer>\n")
	b.WriteString("</body>\n</html>\n")
	return b.String()
}

// writeStyles CSS embebido; el acento de la plantilla colorea la cabecera y
// los totales. La variante de cabecera replica los tres estilos del texto.
func writeStyles(b *strings.Builder, accent, headerStyle string) {
	b.WriteString("<style>\n")
	b.WriteString("body{font-family:Helvetica,Arial,sans-serif;margin:2rem;color:#1F2937;}\n")

	switch headerStyle {
	case entity.HeaderStyleSolid:
		b.WriteString(".banner{background:" + accent + ";color:#fff;padding:1rem 1.5rem;}\n")
	case entity.HeaderStyleMinimal:
		b.WriteString(".banner{border-bottom:2px solid " + accent + ";padding:0 0 .5rem;}\n")
		b.WriteString(".banner h1{color:" + accent + ";}\n")
	default: // gradient
		b.WriteString(".banner{background:linear-gradient(135deg," + accent + ",#111827);color:#fff;padding:1.25rem 1.5rem;text-align:center;}\n")
	}

	b.WriteString(".banner h1{margin:0;font-size:1.4rem;}\n")
	b.WriteString(".doc-title{font-size:1.1rem;font-weight:bold;color:" + accent + ";}\n")
	b.WriteString(".party h2,.terms h2,.notes h2{font-size:.85rem;text-transform:uppercase;color:" + accent + ";margin:1rem 0 .25rem;}\n")
	b.WriteString(".party p,.terms p,.notes p{margin:.1rem 0;}\n")
	b.WriteString("table.items{border-collapse:collapse;width:100%;margin-top:1rem;}\n")
	b.WriteString("table.items th{background:" + accent + ";color:#fff;text-align:left;padding:.4rem;}\n")
	b.WriteString("table.items td{border-bottom:1px solid #E5E7EB;padding:.4rem;}\n")
	b.WriteString("table.totals{margin:1rem 0 0 auto;}\n")
	b.WriteString("table.totals td{padding:.2rem .6rem;text-align:right;}\n")
	b.WriteString("table.totals .grand td{font-weight:bold;color:" + accent + ";border-top:1px solid " + accent + ";}\n")
	b.WriteString("dl dt{font-weight:bold;}\ndl dd{margin:0 0 .4rem;}\n")
	b.WriteString("footer{margin-top:2rem;font-style:italic;color:#6B7280;}\n")
	b.WriteString("</style>\n")
}

func writeOptional(b *strings.Builder, label, value string) {
	if value == "" {
		return
	}
	b.WriteString("<p>" + label + ": " + esc(value) + "</p>\n")
}

func esc(s string) string { return html.EscapeString(s) }

func escMultiline(s string) string {
	return strings.ReplaceAll(esc(s), "\n", "<br>")
}
