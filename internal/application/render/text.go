package render

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/tu-usuario/negocio-pro/internal/domain/entity"
)

// Ancho fijo del banner de cabecera en la salida de texto.
const headerWidth = 44

// renderText produce la representación canónica de texto: bloques en orden
// fijo, sin líneas en blanco por datos ausentes, terminada en salto de línea.
func renderText(vm viewModel) string {
	var lines []string

	// 1. Cabecera según el estilo de la plantilla.
	lines = append(lines, headerLines(vm)...)

	// 2. Etiqueta de tipo + número.
	lines = append(lines, "", vm.Title)

	// 3. Bloque "From": solo los campos presentes.
	lines = append(lines, "", "From:", vm.BusinessName)
	lines = appendLabeled(lines, "Phone", vm.BusinessPhone)
	lines = appendLabeled(lines, "Location", vm.BusinessLocation)
	lines = appendLabeled(lines, "Email", vm.BusinessEmail)

	// 4. Bloque de contraparte ("To" o "Supplier").
	lines = append(lines, "", vm.PartyLabel+":", vm.PartyName)
	lines = appendLabeled(lines, "Phone", vm.PartyPhone)
	lines = appendLabeled(lines, "Email", vm.PartyEmail)

	// 5. Ítems con índice 1-based.
	lines = append(lines, "", "Items:")
	for _, it := range vm.Items {
		lines = append(lines,
			strconv.Itoa(it.Index)+". "+it.Description,
			"   "+it.Quantity+" x "+it.UnitPrice+" = "+it.Total,
		)
	}

	// 6. Totales: impuesto solo si aplica, total siempre.
	lines = append(lines, "", "Subtotal: "+vm.Subtotal)
	if vm.Tax != "" {
		lines = append(lines, "Tax: "+vm.Tax)
	}
	lines = append(lines, "Total: "+vm.Total)

	// 7. Términos de pago (condicionados en el viewModel).
	if vm.PaymentTerms != "" {
		lines = append(lines, "", "Payment Terms:", vm.PaymentTerms)
	}

	// 8. Notas: campos de plantilla o texto libre.
	if len(vm.NotesFields) > 0 {
		lines = append(lines, "", "Notes:")
		for _, f := range vm.NotesFields {
			lines = append(lines, f.Label+": "+f.Value)
		}
	} else if vm.NotesText != "" {
		lines = append(lines, "", "Notes:")
		lines = append(lines, strings.Split(vm.NotesText, "\n")...)
	}

	// 9. Pie fijo.
	lines = append(lines, "", vm.Footer)

	return strings.Join(lines, "\n") + "\n"
}

// headerLines las tres variantes literales de cabecera.
func headerLines(vm viewModel) []string {
	name := vm.BusinessName
	switch vm.HeaderStyle {
	case entity.HeaderStyleSolid:
		bar := strings.Repeat("*", headerWidth)
		return []string{bar, strings.ToUpper(name), bar}
	case entity.HeaderStyleMinimal:
		return []string{name, strings.Repeat("-", headerWidth)}
	default: // gradient: banner enmarcado con el nombre centrado
		bar := strings.Repeat("=", headerWidth)
		return []string{bar, centerLine(strings.ToUpper(name), headerWidth), bar}
	}
}

// centerLine centra s en width columnas (sin relleno a la derecha).
func centerLine(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return strings.Repeat(" ", (width-n)/2) + s
}

func appendLabeled(lines []string, label, value string) []string {
	if value == "" {
		return lines
	}
	return append(lines, label+": "+value)
}
