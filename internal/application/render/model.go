// Package render produce las representaciones de un documento: texto
// canónico y HTML autocontenido (y PDF vía puerto de infraestructura).
//
// Las dos salidas consumen el mismo viewModel, construido una única vez:
// los montos se formatean en un solo punto y ninguna salida recalcula
// subtotal/impuesto/total por su cuenta, así las cifras son idénticas en
// ambos destinos.
package render

import (
	"github.com/tu-usuario/negocio-pro/internal/domain/entity"
	"github.com/tu-usuario/negocio-pro/internal/domain/money"
)

// RenderedDocument salida del renderizador.
type RenderedDocument struct {
	Text string
	HTML string
}

const (
	dateLayout = "02/01/2006"
	footerText = "Thank you for your business!"
)

// itemView línea formateada, lista para imprimir.
type itemView struct {
	Index       int
	Description string
	Quantity    string
	UnitPrice   string
	Total       string
}

// fieldView par etiqueta/valor de un campo de plantilla con valor presente.
type fieldView struct {
	Label string
	Value string
}

// viewModel modelo intermedio compartido por texto y HTML. Todo string ya
// formateado; los renderizadores solo disponen, no calculan.
type viewModel struct {
	HeaderStyle  string
	PrimaryColor string

	BusinessName     string
	BusinessPhone    string
	BusinessLocation string
	BusinessEmail    string

	Title     string // ej. "Invoice #INV-2026-014"
	TypeLabel string
	Number    string

	PartyLabel string // "To" o "Supplier"
	PartyName  string
	PartyPhone string
	PartyEmail string

	Items    []itemView
	Subtotal string
	Tax      string // vacío = sin línea de impuesto
	Total    string

	PaymentTerms string // vacío = sin bloque
	NotesText    string
	NotesFields  []fieldView
	Footer       string
}

// buildViewModel arma el modelo intermedio a partir del documento, el perfil
// del negocio y la plantilla resuelta. Función total: campos opcionales
// ausentes quedan vacíos y se omiten al disponer.
func buildViewModel(doc *entity.Document, profile entity.BusinessProfile, tpl entity.DocumentTemplate) viewModel {
	vm := viewModel{
		HeaderStyle:  tpl.Styling.HeaderStyle,
		PrimaryColor: tpl.Styling.PrimaryColor,

		BusinessName:     profile.Name,
		BusinessPhone:    profile.Phone,
		BusinessLocation: profile.Location,
		BusinessEmail:    profile.Email,

		TypeLabel: entity.TypeLabel(doc.Type),
		Number:    doc.Number,

		PartyName:  doc.CounterpartyName,
		PartyPhone: doc.CounterpartyPhone,
		PartyEmail: doc.CounterpartyEmail,

		Subtotal: money.Format(doc.Subtotal, doc.Currency),
		Total:    money.Format(doc.Total, doc.Currency),
		Footer:   footerText,
	}
	vm.Title = vm.TypeLabel + " #" + vm.Number

	vm.PartyLabel = "To"
	if entity.IsSupplierType(doc.Type) {
		vm.PartyLabel = "Supplier"
	}

	for i, item := range doc.Items {
		vm.Items = append(vm.Items, itemView{
			Index:       i + 1,
			Description: item.Description,
			Quantity:    item.Quantity.String(),
			UnitPrice:   money.Format(item.UnitPrice, doc.Currency),
			Total:       money.Format(item.Total, doc.Currency),
		})
	}

	// Línea de impuesto solo cuando hay impuesto distinto de cero.
	if !doc.Tax.IsZero() {
		vm.Tax = money.Format(doc.Tax, doc.Currency)
	}

	// Términos de pago: la plantilla debe pedirlos Y debe existir vencimiento.
	if tpl.Styling.ShowPaymentTerms && doc.DueDate != nil {
		vm.PaymentTerms = "Due by " + doc.DueDate.Format(dateLayout)
	}

	// Notas: estructuradas → pares etiqueta/valor en el orden de los campos
	// declarados por la plantilla, omitiendo los sin valor; el payload crudo
	// nunca aparece. Texto libre → tal cual.
	if doc.Notes.IsStructured() {
		for _, f := range tpl.Fields {
			if v, ok := doc.Notes.Fields[f.ID]; ok && v != "" {
				vm.NotesFields = append(vm.NotesFields, fieldView{Label: f.Label, Value: v})
			}
		}
	} else {
		vm.NotesText = doc.Notes.Text
	}

	return vm
}
