package entity

// =============================================================================
// Plantillas de documento
// Configuración de solo lectura: describe cómo se renderiza un par
// (tipo de documento, tipo de negocio). Nunca es segunda fuente de verdad
// financiera; solo afecta la presentación.
// =============================================================================

// Layouts disponibles.
const (
	LayoutModern   = "modern"
	LayoutClassic  = "classic"
	LayoutMinimal  = "minimal"
	LayoutDetailed = "detailed"
)

// Estilos de cabecera (tres variantes literales en la salida de texto).
const (
	HeaderStyleGradient = "gradient"
	HeaderStyleSolid    = "solid"
	HeaderStyleMinimal  = "minimal"
)

// TemplateField campo declarativo extra de una plantilla. El valor vive en
// las notas estructuradas del documento, indexado por ID.
type TemplateField struct {
	ID       string   `json:"id"`
	Label    string   `json:"label"`
	Type     string   `json:"type"` // text, date, number
	Required bool     `json:"required"`
	Options  []string `json:"options,omitempty"`
}

// TemplateStyling opciones visuales de la plantilla.
type TemplateStyling struct {
	PrimaryColor     string `json:"primary_color"` // hex, ej. "#2563EB"
	HeaderStyle      string `json:"header_style"`  // gradient | solid | minimal
	ShowLogo         bool   `json:"show_logo"`
	ShowQRCode       bool   `json:"show_qr_code"`
	ShowPaymentTerms bool   `json:"show_payment_terms"`
	ShowDeliveryInfo bool   `json:"show_delivery_info"`
}

// DocumentTemplate plantilla inmutable para un tipo de documento y un conjunto
// de tipos de negocio (puede incluir el comodín "other").
type DocumentTemplate struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	DocumentType  string          `json:"document_type"`
	BusinessTypes []string        `json:"business_types"`
	Layout        string          `json:"layout"`
	Fields        []TemplateField `json:"fields,omitempty"`
	Styling       TemplateStyling `json:"styling"`
}

// AppliesTo indica si la plantilla declara exactamente ese tipo de negocio.
func (t DocumentTemplate) AppliesTo(businessType string) bool {
	for _, bt := range t.BusinessTypes {
		if bt == businessType {
			return true
		}
	}
	return false
}

// HasWildcard indica si la plantilla incluye el comodín "other".
func (t DocumentTemplate) HasWildcard() bool {
	return t.AppliesTo(BusinessTypeOther)
}
