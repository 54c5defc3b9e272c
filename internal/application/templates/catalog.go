// Package templates contiene el catálogo de plantillas de documento y el
// resolver que selecciona la mejor plantilla para un par
// (tipo de documento, tipo de negocio).
package templates

import "github.com/tu-usuario/negocio-pro/internal/domain/entity"

// Catalog registro inmutable de plantillas, construido una vez al inicio del
// proceso y pasado por inyección al Resolver (nada de singletons: los tests
// arman catálogos propios con NewCatalogWith).
//
// Contrato de orden: para un mismo tipo de documento, las entradas de tipo de
// negocio específico van ANTES que las entradas comodín; el resolver es
// first-match-wins y depende de ese orden para preferir la específica.
// Supuesto de diseño (no verificado en runtime): a lo sumo una plantilla
// específica por par (tipo de documento, tipo de negocio).
type Catalog struct {
	templates []entity.DocumentTemplate
}

// NewCatalog construye el catálogo integrado de la plataforma.
func NewCatalog() *Catalog {
	return NewCatalogWith(builtinTemplates...)
}

// NewCatalogWith construye un catálogo con las plantillas dadas, en ese orden.
func NewCatalogWith(templates ...entity.DocumentTemplate) *Catalog {
	ts := make([]entity.DocumentTemplate, len(templates))
	copy(ts, templates)
	return &Catalog{templates: ts}
}

// Templates devuelve la secuencia ordenada de plantillas (copia defensiva).
func (c *Catalog) Templates() []entity.DocumentTemplate {
	out := make([]entity.DocumentTemplate, len(c.templates))
	copy(out, c.templates)
	return out
}

// =============================================================================
// Catálogo integrado
// Por cada tipo de documento: plantillas específicas primero, comodín después.
// =============================================================================

var builtinTemplates = []entity.DocumentTemplate{
	// ── invoice ──────────────────────────────────────────────────────────────
	{
		ID: "invoice-retail", Name: "Factura Retail",
		DocumentType:  entity.DocumentTypeInvoice,
		BusinessTypes: []string{entity.BusinessTypeRetail},
		Layout:        entity.LayoutClassic,
		Fields: []entity.TemplateField{
			{ID: "delivery_date", Label: "Delivery Date", Type: "date"},
			{ID: "warranty", Label: "Warranty", Type: "text"},
		},
		Styling: entity.TemplateStyling{
			PrimaryColor: "#B91C1C", HeaderStyle: entity.HeaderStyleSolid,
			ShowLogo: true, ShowPaymentTerms: true, ShowDeliveryInfo: true,
		},
	},
	{
		ID: "invoice-services", Name: "Factura de Servicios",
		DocumentType:  entity.DocumentTypeInvoice,
		BusinessTypes: []string{entity.BusinessTypeServices},
		Layout:        entity.LayoutModern,
		Fields: []entity.TemplateField{
			{ID: "project_reference", Label: "Project Reference", Type: "text"},
		},
		Styling: entity.TemplateStyling{
			PrimaryColor: "#2563EB", HeaderStyle: entity.HeaderStyleGradient,
			ShowLogo: true, ShowPaymentTerms: true,
		},
	},
	{
		ID: "invoice-general", Name: "Factura General",
		DocumentType:  entity.DocumentTypeInvoice,
		BusinessTypes: []string{entity.BusinessTypeOther},
		Layout:        entity.LayoutModern,
		Styling: entity.TemplateStyling{
			PrimaryColor: "#2563EB", HeaderStyle: entity.HeaderStyleGradient,
			ShowLogo: true, ShowPaymentTerms: true,
		},
	},

	// ── receipt ──────────────────────────────────────────────────────────────
	{
		ID: "receipt-restaurant", Name: "Recibo Restaurante",
		DocumentType:  entity.DocumentTypeReceipt,
		BusinessTypes: []string{entity.BusinessTypeRestaurant},
		Layout:        entity.LayoutMinimal,
		Styling: entity.TemplateStyling{
			PrimaryColor: "#047857", HeaderStyle: entity.HeaderStyleMinimal,
			ShowQRCode: true,
		},
	},
	{
		ID: "receipt-general", Name: "Recibo General",
		DocumentType:  entity.DocumentTypeReceipt,
		BusinessTypes: []string{entity.BusinessTypeOther},
		Layout:        entity.LayoutClassic,
		Styling: entity.TemplateStyling{
			PrimaryColor: "#2563EB", HeaderStyle: entity.HeaderStyleSolid,
			ShowLogo: true,
		},
	},

	// ── quotation ────────────────────────────────────────────────────────────
	{
		ID: "quotation-services", Name: "Cotización de Servicios",
		DocumentType:  entity.DocumentTypeQuotation,
		BusinessTypes: []string{entity.BusinessTypeServices},
		Layout:        entity.LayoutDetailed,
		Fields: []entity.TemplateField{
			{ID: "valid_until", Label: "Valid Until", Type: "date", Required: true},
			{ID: "scope", Label: "Scope of Work", Type: "text"},
		},
		Styling: entity.TemplateStyling{
			PrimaryColor: "#7C3AED", HeaderStyle: entity.HeaderStyleGradient,
			ShowLogo: true, ShowPaymentTerms: true,
		},
	},
	{
		ID: "quotation-general", Name: "Cotización General",
		DocumentType:  entity.DocumentTypeQuotation,
		BusinessTypes: []string{entity.BusinessTypeOther},
		Layout:        entity.LayoutModern,
		Fields: []entity.TemplateField{
			{ID: "valid_until", Label: "Valid Until", Type: "date"},
		},
		Styling: entity.TemplateStyling{
			PrimaryColor: "#2563EB", HeaderStyle: entity.HeaderStyleGradient,
			ShowLogo: true,
		},
	},

	// ── purchase_order ───────────────────────────────────────────────────────
	{
		ID: "purchase-order-wholesale", Name: "Orden de Compra Mayorista",
		DocumentType:  entity.DocumentTypePurchaseOrder,
		BusinessTypes: []string{entity.BusinessTypeWholesale, entity.BusinessTypeManufacturing},
		Layout:        entity.LayoutDetailed,
		Fields: []entity.TemplateField{
			{ID: "delivery_location", Label: "Delivery Location", Type: "text", Required: true},
			{ID: "expected_date", Label: "Expected Date", Type: "date"},
		},
		Styling: entity.TemplateStyling{
			PrimaryColor: "#B45309", HeaderStyle: entity.HeaderStyleSolid,
			ShowPaymentTerms: true, ShowDeliveryInfo: true,
		},
	},
	{
		ID: "purchase-order-general", Name: "Orden de Compra General",
		DocumentType:  entity.DocumentTypePurchaseOrder,
		BusinessTypes: []string{entity.BusinessTypeOther},
		Layout:        entity.LayoutClassic,
		Styling: entity.TemplateStyling{
			PrimaryColor: "#B45309", HeaderStyle: entity.HeaderStyleSolid,
			ShowPaymentTerms: true,
		},
	},

	// ── contract ─────────────────────────────────────────────────────────────
	{
		ID: "contract-services", Name: "Contrato de Servicios",
		DocumentType:  entity.DocumentTypeContract,
		BusinessTypes: []string{entity.BusinessTypeServices},
		Layout:        entity.LayoutDetailed,
		Fields: []entity.TemplateField{
			{ID: "start_date", Label: "Start Date", Type: "date", Required: true},
			{ID: "end_date", Label: "End Date", Type: "date"},
			{ID: "terms_summary", Label: "Terms Summary", Type: "text"},
		},
		Styling: entity.TemplateStyling{
			PrimaryColor: "#334155", HeaderStyle: entity.HeaderStyleMinimal,
			ShowPaymentTerms: true,
		},
	},
	{
		ID: "contract-general", Name: "Contrato General",
		DocumentType:  entity.DocumentTypeContract,
		BusinessTypes: []string{entity.BusinessTypeOther},
		Layout:        entity.LayoutDetailed,
		Styling: entity.TemplateStyling{
			PrimaryColor: "#334155", HeaderStyle: entity.HeaderStyleMinimal,
			ShowPaymentTerms: true,
		},
	},

	// ── supplier_agreement ───────────────────────────────────────────────────
	{
		ID: "supplier-agreement-manufacturing", Name: "Acuerdo de Proveedor Industrial",
		DocumentType:  entity.DocumentTypeSupplierAgreement,
		BusinessTypes: []string{entity.BusinessTypeManufacturing},
		Layout:        entity.LayoutDetailed,
		Fields: []entity.TemplateField{
			{ID: "payment_cycle", Label: "Payment Cycle", Type: "text"},
			{ID: "renewal_date", Label: "Renewal Date", Type: "date"},
		},
		Styling: entity.TemplateStyling{
			PrimaryColor: "#0E7490", HeaderStyle: entity.HeaderStyleSolid,
			ShowPaymentTerms: true, ShowDeliveryInfo: true,
		},
	},
	{
		ID: "supplier-agreement-general", Name: "Acuerdo de Proveedor General",
		DocumentType:  entity.DocumentTypeSupplierAgreement,
		BusinessTypes: []string{entity.BusinessTypeOther},
		Layout:        entity.LayoutClassic,
		Styling: entity.TemplateStyling{
			PrimaryColor: "#0E7490", HeaderStyle: entity.HeaderStyleMinimal,
			ShowPaymentTerms: true,
		},
	},
}
