package templates

import "github.com/tu-usuario/negocio-pro/internal/domain/entity"

// DefaultPrimaryColor acento por defecto de la plataforma.
const DefaultPrimaryColor = "#2563EB"

// Resolver selecciona la plantilla para un (tipo de documento, tipo de
// negocio). La resolución es total: siempre devuelve una plantilla, nunca
// falla; por eso no existe un error de "plantilla no encontrada".
type Resolver struct {
	catalog *Catalog
}

// NewResolver construye el resolver con el catálogo inyectado.
func NewResolver(catalog *Catalog) *Resolver {
	return &Resolver{catalog: catalog}
}

// Resolve recorre el catálogo y devuelve la primera plantilla cuyo tipo de
// documento coincide y cuyos BusinessTypes contienen el tipo de negocio dado
// o el comodín "other". First-match-wins: la preferencia por la plantilla
// específica la garantiza el orden del catálogo (específicas antes que
// comodines). Si nada coincide, sintetiza la plantilla por defecto del tipo.
func (r *Resolver) Resolve(documentType, businessType string) entity.DocumentTemplate {
	for _, t := range r.catalog.templates {
		if t.DocumentType != documentType {
			continue
		}
		if t.AppliesTo(businessType) || t.HasWildcard() {
			return t
		}
	}
	return defaultTemplate(documentType)
}

// defaultTemplate plantilla sintetizada cuando el catálogo no cubre el tipo.
func defaultTemplate(documentType string) entity.DocumentTemplate {
	return entity.DocumentTemplate{
		ID:            "default-" + documentType,
		Name:          entity.TypeLabel(documentType) + " (predeterminada)",
		DocumentType:  documentType,
		BusinessTypes: []string{entity.BusinessTypeOther},
		Layout:        entity.LayoutModern,
		Styling: entity.TemplateStyling{
			PrimaryColor:     DefaultPrimaryColor,
			HeaderStyle:      entity.HeaderStyleGradient,
			ShowLogo:         true,
			ShowQRCode:       false,
			ShowPaymentTerms: true,
			ShowDeliveryInfo: false,
		},
	}
}
