package entity

// =============================================================================
// Tipos de negocio
// Categoría del negocio operador; clave de selección de plantillas. El
// resolver acepta cualquier string (los no registrados caen al comodín o a la
// plantilla por defecto).
// =============================================================================

const (
	BusinessTypeRetail        = "retail"
	BusinessTypeServices      = "services"
	BusinessTypeRestaurant    = "restaurant"
	BusinessTypeWholesale     = "wholesale"
	BusinessTypeManufacturing = "manufacturing"
	BusinessTypeOther         = "other" // también actúa como comodín en plantillas
)

// BusinessTypes lista ordenada de tipos registrados.
var BusinessTypes = []string{
	BusinessTypeRetail,
	BusinessTypeServices,
	BusinessTypeRestaurant,
	BusinessTypeWholesale,
	BusinessTypeManufacturing,
	BusinessTypeOther,
}

// BusinessProfile perfil del negocio emisor, provisto por el colaborador
// externo. Solo lectura: cabecera, bloque "From" y clave de plantillas.
type BusinessProfile struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
	Email    string `json:"email,omitempty"`
}
