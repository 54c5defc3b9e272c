package render

import (
	"context"

	"github.com/tu-usuario/negocio-pro/internal/domain/entity"
)

// DocumentPDFGenerator puerto hacia la infraestructura de PDF. El caso de uso
// no conoce la librería concreta; recibe la implementación por constructor.
type DocumentPDFGenerator interface {
	GeneratePDF(
		ctx context.Context,
		doc *entity.Document,
		profile entity.BusinessProfile,
		tpl entity.DocumentTemplate,
	) ([]byte, error)
}
