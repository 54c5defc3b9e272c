package render

import (
	"context"
	"fmt"

	"github.com/tu-usuario/negocio-pro/internal/application/templates"
	"github.com/tu-usuario/negocio-pro/internal/domain"
	"github.com/tu-usuario/negocio-pro/internal/domain/entity"
)

// Render función pura: documento + perfil + plantilla → texto y HTML.
// Sin efectos, sin I/O, determinista: el mismo input produce bytes idénticos.
// Total para cualquier documento bien tipado: los opcionales ausentes
// degradan a omisión, nunca a error.
func Render(doc *entity.Document, profile entity.BusinessProfile, tpl entity.DocumentTemplate) RenderedDocument {
	vm := buildViewModel(doc, profile, tpl)
	return RenderedDocument{
		Text: renderText(vm),
		HTML: renderHTML(vm),
	}
}

// RenderDocumentUseCase orquesta resolución de plantilla + renderizado, y la
// generación de PDF a través del puerto de infraestructura.
type RenderDocumentUseCase struct {
	resolver *templates.Resolver
	pdfGen   DocumentPDFGenerator // opcional; nil = sin salida PDF
}

// NewRenderDocumentUseCase construye el caso de uso.
func NewRenderDocumentUseCase(resolver *templates.Resolver, pdfGen DocumentPDFGenerator) *RenderDocumentUseCase {
	return &RenderDocumentUseCase{resolver: resolver, pdfGen: pdfGen}
}

// Render resuelve la plantilla según el tipo de negocio del perfil y produce
// ambas representaciones. Devuelve también la plantilla usada para que el
// caller pueda derivar nombres de archivo o estilos.
func (uc *RenderDocumentUseCase) Render(doc *entity.Document, profile entity.BusinessProfile) (RenderedDocument, entity.DocumentTemplate) {
	tpl := uc.resolver.Resolve(doc.Type, profile.Type)
	return Render(doc, profile, tpl), tpl
}

// RenderPDF genera la representación PDF del documento.
// Retorna (bytes, nombre de archivo sugerido, error).
func (uc *RenderDocumentUseCase) RenderPDF(ctx context.Context, doc *entity.Document, profile entity.BusinessProfile) ([]byte, string, error) {
	if uc.pdfGen == nil {
		return nil, "", fmt.Errorf("%w: generador PDF no configurado", domain.ErrInvalidInput)
	}
	tpl := uc.resolver.Resolve(doc.Type, profile.Type)
	pdfBytes, err := uc.pdfGen.GeneratePDF(ctx, doc, profile, tpl)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}
	filename := fmt.Sprintf("%s_%s.pdf", doc.Type, doc.Number)
	return pdfBytes, filename, nil
}
