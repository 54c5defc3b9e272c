package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tu-usuario/negocio-pro/internal/application/render"
	"github.com/tu-usuario/negocio-pro/internal/application/templates"
	"github.com/tu-usuario/negocio-pro/internal/infrastructure/pdf"
)

var (
	renderPDF bool
	renderOut string
)

var renderCmd = &cobra.Command{
	Use:   "render <doc-id>",
	Short: "Genera las representaciones texto, HTML y opcionalmente PDF de un documento",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		snap, err := openStore().Load()
		if err != nil {
			return err
		}
		doc, err := snap.DocumentByID(args[0])
		if err != nil {
			return err
		}
		profile := activeProfile(snap)

		resolver := templates.NewResolver(templates.NewCatalog())
		uc := render.NewRenderDocumentUseCase(resolver, pdf.NewMarotoPDFGenerator())

		outDir := renderOut
		if outDir == "" {
			outDir = cfg.Storage.OutputDir
		}
		if err := os.MkdirAll(outDir, 0o755); err != nil {
			return fmt.Errorf("crear directorio de salida: %w", err)
		}

		rendered, tpl := uc.Render(doc, profile)
		log.Info().
			Str("document", doc.ID).
			Str("template", tpl.ID).
			Msg("documento renderizado")

		base := fmt.Sprintf("%s_%s", doc.Type, doc.Number)
		txtPath := filepath.Join(outDir, base+".txt")
		htmlPath := filepath.Join(outDir, base+".html")
		if err := os.WriteFile(txtPath, []byte(rendered.Text), 0o644); err != nil {
			return fmt.Errorf("escribir %s: %w", txtPath, err)
		}
		if err := os.WriteFile(htmlPath, []byte(rendered.HTML), 0o644); err != nil {
			return fmt.Errorf("escribir %s: %w", htmlPath, err)
		}
		fmt.Println(txtPath)
		fmt.Println(htmlPath)

		if renderPDF {
			pdfBytes, filename, err := uc.RenderPDF(cmd.Context(), doc, profile)
			if err != nil {
				return err
			}
			pdfPath := filepath.Join(outDir, filename)
			if err := os.WriteFile(pdfPath, pdfBytes, 0o644); err != nil {
				return fmt.Errorf("escribir %s: %w", pdfPath, err)
			}
			fmt.Println(pdfPath)
		}
		return nil
	},
}

func init() {
	renderCmd.Flags().BoolVar(&renderPDF, "pdf", false, "generar también la salida PDF")
	renderCmd.Flags().StringVar(&renderOut, "out", "", "directorio de salida (por defecto OUTPUT_DIR)")
}
