package main

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/tu-usuario/negocio-pro/internal/application/dto"
	"github.com/tu-usuario/negocio-pro/internal/application/receivables"
	"github.com/tu-usuario/negocio-pro/internal/domain/money"
	"github.com/tu-usuario/negocio-pro/internal/infrastructure/export"
)

var cuentasCSV bool

var cuentasCmd = &cobra.Command{
	Use:   "cuentas",
	Short: "Cuentas por cobrar y por pagar con antigüedad en días",
}

var cuentasCobrarCmd = &cobra.Command{
	Use:   "cobrar",
	Short: "Cuentas por cobrar (facturas pendientes o vencidas)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCuentas("cobrar")
	},
}

var cuentasPagarCmd = &cobra.Command{
	Use:   "pagar",
	Short: "Cuentas por pagar (órdenes de compra y acuerdos de proveedor)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCuentas("pagar")
	},
}

func runCuentas(kind string) error {
	snap, err := openStore().Load()
	if err != nil {
		return err
	}

	agg := receivables.NewAggregator(cfg.App.Now)
	var summary dto.AgingSummaryDTO
	if kind == "cobrar" {
		summary = agg.Receivables(snap.Documents)
	} else {
		summary = agg.Payables(snap.Documents)
	}

	printSummary(summary)

	if cuentasCSV {
		path := filepath.Join(cfg.Storage.OutputDir, export.BuildFilename(kind, cfg.App.Now()))
		if err := writeSummaryCSV(path, summary); err != nil {
			return err
		}
		log.Info().Str("file", path).Int("entries", len(summary.Entries)).Msg("reporte CSV generado")
		fmt.Println(path)
	}
	return nil
}

func printSummary(summary dto.AgingSummaryDTO) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NUMBER\tCOUNTERPARTY\tOUTSTANDING\tDUE DATE\tDAYS\tSTATUS")
	for _, e := range summary.Entries {
		due := "-"
		if e.DueDate != nil {
			due = e.DueDate.Format("02/01/2006")
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\n",
			e.DocumentNumber,
			e.CounterpartyName,
			money.Format(e.OutstandingAmount, e.Currency),
			due,
			e.DaysOverdue,
			e.Status,
		)
	}
	w.Flush()
	fmt.Printf("\nTotal outstanding: %s   Total overdue: %s\n",
		summary.TotalOutstanding.StringFixed(2),
		summary.TotalOverdue.StringFixed(2),
	)
}

func writeSummaryCSV(path string, summary dto.AgingSummaryDTO) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("crear directorio de salida: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("crear %s: %w", path, err)
	}
	defer f.Close()

	w := export.NewWriter(f)
	w.WriteHeader()
	w.WriteEntries(summary)
	w.Flush()
	return w.Error()
}

func init() {
	cuentasCmd.AddCommand(cuentasCobrarCmd, cuentasPagarCmd)
	cuentasCmd.PersistentFlags().BoolVar(&cuentasCSV, "csv", false, "exportar el reporte como CSV")
}
