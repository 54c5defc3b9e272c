// Package export produce reportes CSV de cartera aptos para hoja de cálculo.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/tu-usuario/negocio-pro/internal/application/dto"
	"github.com/tu-usuario/negocio-pro/internal/domain/money"
)

// utf8BOM al inicio del archivo para que Excel detecte UTF-8.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// agingColumns cabecera del reporte, en el orden de las columnas.
var agingColumns = []string{
	"Document Number",
	"Counterparty",
	"Total",
	"Paid",
	"Outstanding",
	"Currency",
	"Due Date",
	"Days Overdue",
	"Status",
}

// Writer escribe un resumen de cartera como CSV sobre cualquier io.Writer.
type Writer struct {
	cw  *csv.Writer
	err error
}

// NewWriter construye el escritor y antepone el BOM UTF-8.
func NewWriter(w io.Writer) *Writer {
	_, err := w.Write(utf8BOM)
	return &Writer{cw: csv.NewWriter(w), err: err}
}

// WriteHeader escribe la fila de cabecera.
func (w *Writer) WriteHeader() {
	if w.err != nil {
		return
	}
	w.err = w.cw.Write(agingColumns)
}

// WriteEntries escribe una fila por entrada del resumen y una fila final de
// totales. Los montos van formateados con el símbolo de su moneda, iguales a
// los de las demás salidas.
func (w *Writer) WriteEntries(summary dto.AgingSummaryDTO) {
	for _, e := range summary.Entries {
		if w.err != nil {
			return
		}

		dueDate := ""
		if e.DueDate != nil {
			dueDate = e.DueDate.Format("02/01/2006")
		}

		w.err = w.cw.Write([]string{
			e.DocumentNumber,
			e.CounterpartyName,
			money.Format(e.TotalAmount, e.Currency),
			money.Format(e.PaidAmount, e.Currency),
			money.Format(e.OutstandingAmount, e.Currency),
			string(e.Currency),
			dueDate,
			strconv.Itoa(e.DaysOverdue),
			e.Status,
		})
	}

	if w.err != nil {
		return
	}
	w.err = w.cw.Write([]string{
		"TOTAL",
		"",
		"",
		"",
		summary.TotalOutstanding.StringFixed(2),
		"",
		"",
		"",
		fmt.Sprintf("overdue: %s", summary.TotalOverdue.StringFixed(2)),
	})
}

// Flush vacía el buffer interno del csv.Writer.
func (w *Writer) Flush() {
	w.cw.Flush()
	if w.err == nil {
		w.err = w.cw.Error()
	}
}

// Error devuelve el primer error acumulado durante la escritura.
func (w *Writer) Error() error {
	return w.err
}

// BuildFilename nombre sugerido del reporte: cuentas_<kind>_<fecha>.csv.
func BuildFilename(kind string, today time.Time) string {
	return fmt.Sprintf("cuentas_%s_%s.csv", kind, today.Format("2006-01-02"))
}
