package export_test

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/negocio-pro/internal/application/dto"
	"github.com/tu-usuario/negocio-pro/internal/domain/money"
	"github.com/tu-usuario/negocio-pro/internal/infrastructure/export"
)

func buildSummary() dto.AgingSummaryDTO {
	due := time.Date(2026, 8, 18, 0, 0, 0, 0, time.UTC)
	return dto.AgingSummaryDTO{
		Entries: []dto.AgingEntryDTO{
			{
				DocumentNumber:    "INV-2026-001",
				CounterpartyName:  "Tendai Moyo",
				TotalAmount:       decimal.RequireFromString("1234.50"),
				PaidAmount:        decimal.Zero,
				OutstandingAmount: decimal.RequireFromString("1234.50"),
				Currency:          money.USD,
				DueDate:           &due,
				DaysOverdue:       10,
				Status:            dto.AgingStatusOverdue,
			},
			{
				DocumentNumber:    "INV-2026-002",
				CounterpartyName:  "Rudo, Chikafu & Hijos", // coma y & dentro del campo
				TotalAmount:       decimal.RequireFromString("200.00"),
				PaidAmount:        decimal.Zero,
				OutstandingAmount: decimal.RequireFromString("200.00"),
				Currency:          money.ZWL,
				Status:            dto.AgingStatusCurrent,
			},
		},
		TotalOutstanding: decimal.RequireFromString("1434.50"),
		TotalOverdue:     decimal.RequireFromString("1234.50"),
	}
}

func TestWriter_ReporteCompleto(t *testing.T) {
	var buf bytes.Buffer
	w := export.NewWriter(&buf)
	w.WriteHeader()
	w.WriteEntries(buildSummary())
	w.Flush()
	require.NoError(t, w.Error())

	raw := buf.Bytes()
	require.True(t, bytes.HasPrefix(raw, []byte{0xEF, 0xBB, 0xBF}),
		"el archivo debe empezar con BOM UTF-8 para Excel")

	records, err := csv.NewReader(bytes.NewReader(raw[3:])).ReadAll()
	require.NoError(t, err, "la salida debe ser CSV válido aun con comas en los campos")
	require.Len(t, records, 4, "cabecera + 2 entradas + fila de totales")

	assert.Equal(t, []string{
		"Document Number", "Counterparty", "Total", "Paid", "Outstanding",
		"Currency", "Due Date", "Days Overdue", "Status",
	}, records[0])

	assert.Equal(t, []string{
		"INV-2026-001", "Tendai Moyo", "$1,234.50", "$0.00", "$1,234.50",
		"USD", "18/08/2026", "10", "overdue",
	}, records[1])

	assert.Equal(t, "Rudo, Chikafu & Hijos", records[2][1])
	assert.Equal(t, "ZWL200.00", records[2][4])
	assert.Equal(t, "", records[2][6], "sin vencimiento la celda va vacía")

	totals := records[3]
	assert.Equal(t, "TOTAL", totals[0])
	assert.Equal(t, "1434.50", totals[4])
	assert.Equal(t, "overdue: 1234.50", totals[8])
}

func TestWriter_ResumenVacio(t *testing.T) {
	var buf bytes.Buffer
	w := export.NewWriter(&buf)
	w.WriteHeader()
	w.WriteEntries(dto.AgingSummaryDTO{})
	w.Flush()
	require.NoError(t, w.Error())

	records, err := csv.NewReader(bytes.NewReader(buf.Bytes()[3:])).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 2, "cabecera + fila de totales en cero")
	assert.Equal(t, "0.00", records[1][4])
}

func TestBuildFilename(t *testing.T) {
	today := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, "cuentas_cobrar_2026-08-28.csv", export.BuildFilename("cobrar", today))
	assert.Equal(t, "cuentas_pagar_2026-08-28.csv", export.BuildFilename("pagar", today))
}
