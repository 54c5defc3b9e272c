package receivables_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/negocio-pro/internal/application/dto"
	"github.com/tu-usuario/negocio-pro/internal/application/receivables"
	"github.com/tu-usuario/negocio-pro/internal/domain/entity"
	"github.com/tu-usuario/negocio-pro/internal/domain/money"
)

// fixedClock reloj congelado para que la antigüedad sea reproducible.
func fixedClock(t time.Time) receivables.Clock {
	return func() time.Time { return t }
}

func buildDoc(id, docType, status, total string, due *time.Time) entity.Document {
	amount := decimal.RequireFromString(total)
	return entity.Document{
		ID:               id,
		Type:             docType,
		Number:           "N-" + id,
		CounterpartyName: "Contraparte " + id,
		Subtotal:         amount,
		Total:            amount,
		Currency:         money.USD,
		Date:             time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		DueDate:          due,
		Status:           status,
	}
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

// ──────────────────────────────────────────────────────────────────────────────
// Cuentas por cobrar: solo facturas; canceladas fuera; pagadas sin saldo
// fuera; la antigüedad cuenta días calendario completos desde el vencimiento.
// ──────────────────────────────────────────────────────────────────────────────

func TestReceivables_FiltraYCalculaAntiguedad(t *testing.T) {
	today := time.Date(2026, 8, 28, 15, 30, 0, 0, time.UTC)
	agg := receivables.NewAggregator(fixedClock(today))

	docs := []entity.Document{
		// Vencida hace 10 días.
		buildDoc("inv-1", entity.DocumentTypeInvoice, entity.DocumentStatusSent, "500.00", datePtr(2026, 8, 18)),
		// Al día: vence en el futuro.
		buildDoc("inv-2", entity.DocumentTypeInvoice, entity.DocumentStatusSent, "200.00", datePtr(2026, 9, 10)),
		// Pagada: sin saldo, no aparece.
		buildDoc("inv-3", entity.DocumentTypeInvoice, entity.DocumentStatusPaid, "900.00", datePtr(2026, 8, 1)),
		// Cancelada: nunca aparece.
		buildDoc("inv-4", entity.DocumentTypeInvoice, entity.DocumentStatusCancelled, "300.00", datePtr(2026, 8, 1)),
		// Orden de compra: es por pagar, no por cobrar.
		buildDoc("po-1", entity.DocumentTypePurchaseOrder, entity.DocumentStatusSent, "150.00", nil),
	}

	summary := agg.Receivables(docs)

	require.Len(t, summary.Entries, 2)

	overdue := summary.Entries[0]
	assert.Equal(t, "inv-1", overdue.DocumentID)
	assert.Equal(t, dto.AgingStatusOverdue, overdue.Status)
	assert.Equal(t, 10, overdue.DaysOverdue)
	assert.True(t, overdue.OutstandingAmount.Equal(decimal.RequireFromString("500.00")))

	current := summary.Entries[1]
	assert.Equal(t, "inv-2", current.DocumentID)
	assert.Equal(t, dto.AgingStatusCurrent, current.Status)
	assert.Equal(t, 0, current.DaysOverdue)

	assert.True(t, summary.TotalOutstanding.Equal(decimal.RequireFromString("700.00")))
	assert.True(t, summary.TotalOverdue.Equal(decimal.RequireFromString("500.00")),
		"solo lo vencido entra al total vencido")
}

func TestPayables_SoloDocumentosDeProveedor(t *testing.T) {
	today := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	agg := receivables.NewAggregator(fixedClock(today))

	docs := []entity.Document{
		buildDoc("po-1", entity.DocumentTypePurchaseOrder, entity.DocumentStatusSent, "400.00", datePtr(2026, 8, 20)),
		buildDoc("sa-1", entity.DocumentTypeSupplierAgreement, entity.DocumentStatusSent, "250.00", nil),
		buildDoc("inv-1", entity.DocumentTypeInvoice, entity.DocumentStatusSent, "100.00", nil),
		buildDoc("ctr-1", entity.DocumentTypeContract, entity.DocumentStatusSent, "800.00", nil),
	}

	summary := agg.Payables(docs)

	require.Len(t, summary.Entries, 2)
	assert.Equal(t, "po-1", summary.Entries[0].DocumentID)
	assert.Equal(t, 8, summary.Entries[0].DaysOverdue)
	assert.Equal(t, "sa-1", summary.Entries[1].DocumentID)
	assert.True(t, summary.TotalOutstanding.Equal(decimal.RequireFromString("650.00")))
}

// TestDaysOverdue_DiasCalendario ambas fechas se truncan a medianoche UTC:
// un vencimiento más tarde el mismo día no cuenta como vencido, y el día
// siguiente cuenta exactamente 1.
func TestDaysOverdue_DiasCalendario(t *testing.T) {
	due := datePtr(2026, 8, 27)
	doc := buildDoc("inv-1", entity.DocumentTypeInvoice, entity.DocumentStatusSent, "100.00", due)

	cases := []struct {
		name string
		now  time.Time
		want int
	}{
		{"mismo día, hora posterior", time.Date(2026, 8, 27, 23, 59, 0, 0, time.UTC), 0},
		{"día siguiente temprano", time.Date(2026, 8, 28, 0, 1, 0, 0, time.UTC), 1},
		{"una semana después", time.Date(2026, 9, 3, 12, 0, 0, 0, time.UTC), 7},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			agg := receivables.NewAggregator(fixedClock(tc.now))
			summary := agg.Receivables([]entity.Document{doc})
			require.Len(t, summary.Entries, 1)
			assert.Equal(t, tc.want, summary.Entries[0].DaysOverdue)
		})
	}
}

// TestDaysOverdue_Monotonia con el vencimiento fijo, avanzar el reloj nunca
// reduce la antigüedad.
func TestDaysOverdue_Monotonia(t *testing.T) {
	doc := buildDoc("inv-1", entity.DocumentTypeInvoice, entity.DocumentStatusSent, "100.00", datePtr(2026, 8, 1))

	prev := -1
	for day := 1; day <= 40; day++ {
		now := time.Date(2026, 8, 1, 6, 0, 0, 0, time.UTC).AddDate(0, 0, day)
		agg := receivables.NewAggregator(fixedClock(now))
		summary := agg.Receivables([]entity.Document{doc})
		require.Len(t, summary.Entries, 1)

		days := summary.Entries[0].DaysOverdue
		assert.GreaterOrEqual(t, days, prev, "la antigüedad no puede retroceder")
		prev = days
	}
	assert.Equal(t, 40, prev)
}

// TestDerive_DocumentoDeValorCeroVencido borde deliberado: saldo cero pero
// vencido se conserva en la vista (hay que perseguir el documento igual).
func TestDerive_DocumentoDeValorCeroVencido(t *testing.T) {
	today := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	agg := receivables.NewAggregator(fixedClock(today))

	docs := []entity.Document{
		buildDoc("inv-cero", entity.DocumentTypeInvoice, entity.DocumentStatusSent, "0.00", datePtr(2026, 8, 1)),
		buildDoc("inv-cero-al-dia", entity.DocumentTypeInvoice, entity.DocumentStatusSent, "0.00", datePtr(2026, 9, 30)),
	}

	summary := agg.Receivables(docs)

	require.Len(t, summary.Entries, 1, "valor cero al día no aparece; valor cero vencido sí")
	assert.Equal(t, "inv-cero", summary.Entries[0].DocumentID)
	assert.Equal(t, dto.AgingStatusOverdue, summary.Entries[0].Status)
	assert.True(t, summary.TotalOutstanding.IsZero())
	assert.True(t, summary.TotalOverdue.IsZero())
}

// TestDerive_PagadaConVencimientoPasado el estado pagado anula la antigüedad:
// nunca se reporta vencida una factura saldada.
func TestDerive_PagadaConVencimientoPasado(t *testing.T) {
	today := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	agg := receivables.NewAggregator(fixedClock(today))

	doc := buildDoc("inv-1", entity.DocumentTypeInvoice, entity.DocumentStatusPaid, "100.00", datePtr(2026, 7, 1))
	summary := agg.Receivables([]entity.Document{doc})

	assert.Empty(t, summary.Entries, "pagada y sin saldo: fuera de la vista aunque el vencimiento pasó")
	assert.True(t, summary.TotalOverdue.IsZero())
}

func TestDerive_SinVencimientoNuncaVence(t *testing.T) {
	today := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	agg := receivables.NewAggregator(fixedClock(today))

	doc := buildDoc("inv-1", entity.DocumentTypeInvoice, entity.DocumentStatusSent, "100.00", nil)
	summary := agg.Receivables([]entity.Document{doc})

	require.Len(t, summary.Entries, 1)
	assert.Equal(t, dto.AgingStatusCurrent, summary.Entries[0].Status)
	assert.Equal(t, 0, summary.Entries[0].DaysOverdue)
}
