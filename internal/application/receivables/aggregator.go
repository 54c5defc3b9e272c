// Package receivables deriva las vistas de cuentas por cobrar y por pagar a
// partir del conjunto de documentos. Derivación pura sobre snapshots: nada se
// persiste, cada lectura recalcula contra el estado vigente.
//
// Nota deliberada del diseño original: esta vista decide "pagado" por el
// campo Status del documento, no por la suma del ledger. El detalle de pagos
// usa ledger.ComputePaymentState; los consumidores que necesiten reconciliar
// ambas señales deben pasar por esa función.
package receivables

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/negocio-pro/internal/application/dto"
	"github.com/tu-usuario/negocio-pro/internal/domain/entity"
)

// Clock fuente de "hoy" para el cálculo de antigüedad; inyectable en tests.
type Clock func() time.Time

// Aggregator deriva entradas de cartera con antigüedad en días calendario.
type Aggregator struct {
	now Clock
}

// NewAggregator construye el agregador. Con clock nil usa el reloj de pared.
func NewAggregator(clock Clock) *Aggregator {
	if clock == nil {
		clock = time.Now
	}
	return &Aggregator{now: clock}
}

// Receivables cuentas por cobrar: facturas no canceladas.
func (a *Aggregator) Receivables(docs []entity.Document) dto.AgingSummaryDTO {
	return a.derive(docs, func(t string) bool { return t == entity.DocumentTypeInvoice })
}

// Payables cuentas por pagar: órdenes de compra y acuerdos de proveedor no
// cancelados.
func (a *Aggregator) Payables(docs []entity.Document) dto.AgingSummaryDTO {
	return a.derive(docs, entity.IsSupplierType)
}

// derive recorre los documentos del conjunto y arma las entradas:
//   - pagado ⇔ Status == "paid" (señal del documento, ver nota del paquete);
//   - antigüedad por truncado a día calendario, 0 sin vencimiento o pagado;
//   - se conservan las entradas con saldo > 0 O vencidas (cubre el borde de
//     documento de valor cero con vencimiento en el pasado);
//   - totales como reducciones puras sin casos especiales.
func (a *Aggregator) derive(docs []entity.Document, include func(docType string) bool) dto.AgingSummaryDTO {
	today := a.now()
	summary := dto.AgingSummaryDTO{}

	for i := range docs {
		doc := &docs[i]
		if !include(doc.Type) || doc.Status == entity.DocumentStatusCancelled {
			continue
		}

		isPaid := doc.Status == entity.DocumentStatusPaid

		paid := decimal.Zero
		if isPaid {
			paid = doc.Total
		}
		outstanding := doc.Total.Sub(paid)

		days := 0
		if !isPaid {
			days = daysOverdue(today, doc.DueDate)
		}

		status := dto.AgingStatusCurrent
		switch {
		case isPaid:
			status = dto.AgingStatusPaid
		case days > 0:
			status = dto.AgingStatusOverdue
		}

		if !outstanding.IsPositive() && status != dto.AgingStatusOverdue {
			continue
		}

		summary.Entries = append(summary.Entries, dto.AgingEntryDTO{
			DocumentID:        doc.ID,
			DocumentNumber:    doc.Number,
			CounterpartyName:  doc.CounterpartyName,
			TotalAmount:       doc.Total,
			PaidAmount:        paid,
			OutstandingAmount: outstanding,
			Currency:          doc.Currency,
			DueDate:           doc.DueDate,
			DaysOverdue:       days,
			Status:            status,
		})

		summary.TotalOutstanding = summary.TotalOutstanding.Add(outstanding)
		if status == dto.AgingStatusOverdue {
			summary.TotalOverdue = summary.TotalOverdue.Add(outstanding)
		}
	}

	return summary
}

// daysOverdue días calendario completos desde el vencimiento, nunca negativo.
// Ambas fechas se truncan a medianoche UTC antes de restar, así un
// vencimiento más tarde el mismo día jamás cuenta como vencido.
func daysOverdue(today time.Time, due *time.Time) int {
	if due == nil {
		return 0
	}
	t := truncateToDay(today)
	d := truncateToDay(*due)
	if !d.Before(t) {
		return 0
	}
	return int(t.Sub(d).Hours() / 24)
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
