package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/negocio-pro/internal/domain/money"
)

// Estados de una entrada de cartera.
const (
	AgingStatusCurrent = "current"
	AgingStatusOverdue = "overdue"
	AgingStatusPaid    = "paid"
)

// AgingEntryDTO entrada derivada de cuentas por cobrar o por pagar. Nunca se
// persiste: se recalcula en cada lectura sobre el snapshot vigente.
type AgingEntryDTO struct {
	DocumentID        string          `json:"document_id"`
	DocumentNumber    string          `json:"document_number"`
	CounterpartyName  string          `json:"counterparty_name"`
	TotalAmount       decimal.Decimal `json:"total_amount"`
	PaidAmount        decimal.Decimal `json:"paid_amount"`
	OutstandingAmount decimal.Decimal `json:"outstanding_amount"`
	Currency          money.Currency  `json:"currency"`
	DueDate           *time.Time      `json:"due_date,omitempty"`
	DaysOverdue       int             `json:"days_overdue"`
	Status            string          `json:"status"` // current | overdue | paid
}

// AgingSummaryDTO conjunto de entradas más los agregados puros.
type AgingSummaryDTO struct {
	Entries          []AgingEntryDTO `json:"entries"`
	TotalOutstanding decimal.Decimal `json:"total_outstanding"`
	TotalOverdue     decimal.Decimal `json:"total_overdue"`
}
