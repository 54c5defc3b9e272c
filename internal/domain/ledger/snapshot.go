package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/negocio-pro/internal/domain/entity"
)

// Funciones puras sobre snapshots provistos por el caller (colecciones ya
// resueltas por la capa de persistencia). No tocan la arena.

// PaidAmount suma de los pagos que referencian al documento.
func PaidAmount(doc *entity.Document, payments []entity.Payment) decimal.Decimal {
	var sum decimal.Decimal
	for _, p := range payments {
		if p.DocumentID == doc.ID {
			sum = sum.Add(p.Amount)
		}
	}
	return sum
}

// OutstandingAmount saldo crudo: Total − pagado. Puede ser negativo si hubo
// sobre-aplicación (bug aguas arriba); ese valor crudo se expone a propósito.
func OutstandingAmount(doc *entity.Document, payments []entity.Payment) decimal.Decimal {
	return doc.Total.Sub(PaidAmount(doc, payments))
}

// DisplayOutstanding saldo para mostrar, con piso en cero. Solo presentación;
// para diagnóstico usar OutstandingAmount.
func DisplayOutstanding(doc *entity.Document, payments []entity.Payment) decimal.Decimal {
	out := OutstandingAmount(doc, payments)
	if out.IsNegative() {
		return decimal.Zero
	}
	return out
}

// IsFullyPaid indica si la suma de pagos cubre el total del documento.
func IsFullyPaid(doc *entity.Document, payments []entity.Payment) bool {
	return PaidAmount(doc, payments).GreaterThanOrEqual(doc.Total)
}

// =============================================================================
// Estado de pago unificado
// El estado del documento (campo Status) y la suma del ledger son dos señales
// independientes que el sistema original nunca reconcilió. Aquí ambas pasan
// por una sola función con precedencia explícita: "cancelled" corta a void;
// en lo demás manda la suma del ledger. Cuando las señales difieren (Status
// dice pagado pero el ledger no, o al revés) no se adivina: el struct expone
// las dos crudas y cada consumidor decide cuál mostrar.
// =============================================================================

// State estado derivado de pago.
type State string

const (
	StateVoid    State = "void"    // documento cancelado
	StatePaid    State = "paid"    // ledger cubre el total
	StatePartial State = "partial" // hay pagos pero no cubren el total
	StateUnpaid  State = "unpaid"  // sin pagos
)

// PaymentState combinación de ambas señales de pago para un documento.
type PaymentState struct {
	State       State           // derivado: cancelled → void; si no, manda el ledger
	Paid        decimal.Decimal // suma del ledger
	Outstanding decimal.Decimal // saldo crudo (puede ser negativo)
	StatusPaid  bool            // señal independiente: doc.Status == "paid"
}

// Disagree indica que las dos señales se contradicen (p. ej. Status pagado
// con ledger en cero). Útil para que la capa de arriba lo reporte en vez de
// resolverlo en silencio.
func (s PaymentState) Disagree() bool {
	ledgerPaid := s.State == StatePaid
	return s.State != StateVoid && s.StatusPaid != ledgerPaid
}

// ComputePaymentState deriva el estado unificado de pago del documento a
// partir del snapshot de pagos.
func ComputePaymentState(doc *entity.Document, payments []entity.Payment) PaymentState {
	paid := PaidAmount(doc, payments)
	st := PaymentState{
		Paid:        paid,
		Outstanding: doc.Total.Sub(paid),
		StatusPaid:  doc.Status == entity.DocumentStatusPaid,
	}
	switch {
	case doc.Status == entity.DocumentStatusCancelled:
		st.State = StateVoid
	case paid.GreaterThanOrEqual(doc.Total):
		st.State = StatePaid
	case paid.IsPositive():
		st.State = StatePartial
	default:
		st.State = StateUnpaid
	}
	return st
}
