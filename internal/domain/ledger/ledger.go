// Package ledger implementa el libro de pagos: una arena append-only de pagos
// por documento con disciplina de escritor único. La validación de saldo se
// hace contra el estado interno de la arena en el momento de la inserción, no
// contra un snapshot del caller, cerrando la carrera check-then-act.
//
// Invariante central: la suma de pagos aceptados de un documento nunca supera
// document.Total. Un pago que lo violaría se rechaza completo (sin aplicación
// parcial) y la arena queda intacta.
package ledger

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/negocio-pro/internal/domain"
	"github.com/tu-usuario/negocio-pro/internal/domain/entity"
)

// InsufficientBalanceError pago rechazado por exceder el saldo pendiente.
// Lleva el saldo calculado para que el caller lo muestre tal cual al usuario
// (nunca se recorta el monto en silencio).
type InsufficientBalanceError struct {
	DocumentID  string
	Outstanding decimal.Decimal // saldo pendiente al momento del rechazo
	Requested   decimal.Decimal // monto que se intentó aplicar
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("saldo insuficiente en documento %s: pendiente %s, solicitado %s",
		e.DocumentID, e.Outstanding.StringFixed(2), e.Requested.StringFixed(2))
}

// Unwrap permite errors.Is(err, domain.ErrInsufficientBalance).
func (e *InsufficientBalanceError) Unwrap() error { return domain.ErrInsufficientBalance }

// Ledger arena de pagos indexada por documento. Seguro para uso concurrente:
// todas las operaciones serializan sobre un mutex, de modo que dos
// RecordPayment simultáneos sobre el mismo documento nunca validan contra el
// mismo saldo.
type Ledger struct {
	mu       sync.Mutex
	payments map[string][]entity.Payment // DocumentID → pagos en orden de inserción
	docByPay map[string]string           // PaymentID → DocumentID
}

// New construye un ledger vacío.
func New() *Ledger {
	return &Ledger{
		payments: make(map[string][]entity.Payment),
		docByPay: make(map[string]string),
	}
}

// Restore siembra la arena con pagos ya persistidos (se asumen consistentes;
// el colaborador de persistencia es responsable de su integridad).
func (l *Ledger) Restore(payments []entity.Payment) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, p := range payments {
		l.payments[p.DocumentID] = append(l.payments[p.DocumentID], p)
		l.docByPay[p.ID] = p.DocumentID
	}
}

// RecordPayment valida y agrega un pago contra el documento. Reglas:
//   - monto > 0 y medio de pago en catálogo (Payment.Validate);
//   - moneda igual a la del documento (pagos cross-currency fuera de alcance);
//   - monto ≤ saldo pendiente según la arena; si no, InsufficientBalanceError
//     y la arena no cambia.
//
// Si el pago viene sin ID se le asigna uno. Devuelve el pago almacenado para
// que el caller lo persista.
func (l *Ledger) RecordPayment(doc *entity.Document, p entity.Payment) (*entity.Payment, error) {
	if doc == nil {
		return nil, fmt.Errorf("%w: documento nulo", domain.ErrInvalidInput)
	}
	if p.DocumentID == "" {
		p.DocumentID = doc.ID
	}
	if p.DocumentID != doc.ID {
		return nil, fmt.Errorf("%w: el pago referencia al documento %s, no a %s",
			domain.ErrInvalidInput, p.DocumentID, doc.ID)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if p.Currency != doc.Currency {
		return nil, fmt.Errorf("%w: documento en %s, pago en %s",
			domain.ErrCurrencyMismatch, doc.Currency, p.Currency)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	outstanding := doc.Total.Sub(l.paidLocked(doc.ID))
	if p.Amount.GreaterThan(outstanding) {
		return nil, &InsufficientBalanceError{
			DocumentID:  doc.ID,
			Outstanding: outstanding,
			Requested:   p.Amount,
		}
	}

	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	l.payments[doc.ID] = append(l.payments[doc.ID], p)
	l.docByPay[p.ID] = doc.ID
	return &p, nil
}

// DeletePayment elimina un pago sin validar el estado del documento: es el
// mecanismo de corrección (corregir = borrar + recrear).
func (l *Ledger) DeletePayment(paymentID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	docID, ok := l.docByPay[paymentID]
	if !ok {
		return fmt.Errorf("%w: pago %s", domain.ErrNotFound, paymentID)
	}
	delete(l.docByPay, paymentID)

	list := l.payments[docID]
	for i, p := range list {
		if p.ID == paymentID {
			l.payments[docID] = append(list[:i:i], list[i+1:]...)
			break
		}
	}
	return nil
}

// PaymentsFor devuelve una copia de los pagos del documento, en orden de
// inserción.
func (l *Ledger) PaymentsFor(documentID string) []entity.Payment {
	l.mu.Lock()
	defer l.mu.Unlock()
	list := l.payments[documentID]
	out := make([]entity.Payment, len(list))
	copy(out, list)
	return out
}

// PaidTotal suma de pagos registrados en la arena para el documento.
func (l *Ledger) PaidTotal(documentID string) decimal.Decimal {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.paidLocked(documentID)
}

// paidLocked requiere l.mu tomado.
func (l *Ledger) paidLocked(documentID string) decimal.Decimal {
	var sum decimal.Decimal
	for _, p := range l.payments[documentID] {
		sum = sum.Add(p.Amount)
	}
	return sum
}
