package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/negocio-pro/internal/domain"
	"github.com/tu-usuario/negocio-pro/internal/domain/money"
)

// =============================================================================
// Medios de pago
// =============================================================================

const (
	PaymentMethodCash         = "cash"
	PaymentMethodBankTransfer = "bank_transfer"
	PaymentMethodMobileMoney  = "mobile_money"
	PaymentMethodCard         = "card"
	PaymentMethodOther        = "other"
)

var validPaymentMethods = map[string]bool{
	PaymentMethodCash: true, PaymentMethodBankTransfer: true,
	PaymentMethodMobileMoney: true, PaymentMethodCard: true, PaymentMethodOther: true,
}

// Payment registro de dinero aplicado contra exactamente un documento.
// Nunca se actualiza en sitio: corregir = borrar + recrear.
type Payment struct {
	ID          string          `json:"id"`
	DocumentID  string          `json:"document_id"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    money.Currency  `json:"currency"` // debe coincidir con la del documento
	PaymentDate time.Time       `json:"payment_date"`
	Method      string          `json:"method"`
	Reference   string          `json:"reference,omitempty"`
}

// Validate verifica monto positivo, medio de pago en catálogo y referencia a
// documento presente. La coincidencia de moneda contra el documento la
// verifica el ledger, que es quien tiene ambos lados.
func (p *Payment) Validate() error {
	if p.DocumentID == "" {
		return fmt.Errorf("%w: pago sin documento asociado", domain.ErrInvalidInput)
	}
	if !p.Amount.IsPositive() {
		return fmt.Errorf("%w: el monto del pago debe ser mayor que cero", domain.ErrInvalidInput)
	}
	if !validPaymentMethods[p.Method] {
		return fmt.Errorf("%w: medio de pago %q", domain.ErrInvalidInput, p.Method)
	}
	return nil
}
