package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/negocio-pro/internal/domain"
	"github.com/tu-usuario/negocio-pro/internal/domain/money"
)

// =============================================================================
// Tipos de documento comercial
// =============================================================================

const (
	DocumentTypeInvoice           = "invoice"            // Factura de venta
	DocumentTypeReceipt           = "receipt"            // Recibo de pago
	DocumentTypeQuotation         = "quotation"          // Cotización
	DocumentTypePurchaseOrder     = "purchase_order"     // Orden de compra (proveedor)
	DocumentTypeContract          = "contract"           // Contrato con cliente
	DocumentTypeSupplierAgreement = "supplier_agreement" // Acuerdo con proveedor
)

// DocumentTypes lista ordenada de tipos soportados.
var DocumentTypes = []string{
	DocumentTypeInvoice,
	DocumentTypeReceipt,
	DocumentTypeQuotation,
	DocumentTypePurchaseOrder,
	DocumentTypeContract,
	DocumentTypeSupplierAgreement,
}

// =============================================================================
// Estados del documento
// El estado lo administra el flujo externo de emisión; el motor solo lo lee.
// =============================================================================

const (
	DocumentStatusDraft     = "draft"
	DocumentStatusSent      = "sent"
	DocumentStatusPaid      = "paid"
	DocumentStatusCancelled = "cancelled"
)

// DocumentItem línea del documento: Total = Quantity × UnitPrice.
type DocumentItem struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Total       decimal.Decimal `json:"total"`
}

// Document representa un documento comercial emitido (inmutable una vez
// emitido). El motor nunca lo muta: deriva vistas y agrega pagos aparte.
type Document struct {
	ID                string          `json:"id"`
	Type              string          `json:"type"`
	Number            string          `json:"number"` // consecutivo legible, único por negocio
	CounterpartyName  string          `json:"counterparty_name"`
	CounterpartyPhone string          `json:"counterparty_phone,omitempty"`
	CounterpartyEmail string          `json:"counterparty_email,omitempty"`
	Items             []DocumentItem  `json:"items"`
	Subtotal          decimal.Decimal `json:"subtotal"`
	Tax               decimal.Decimal `json:"tax"` // cero = sin impuesto
	Total             decimal.Decimal `json:"total"`
	Currency          money.Currency  `json:"currency"`
	Date              time.Time       `json:"date"`
	DueDate           *time.Time      `json:"due_date,omitempty"`
	Status            string          `json:"status"`
	Notes             Notes           `json:"notes,omitempty"`
}

// validDocumentTypes índice para validación.
var validDocumentTypes = map[string]bool{
	DocumentTypeInvoice: true, DocumentTypeReceipt: true, DocumentTypeQuotation: true,
	DocumentTypePurchaseOrder: true, DocumentTypeContract: true, DocumentTypeSupplierAgreement: true,
}

var validDocumentStatuses = map[string]bool{
	DocumentStatusDraft: true, DocumentStatusSent: true,
	DocumentStatusPaid: true, DocumentStatusCancelled: true,
}

// IsSupplierType indica si la contraparte del tipo es un proveedor
// (el bloque "To" se rotula "Supplier" y el documento entra a cuentas por pagar).
func IsSupplierType(docType string) bool {
	return docType == DocumentTypePurchaseOrder || docType == DocumentTypeSupplierAgreement
}

// TypeLabel devuelve la etiqueta legible de un tipo: guiones bajos a espacios
// y cada palabra con inicial mayúscula. Ej: "purchase_order" → "Purchase Order".
func TypeLabel(docType string) string {
	words := strings.Split(docType, "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

// Validate verifica los invariantes del documento:
//   - tipo, estado y moneda dentro de catálogo;
//   - cantidades y precios no negativos, Total de línea = Quantity × UnitPrice;
//   - Subtotal = Σ totales de línea; impuesto no negativo;
//   - Total = Subtotal + Tax (conservación monetaria, igualdad decimal exacta).
//
// La validación es para el flujo de carga; el renderizador es total y nunca
// la invoca.
func (d *Document) Validate() error {
	if d.ID == "" || d.Number == "" {
		return fmt.Errorf("%w: documento sin id o número", domain.ErrInvalidInput)
	}
	if !validDocumentTypes[d.Type] {
		return fmt.Errorf("%w: tipo de documento %q", domain.ErrInvalidInput, d.Type)
	}
	if !validDocumentStatuses[d.Status] {
		return fmt.Errorf("%w: estado de documento %q", domain.ErrInvalidInput, d.Status)
	}
	if !money.Valid(d.Currency) {
		return fmt.Errorf("%w: moneda %q fuera de catálogo", domain.ErrInvalidInput, d.Currency)
	}

	var sum decimal.Decimal
	for i, item := range d.Items {
		if item.Quantity.IsNegative() || item.UnitPrice.IsNegative() {
			return fmt.Errorf("%w: línea %d con cantidad o precio negativo", domain.ErrInvalidInput, i+1)
		}
		if !item.Total.Equal(item.Quantity.Mul(item.UnitPrice)) {
			return fmt.Errorf("%w: línea %d no cumple total = cantidad × precio", domain.ErrInvalidInput, i+1)
		}
		sum = sum.Add(item.Total)
	}
	if !d.Subtotal.Equal(sum) {
		return fmt.Errorf("%w: subtotal %s no es la suma de líneas %s", domain.ErrInvalidInput, d.Subtotal, sum)
	}
	if d.Tax.IsNegative() {
		return fmt.Errorf("%w: impuesto negativo", domain.ErrInvalidInput)
	}
	if !d.Total.Equal(d.Subtotal.Add(d.Tax)) {
		return fmt.Errorf("%w: total %s ≠ subtotal %s + impuesto %s",
			domain.ErrInvalidInput, d.Total, d.Subtotal, d.Tax)
	}
	return nil
}
