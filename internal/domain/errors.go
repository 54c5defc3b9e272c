package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound            = errors.New("recurso no encontrado")
	ErrInvalidInput        = errors.New("entrada inválida")
	ErrInsufficientBalance = errors.New("el pago excede el saldo pendiente del documento")
	ErrCurrencyMismatch    = errors.New("la moneda del pago no coincide con la del documento")
)
