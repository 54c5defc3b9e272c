package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/negocio-pro/internal/domain/money"
)

// ──────────────────────────────────────────────────────────────────────────────
// TestFormat_VectoresExactos valida el contrato de formato byte a byte: dos
// decimales fijos, miles con coma, símbolo como prefijo sin separador. Este
// string se reproduce idéntico en texto, HTML, PDF y CSV, así que cualquier
// cambio aquí es un cambio de contrato externo.
// ──────────────────────────────────────────────────────────────────────────────

func TestFormat_VectoresExactos(t *testing.T) {
	cases := []struct {
		name     string
		amount   string
		currency money.Currency
		want     string
	}{
		{"USD con miles", "1234.5", money.USD, "$1,234.50"},
		{"ZWL con miles", "1234.5", money.ZWL, "ZWL1,234.50"},
		{"cero", "0", money.USD, "$0.00"},
		{"sin miles", "999.99", money.USD, "$999.99"},
		{"miles exactos", "1000", money.USD, "$1,000.00"},
		{"millón", "1000000", money.USD, "$1,000,000.00"},
		{"redondeo a dos decimales", "25000.005", money.USD, "$25,000.01"},
		{"negativo", "-1234.5", money.USD, "-$1,234.50"},
		{"negativo ZWL", "-42", money.ZWL, "-ZWL42.00"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			amount := decimal.RequireFromString(tc.amount)
			assert.Equal(t, tc.want, money.Format(amount, tc.currency),
				"el formato debe coincidir byte a byte")
		})
	}
}

// TestFormat_MonedaFueraDeCatalogo verifica la degradación: el código de la
// moneda desconocida se usa como prefijo, nunca se pierde el monto.
func TestFormat_MonedaFueraDeCatalogo(t *testing.T) {
	got := money.Format(decimal.RequireFromString("1234.5"), money.Currency("BWP"))
	assert.Equal(t, "BWP1,234.50", got)
}

func TestValid(t *testing.T) {
	assert.True(t, money.Valid(money.USD))
	assert.True(t, money.Valid(money.ZWL))
	assert.False(t, money.Valid(money.Currency("EUR")), "EUR no pertenece al catálogo")
	assert.False(t, money.Valid(money.Currency("")))
}
