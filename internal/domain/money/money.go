// Package money define el catálogo cerrado de monedas soportadas y su regla
// de formato. Agregar una moneda nueva es una fila más en la tabla specs;
// el renderizador y el agregador no conocen símbolos ni separadores.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Currency código de moneda soportado.
type Currency string

// =============================================================================
// Monedas soportadas
// El formato de cada una está en la tabla specs (símbolo, decimales).
// =============================================================================

const (
	USD Currency = "USD" // Dólar estadounidense
	ZWL Currency = "ZWL" // Dólar zimbabuense
)

// Currencies lista ordenada de monedas soportadas.
var Currencies = []Currency{USD, ZWL}

// formatSpec regla de formato de una moneda.
type formatSpec struct {
	Symbol   string // prefijo, sin separador respecto a los dígitos
	Decimals int32  // cantidad de decimales fijos
}

var specs = map[Currency]formatSpec{
	USD: {Symbol: "$", Decimals: 2},
	ZWL: {Symbol: "ZWL", Decimals: 2},
}

// Valid indica si el código pertenece al catálogo.
func Valid(c Currency) bool {
	_, ok := specs[c]
	return ok
}

// Format produce la representación exacta de un monto: dos decimales, miles
// agrupados con coma y el símbolo como prefijo. Ej: Format(1234.5, USD) →
// "$1,234.50"; Format(1234.5, ZWL) → "ZWL1,234.50".
//
// Este string es contrato externo (se reproduce idéntico en texto, HTML y
// PDF), por eso el agrupado se hace sobre el string decimal y no vía locales.
func Format(amount decimal.Decimal, c Currency) string {
	spec, ok := specs[c]
	if !ok {
		// Moneda fuera de catálogo: se usa el código como prefijo para no
		// perder información en la salida.
		spec = formatSpec{Symbol: string(c), Decimals: 2}
	}

	s := amount.StringFixed(spec.Decimals)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	intPart := s
	fracPart := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i:]
	}

	out := spec.Symbol + groupThousands(intPart) + fracPart
	if neg {
		out = "-" + out
	}
	return out
}

// groupThousands inserta comas de miles en un string numérico sin signo.
// Ej: "25000" → "25,000", "1000000" → "1,000,000"
func groupThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i := 0; i < n; i++ {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, s[i])
	}
	return string(buf)
}
