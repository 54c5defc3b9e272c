package entity_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/negocio-pro/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// ParseLegacyNotes conserva la degradación silenciosa del encoding viejo: un
// string que parsea como objeto JSON de escalares es bolsa de campos; todo lo
// demás es texto libre. Nunca hay error.
// ──────────────────────────────────────────────────────────────────────────────

func TestParseLegacyNotes_ObjetoJSON(t *testing.T) {
	n := entity.ParseLegacyNotes(`{"delivery_date":"2026-09-01","warranty":"6 meses"}`)

	require.True(t, n.IsStructured())
	assert.Equal(t, "2026-09-01", n.Fields["delivery_date"])
	assert.Equal(t, "6 meses", n.Fields["warranty"])
	assert.Empty(t, n.Text, "la variante estructurada no lleva texto")
}

func TestParseLegacyNotes_EscalaresNoString(t *testing.T) {
	n := entity.ParseLegacyNotes(`{"cuotas":3,"urgente":true,"obs":null}`)

	require.True(t, n.IsStructured())
	assert.Equal(t, "3", n.Fields["cuotas"])
	assert.Equal(t, "true", n.Fields["urgente"])
	_, ok := n.Fields["obs"]
	assert.False(t, ok, "los valores null se descartan")
}

func TestParseLegacyNotes_DegradaATextoLibre(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"texto plano", "Entregar antes del viernes"},
		{"JSON inválido", `{"campo": sin-comillas}`},
		{"objeto vacío", `{}`},
		{"array JSON", `["a","b"]`},
		{"valor anidado", `{"campo":{"sub":1}}`},
		{"solo valores null", `{"a":null}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			n := entity.ParseLegacyNotes(tc.raw)
			assert.False(t, n.IsStructured(), "debe degradar a texto libre")
			assert.Equal(t, tc.raw, n.Text, "el string original se conserva intacto")
		})
	}
}

func TestParseLegacyNotes_Vacio(t *testing.T) {
	n := entity.ParseLegacyNotes("")
	assert.True(t, n.IsZero())
}

// TestNotesUnmarshalJSON_AmbasFormas el campo notes acepta el string heredado
// y la forma etiquetada nueva dentro del mismo snapshot.
func TestNotesUnmarshalJSON_AmbasFormas(t *testing.T) {
	t.Run("string heredado con JSON embebido", func(t *testing.T) {
		var n entity.Notes
		require.NoError(t, json.Unmarshal([]byte(`"{\"warranty\":\"1 año\"}"`), &n))
		assert.True(t, n.IsStructured())
		assert.Equal(t, "1 año", n.Fields["warranty"])
	})
	t.Run("string heredado plano", func(t *testing.T) {
		var n entity.Notes
		require.NoError(t, json.Unmarshal([]byte(`"pago contra entrega"`), &n))
		assert.False(t, n.IsStructured())
		assert.Equal(t, "pago contra entrega", n.Text)
	})
	t.Run("forma etiquetada", func(t *testing.T) {
		var n entity.Notes
		require.NoError(t, json.Unmarshal([]byte(`{"fields":{"scope":"fase 1"}}`), &n))
		assert.True(t, n.IsStructured())
		assert.Equal(t, "fase 1", n.Fields["scope"])
	})
}
