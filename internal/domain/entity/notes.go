package entity

import "encoding/json"

// Notes variante etiquetada para el campo de notas de un documento: texto
// libre O bolsa de campos estructurados (id de campo de plantilla → valor).
// La decisión se toma al escribir; el renderizador ya no adivina.
//
// Para datos heredados (el campo venía como un solo string que a veces era
// JSON) está ParseLegacyNotes, que conserva la degradación silenciosa del
// formato viejo: si no parsea como bolsa de campos, es texto libre.
type Notes struct {
	Text   string            `json:"text,omitempty"`
	Fields map[string]string `json:"fields,omitempty"`
}

// FreeTextNotes construye notas de texto libre.
func FreeTextNotes(s string) Notes {
	return Notes{Text: s}
}

// StructuredNotes construye notas como bolsa de campos de plantilla.
func StructuredNotes(fields map[string]string) Notes {
	return Notes{Fields: fields}
}

// IsZero indica que no hay notas.
func (n Notes) IsZero() bool {
	return n.Text == "" && len(n.Fields) == 0
}

// IsStructured indica que las notas son una bolsa de campos.
func (n Notes) IsStructured() bool {
	return len(n.Fields) > 0
}

// ParseLegacyNotes interpreta el encoding heredado: si el string es un objeto
// JSON no vacío cuyos valores son escalares, es una bolsa de campos; cualquier
// otra cosa es texto libre. Nunca falla (la ambigüedad degrada a texto).
func ParseLegacyNotes(raw string) Notes {
	if raw == "" {
		return Notes{}
	}
	var m map[string]any
	if err := json.Unmarshal([]byte(raw), &m); err != nil || len(m) == 0 {
		return FreeTextNotes(raw)
	}
	fields := make(map[string]string, len(m))
	for k, v := range m {
		s, ok := scalarToString(v)
		if !ok {
			return FreeTextNotes(raw)
		}
		if s != "" {
			fields[k] = s
		}
	}
	if len(fields) == 0 {
		return FreeTextNotes(raw)
	}
	return StructuredNotes(fields)
}

// UnmarshalJSON acepta tanto la forma etiquetada nueva ({"text":…} /
// {"fields":…}) como el string heredado, delegando en ParseLegacyNotes.
func (n *Notes) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*n = ParseLegacyNotes(s)
		return nil
	}
	type plain Notes
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*n = Notes(p)
	return nil
}

func scalarToString(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case float64:
		return json.Number(trimFloat(t)).String(), true
	case bool:
		if t {
			return "true", true
		}
		return "false", true
	case nil:
		return "", true
	default:
		return "", false
	}
}

// trimFloat imprime un float JSON sin notación científica ni ceros sobrantes.
func trimFloat(f float64) string {
	b, _ := json.Marshal(f)
	return string(b)
}
