package jsonstore_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/negocio-pro/internal/domain"
	"github.com/tu-usuario/negocio-pro/internal/domain/entity"
	"github.com/tu-usuario/negocio-pro/internal/domain/money"
	"github.com/tu-usuario/negocio-pro/internal/infrastructure/jsonstore"
)

func buildSnapshot() *jsonstore.Snapshot {
	total := decimal.RequireFromString("143.75")
	return &jsonstore.Snapshot{
		Profile: entity.BusinessProfile{
			Name: "Moyo General Dealers",
			Type: entity.BusinessTypeRetail,
		},
		Documents: []entity.Document{
			{
				ID:               "doc-001",
				Type:             entity.DocumentTypeInvoice,
				Number:           "INV-2026-001",
				CounterpartyName: "Tendai Moyo",
				Subtotal:         total,
				Total:            total,
				Currency:         money.USD,
				Date:             time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
				Status:           entity.DocumentStatusSent,
				Notes:            entity.FreeTextNotes("entregar en obra"),
			},
		},
		Payments: []entity.Payment{
			{
				ID:          "pay-001",
				DocumentID:  "doc-001",
				Amount:      decimal.RequireFromString("50.00"),
				Currency:    money.USD,
				PaymentDate: time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC),
				Method:      entity.PaymentMethodCash,
			},
		},
	}
}

func TestStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "negocio.json")
	store := jsonstore.NewStore(path)

	require.NoError(t, store.Save(buildSnapshot()))

	loaded, err := store.Load()
	require.NoError(t, err)

	require.Len(t, loaded.Documents, 1)
	doc := loaded.Documents[0]
	assert.Equal(t, "doc-001", doc.ID)
	assert.True(t, doc.Total.Equal(decimal.RequireFromString("143.75")),
		"los montos decimales sobreviven el round-trip sin pérdida")
	assert.Equal(t, "entregar en obra", doc.Notes.Text)

	require.Len(t, loaded.Payments, 1)
	assert.True(t, loaded.Payments[0].Amount.Equal(decimal.RequireFromString("50.00")))
	assert.Equal(t, "Moyo General Dealers", loaded.Profile.Name)
}

// TestStore_LeeNotasHeredadas un snapshot escrito por el sistema viejo lleva
// notes como string plano (a veces con JSON embebido); ambas formas cargan.
func TestStore_LeeNotasHeredadas(t *testing.T) {
	path := filepath.Join(t.TempDir(), "negocio.json")
	legacy := `{
	  "profile": {"name": "Negocio Viejo", "type": "retail"},
	  "documents": [
	    {
	      "id": "doc-a",
	      "type": "invoice",
	      "number": "INV-1",
	      "counterparty_name": "Cliente A",
	      "subtotal": "10",
	      "tax": "0",
	      "total": "10",
	      "currency": "USD",
	      "date": "2026-01-15T00:00:00Z",
	      "status": "sent",
	      "notes": "{\"warranty\":\"1 año\"}"
	    },
	    {
	      "id": "doc-b",
	      "type": "receipt",
	      "number": "REC-1",
	      "counterparty_name": "Cliente B",
	      "subtotal": "5",
	      "tax": "0",
	      "total": "5",
	      "currency": "USD",
	      "date": "2026-01-16T00:00:00Z",
	      "status": "paid",
	      "notes": "gracias por su compra"
	    }
	  ],
	  "payments": []
	}`
	require.NoError(t, os.WriteFile(path, []byte(legacy), 0o644))

	snap, err := jsonstore.NewStore(path).Load()
	require.NoError(t, err)
	require.Len(t, snap.Documents, 2)

	structured := snap.Documents[0].Notes
	assert.True(t, structured.IsStructured())
	assert.Equal(t, "1 año", structured.Fields["warranty"])

	free := snap.Documents[1].Notes
	assert.False(t, free.IsStructured())
	assert.Equal(t, "gracias por su compra", free.Text)
}

func TestStore_ArchivoInexistente(t *testing.T) {
	store := jsonstore.NewStore(filepath.Join(t.TempDir(), "no-existe.json"))

	snap, err := store.Load()
	require.NoError(t, err, "sin archivo se parte de un snapshot vacío, no de un error")
	assert.Empty(t, snap.Documents)
	assert.Empty(t, snap.Payments)
}

func TestStore_JSONCorrupto(t *testing.T) {
	path := filepath.Join(t.TempDir(), "negocio.json")
	require.NoError(t, os.WriteFile(path, []byte("{truncado"), 0o644))

	_, err := jsonstore.NewStore(path).Load()
	assert.Error(t, err)
}

func TestSnapshot_Busquedas(t *testing.T) {
	snap := buildSnapshot()

	doc, err := snap.DocumentByID("doc-001")
	require.NoError(t, err)
	assert.Equal(t, "INV-2026-001", doc.Number)

	_, err = snap.DocumentByID("doc-fantasma")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.Len(t, snap.PaymentsFor("doc-001"), 1)
	assert.Empty(t, snap.PaymentsFor("doc-999"))
}
