// Package jsonstore persiste el estado completo del negocio como un único
// archivo JSON: perfil, documentos y pagos. Pensado para volúmenes de pequeño
// negocio; cada guardado reescribe el snapshot entero.
package jsonstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tu-usuario/negocio-pro/internal/domain"
	"github.com/tu-usuario/negocio-pro/internal/domain/entity"
)

// Snapshot estado serializable del negocio.
type Snapshot struct {
	Profile   entity.BusinessProfile `json:"profile"`
	Documents []entity.Document      `json:"documents"`
	Payments  []entity.Payment       `json:"payments"`
}

// DocumentByID busca un documento por ID. Devuelve domain.ErrNotFound si no
// existe.
func (s *Snapshot) DocumentByID(id string) (*entity.Document, error) {
	for i := range s.Documents {
		if s.Documents[i].ID == id {
			return &s.Documents[i], nil
		}
	}
	return nil, fmt.Errorf("documento %q: %w", id, domain.ErrNotFound)
}

// PaymentsFor devuelve los pagos registrados contra un documento.
func (s *Snapshot) PaymentsFor(documentID string) []entity.Payment {
	var result []entity.Payment
	for _, p := range s.Payments {
		if p.DocumentID == documentID {
			result = append(result, p)
		}
	}
	return result
}

// Store lee y escribe snapshots en una ruta fija.
type Store struct {
	path string
}

// NewStore construye el store sobre la ruta dada.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load lee el snapshot del disco. Si el archivo no existe devuelve un
// snapshot vacío sin error, para que el primer uso no requiera seed.
func (s *Store) Load() (*Snapshot, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Snapshot{}, nil
		}
		return nil, fmt.Errorf("jsonstore: leer %s: %w", s.path, err)
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("jsonstore: parsear %s: %w", s.path, err)
	}
	return &snap, nil
}

// Save escribe el snapshot completo. Escritura a archivo temporal + rename
// para no dejar un snapshot truncado si el proceso muere a mitad.
func (s *Store) Save(snap *Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("jsonstore: serializar snapshot: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("jsonstore: crear directorio %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".snapshot-*.json")
	if err != nil {
		return fmt.Errorf("jsonstore: archivo temporal: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("jsonstore: escribir snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("jsonstore: cerrar temporal: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("jsonstore: renombrar a %s: %w", s.path, err)
	}
	return nil
}
