package credstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jhoicas/invorya-movil/internal/application/ports"
	"github.com/jhoicas/invorya-movil/internal/domain"
)

// Verificar en tiempo de compilación que FileStore implementa CredentialStore.
var _ ports.CredentialStore = (*FileStore)(nil)

// FileStore almacén de credenciales sobre un archivo JSON con permisos 0600.
// Es el equivalente de escritorio del secure storage del dispositivo móvil:
// un key-value opaco por usuario, sin cifrado propio (delegado al sistema de
// archivos del dispositivo).
type FileStore struct {
	path string
}

// NewFileStore construye el almacén en la ruta dada.
// Ruta vacía = <home>/.invorya/credentials.json.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("%w: sin directorio home: %v", domain.ErrAlmacenamiento, err)
		}
		path = filepath.Join(home, ".invorya", "credentials.json")
	}
	return &FileStore{path: path}, nil
}

// Get devuelve el valor bajo key, o "" sin error si no existe
// (archivo ausente incluido).
func (s *FileStore) Get(key string) (string, error) {
	values, err := s.read()
	if err != nil {
		return "", err
	}
	return values[key], nil
}

// Set persiste key=value, creando el directorio si hace falta.
func (s *FileStore) Set(key, value string) error {
	values, err := s.read()
	if err != nil {
		// Archivo corrupto o ilegible: se reescribe desde cero en lugar de
		// propagar un estado irreparable.
		values = map[string]string{}
	}
	values[key] = value
	return s.write(values)
}

// Remove elimina key. Eliminar una clave ausente no es un error.
func (s *FileStore) Remove(key string) error {
	values, err := s.read()
	if err != nil {
		return err
	}
	if _, ok := values[key]; !ok {
		return nil
	}
	delete(values, key)
	return s.write(values)
}

func (s *FileStore) read() (map[string]string, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("%w: leer %s: %v", domain.ErrAlmacenamiento, s.path, err)
	}
	values := map[string]string{}
	if err := json.Unmarshal(raw, &values); err != nil {
		return nil, fmt.Errorf("%w: %s corrupto: %v", domain.ErrAlmacenamiento, s.path, err)
	}
	return values, nil
}

func (s *FileStore) write(values map[string]string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("%w: crear directorio: %v", domain.ErrAlmacenamiento, err)
	}
	raw, err := json.Marshal(values)
	if err != nil {
		return fmt.Errorf("%w: serializar credenciales: %v", domain.ErrAlmacenamiento, err)
	}
	if err := os.WriteFile(s.path, raw, 0o600); err != nil {
		return fmt.Errorf("%w: escribir %s: %v", domain.ErrAlmacenamiento, s.path, err)
	}
	return nil
}
