// Package session persiste la sesión de la consola en un archivo JSON: los
// tokens y los valores de UI cacheados (el papel que en el cliente web juega
// el localStorage). Sin versionado de esquema ni migraciones; dos procesos
// concurrentes no se coordinan entre sí, igual que dos pestañas del
// navegador.
package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Store guarda pares clave/valor en un archivo JSON. Seguro entre
// goroutines del mismo proceso vía RWMutex.
type Store struct {
	mu    sync.RWMutex
	ruta  string
	datos map[string]string
}

// Abrir carga la sesión desde la ruta dada; si el archivo no existe empieza
// vacía. Un archivo corrupto se descarta y se arranca de cero: la sesión
// siempre puede reconstruirse con un login.
func Abrir(ruta string) (*Store, error) {
	s := &Store{ruta: ruta, datos: make(map[string]string)}

	raw, err := os.ReadFile(ruta)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("leer sesión %s: %w", ruta, err)
	}
	if err := json.Unmarshal(raw, &s.datos); err != nil {
		s.datos = make(map[string]string)
	}
	return s, nil
}

// Get devuelve el valor de la clave, o cadena vacía si no está.
func (s *Store) Get(clave string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.datos[clave]
}

// Put guarda varios valores de una vez y persiste.
func (s *Store) Put(valores map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for k, v := range valores {
		s.datos[k] = v
	}
	return s.guardar()
}

// Clear vacía la sesión y persiste (logout o 401 de asistencia).
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.datos = make(map[string]string)
	return s.guardar()
}

// guardar escribe el archivo; asume el mutex tomado. El archivo queda 0600:
// contiene tokens.
func (s *Store) guardar() error {
	if err := os.MkdirAll(filepath.Dir(s.ruta), 0o755); err != nil {
		return fmt.Errorf("crear directorio de sesión: %w", err)
	}
	raw, err := json.MarshalIndent(s.datos, "", "  ")
	if err != nil {
		return fmt.Errorf("serializar sesión: %w", err)
	}
	if err := os.WriteFile(s.ruta, raw, 0o600); err != nil {
		return fmt.Errorf("escribir sesión %s: %w", s.ruta, err)
	}
	return nil
}
