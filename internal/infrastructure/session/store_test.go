package session_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autofix/consola-taller/internal/infrastructure/session"
)

func rutaTemporal(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "autofix", "sesion.json")
}

func TestAbrir_ArchivoInexistenteEmpiezaVacio(t *testing.T) {
	s, err := session.Abrir(rutaTemporal(t))
	require.NoError(t, err)
	assert.Empty(t, s.Get("access"))
}

func TestPut_PersisteEntreAperturas(t *testing.T) {
	ruta := rutaTemporal(t)

	s, err := session.Abrir(ruta)
	require.NoError(t, err)
	require.NoError(t, s.Put(map[string]string{
		"access":   "tok",
		"username": "ana",
	}))

	// Reabrir simula un nuevo proceso de la consola.
	s2, err := session.Abrir(ruta)
	require.NoError(t, err)
	assert.Equal(t, "tok", s2.Get("access"))
	assert.Equal(t, "ana", s2.Get("username"))
}

func TestPut_CreaElDirectorioYProtegeElArchivo(t *testing.T) {
	ruta := rutaTemporal(t)

	s, err := session.Abrir(ruta)
	require.NoError(t, err)
	require.NoError(t, s.Put(map[string]string{"access": "tok"}))

	info, err := os.Stat(ruta)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm(), "el archivo contiene tokens")
}

func TestClear_VaciaYPersiste(t *testing.T) {
	ruta := rutaTemporal(t)

	s, err := session.Abrir(ruta)
	require.NoError(t, err)
	require.NoError(t, s.Put(map[string]string{"access": "tok"}))
	require.NoError(t, s.Clear())
	assert.Empty(t, s.Get("access"))

	s2, err := session.Abrir(ruta)
	require.NoError(t, err)
	assert.Empty(t, s2.Get("access"), "el clear también debe quedar en disco")
}

func TestAbrir_ArchivoCorruptoSeDescarta(t *testing.T) {
	ruta := rutaTemporal(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(ruta), 0o755))
	require.NoError(t, os.WriteFile(ruta, []byte("esto no es JSON"), 0o600))

	s, err := session.Abrir(ruta)
	require.NoError(t, err, "la sesión corrupta no impide arrancar")
	assert.Empty(t, s.Get("access"))
	require.NoError(t, s.Put(map[string]string{"access": "nuevo"}))
	assert.Equal(t, "nuevo", s.Get("access"))
}
