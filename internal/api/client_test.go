package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autofix/consola-taller/internal/api"
	"github.com/autofix/consola-taller/internal/api/mapper"
	"github.com/autofix/consola-taller/internal/domain"
	pkgjwt "github.com/autofix/consola-taller/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// sesionMemoria implementa api.SessionStore en memoria para los tests.
type sesionMemoria struct {
	datos map[string]string
}

func nuevaSesion() *sesionMemoria {
	return &sesionMemoria{datos: make(map[string]string)}
}

func (s *sesionMemoria) Get(clave string) string { return s.datos[clave] }

func (s *sesionMemoria) Put(valores map[string]string) error {
	for k, v := range valores {
		s.datos[k] = v
	}
	return nil
}

func (s *sesionMemoria) Clear() error {
	s.datos = make(map[string]string)
	return nil
}

// clienteDe construye un cliente apuntando al servidor de prueba.
func clienteDe(srv *httptest.Server, sesion api.SessionStore) *api.Client {
	return api.New(api.Options{BaseURL: srv.URL, Session: sesion})
}

// ──────────────────────────────────────────────────────────────────────────────
// Cabeceras y token
// ──────────────────────────────────────────────────────────────────────────────

func TestPeticion_LlevaBearerSiHaySesion(t *testing.T) {
	var recibido string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		recibido = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	sesion := nuevaSesion()
	require.NoError(t, sesion.Put(map[string]string{api.ClaveAccess: "tok-123"}))

	_, err := clienteDe(srv, sesion).ListarClientes(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", recibido, "el access de la sesión debe viajar como Bearer")
}

func TestPeticion_SinSesionNoLlevaAuthorization(t *testing.T) {
	var recibido string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		recibido = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	_, err := clienteDe(srv, nuevaSesion()).ListarClientes(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, recibido, "sin token en sesión no debe haber cabecera Authorization")
}

// ──────────────────────────────────────────────────────────────────────────────
// Normalización de listados
// ──────────────────────────────────────────────────────────────────────────────

func TestListar_EnvelopePaginado(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"count": 2, "results": [{"id": 1, "nombre": "Ana"}, {"id": 2, "nombre": "Luis"}]}`))
	}))
	defer srv.Close()

	lista, err := clienteDe(srv, nuevaSesion()).ListarClientes(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, lista, 2)
	assert.Equal(t, "Ana", lista[0].Nombre)
}

func TestListar_ArrayPlano(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id": 1, "nombre": "Mecánica"}]`))
	}))
	defer srv.Close()

	lista, err := clienteDe(srv, nuevaSesion()).ListarAreas(context.Background())
	require.NoError(t, err)
	require.Len(t, lista, 1)
	assert.Equal(t, "Mecánica", lista[0].Nombre)
}

func TestListar_SinResultsEsListaVacia(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"count": 0}`))
	}))
	defer srv.Close()

	lista, err := clienteDe(srv, nuevaSesion()).ListarClientes(context.Background(), nil)
	require.NoError(t, err, "una respuesta sin results no es un error")
	assert.NotNil(t, lista, "la lista vacía debe ser un slice, no nil")
	assert.Empty(t, lista)
}

// ──────────────────────────────────────────────────────────────────────────────
// Mapeo de errores
// ──────────────────────────────────────────────────────────────────────────────

func TestError_400PrefiereCampoConocido(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"detail": "irrelevante", "nit": ["Ya existe un cliente con este NIT."]}`))
	}))
	defer srv.Close()

	_, err := clienteDe(srv, nuevaSesion()).CrearCliente(context.Background(), clientePayloadMinimo())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidacion)
	assert.EqualError(t, err, "Ya existe un cliente con este NIT.",
		"el mensaje debe ser el del campo más relevante, no el detail genérico")

	var apiErr *api.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "nit", apiErr.Campo)
	assert.Equal(t, 400, apiErr.Status)
}

func TestError_403EsSinPermiso(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"detail": "forbidden"}`))
	}))
	defer srv.Close()

	err := clienteDe(srv, nuevaSesion()).EliminarCliente(context.Background(), 9)
	assert.ErrorIs(t, err, domain.ErrSinPermiso)
	assert.Contains(t, err.Error(), "permiso")
}

func TestError_404EsNoExiste(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"detail": "No encontrado."}`))
	}))
	defer srv.Close()

	_, err := clienteDe(srv, nuevaSesion()).ObtenerCliente(context.Background(), 9)
	assert.ErrorIs(t, err, domain.ErrNoExiste)
	assert.Contains(t, err.Error(), "no existe")
}

func TestError_ServidorCaidoEsSinConexion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // cerrado a propósito

	_, err := clienteDe(srv, nuevaSesion()).ListarClientes(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrSinConexion)
	assert.Contains(t, err.Error(), "conexión")
}

// ──────────────────────────────────────────────────────────────────────────────
// Asistencia: 401 limpia la sesión
// ──────────────────────────────────────────────────────────────────────────────

func TestAsistencia_401LimpiaSesion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail": "token expirado"}`))
	}))
	defer srv.Close()

	sesion := nuevaSesion()
	require.NoError(t, sesion.Put(map[string]string{
		api.ClaveAccess:   "viejo",
		api.ClaveUsername: "ana",
	}))

	_, err := clienteDe(srv, sesion).ListarAsistencias(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrSesionExpirada)
	assert.Empty(t, sesion.Get(api.ClaveAccess), "el 401 debe limpiar el access guardado")
	assert.Empty(t, sesion.Get(api.ClaveUsername), "el 401 debe limpiar toda la sesión")
}

func TestClientes_401NoLimpiaSesion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail": "token expirado"}`))
	}))
	defer srv.Close()

	sesion := nuevaSesion()
	require.NoError(t, sesion.Put(map[string]string{api.ClaveAccess: "viejo"}))

	_, err := clienteDe(srv, sesion).ListarClientes(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrSesionExpirada)
	assert.Equal(t, "viejo", sesion.Get(api.ClaveAccess),
		"solo el módulo de asistencia fuerza la limpieza de sesión ante 401")
}

// ──────────────────────────────────────────────────────────────────────────────
// Login / Logout
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_GuardaTokensYRol(t *testing.T) {
	access, err := pkgjwt.Generate("secreto", 7, "ana", "admin", "test", 60)
	require.NoError(t, err)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/token/", r.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "ana", body["username"])
		json.NewEncoder(w).Encode(map[string]string{"access": access, "refresh": "ref-1"})
	}))
	defer srv.Close()

	sesion := nuevaSesion()
	require.NoError(t, clienteDe(srv, sesion).Login(context.Background(), "ana", "clave"))

	assert.Equal(t, access, sesion.Get(api.ClaveAccess))
	assert.Equal(t, "ref-1", sesion.Get(api.ClaveRefresh))
	assert.Equal(t, "ana", sesion.Get(api.ClaveUsername))
	assert.Equal(t, "admin", sesion.Get(api.ClaveUserRole),
		"el rol sale de los claims del access decodificados sin verificar")
}

func TestLogin_CredencialesMalas(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail": "No se encontró una cuenta activa con las credenciales proporcionadas."}`))
	}))
	defer srv.Close()

	err := clienteDe(srv, nuevaSesion()).Login(context.Background(), "ana", "mala")
	assert.ErrorIs(t, err, domain.ErrCredenciales)
}

func TestLogout_LimpiaSesionAunqueElBackendFalle(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	sesion := nuevaSesion()
	require.NoError(t, sesion.Put(map[string]string{
		api.ClaveAccess:  "tok",
		api.ClaveRefresh: "ref",
	}))

	err := clienteDe(srv, sesion).Logout(context.Background())
	assert.Error(t, err, "el fallo remoto se reporta")
	assert.Empty(t, sesion.Get(api.ClaveAccess), "pero la sesión local queda limpia igual")
}

// clientePayloadMinimo arma un payload válido para los tests de error.
func clientePayloadMinimo() mapper.ClientePayload {
	return mapper.ClientePayload{Nombre: "Ana", NIT: "123", TipoCliente: "NATURAL"}
}
