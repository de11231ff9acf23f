package sandbox_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autofix/consola-taller/internal/infrastructure/sandbox"
	"github.com/autofix/consola-taller/pkg/config"
	"github.com/autofix/consola-taller/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func appDeTest() *sandbox.App {
	cfg := config.SandboxConfig{
		Host:      "127.0.0.1",
		Port:      0,
		JWTSecret: "secreto-de-test",
		Issuer:    "autofix-sandbox-test",
		ExpMin:    5,
	}
	log := logger.New(logger.Config{Env: "test", Level: "error"})
	return sandbox.New(cfg, log)
}

func pedir(t *testing.T, app *sandbox.App, metodo, ruta, token string, cuerpo any) *http.Response {
	t.Helper()
	var rdr io.Reader
	if cuerpo != nil {
		raw, err := json.Marshal(cuerpo)
		require.NoError(t, err)
		rdr = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(metodo, ruta, rdr)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Fiber.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodificar(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func tokenAdmin(t *testing.T, app *sandbox.App) string {
	t.Helper()
	resp := pedir(t, app, http.MethodPost, "/api/auth/token/", "", map[string]string{
		"username": "admin", "password": "admin123",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]string
	decodificar(t, resp, &body)
	require.NotEmpty(t, body["access"])
	return body["access"]
}

// ──────────────────────────────────────────────────────────────────────────────
// Autenticación
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_DevuelveParDeTokens(t *testing.T) {
	app := appDeTest()
	resp := pedir(t, app, http.MethodPost, "/api/auth/token/", "", map[string]string{
		"username": "admin", "password": "admin123",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	decodificar(t, resp, &body)
	assert.NotEmpty(t, body["access"])
	assert.NotEmpty(t, body["refresh"])
}

func TestLogin_CredencialesMalas(t *testing.T) {
	app := appDeTest()
	resp := pedir(t, app, http.MethodPost, "/api/auth/token/", "", map[string]string{
		"username": "admin", "password": "incorrecta",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLogin_SinUsernameEs400PorCampo(t *testing.T) {
	app := appDeTest()
	resp := pedir(t, app, http.MethodPost, "/api/auth/token/", "", map[string]string{
		"password": "admin123",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body map[string][]string
	decodificar(t, resp, &body)
	assert.Contains(t, body, "username")
}

func TestRutaProtegida_SinTokenEs401(t *testing.T) {
	app := appDeTest()
	resp := pedir(t, app, http.MethodGet, "/api/clientes/", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestMe_DevuelveDatosDelTaller(t *testing.T) {
	app := appDeTest()
	tok := tokenAdmin(t, app)

	resp := pedir(t, app, http.MethodGet, "/api/auth/me/", tok, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]any
	decodificar(t, resp, &body)
	assert.Equal(t, "admin", body["username"])
	assert.Equal(t, "Taller AutoFix", body["nombre_taller"])
}

// ──────────────────────────────────────────────────────────────────────────────
// CRUD y contratos de listado
// ──────────────────────────────────────────────────────────────────────────────

func TestClientes_CRUDConEnvelope(t *testing.T) {
	app := appDeTest()
	tok := tokenAdmin(t, app)

	resp := pedir(t, app, http.MethodPost, "/api/clientes/", tok, map[string]any{
		"nombre": "Ana", "apellido": "Pérez", "nit": "1234567", "tipo_cliente": "NATURAL", "activo": true,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var creado map[string]any
	decodificar(t, resp, &creado)
	require.NotZero(t, creado["id"])

	resp = pedir(t, app, http.MethodGet, "/api/clientes/", tok, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var listado map[string]any
	decodificar(t, resp, &listado)
	assert.EqualValues(t, 1, listado["count"], "los clientes responden con envelope paginado")
	assert.Len(t, listado["results"], 1)

	resp = pedir(t, app, http.MethodDelete, "/api/clientes/1/", tok, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = pedir(t, app, http.MethodGet, "/api/clientes/1/", tok, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestClientes_NITDuplicadoEs400PorCampo(t *testing.T) {
	app := appDeTest()
	tok := tokenAdmin(t, app)

	cuerpo := map[string]any{"nombre": "Ana", "nit": "111", "tipo_cliente": "NATURAL"}
	resp := pedir(t, app, http.MethodPost, "/api/clientes/", tok, cuerpo)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = pedir(t, app, http.MethodPost, "/api/clientes/", tok, cuerpo)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body map[string][]string
	decodificar(t, resp, &body)
	require.Contains(t, body, "nit")
	assert.Contains(t, body["nit"][0], "NIT")
}

func TestAreas_RespondenComoArrayPlano(t *testing.T) {
	app := appDeTest()
	tok := tokenAdmin(t, app)

	resp := pedir(t, app, http.MethodGet, "/api/areas/", tok, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var lista []map[string]any
	decodificar(t, resp, &lista)
	assert.GreaterOrEqual(t, len(lista), 2, "el seed trae áreas")
}

// ──────────────────────────────────────────────────────────────────────────────
// Reglas de negocio emuladas
// ──────────────────────────────────────────────────────────────────────────────

func TestCitas_SolapeEs400(t *testing.T) {
	app := appDeTest()
	tok := tokenAdmin(t, app)

	primera := map[string]any{
		"fecha_hora_inicio": "2030-05-10T09:00:00Z",
		"fecha_hora_fin":    "2030-05-10T11:00:00Z",
	}
	resp := pedir(t, app, http.MethodPost, "/api/citas/", tok, primera)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	solapada := map[string]any{
		"fecha_hora_inicio": "2030-05-10T10:00:00Z",
		"fecha_hora_fin":    "2030-05-10T12:00:00Z",
	}
	resp = pedir(t, app, http.MethodPost, "/api/citas/", tok, solapada)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body map[string][]string
	decodificar(t, resp, &body)
	require.Contains(t, body, "fecha_hora_inicio")
	assert.Contains(t, body["fecha_hora_inicio"][0], "solapa")

	// Una cita contigua (termina cuando empieza la otra) sí entra.
	contigua := map[string]any{
		"fecha_hora_inicio": "2030-05-10T11:00:00Z",
		"fecha_hora_fin":    "2030-05-10T12:00:00Z",
	}
	resp = pedir(t, app, http.MethodPost, "/api/citas/", tok, contigua)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestCitas_SinFinEs400(t *testing.T) {
	app := appDeTest()
	tok := tokenAdmin(t, app)

	resp := pedir(t, app, http.MethodPost, "/api/citas/", tok, map[string]any{
		"fecha_hora_inicio": "2030-05-10T09:00:00Z",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body map[string][]string
	decodificar(t, resp, &body)
	assert.Contains(t, body, "fecha_hora_fin")
}

func TestPresupuestos_ElServidorCalculaTotales(t *testing.T) {
	app := appDeTest()
	tok := tokenAdmin(t, app)

	resp := pedir(t, app, http.MethodPost, "/api/presupuestos/", tok, map[string]any{
		"diagnostico":   "cambio de frenos",
		"con_impuestos": true,
		"impuestos":     "13",
		"detalles": []map[string]any{
			{"item": 1, "cantidad": "2", "precio_unitario": "100", "descuento_porcentaje": "10"},
		},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var body map[string]any
	decodificar(t, resp, &body)
	assert.Equal(t, "200.00", body["subtotal"])
	assert.Equal(t, "203.40", body["total"])
	assert.Equal(t, "BORRADOR", body["estado"], "sin estado explícito queda en borrador")
}

func TestPresupuestos_SinLineasEs400(t *testing.T) {
	app := appDeTest()
	tok := tokenAdmin(t, app)

	resp := pedir(t, app, http.MethodPost, "/api/presupuestos/", tok, map[string]any{
		"diagnostico": "nada",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body map[string][]string
	decodificar(t, resp, &body)
	assert.Contains(t, body, "detalles")
}

// ──────────────────────────────────────────────────────────────────────────────
// Asistencia
// ──────────────────────────────────────────────────────────────────────────────

func TestAsistencia_MarcarAbreYCierraElDia(t *testing.T) {
	app := appDeTest()
	tok := tokenAdmin(t, app)

	resp := pedir(t, app, http.MethodPost, "/api/asistencia/marcar/", tok, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var entrada map[string]any
	decodificar(t, resp, &entrada)
	assert.NotEmpty(t, entrada["hora_entrada"])
	assert.Empty(t, entrada["hora_salida"])

	resp = pedir(t, app, http.MethodPost, "/api/asistencia/marcar/", tok, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var salida map[string]any
	decodificar(t, resp, &salida)
	assert.NotEmpty(t, salida["hora_salida"])
	assert.Contains(t, []any{"completo", "incompleto", "extra"}, salida["estado"])

	// La tercera marca del día se rechaza.
	resp = pedir(t, app, http.MethodPost, "/api/asistencia/marcar/", tok, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAsistencia_ReporteMensualExigeParametros(t *testing.T) {
	app := appDeTest()
	tok := tokenAdmin(t, app)

	resp := pedir(t, app, http.MethodGet, "/api/asistencia/reporte-mensual/", tok, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Usuarios
// ──────────────────────────────────────────────────────────────────────────────

func TestUsuarios_SeedYUsernameUnico(t *testing.T) {
	app := appDeTest()
	tok := tokenAdmin(t, app)

	resp := pedir(t, app, http.MethodGet, "/api/users/", tok, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var listado struct {
		Count   int              `json:"count"`
		Results []map[string]any `json:"results"`
	}
	decodificar(t, resp, &listado)
	require.GreaterOrEqual(t, listado.Count, 2, "el seed trae las cuentas demo")

	resp = pedir(t, app, http.MethodPost, "/api/users/", tok, map[string]any{
		"username": "admin", "rol": "admin", "activo": true,
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var body map[string][]string
	decodificar(t, resp, &body)
	assert.Contains(t, body, "username")
}
