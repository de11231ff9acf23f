package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autofix/consola-taller/internal/domain"
)

func TestErrorValidacion_OrdenDePreferencia(t *testing.T) {
	// telefono y nombre presentes a la vez: gana telefono por estar antes
	// en la lista de campos preferidos.
	body := []byte(`{"nombre": ["Requerido."], "telefono": ["Teléfono inválido."]}`)

	err := errorValidacion(body)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "telefono", apiErr.Campo)
	assert.Equal(t, "Teléfono inválido.", apiErr.Mensaje)
}

func TestErrorValidacion_MensajePlanoOLista(t *testing.T) {
	casos := map[string]string{
		`{"detail": "Cuerpo inválido."}`:       "Cuerpo inválido.",
		`{"detail": ["Primero", "Segundo"]}`:   "Primero",
		`{"non_field_errors": ["Se solapa."]}`: "Se solapa.",
	}
	for body, esperado := range casos {
		err := errorValidacion([]byte(body))
		assert.EqualError(t, err, esperado, "cuerpo: %s", body)
	}
}

func TestErrorValidacion_CuerpoDesconocidoCaeAlJSON(t *testing.T) {
	err := errorValidacion([]byte(`{"otra_cosa": ["x"]}`))
	assert.ErrorIs(t, err, domain.ErrValidacion)
	assert.Contains(t, err.Error(), "datos inválidos")
	assert.Contains(t, err.Error(), "otra_cosa", "el JSON crudo va en el mensaje como último recurso")
}

func TestNormalizarListado_Variantes(t *testing.T) {
	type fila struct {
		ID int64 `json:"id"`
	}

	t.Run("envelope con results", func(t *testing.T) {
		lista, err := normalizarListado[fila]([]byte(`{"count": 1, "results": [{"id": 5}]}`))
		require.NoError(t, err)
		require.Len(t, lista, 1)
		assert.EqualValues(t, 5, lista[0].ID)
	})

	t.Run("array plano", func(t *testing.T) {
		lista, err := normalizarListado[fila]([]byte(`[{"id": 3}]`))
		require.NoError(t, err)
		require.Len(t, lista, 1)
	})

	t.Run("results ausente", func(t *testing.T) {
		lista, err := normalizarListado[fila]([]byte(`{"count": 0}`))
		require.NoError(t, err)
		assert.NotNil(t, lista)
		assert.Empty(t, lista)
	})

	t.Run("results null", func(t *testing.T) {
		lista, err := normalizarListado[fila]([]byte(`{"count": 0, "results": null}`))
		require.NoError(t, err)
		assert.NotNil(t, lista)
	})

	t.Run("cuerpo vacío", func(t *testing.T) {
		lista, err := normalizarListado[fila](nil)
		require.NoError(t, err)
		assert.NotNil(t, lista)
	})

	t.Run("no JSON es error", func(t *testing.T) {
		_, err := normalizarListado[fila]([]byte(`<html>`))
		assert.Error(t, err)
	})
}
