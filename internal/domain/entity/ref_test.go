package entity_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autofix/consola-taller/internal/domain/entity"
)

// El backend serializa las relaciones de tres formas distintas según el
// endpoint; Ref debe aceptarlas todas.
func TestRef_UnmarshalFormas(t *testing.T) {
	t.Run("id plano", func(t *testing.T) {
		var r entity.Ref
		require.NoError(t, json.Unmarshal([]byte(`7`), &r))
		assert.False(t, r.Vacia())
		assert.EqualValues(t, 7, r.ID)
	})

	t.Run("cadena numérica", func(t *testing.T) {
		var r entity.Ref
		require.NoError(t, json.Unmarshal([]byte(`"7"`), &r))
		assert.EqualValues(t, 7, r.ID)
	})

	t.Run("objeto expandido", func(t *testing.T) {
		var r entity.Ref
		require.NoError(t, json.Unmarshal([]byte(`{"id": 7, "nombre": "Toyota"}`), &r))
		assert.EqualValues(t, 7, r.ID)
		assert.Equal(t, "Toyota", r.Nombre)
	})

	t.Run("null es vacía", func(t *testing.T) {
		var r entity.Ref
		require.NoError(t, json.Unmarshal([]byte(`null`), &r))
		assert.True(t, r.Vacia())
		assert.Nil(t, r.IDPtr())
	})

	t.Run("cadena vacía es vacía", func(t *testing.T) {
		var r entity.Ref
		require.NoError(t, json.Unmarshal([]byte(`""`), &r))
		assert.True(t, r.Vacia())
	})

	t.Run("cadena no numérica es error", func(t *testing.T) {
		var r entity.Ref
		assert.Error(t, json.Unmarshal([]byte(`"toyota"`), &r))
	})
}

func TestRef_MarshalComoIDPlano(t *testing.T) {
	raw, err := json.Marshal(entity.NewRef(7))
	require.NoError(t, err)
	assert.Equal(t, `7`, string(raw))

	raw, err = json.Marshal(entity.Ref{})
	require.NoError(t, err)
	assert.Equal(t, `null`, string(raw), "la referencia vacía serializa como null")
}
