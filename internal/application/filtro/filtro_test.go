package filtro_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/autofix/consola-taller/internal/application/filtro"
)

func TestNormalizar(t *testing.T) {
	assert.Equal(t, "perez", filtro.Normalizar("Pérez"))
	assert.Equal(t, "camion nino", filtro.Normalizar("CAMIÓN NIÑO"))
}

func TestCoincide(t *testing.T) {
	assert.True(t, filtro.Coincide("José Pérez", "perez"))
	assert.True(t, filtro.Coincide("jose perez", "Pérez"), "la búsqueda con tilde encuentra sin tilde")
	assert.True(t, filtro.Coincide("lo que sea", "  "), "la consulta vacía coincide con todo")
	assert.False(t, filtro.Coincide("José Pérez", "garcía"))
}

func TestFiltrar(t *testing.T) {
	type cliente struct{ Nombre, NIT string }
	clientes := []cliente{
		{"José Pérez", "100"},
		{"Ana García", "200"},
	}

	encontrados := filtro.Filtrar(clientes, "garcia", func(c cliente) []string {
		return []string{c.Nombre, c.NIT}
	})
	assert.Len(t, encontrados, 1)
	assert.Equal(t, "Ana García", encontrados[0].Nombre)

	todos := filtro.Filtrar(clientes, "", func(c cliente) []string { return []string{c.Nombre} })
	assert.Len(t, todos, 2)

	porNIT := filtro.Filtrar(clientes, "100", func(c cliente) []string { return []string{c.Nombre, c.NIT} })
	assert.Len(t, porNIT, 1)
}
