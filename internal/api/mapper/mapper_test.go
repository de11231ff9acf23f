package mapper_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autofix/consola-taller/internal/api/mapper"
	"github.com/autofix/consola-taller/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Cliente
// ──────────────────────────────────────────────────────────────────────────────

func TestToAPICliente_NormalizaYDefaults(t *testing.T) {
	p := mapper.ToAPICliente(mapper.FormCliente{
		Nombre:   "  Ana  ",
		Apellido: " Pérez ",
		NIT:      " 1234567 ",
		Activo:   true,
	})

	assert.Equal(t, "Ana", p.Nombre, "los textos deben llegar sin espacios")
	assert.Equal(t, "Pérez", p.Apellido)
	assert.Equal(t, "1234567", p.NIT)
	assert.Equal(t, entity.TipoClienteNatural, p.TipoCliente, "tipo vacío cae a NATURAL")
	assert.Nil(t, p.Usuario, "sin usuario vinculado el campo se omite")
}

func TestToAPICliente_UsuarioExpandidoQuedaComoID(t *testing.T) {
	var ref entity.Ref
	require.NoError(t, json.Unmarshal([]byte(`{"id": 9, "nombre": "ana"}`), &ref))

	p := mapper.ToAPICliente(mapper.FormCliente{Nombre: "Ana", NIT: "1", Usuario: ref})
	require.NotNil(t, p.Usuario)
	assert.EqualValues(t, 9, *p.Usuario, "el objeto expandido se reduce a su id")

	raw, err := json.Marshal(p)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"usuario":9`)
}

func TestFormDesdeCliente_Precarga(t *testing.T) {
	f := mapper.FormDesdeCliente(entity.Cliente{
		Nombre: "Ana", NIT: "77", TipoCliente: entity.TipoClienteEmpresa, Activo: true,
	})
	assert.Equal(t, "Ana", f.Nombre)
	assert.Equal(t, entity.TipoClienteEmpresa, f.TipoCliente)
	assert.True(t, f.Activo)
}

// ──────────────────────────────────────────────────────────────────────────────
// Vehículo
// ──────────────────────────────────────────────────────────────────────────────

func TestToAPIVehiculo_CoercionaYMayusculas(t *testing.T) {
	p, err := mapper.ToAPIVehiculo(mapper.FormVehiculo{
		NumeroPlaca: " abc-123 ",
		Anio:        " 2019 ",
		Cliente:     entity.NewRef(4),
	})
	require.NoError(t, err)
	assert.Equal(t, "ABC-123", p.NumeroPlaca, "la placa viaja en mayúsculas")
	assert.Equal(t, 2019, p.Anio, "el año del input de texto se vuelve entero")
	require.NotNil(t, p.Cliente)
	assert.EqualValues(t, 4, *p.Cliente)
	assert.Nil(t, p.Marca, "marca sin elegir se omite")
}

func TestToAPIVehiculo_AnioInvalido(t *testing.T) {
	_, err := mapper.ToAPIVehiculo(mapper.FormVehiculo{NumeroPlaca: "X", Anio: "dos mil"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "año")
}

func TestToAPIVehiculo_AnioVacioSeOmite(t *testing.T) {
	p, err := mapper.ToAPIVehiculo(mapper.FormVehiculo{NumeroPlaca: "X"})
	require.NoError(t, err)
	assert.Zero(t, p.Anio)

	raw, err := json.Marshal(p)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "año", "año cero no debe viajar en el payload")
}

// ──────────────────────────────────────────────────────────────────────────────
// Empleado
// ──────────────────────────────────────────────────────────────────────────────

func TestToAPIEmpleado_SueldoDecimal(t *testing.T) {
	p, err := mapper.ToAPIEmpleado(mapper.FormEmpleado{
		Nombre: "Luis", CI: "55", Sexo: " m ", Sueldo: "2500.50",
		Cargo: entity.NewRef(2),
	})
	require.NoError(t, err)
	assert.Equal(t, "M", p.Sexo)
	assert.Equal(t, "2500.5", p.Sueldo.String())
	require.NotNil(t, p.Cargo)
	assert.EqualValues(t, 2, *p.Cargo)
}

func TestToAPIEmpleado_SueldoInvalido(t *testing.T) {
	_, err := mapper.ToAPIEmpleado(mapper.FormEmpleado{Nombre: "Luis", Sueldo: "mucho"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sueldo")
}

// ──────────────────────────────────────────────────────────────────────────────
// Cita
// ──────────────────────────────────────────────────────────────────────────────

func TestToAPICita_RefsOpcionales(t *testing.T) {
	f := mapper.FormCita{
		Cliente:  entity.NewRef(1),
		Vehiculo: entity.NewRef(2),
		// Empleado sin asignar
	}
	p := mapper.ToAPICita(f)
	require.NotNil(t, p.Cliente)
	require.NotNil(t, p.Vehiculo)
	assert.Nil(t, p.Empleado, "empleado sin asignar se omite del payload")
}
