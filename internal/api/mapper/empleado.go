package mapper

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/autofix/consola-taller/internal/domain/entity"
)

// FormEmpleado estado del formulario de empleado. Cargo y Area pueden venir
// del backend expandidos; Usuario es opcional.
type FormEmpleado struct {
	Nombre    string
	Apellido  string
	CI        string
	Direccion string
	Telefono  string
	Sexo      string
	Estado    bool
	Sueldo    string
	Cargo     entity.Ref
	Area      entity.Ref
	Usuario   entity.Ref
}

// EmpleadoPayload cuerpo de POST/PUT de /empleados/.
type EmpleadoPayload struct {
	Nombre    string          `json:"nombre"`
	Apellido  string          `json:"apellido"`
	CI        string          `json:"ci"`
	Direccion string          `json:"direccion,omitempty"`
	Telefono  string          `json:"telefono,omitempty"`
	Sexo      string          `json:"sexo,omitempty"`
	Estado    bool            `json:"estado"`
	Sueldo    decimal.Decimal `json:"sueldo"`
	Cargo     *int64          `json:"cargo,omitempty"`
	Area      *int64          `json:"area,omitempty"`
	Usuario   *int64          `json:"usuario,omitempty"`
}

// ToAPIEmpleado normaliza el formulario al payload del backend.
func ToAPIEmpleado(f FormEmpleado) (EmpleadoPayload, error) {
	sueldo, err := decimalOpcional("sueldo", f.Sueldo)
	if err != nil {
		return EmpleadoPayload{}, err
	}
	return EmpleadoPayload{
		Nombre:    strings.TrimSpace(f.Nombre),
		Apellido:  strings.TrimSpace(f.Apellido),
		CI:        strings.TrimSpace(f.CI),
		Direccion: strings.TrimSpace(f.Direccion),
		Telefono:  strings.TrimSpace(f.Telefono),
		Sexo:      strings.ToUpper(strings.TrimSpace(f.Sexo)),
		Estado:    f.Estado,
		Sueldo:    sueldo,
		Cargo:     f.Cargo.IDPtr(),
		Area:      f.Area.IDPtr(),
		Usuario:   f.Usuario.IDPtr(),
	}, nil
}

// FormDesdeEmpleado precarga el formulario de edición desde la entidad.
func FormDesdeEmpleado(e entity.Empleado) FormEmpleado {
	return FormEmpleado{
		Nombre:    e.Nombre,
		Apellido:  e.Apellido,
		CI:        e.CI,
		Direccion: e.Direccion,
		Telefono:  e.Telefono,
		Sexo:      e.Sexo,
		Estado:    e.Estado,
		Sueldo:    e.Sueldo.String(),
		Cargo:     e.Cargo,
		Area:      e.Area,
		Usuario:   e.Usuario,
	}
}
