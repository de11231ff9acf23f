package mapper

import (
	"strings"
	"time"

	"github.com/autofix/consola-taller/internal/domain/entity"
)

// FormCita estado del formulario de cita. El empleado asignado es opcional;
// cliente y vehículo son obligatorios para el backend, pero aquí solo se
// normalizan: la validación la hace el servidor.
type FormCita struct {
	FechaHoraInicio time.Time
	FechaHoraFin    time.Time
	TipoCita        string
	Estado          string
	Descripcion     string
	Nota            string
	Cliente         entity.Ref
	Vehiculo        entity.Ref
	Empleado        entity.Ref
}

// CitaPayload cuerpo de POST/PUT de /citas/.
type CitaPayload struct {
	FechaHoraInicio time.Time `json:"fecha_hora_inicio"`
	FechaHoraFin    time.Time `json:"fecha_hora_fin"`
	TipoCita        string    `json:"tipo_cita,omitempty"`
	Estado          string    `json:"estado,omitempty"`
	Descripcion     string    `json:"descripcion,omitempty"`
	Nota            string    `json:"nota,omitempty"`
	Cliente         *int64    `json:"cliente,omitempty"`
	Vehiculo        *int64    `json:"vehiculo,omitempty"`
	Empleado        *int64    `json:"empleado,omitempty"`
}

// ToAPICita normaliza el formulario al payload del backend.
func ToAPICita(f FormCita) CitaPayload {
	return CitaPayload{
		FechaHoraInicio: f.FechaHoraInicio,
		FechaHoraFin:    f.FechaHoraFin,
		TipoCita:        strings.TrimSpace(f.TipoCita),
		Estado:          strings.TrimSpace(f.Estado),
		Descripcion:     strings.TrimSpace(f.Descripcion),
		Nota:            strings.TrimSpace(f.Nota),
		Cliente:         f.Cliente.IDPtr(),
		Vehiculo:        f.Vehiculo.IDPtr(),
		Empleado:        f.Empleado.IDPtr(),
	}
}

// FormDesdeCita precarga el formulario de edición desde la entidad.
func FormDesdeCita(c entity.Cita) FormCita {
	return FormCita{
		FechaHoraInicio: c.FechaHoraInicio,
		FechaHoraFin:    c.FechaHoraFin,
		TipoCita:        c.TipoCita,
		Estado:          c.Estado,
		Descripcion:     c.Descripcion,
		Nota:            c.Nota,
		Cliente:         c.Cliente,
		Vehiculo:        c.Vehiculo,
		Empleado:        c.Empleado,
	}
}
