package entity

import "time"

// Estados de cita que devuelve el backend.
const (
	CitaPendiente  = "PENDIENTE"
	CitaConfirmada = "CONFIRMADA"
	CitaCompletada = "COMPLETADA"
	CitaCancelada  = "CANCELADA"
)

// Cita representa una cita del taller. La detección de solapes y las reglas
// de agenda son del backend; la consola solo pinta la grilla y muestra el
// mensaje de rechazo del servidor.
type Cita struct {
	ID              int64     `json:"id"`
	FechaHoraInicio time.Time `json:"fecha_hora_inicio"`
	FechaHoraFin    time.Time `json:"fecha_hora_fin"`
	TipoCita        string    `json:"tipo_cita"`
	Estado          string    `json:"estado"`
	Descripcion     string    `json:"descripcion"`
	Nota            string    `json:"nota"`
	Cliente         Ref       `json:"cliente"`
	Vehiculo        Ref       `json:"vehiculo"`
	Empleado        Ref       `json:"empleado"` // opcional
}
