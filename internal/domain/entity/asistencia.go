package entity

// Estados de asistencia calculados por el backend.
const (
	AsistenciaCompleta   = "completo"
	AsistenciaIncompleta = "incompleto"
	AsistenciaExtra      = "extra"
)

// Asistencia es un registro diario de entrada/salida de un empleado. Los
// campos de horas son computados por el backend y se muestran tal cual.
// Fecha y horas viajan como cadenas ("2026-08-29", "08:05:00") porque el
// backend las serializa sin zona horaria.
type Asistencia struct {
	ID              int64   `json:"id"`
	Empleado        Ref     `json:"empleado"`
	Fecha           string  `json:"fecha"`
	HoraEntrada     string  `json:"hora_entrada"`
	HoraSalida      string  `json:"hora_salida"`
	HorasTrabajadas float64 `json:"horas_trabajadas"`
	HorasExtras     float64 `json:"horas_extras"`
	HorasFaltantes  float64 `json:"horas_faltantes"`
	Estado          string  `json:"estado"` // completo | incompleto | extra
}

// ReporteMensualAsistencia resumen que devuelve /asistencia/reporte-mensual/.
type ReporteMensualAsistencia struct {
	Empleado        Ref     `json:"empleado"`
	Anio            int     `json:"año"`
	Mes             int     `json:"mes"`
	DiasTrabajados  int     `json:"dias_trabajados"`
	HorasTrabajadas float64 `json:"horas_trabajadas"`
	HorasExtras     float64 `json:"horas_extras"`
	HorasFaltantes  float64 `json:"horas_faltantes"`
}
