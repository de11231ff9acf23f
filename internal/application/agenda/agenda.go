// Package agenda arma las grillas de calendario (mes, semana, día) de la
// vista de citas. Solo agrupa y pinta: los solapes y las reglas reales de
// agenda las valida el backend y la consola muestra su rechazo tal cual.
package agenda

import (
	"time"

	"github.com/autofix/consola-taller/internal/domain/entity"
)

// DuracionMaximaSugerida es el tope blando entre inicio y fin propuestos al
// crear una cita; un fin más lejano se reajusta a inicio + 2h.
const DuracionMaximaSugerida = 2 * time.Hour

// Celda es un día de la grilla con sus citas agrupadas.
type Celda struct {
	Fecha      time.Time
	FueraDeMes bool // relleno de la grilla mensual (días del mes vecino)
	Citas      []entity.Cita
}

// inicioDeDia trunca al comienzo del día en la zona del valor.
func inicioDeDia(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// lunesDe retrocede hasta el lunes de la semana de t (la semana empieza en
// lunes, como en el calendario del taller).
func lunesDe(t time.Time) time.Time {
	t = inicioDeDia(t)
	delta := (int(t.Weekday()) + 6) % 7
	return t.AddDate(0, 0, -delta)
}

// mismoDia compara ignorando la hora.
func mismoDia(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// agrupar devuelve las citas cuyo inicio cae en el día dado, en orden de
// llegada (el backend ya las devuelve ordenadas).
func agrupar(dia time.Time, citas []entity.Cita) []entity.Cita {
	var del []entity.Cita
	for _, c := range citas {
		if mismoDia(c.FechaHoraInicio, dia) {
			del = append(del, c)
		}
	}
	return del
}

// GrillaMes devuelve las 42 celdas (6 semanas) del mes de ref, empezando el
// lunes de la semana del día 1; las celdas de meses vecinos van marcadas.
func GrillaMes(ref time.Time, citas []entity.Cita) []Celda {
	primero := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	cursor := lunesDe(primero)

	celdas := make([]Celda, 0, 42)
	for i := 0; i < 42; i++ {
		celdas = append(celdas, Celda{
			Fecha:      cursor,
			FueraDeMes: cursor.Month() != ref.Month(),
			Citas:      agrupar(cursor, citas),
		})
		cursor = cursor.AddDate(0, 0, 1)
	}
	return celdas
}

// GrillaSemana devuelve los 7 días (lunes a domingo) de la semana de ref.
func GrillaSemana(ref time.Time, citas []entity.Cita) []Celda {
	cursor := lunesDe(ref)
	celdas := make([]Celda, 0, 7)
	for i := 0; i < 7; i++ {
		celdas = append(celdas, Celda{Fecha: cursor, Citas: agrupar(cursor, citas)})
		cursor = cursor.AddDate(0, 0, 1)
	}
	return celdas
}

// CitasDelDia devuelve las citas del día de ref (vista de día).
func CitasDelDia(ref time.Time, citas []entity.Cita) []entity.Cita {
	return agrupar(ref, citas)
}

// EsFechaPasada es la guarda de UI contra agendar en días ya transcurridos.
// Compara días completos: hoy no cuenta como pasado.
func EsFechaPasada(fecha, ahora time.Time) bool {
	return inicioDeDia(fecha).Before(inicioDeDia(ahora))
}

// AjustarFin aplica el tope blando de duración: si el fin elegido queda a
// más de dos horas del inicio (o antes del inicio), devuelve inicio + 2h;
// si no, devuelve el fin tal cual.
func AjustarFin(inicio, fin time.Time) time.Time {
	if fin.Before(inicio) || fin.Sub(inicio) > DuracionMaximaSugerida {
		return inicio.Add(DuracionMaximaSugerida)
	}
	return fin
}
