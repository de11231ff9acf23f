package agenda_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autofix/consola-taller/internal/application/agenda"
	"github.com/autofix/consola-taller/internal/domain/entity"
)

func fecha(anio int, mes time.Month, dia, hora, min int) time.Time {
	return time.Date(anio, mes, dia, hora, min, 0, 0, time.UTC)
}

func TestGrillaMes_SeisSemanasDesdeLunes(t *testing.T) {
	// Agosto 2026 empieza en sábado; la grilla arranca el lunes 27 de julio.
	celdas := agenda.GrillaMes(fecha(2026, time.August, 15, 0, 0), nil)

	require.Len(t, celdas, 42, "la grilla mensual siempre tiene 6 semanas completas")
	assert.Equal(t, time.Monday, celdas[0].Fecha.Weekday())
	assert.Equal(t, 27, celdas[0].Fecha.Day())
	assert.True(t, celdas[0].FueraDeMes, "el 27 de julio es relleno")

	// El sábado 1 de agosto es la sexta celda y ya pertenece al mes.
	assert.Equal(t, 1, celdas[5].Fecha.Day())
	assert.False(t, celdas[5].FueraDeMes)
}

func TestGrillaMes_AgrupaCitasPorDia(t *testing.T) {
	citas := []entity.Cita{
		{ID: 1, FechaHoraInicio: fecha(2026, time.August, 3, 9, 0)},
		{ID: 2, FechaHoraInicio: fecha(2026, time.August, 3, 15, 0)},
		{ID: 3, FechaHoraInicio: fecha(2026, time.August, 4, 9, 0)},
	}
	celdas := agenda.GrillaMes(fecha(2026, time.August, 1, 0, 0), citas)

	var lunes3, martes4 agenda.Celda
	for _, c := range celdas {
		switch {
		case c.Fecha.Month() == time.August && c.Fecha.Day() == 3:
			lunes3 = c
		case c.Fecha.Month() == time.August && c.Fecha.Day() == 4:
			martes4 = c
		}
	}
	assert.Len(t, lunes3.Citas, 2)
	assert.Len(t, martes4.Citas, 1)
}

func TestGrillaSemana_SieteDias(t *testing.T) {
	// El miércoles 12 de agosto de 2026 cae en la semana del lunes 10.
	celdas := agenda.GrillaSemana(fecha(2026, time.August, 12, 0, 0), nil)

	require.Len(t, celdas, 7)
	assert.Equal(t, time.Monday, celdas[0].Fecha.Weekday())
	assert.Equal(t, 10, celdas[0].Fecha.Day())
	assert.Equal(t, time.Sunday, celdas[6].Fecha.Weekday())
}

func TestCitasDelDia(t *testing.T) {
	citas := []entity.Cita{
		{ID: 1, FechaHoraInicio: fecha(2026, time.August, 3, 9, 0)},
		{ID: 2, FechaHoraInicio: fecha(2026, time.August, 4, 9, 0)},
	}
	del := agenda.CitasDelDia(fecha(2026, time.August, 3, 0, 0), citas)
	require.Len(t, del, 1)
	assert.EqualValues(t, 1, del[0].ID)
}

func TestEsFechaPasada_GranularidadDeDia(t *testing.T) {
	ahora := fecha(2026, time.August, 15, 14, 0)

	assert.True(t, agenda.EsFechaPasada(fecha(2026, time.August, 14, 23, 59), ahora))
	assert.False(t, agenda.EsFechaPasada(fecha(2026, time.August, 15, 8, 0), ahora),
		"una hora anterior del mismo día no cuenta como pasado")
	assert.False(t, agenda.EsFechaPasada(fecha(2026, time.August, 16, 0, 0), ahora))
}

func TestAjustarFin_TopeDeDosHoras(t *testing.T) {
	inicio := fecha(2026, time.August, 15, 9, 0)

	t.Run("fin demasiado lejano se reajusta", func(t *testing.T) {
		fin := agenda.AjustarFin(inicio, fecha(2026, time.August, 15, 13, 0))
		assert.Equal(t, fecha(2026, time.August, 15, 11, 0), fin, "09:00 más el tope son las 11:00")
	})

	t.Run("fin dentro del tope queda igual", func(t *testing.T) {
		propuesto := fecha(2026, time.August, 15, 10, 30)
		assert.Equal(t, propuesto, agenda.AjustarFin(inicio, propuesto))
	})

	t.Run("fin antes del inicio se reajusta", func(t *testing.T) {
		fin := agenda.AjustarFin(inicio, fecha(2026, time.August, 15, 8, 0))
		assert.Equal(t, fecha(2026, time.August, 15, 11, 0), fin)
	})

	t.Run("exactamente dos horas queda igual", func(t *testing.T) {
		propuesto := inicio.Add(agenda.DuracionMaximaSugerida)
		assert.Equal(t, propuesto, agenda.AjustarFin(inicio, propuesto))
	})
}
