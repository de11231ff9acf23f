package sandbox

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Asistencia emulada: una marca abre el día, la segunda lo cierra y computa
// horas sobre una jornada de 8 horas, como hace el backend real.

const horasJornada = 8.0

// listarAsistencias GET /api/asistencias/ (envelope paginado).
func (a *App) listarAsistencias(c *fiber.Ctx) error {
	filas := a.datos.asistencias.listar()
	return c.JSON(fiber.Map{"count": len(filas), "results": filas})
}

// marcarAsistencia POST /api/asistencia/marcar/.
func (a *App) marcarAsistencia(c *fiber.Ctx) error {
	claims := claimsDe(c)
	ahora := time.Now()
	hoy := ahora.Format("2006-01-02")

	// Buscar la marca abierta de hoy para este empleado.
	for _, doc := range a.datos.asistencias.listar() {
		if doc["fecha"] != hoy {
			continue
		}
		if emp, _ := doc["empleado"].(int64); emp != claims.UserID {
			continue
		}
		if salida, _ := doc["hora_salida"].(string); salida != "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"non_field_errors": []string{"Ya registraste entrada y salida hoy."},
			})
		}
		// Cerrar el día y computar horas.
		entrada, _ := doc["hora_entrada"].(string)
		doc["hora_salida"] = ahora.Format("15:04:05")
		trabajadas := horasDesde(entrada, ahora)
		doc["horas_trabajadas"] = redondear(trabajadas)
		doc["horas_extras"] = redondear(max(0, trabajadas-horasJornada))
		doc["horas_faltantes"] = redondear(max(0, horasJornada-trabajadas))
		switch {
		case trabajadas > horasJornada:
			doc["estado"] = "extra"
		case trabajadas < horasJornada:
			doc["estado"] = "incompleto"
		default:
			doc["estado"] = "completo"
		}
		id, _ := doc["id"].(int64)
		actualizado, _ := a.datos.asistencias.parchar(id, doc)
		return c.JSON(actualizado)
	}

	// Primera marca del día.
	doc := a.datos.asistencias.crear(map[string]any{
		"empleado":     claims.UserID,
		"fecha":        hoy,
		"hora_entrada": ahora.Format("15:04:05"),
		"hora_salida":  "",
		"estado":       "incompleto",
	})
	return c.Status(fiber.StatusCreated).JSON(doc)
}

// reporteMensual GET /api/asistencia/reporte-mensual/?año=&mes=.
func (a *App) reporteMensual(c *fiber.Ctx) error {
	anio, _ := strconv.Atoi(c.Query("año"))
	mes, _ := strconv.Atoi(c.Query("mes"))
	if anio == 0 || mes == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"detail": "parámetros año y mes requeridos",
		})
	}
	prefijo := time.Date(anio, time.Month(mes), 1, 0, 0, 0, 0, time.UTC).Format("2006-01")

	type acumulado struct {
		dias                         int
		trabajadas, extras, faltante float64
	}
	porEmpleado := make(map[int64]*acumulado)
	for _, doc := range a.datos.asistencias.listar() {
		fecha, _ := doc["fecha"].(string)
		if len(fecha) < 7 || fecha[:7] != prefijo {
			continue
		}
		emp, _ := doc["empleado"].(int64)
		acc := porEmpleado[emp]
		if acc == nil {
			acc = &acumulado{}
			porEmpleado[emp] = acc
		}
		acc.dias++
		acc.trabajadas += numero(doc["horas_trabajadas"])
		acc.extras += numero(doc["horas_extras"])
		acc.faltante += numero(doc["horas_faltantes"])
	}

	resumen := make([]fiber.Map, 0, len(porEmpleado))
	for emp, acc := range porEmpleado {
		resumen = append(resumen, fiber.Map{
			"empleado":         emp,
			"año":              anio,
			"mes":              mes,
			"dias_trabajados":  acc.dias,
			"horas_trabajadas": redondear(acc.trabajadas),
			"horas_extras":     redondear(acc.extras),
			"horas_faltantes":  redondear(acc.faltante),
		})
	}
	return c.JSON(resumen)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func horasDesde(horaEntrada string, ahora time.Time) float64 {
	entrada, err := time.Parse("15:04:05", horaEntrada)
	if err != nil {
		return 0
	}
	salida, err := time.Parse("15:04:05", ahora.Format("15:04:05"))
	if err != nil {
		return 0
	}
	horas := salida.Sub(entrada).Hours()
	if horas < 0 {
		return 0
	}
	return horas
}

func redondear(h float64) float64 {
	return float64(int(h*100+0.5)) / 100
}

func numero(v any) float64 {
	f, _ := v.(float64)
	return f
}
