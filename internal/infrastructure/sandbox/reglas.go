package sandbox

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/autofix/consola-taller/internal/application/presupuesto"
)

// Reglas de negocio emuladas: lo justo para que la consola vea los mismos
// rechazos que produce el backend real.

func tiempoDe(doc map[string]any, campo string) (time.Time, bool) {
	s, _ := doc[campo].(string)
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, s)
	return t, err == nil
}

// validarCita rechaza citas sin rango válido o solapadas con otra cita.
func (a *App) validarCita(doc map[string]any, excluido int64) *errorCampo {
	inicio, okInicio := tiempoDe(doc, "fecha_hora_inicio")
	if !okInicio {
		return &errorCampo{"fecha_hora_inicio", "Este campo es requerido."}
	}
	fin, okFin := tiempoDe(doc, "fecha_hora_fin")
	if !okFin {
		return &errorCampo{"fecha_hora_fin", "Este campo es requerido."}
	}
	if !fin.After(inicio) {
		return &errorCampo{"fecha_hora_fin", "La hora de fin debe ser posterior a la de inicio."}
	}

	for _, otra := range a.datos.citas.listar() {
		if id, _ := otra["id"].(int64); id == excluido {
			continue
		}
		oInicio, ok1 := tiempoDe(otra, "fecha_hora_inicio")
		oFin, ok2 := tiempoDe(otra, "fecha_hora_fin")
		if !ok1 || !ok2 {
			continue
		}
		if inicio.Before(oFin) && oInicio.Before(fin) {
			return &errorCampo{"fecha_hora_inicio", "La cita se solapa con otra cita existente."}
		}
	}

	if doc["estado"] == nil || doc["estado"] == "" {
		doc["estado"] = "PENDIENTE"
	}
	return nil
}

func decimalDe(v any) decimal.Decimal {
	switch x := v.(type) {
	case string:
		d, err := decimal.NewFromString(x)
		if err == nil {
			return d
		}
	case float64:
		return decimal.NewFromFloat(x)
	}
	return decimal.Zero
}

// completarPresupuesto calcula los totales autoritativos del documento con
// la misma aritmética que la consola previsualiza.
func (a *App) completarPresupuesto(doc map[string]any, _ int64) *errorCampo {
	detalles, _ := doc["detalles"].([]any)
	if len(detalles) == 0 {
		return &errorCampo{"detalles", "El presupuesto necesita al menos una línea."}
	}

	lineas := make([]presupuesto.Linea, 0, len(detalles))
	for _, cruda := range detalles {
		det, ok := cruda.(map[string]any)
		if !ok {
			return &errorCampo{"detalles", "Línea de detalle inválida."}
		}
		lineas = append(lineas, presupuesto.Linea{
			Cantidad:            decimalDe(det["cantidad"]),
			PrecioUnitario:      decimalDe(det["precio_unitario"]),
			DescuentoPorcentaje: decimalDe(det["descuento_porcentaje"]),
		})
	}

	conImpuestos, _ := doc["con_impuestos"].(bool)
	totales := presupuesto.Calcular(lineas, conImpuestos, decimalDe(doc["impuestos"]))
	doc["subtotal"] = totales.Subtotal.StringFixed(2)
	doc["total"] = totales.Total.StringFixed(2)
	if doc["estado"] == nil || doc["estado"] == "" {
		doc["estado"] = "BORRADOR"
	}
	return nil
}
