// Package presupuesto calcula los totales de una cotización para
// previsualizarla antes de enviarla. Los totales que quedan persistidos los
// calcula el backend; si difieren, mandan los del servidor.
package presupuesto

import "github.com/shopspring/decimal"

var cien = decimal.NewFromInt(100)

// Linea es una línea de presupuesto tal como la captura el formulario.
type Linea struct {
	Cantidad            decimal.Decimal
	PrecioUnitario      decimal.Decimal
	DescuentoPorcentaje decimal.Decimal
}

// Bruto devuelve cantidad × precio unitario, sin descuento.
func (l Linea) Bruto() decimal.Decimal {
	return l.Cantidad.Mul(l.PrecioUnitario)
}

// Descuento devuelve el monto descontado de la línea.
func (l Linea) Descuento() decimal.Decimal {
	return l.Bruto().Mul(l.DescuentoPorcentaje).Div(cien)
}

// Totales es el desglose que la consola muestra antes de enviar.
type Totales struct {
	Subtotal      decimal.Decimal // suma de brutos
	Descuento     decimal.Decimal // suma de descuentos por línea
	BaseImponible decimal.Decimal // subtotal - descuento
	Impuesto      decimal.Decimal // base × impuestos% (solo con impuestos)
	Total         decimal.Decimal // base + impuesto
}

// Calcular computa el desglose completo. Con conImpuestos en falso el
// porcentaje se ignora y el impuesto queda en cero.
func Calcular(lineas []Linea, conImpuestos bool, impuestosPct decimal.Decimal) Totales {
	subtotal := decimal.Zero
	descuento := decimal.Zero
	for _, l := range lineas {
		subtotal = subtotal.Add(l.Bruto())
		descuento = descuento.Add(l.Descuento())
	}

	base := subtotal.Sub(descuento)
	impuesto := decimal.Zero
	if conImpuestos {
		impuesto = base.Mul(impuestosPct).Div(cien)
	}

	return Totales{
		Subtotal:      subtotal,
		Descuento:     descuento,
		BaseImponible: base,
		Impuesto:      impuesto,
		Total:         base.Add(impuesto),
	}
}
