package presupuesto_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/autofix/consola-taller/internal/application/presupuesto"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func TestCalcular_DesgloseConImpuestos(t *testing.T) {
	// 2 × 100.00 con 10% de descuento e impuestos del 13%.
	lineas := []presupuesto.Linea{{
		Cantidad:            d("2"),
		PrecioUnitario:      d("100"),
		DescuentoPorcentaje: d("10"),
	}}

	tot := presupuesto.Calcular(lineas, true, d("13"))

	assert.Equal(t, "200.00", tot.Subtotal.StringFixed(2))
	assert.Equal(t, "20.00", tot.Descuento.StringFixed(2))
	assert.Equal(t, "180.00", tot.BaseImponible.StringFixed(2))
	assert.Equal(t, "23.40", tot.Impuesto.StringFixed(2))
	assert.Equal(t, "203.40", tot.Total.StringFixed(2))
}

func TestCalcular_SinImpuestosIgnoraElPorcentaje(t *testing.T) {
	lineas := []presupuesto.Linea{{
		Cantidad:            d("2"),
		PrecioUnitario:      d("100"),
		DescuentoPorcentaje: d("10"),
	}}

	tot := presupuesto.Calcular(lineas, false, d("13"))

	assert.True(t, tot.Impuesto.IsZero(), "con con_impuestos en falso no hay impuesto")
	assert.Equal(t, "180.00", tot.Total.StringFixed(2))
}

func TestCalcular_VariasLineas(t *testing.T) {
	lineas := []presupuesto.Linea{
		{Cantidad: d("1"), PrecioUnitario: d("50"), DescuentoPorcentaje: d("0")},
		{Cantidad: d("3"), PrecioUnitario: d("10"), DescuentoPorcentaje: d("50")},
	}

	tot := presupuesto.Calcular(lineas, false, decimal.Zero)

	assert.Equal(t, "80.00", tot.Subtotal.StringFixed(2))
	assert.Equal(t, "15.00", tot.Descuento.StringFixed(2))
	assert.Equal(t, "65.00", tot.Total.StringFixed(2))
}

func TestCalcular_SinLineas(t *testing.T) {
	tot := presupuesto.Calcular(nil, true, d("13"))
	assert.True(t, tot.Total.IsZero())
	assert.True(t, tot.Subtotal.IsZero())
}
