// Package pdf genera el presupuesto imprimible que la consola entrega al
// cliente del taller.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del taller  │  N° Presupuesto + Fechas      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: Nombre + NIT + contacto                           │
//	│  VEHÍCULO: Placa + marca/modelo                             │
//	│  DIAGNÓSTICO                                                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Descripción | P.Unit | Desc% | Importe       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Subtotal / Descuento / Impuesto / TOTAL           │
//	│  OBSERVACIONES                                              │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/autofix/consola-taller/internal/application/presupuesto"
	"github.com/autofix/consola-taller/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimario = &props.Color{Red: 178, Green: 34, Blue: 34}
	colorGris     = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// DatosPDF agrupa todo lo que el documento necesita: el presupuesto, las
// entidades ya resueltas (el backend puede haberlas mandado como id plano) y
// los totales previsualizados con la misma aritmética que ve la pantalla.
type DatosPDF struct {
	Taller      string
	Presupuesto *entity.Presupuesto
	Cliente     *entity.Cliente
	Vehiculo    *entity.Vehiculo
	Items       map[int64]entity.Item // descripciones por id de item
	Totales     presupuesto.Totales
}

// GeneradorPresupuestoPDF arma el documento con Maroto v2.
type GeneradorPresupuestoPDF struct{}

// NewGeneradorPresupuestoPDF construye el generador.
func NewGeneradorPresupuestoPDF() *GeneradorPresupuestoPDF { return &GeneradorPresupuestoPDF{} }

// Generar genera el PDF y devuelve sus bytes.
func (g *GeneradorPresupuestoPDF) Generar(d DatosPDF) ([]byte, error) {
	if d.Presupuesto == nil {
		return nil, fmt.Errorf("pdf: presupuesto requerido")
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Presupuesto AutoFix", true).
		WithAuthor(noVacio(d.Taller, "AutoFix"), true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(filaCabecera(d))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimario, Thickness: 0.5}))
	m.AddRows(filaCliente(d.Cliente))
	m.AddRows(filaVehiculo(d.Vehiculo))
	m.AddRows(filaDiagnostico(d.Presupuesto))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimario, Thickness: 0.3}))

	m.AddRows(filaCabeceraTabla())
	for _, r := range filasDetalle(d) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimario, Thickness: 0.3}))
	m.AddRows(filaTotales(d))

	if obs := d.Presupuesto.Observaciones; obs != "" {
		m.AddRows(row.New(10).Add(col.New(12).Add(
			text.New("Observaciones: "+obs, props.Text{Size: 8, Color: colorGris, Top: 2}),
		)))
	}
	m.AddRows(row.New(8).Add(col.New(12).Add(
		text.New(
			"Presupuesto sujeto a revisión del vehículo. Los totales definitivos "+
				"son los registrados por el taller al aprobar el trabajo.",
			props.Text{Size: 6.5, Color: colorGris, Top: 2},
		),
	)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func filaCabecera(d DatosPDF) core.Row {
	rango := "—"
	if d.Presupuesto.FechaInicio != "" {
		rango = d.Presupuesto.FechaInicio
		if d.Presupuesto.FechaFin != "" {
			rango += " a " + d.Presupuesto.FechaFin
		}
	}
	return row.New(18).Add(
		col.New(7).Add(
			text.New(noVacio(d.Taller, "AutoFix"), props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimario, Top: 1,
			}),
			text.New("Taller automotriz", props.Text{Size: 9, Top: 9, Color: colorGris}),
		),
		col.New(5).Add(
			text.New("PRESUPUESTO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimario, Top: 1,
			}),
			text.New(fmt.Sprintf("N° %d", d.Presupuesto.ID), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Vigencia: "+rango, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGris,
			}),
		),
	)
}

func filaCliente(c *entity.Cliente) core.Row {
	nombre, detalle := "—", "—"
	if c != nil {
		nombre = c.NombreCompleto()
		detalle = fmt.Sprintf("NIT: %s   |   Tel: %s", noVacio(c.NIT, "—"), noVacio(c.Telefono, "—"))
	}
	return row.New(14).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimario, Top: 1}),
			text.New(nombre, props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
			text.New(detalle, props.Text{Size: 8, Top: 12, Color: colorGris}),
		),
	)
}

func filaVehiculo(v *entity.Vehiculo) core.Row {
	detalle := "—"
	if v != nil {
		detalle = fmt.Sprintf("Placa: %s   |   %s %s   |   Año: %d",
			noVacio(v.NumeroPlaca, "—"), v.Marca.Nombre, v.Modelo.Nombre, v.Anio)
	}
	return row.New(12).Add(
		col.New(12).Add(
			text.New("VEHÍCULO", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimario, Top: 1}),
			text.New(detalle, props.Text{Size: 8, Top: 7, Color: colorGris}),
		),
	)
}

func filaDiagnostico(p *entity.Presupuesto) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("DIAGNÓSTICO", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimario, Top: 1}),
			text.New(noVacio(p.Diagnostico, "—"), props.Text{Size: 8, Top: 7}),
		),
	)
}

func filaCabeceraTabla() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimario, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 1, align.Center),
		h("Descripción", 5, align.Left),
		h("P. Unit.", 2, align.Right),
		h("Desc.%", 1, align.Center),
		h("Importe", 3, align.Right),
	)
}

func filasDetalle(d DatosPDF) []core.Row {
	result := make([]core.Row, 0, len(d.Presupuesto.Detalles))
	for _, det := range d.Presupuesto.Detalles {
		descripcion := det.Item.Nombre
		if it, ok := d.Items[det.Item.ID]; ok {
			descripcion = it.Nombre
		}
		linea := presupuesto.Linea{
			Cantidad:            det.Cantidad,
			PrecioUnitario:      det.PrecioUnitario,
			DescuentoPorcentaje: det.DescuentoPorcentaje,
		}
		importe := linea.Bruto().Sub(linea.Descuento())

		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(det.Cantidad.StringFixed(0), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(5).Add(text.New(noVacio(descripcion, "—"), props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
			col.New(2).Add(text.New(det.PrecioUnitario.StringFixed(2), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(1).Add(text.New(det.DescuentoPorcentaje.StringFixed(0)+"%", props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(3).Add(text.New(importe.StringFixed(2), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return result
}

func filaTotales(d DatosPDF) core.Row {
	etiqueta := func(s string) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2})
	}
	valor := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	totalEtiqueta := text.New("TOTAL:", props.Text{
		Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimario, Right: 2,
	})
	totalValor := text.New(d.Totales.Total.StringFixed(2), props.Text{
		Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimario, Right: 1,
	})

	return row.New(32).Add(
		col.New(3),
		col.New(3).Add(
			etiqueta("Subtotal:"),
			etiqueta("Descuento:"),
			etiqueta("Impuesto:"),
			totalEtiqueta,
		),
		col.New(3).Add(
			valor(d.Totales.Subtotal.StringFixed(2)),
			valor(d.Totales.Descuento.StringFixed(2)),
			valor(d.Totales.Impuesto.StringFixed(2)),
			totalValor,
		),
		col.New(3),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func noVacio(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
