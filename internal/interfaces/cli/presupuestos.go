package cli

import (
	"context"
	"flag"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/autofix/consola-taller/internal/api"
	"github.com/autofix/consola-taller/internal/application/presupuesto"
	"github.com/autofix/consola-taller/internal/domain/entity"
	"github.com/autofix/consola-taller/internal/infrastructure/pdf"
)

// lineasFlag acumula flags -linea repetidos con formato
// item:cantidad:precio[:descuento%].
type lineasFlag []api.DetallePresupuestoPayload

func (l *lineasFlag) String() string { return fmt.Sprintf("%d líneas", len(*l)) }

func (l *lineasFlag) Set(s string) error {
	partes := strings.Split(s, ":")
	if len(partes) < 3 || len(partes) > 4 {
		return fmt.Errorf("línea inválida %q (usa item:cantidad:precio[:descuento])", s)
	}
	item, err := strconv.ParseInt(partes[0], 10, 64)
	if err != nil {
		return fmt.Errorf("item inválido en %q", s)
	}
	cantidad, err := decimal.NewFromString(partes[1])
	if err != nil {
		return fmt.Errorf("cantidad inválida en %q", s)
	}
	precio, err := decimal.NewFromString(partes[2])
	if err != nil {
		return fmt.Errorf("precio inválido en %q", s)
	}
	descuento := decimal.Zero
	if len(partes) == 4 {
		if descuento, err = decimal.NewFromString(partes[3]); err != nil {
			return fmt.Errorf("descuento inválido en %q", s)
		}
	}
	*l = append(*l, api.DetallePresupuestoPayload{
		Item: item, Cantidad: cantidad, PrecioUnitario: precio, DescuentoPorcentaje: descuento,
	})
	return nil
}

func lineasDe(detalles []api.DetallePresupuestoPayload) []presupuesto.Linea {
	lineas := make([]presupuesto.Linea, 0, len(detalles))
	for _, d := range detalles {
		lineas = append(lineas, presupuesto.Linea{
			Cantidad:            d.Cantidad,
			PrecioUnitario:      d.PrecioUnitario,
			DescuentoPorcentaje: d.DescuentoPorcentaje,
		})
	}
	return lineas
}

func lineasDeEntidad(detalles []entity.DetallePresupuesto) []presupuesto.Linea {
	lineas := make([]presupuesto.Linea, 0, len(detalles))
	for _, d := range detalles {
		lineas = append(lineas, presupuesto.Linea{
			Cantidad:            d.Cantidad,
			PrecioUnitario:      d.PrecioUnitario,
			DescuentoPorcentaje: d.DescuentoPorcentaje,
		})
	}
	return lineas
}

// ── presupuestos ──────────────────────────────────────────────────────────────

func (c *Consola) cmdPresupuestos(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("uso: presupuestos listar|ver|crear|estado|pdf|eliminar ...")
	}
	sub, resto := args[0], args[1:]

	switch sub {
	case "listar":
		fs := flag.NewFlagSet("presupuestos listar", flag.ContinueOnError)
		estado := fs.String("estado", "", "filtrar por estado (BORRADOR, ENVIADO...)")
		if err := fs.Parse(resto); err != nil {
			return err
		}
		var filtros url.Values
		if *estado != "" {
			filtros = url.Values{"estado": {*estado}}
		}
		lista, err := c.api.ListarPresupuestos(ctx, filtros)
		if err != nil {
			return err
		}
		w := c.tabla()
		fmt.Fprintln(w, "ID\tESTADO\tCLIENTE\tVEHÍCULO\tSUBTOTAL\tTOTAL")
		for _, p := range lista {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
				p.ID, p.Estado, p.Cliente.Nombre, p.Vehiculo.Nombre,
				p.Subtotal.StringFixed(2), p.Total.StringFixed(2))
		}
		return w.Flush()

	case "ver":
		id, err := idDe(resto)
		if err != nil {
			return err
		}
		p, err := c.api.ObtenerPresupuesto(ctx, id)
		if err != nil {
			return err
		}
		w := c.tabla()
		fmt.Fprintf(w, "estado:\t%s\n", p.Estado)
		fmt.Fprintf(w, "diagnóstico:\t%s\n", noVacio(p.Diagnostico, "—"))
		fmt.Fprintf(w, "vigencia:\t%s a %s\n", noVacio(p.FechaInicio, "—"), noVacio(p.FechaFin, "—"))
		w.Flush()

		w = c.tabla()
		fmt.Fprintln(w, "ITEM\tCANT\tP.UNIT\tDESC%")
		for _, d := range p.Detalles {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				noVacio(d.Item.Nombre, strconv.FormatInt(d.Item.ID, 10)),
				d.Cantidad.StringFixed(0), d.PrecioUnitario.StringFixed(2),
				d.DescuentoPorcentaje.StringFixed(0))
		}
		w.Flush()

		c.imprimirTotales(presupuesto.Calcular(lineasDeEntidad(p.Detalles), p.ConImpuestos, p.Impuestos))
		return nil

	case "crear":
		var detalles lineasFlag
		fs := flag.NewFlagSet("presupuestos crear", flag.ContinueOnError)
		diagnostico := fs.String("diagnostico", "", "diagnóstico del vehículo")
		observaciones := fs.String("observaciones", "", "observaciones")
		inicio := fs.String("inicio", "", "inicio de vigencia (2006-01-02)")
		fin := fs.String("fin", "", "fin de vigencia")
		cliente := fs.Int64("cliente", 0, "id del cliente")
		vehiculo := fs.Int64("vehiculo", 0, "id del vehículo")
		conImpuestos := fs.Bool("con-impuestos", false, "aplicar impuestos al total")
		impuestos := fs.String("impuestos", "13", "porcentaje de impuestos")
		fs.Var(&detalles, "linea", "línea item:cantidad:precio[:descuento], repetible")
		if err := fs.Parse(resto); err != nil {
			return err
		}
		if len(detalles) == 0 {
			return fmt.Errorf("agrega al menos una -linea item:cantidad:precio[:descuento]")
		}
		pct, err := decimal.NewFromString(*impuestos)
		if err != nil {
			return fmt.Errorf("impuestos inválidos: %s", *impuestos)
		}

		// Previsualización con la misma aritmética que verá el PDF; los
		// totales que quedan guardados son los del backend.
		c.imprimirTotales(presupuesto.Calcular(lineasDe(detalles), *conImpuestos, pct))

		p, err := c.api.CrearPresupuesto(ctx, api.PresupuestoPayload{
			Diagnostico:   *diagnostico,
			ConImpuestos:  *conImpuestos,
			Impuestos:     pct,
			Observaciones: *observaciones,
			FechaInicio:   *inicio,
			FechaFin:      *fin,
			Cliente:       refDe(*cliente).IDPtr(),
			Vehiculo:      refDe(*vehiculo).IDPtr(),
			Detalles:      detalles,
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(c.out, "presupuesto %d creado (total servidor: %s)\n", p.ID, p.Total.StringFixed(2))
		return nil

	case "estado":
		id, err := idDe(resto)
		if err != nil {
			return err
		}
		if len(resto) < 2 {
			return fmt.Errorf("uso: presupuestos estado <id> BORRADOR|ENVIADO|APROBADO|RECHAZADO")
		}
		p, err := c.api.CambiarEstadoPresupuesto(ctx, id, strings.ToUpper(resto[1]))
		if err != nil {
			return err
		}
		fmt.Fprintf(c.out, "presupuesto %d ahora está %s\n", p.ID, p.Estado)
		return nil

	case "pdf":
		return c.cmdPresupuestoPDF(ctx, resto)

	case "eliminar":
		id, err := idDe(resto)
		if err != nil {
			return err
		}
		if err := c.api.EliminarPresupuesto(ctx, id); err != nil {
			return err
		}
		fmt.Fprintf(c.out, "presupuesto %d eliminado\n", id)
		return nil
	}
	return fmt.Errorf("subcomando desconocido: presupuestos %s", sub)
}

func (c *Consola) imprimirTotales(t presupuesto.Totales) {
	w := c.tabla()
	fmt.Fprintf(w, "subtotal:\t%s\n", t.Subtotal.StringFixed(2))
	fmt.Fprintf(w, "descuento:\t%s\n", t.Descuento.StringFixed(2))
	fmt.Fprintf(w, "base imponible:\t%s\n", t.BaseImponible.StringFixed(2))
	fmt.Fprintf(w, "impuesto:\t%s\n", t.Impuesto.StringFixed(2))
	fmt.Fprintf(w, "TOTAL:\t%s\n", t.Total.StringFixed(2))
	w.Flush()
}

// cmdPresupuestoPDF genera el documento imprimible de un presupuesto. Las
// referencias que llegaron como id plano se resuelven contra el backend
// antes de armar el PDF.
func (c *Consola) cmdPresupuestoPDF(ctx context.Context, args []string) error {
	id, err := idDe(args)
	if err != nil {
		return err
	}
	fs := flag.NewFlagSet("presupuestos pdf", flag.ContinueOnError)
	salida := fs.String("salida", "", "archivo destino (defecto presupuesto-<id>.pdf)")
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}

	p, err := c.api.ObtenerPresupuesto(ctx, id)
	if err != nil {
		return err
	}

	var cliente *entity.Cliente
	if !p.Cliente.Vacia() {
		if cliente, err = c.api.ObtenerCliente(ctx, p.Cliente.ID); err != nil {
			c.log.Warn().Err(err).Int64("cliente", p.Cliente.ID).Msg("cliente no resuelto para el PDF")
		}
	}
	var vehiculo *entity.Vehiculo
	if !p.Vehiculo.Vacia() {
		if vehiculo, err = c.api.ObtenerVehiculo(ctx, p.Vehiculo.ID); err != nil {
			c.log.Warn().Err(err).Int64("vehiculo", p.Vehiculo.ID).Msg("vehículo no resuelto para el PDF")
		}
	}

	items := make(map[int64]entity.Item)
	if lista, err := c.api.ListarItems(ctx, nil); err == nil {
		for _, it := range lista {
			items[it.ID] = it
		}
	}

	datos := pdf.DatosPDF{
		Taller:      noVacio(c.sesion.Get(api.ClaveNombreTaller), "AutoFix"),
		Presupuesto: p,
		Cliente:     cliente,
		Vehiculo:    vehiculo,
		Items:       items,
		Totales:     presupuesto.Calcular(lineasDeEntidad(p.Detalles), p.ConImpuestos, p.Impuestos),
	}
	doc, err := pdf.NewGeneradorPresupuestoPDF().Generar(datos)
	if err != nil {
		return err
	}

	destino := *salida
	if destino == "" {
		destino = fmt.Sprintf("presupuesto-%d.pdf", id)
	}
	if err := os.WriteFile(destino, doc, 0o644); err != nil {
		return fmt.Errorf("escribir %s: %w", destino, err)
	}
	fmt.Fprintf(c.out, "PDF generado: %s\n", destino)
	return nil
}

// ── órdenes de trabajo ────────────────────────────────────────────────────────

func (c *Consola) cmdOrdenes(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("uso: ordenes listar|ver|estado|eliminar ...")
	}
	sub, resto := args[0], args[1:]

	switch sub {
	case "listar":
		fs := flag.NewFlagSet("ordenes listar", flag.ContinueOnError)
		estado := fs.String("estado", "", "filtrar por estado (ABIERTA, EN_PROCESO...)")
		if err := fs.Parse(resto); err != nil {
			return err
		}
		var filtros url.Values
		if *estado != "" {
			filtros = url.Values{"estado": {*estado}}
		}
		lista, err := c.api.ListarOrdenes(ctx, filtros)
		if err != nil {
			return err
		}
		w := c.tabla()
		fmt.Fprintln(w, "ID\tESTADO\tCLIENTE\tVEHÍCULO\tTOTAL")
		for _, o := range lista {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
				o.ID, o.Estado, o.Cliente.Nombre, o.Vehiculo.Nombre, o.Total.StringFixed(2))
		}
		return w.Flush()

	case "ver":
		id, err := idDe(resto)
		if err != nil {
			return err
		}
		o, err := c.api.ObtenerOrden(ctx, id)
		if err != nil {
			return err
		}
		w := c.tabla()
		fmt.Fprintf(w, "estado:\t%s\n", o.Estado)
		fmt.Fprintf(w, "subtotal:\t%s\n", o.Subtotal.StringFixed(2))
		fmt.Fprintf(w, "impuesto:\t%s\n", o.Impuesto.StringFixed(2))
		fmt.Fprintf(w, "total:\t%s\n", o.Total.StringFixed(2))
		w.Flush()

		w = c.tabla()
		fmt.Fprintln(w, "ITEM\tCANT\tP.UNIT\tSUBTOTAL")
		for _, d := range o.Detalles {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				noVacio(d.Item.Nombre, strconv.FormatInt(d.Item.ID, 10)),
				d.Cantidad.StringFixed(0), d.PrecioUnitario.StringFixed(2), d.Subtotal.StringFixed(2))
		}
		return w.Flush()

	case "estado":
		id, err := idDe(resto)
		if err != nil {
			return err
		}
		if len(resto) < 2 {
			return fmt.Errorf("uso: ordenes estado <id> ABIERTA|EN_PROCESO|FINALIZADA|CANCELADA")
		}
		o, err := c.api.CambiarEstadoOrden(ctx, id, strings.ToUpper(resto[1]))
		if err != nil {
			return err
		}
		fmt.Fprintf(c.out, "orden %d ahora está %s\n", o.ID, o.Estado)
		return nil

	case "eliminar":
		id, err := idDe(resto)
		if err != nil {
			return err
		}
		if err := c.api.EliminarOrden(ctx, id); err != nil {
			return err
		}
		fmt.Fprintf(c.out, "orden %d eliminada\n", id)
		return nil
	}
	return fmt.Errorf("subcomando desconocido: ordenes %s", sub)
}
