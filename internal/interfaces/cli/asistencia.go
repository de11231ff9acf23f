package cli

import (
	"context"
	"flag"
	"fmt"
	"net/url"
	"strconv"
	"time"
)

// cmdAsistencia maneja el control de asistencia: listar registros, marcar
// entrada/salida y el reporte mensual. Si el backend responde 401 el SDK ya
// limpió la sesión local; aquí solo se muestra el error.
func (c *Consola) cmdAsistencia(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("uso: asistencia listar|marcar|reporte ...")
	}
	sub, resto := args[0], args[1:]

	switch sub {
	case "listar":
		fs := flag.NewFlagSet("asistencia listar", flag.ContinueOnError)
		empleado := fs.Int64("empleado", 0, "filtrar por id de empleado")
		fecha := fs.String("fecha", "", "filtrar por fecha (2006-01-02)")
		if err := fs.Parse(resto); err != nil {
			return err
		}
		filtros := url.Values{}
		if *empleado != 0 {
			filtros.Set("empleado", strconv.FormatInt(*empleado, 10))
		}
		if *fecha != "" {
			filtros.Set("fecha", *fecha)
		}
		lista, err := c.api.ListarAsistencias(ctx, filtros)
		if err != nil {
			return err
		}
		w := c.tabla()
		fmt.Fprintln(w, "ID\tEMPLEADO\tFECHA\tENTRADA\tSALIDA\tTRABAJADAS\tEXTRAS\tESTADO")
		for _, a := range lista {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%.2f\t%.2f\t%s\n",
				a.ID, noVacio(a.Empleado.Nombre, strconv.FormatInt(a.Empleado.ID, 10)),
				a.Fecha, a.HoraEntrada, noVacio(a.HoraSalida, "—"),
				a.HorasTrabajadas, a.HorasExtras, a.Estado)
		}
		return w.Flush()

	case "marcar":
		a, err := c.api.MarcarAsistencia(ctx)
		if err != nil {
			return err
		}
		if a.HoraSalida == "" {
			fmt.Fprintf(c.out, "entrada registrada a las %s\n", a.HoraEntrada)
			return nil
		}
		fmt.Fprintf(c.out, "salida registrada a las %s (%.2f horas, %s)\n",
			a.HoraSalida, a.HorasTrabajadas, a.Estado)
		return nil

	case "reporte":
		ahora := time.Now()
		fs := flag.NewFlagSet("asistencia reporte", flag.ContinueOnError)
		anio := fs.Int("anio", ahora.Year(), "año del reporte")
		mes := fs.Int("mes", int(ahora.Month()), "mes del reporte (1-12)")
		if err := fs.Parse(resto); err != nil {
			return err
		}
		lista, err := c.api.ReporteMensualAsistencia(ctx, *anio, *mes)
		if err != nil {
			return err
		}
		w := c.tabla()
		fmt.Fprintln(w, "EMPLEADO\tDÍAS\tTRABAJADAS\tEXTRAS\tFALTANTES")
		for _, r := range lista {
			fmt.Fprintf(w, "%s\t%d\t%.2f\t%.2f\t%.2f\n",
				noVacio(r.Empleado.Nombre, strconv.FormatInt(r.Empleado.ID, 10)),
				r.DiasTrabajados, r.HorasTrabajadas, r.HorasExtras, r.HorasFaltantes)
		}
		return w.Flush()
	}
	return fmt.Errorf("subcomando desconocido: asistencia %s", sub)
}
