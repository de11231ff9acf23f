package cli

import (
	"context"
	"flag"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/autofix/consola-taller/internal/api/mapper"
	"github.com/autofix/consola-taller/internal/application/agenda"
	"github.com/autofix/consola-taller/internal/domain/entity"
)

// Formatos de fecha aceptados en los flags de cita.
const (
	formatoFecha = "2006-01-02"
	formatoHora  = "2006-01-02 15:04"
)

func parseFechaHora(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.ParseInLocation(formatoHora, s, time.Local); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("fecha inválida %q (usa \"2006-01-02 15:04\")", s)
	}
	return t, nil
}

// ── citas ─────────────────────────────────────────────────────────────────────

func (c *Consola) cmdCitas(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("uso: citas listar|ver|crear|editar|estado|eliminar ...")
	}
	sub, resto := args[0], args[1:]

	switch sub {
	case "listar":
		fs := flag.NewFlagSet("citas listar", flag.ContinueOnError)
		estado := fs.String("estado", "", "filtrar por estado (PENDIENTE, CONFIRMADA...)")
		empleado := fs.Int64("empleado", 0, "filtrar por id de empleado")
		if err := fs.Parse(resto); err != nil {
			return err
		}
		filtros := url.Values{}
		if *estado != "" {
			filtros.Set("estado", *estado)
		}
		if *empleado != 0 {
			filtros.Set("empleado", fmt.Sprintf("%d", *empleado))
		}
		lista, err := c.api.ListarCitas(ctx, filtros)
		if err != nil {
			return err
		}
		w := c.tabla()
		fmt.Fprintln(w, "ID\tINICIO\tFIN\tESTADO\tCLIENTE\tVEHÍCULO\tEMPLEADO")
		for _, ci := range lista {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
				ci.ID,
				ci.FechaHoraInicio.Local().Format(formatoHora),
				ci.FechaHoraFin.Local().Format("15:04"),
				ci.Estado, ci.Cliente.Nombre, ci.Vehiculo.Nombre, ci.Empleado.Nombre)
		}
		return w.Flush()

	case "ver":
		id, err := idDe(resto)
		if err != nil {
			return err
		}
		ci, err := c.api.ObtenerCita(ctx, id)
		if err != nil {
			return err
		}
		w := c.tabla()
		fmt.Fprintf(w, "inicio:\t%s\n", ci.FechaHoraInicio.Local().Format(formatoHora))
		fmt.Fprintf(w, "fin:\t%s\n", ci.FechaHoraFin.Local().Format(formatoHora))
		fmt.Fprintf(w, "estado:\t%s\n", ci.Estado)
		fmt.Fprintf(w, "tipo:\t%s\n", noVacio(ci.TipoCita, "—"))
		fmt.Fprintf(w, "descripción:\t%s\n", noVacio(ci.Descripcion, "—"))
		fmt.Fprintf(w, "nota:\t%s\n", noVacio(ci.Nota, "—"))
		return w.Flush()

	case "crear", "editar":
		var f mapper.FormCita
		var id int64
		if sub == "editar" {
			var err error
			if id, err = idDe(resto); err != nil {
				return err
			}
			ci, err := c.api.ObtenerCita(ctx, id)
			if err != nil {
				return err
			}
			f = mapper.FormDesdeCita(*ci)
			resto = resto[1:]
		}

		fs := flag.NewFlagSet("citas "+sub, flag.ContinueOnError)
		inicio := fs.String("inicio", "", "fecha y hora de inicio (\"2006-01-02 15:04\")")
		fin := fs.String("fin", "", "fecha y hora de fin")
		fs.StringVar(&f.TipoCita, "tipo", f.TipoCita, "tipo de cita")
		fs.StringVar(&f.Descripcion, "descripcion", f.Descripcion, "descripción")
		fs.StringVar(&f.Nota, "nota", f.Nota, "nota interna")
		cliente := fs.Int64("cliente", refID(f.Cliente), "id del cliente")
		vehiculo := fs.Int64("vehiculo", refID(f.Vehiculo), "id del vehículo")
		empleado := fs.Int64("empleado", refID(f.Empleado), "id del empleado asignado (0 = sin asignar)")
		if err := fs.Parse(resto); err != nil {
			return err
		}
		f.Cliente, f.Vehiculo, f.Empleado = refDe(*cliente), refDe(*vehiculo), refDe(*empleado)

		if *inicio != "" {
			t, err := parseFechaHora(*inicio)
			if err != nil {
				return err
			}
			f.FechaHoraInicio = t
		}
		if *fin != "" {
			t, err := parseFechaHora(*fin)
			if err != nil {
				return err
			}
			f.FechaHoraFin = t
		}
		if f.FechaHoraInicio.IsZero() {
			return fmt.Errorf("falta -inicio")
		}
		if agenda.EsFechaPasada(f.FechaHoraInicio, time.Now()) {
			return fmt.Errorf("no se puede agendar en una fecha pasada")
		}
		// Tope blando: un fin ausente o demasiado lejano se reajusta a
		// inicio + 2h antes de enviar.
		ajustado := agenda.AjustarFin(f.FechaHoraInicio, f.FechaHoraFin)
		if !ajustado.Equal(f.FechaHoraFin) {
			fmt.Fprintf(c.out, "fin ajustado a %s\n", ajustado.Format(formatoHora))
			f.FechaHoraFin = ajustado
		}

		if sub == "crear" {
			ci, err := c.api.CrearCita(ctx, mapper.ToAPICita(f))
			if err != nil {
				return err
			}
			fmt.Fprintf(c.out, "cita %d agendada para %s\n", ci.ID, ci.FechaHoraInicio.Local().Format(formatoHora))
			return nil
		}
		ci, err := c.api.ActualizarCita(ctx, id, mapper.ToAPICita(f))
		if err != nil {
			return err
		}
		fmt.Fprintf(c.out, "cita %d actualizada\n", ci.ID)
		return nil

	case "estado":
		id, err := idDe(resto)
		if err != nil {
			return err
		}
		if len(resto) < 2 {
			return fmt.Errorf("uso: citas estado <id> PENDIENTE|CONFIRMADA|COMPLETADA|CANCELADA")
		}
		ci, err := c.api.CambiarEstadoCita(ctx, id, strings.ToUpper(resto[1]))
		if err != nil {
			return err
		}
		fmt.Fprintf(c.out, "cita %d ahora está %s\n", ci.ID, ci.Estado)
		return nil

	case "eliminar":
		id, err := idDe(resto)
		if err != nil {
			return err
		}
		if err := c.api.EliminarCita(ctx, id); err != nil {
			return err
		}
		fmt.Fprintf(c.out, "cita %d eliminada\n", id)
		return nil
	}
	return fmt.Errorf("subcomando desconocido: citas %s", sub)
}

// ── agenda ────────────────────────────────────────────────────────────────────

// cmdAgenda pinta el calendario de citas: grilla mensual, semana o día.
func (c *Consola) cmdAgenda(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("agenda", flag.ContinueOnError)
	fecha := fs.String("fecha", "", "fecha de referencia (2006-01-02, defecto hoy)")
	vista := fs.String("vista", "mes", "mes | semana | dia")
	if err := fs.Parse(args); err != nil {
		return err
	}

	ref := time.Now()
	if *fecha != "" {
		t, err := time.ParseInLocation(formatoFecha, *fecha, time.Local)
		if err != nil {
			return fmt.Errorf("fecha inválida %q (usa 2006-01-02)", *fecha)
		}
		ref = t
	}

	citas, err := c.api.ListarCitas(ctx, nil)
	if err != nil {
		return err
	}

	switch *vista {
	case "mes":
		c.imprimirMes(ref, citas)
	case "semana":
		c.imprimirCeldas(agenda.GrillaSemana(ref, citas))
	case "dia":
		c.imprimirCeldas([]agenda.Celda{{Fecha: ref, Citas: agenda.CitasDelDia(ref, citas)}})
	default:
		return fmt.Errorf("vista desconocida: %s", *vista)
	}
	return nil
}

// imprimirMes pinta la grilla de 6 semanas; cada celda muestra el día y la
// cantidad de citas, con los días de meses vecinos entre puntos.
func (c *Consola) imprimirMes(ref time.Time, citas []entity.Cita) {
	celdas := agenda.GrillaMes(ref, citas)

	fmt.Fprintf(c.out, "%s %d\n", mesEnEspanol(ref.Month()), ref.Year())
	fmt.Fprintln(c.out, " lun     mar     mié     jue     vie     sáb     dom")
	for i := 0; i < len(celdas); i += 7 {
		for _, celda := range celdas[i : i+7] {
			marca := " "
			if n := len(celda.Citas); n > 0 {
				marca = fmt.Sprintf("%d", n)
			}
			if celda.FueraDeMes {
				fmt.Fprintf(c.out, " .%2d %s. ", celda.Fecha.Day(), marca)
			} else {
				fmt.Fprintf(c.out, " %3d %s  ", celda.Fecha.Day(), marca)
			}
		}
		fmt.Fprintln(c.out)
	}
}

// imprimirCeldas lista día por día las citas de cada celda.
func (c *Consola) imprimirCeldas(celdas []agenda.Celda) {
	for _, celda := range celdas {
		fmt.Fprintf(c.out, "%s\n", celda.Fecha.Format(formatoFecha))
		if len(celda.Citas) == 0 {
			fmt.Fprintln(c.out, "  (sin citas)")
			continue
		}
		for _, ci := range celda.Citas {
			fmt.Fprintf(c.out, "  %s-%s  [%s] %s\n",
				ci.FechaHoraInicio.Local().Format("15:04"),
				ci.FechaHoraFin.Local().Format("15:04"),
				ci.Estado, noVacio(ci.Descripcion, ci.Cliente.Nombre))
		}
	}
}

func mesEnEspanol(m time.Month) string {
	nombres := [...]string{
		"enero", "febrero", "marzo", "abril", "mayo", "junio",
		"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
	}
	return nombres[m-1]
}
