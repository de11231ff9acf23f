// Package cli implementa la consola de administración del taller: comandos
// por recurso sobre el SDK de internal/api, tablas en stdout y un menú
// filtrado por rol. El filtro de rol solo decide qué comandos se muestran;
// la autorización real siempre la hace el backend.
package cli

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strconv"
	"text/tabwriter"

	"github.com/autofix/consola-taller/internal/api"
	"github.com/autofix/consola-taller/pkg/logger"
)

// Consola agrupa las dependencias de los comandos.
type Consola struct {
	api    *api.Client
	sesion api.SessionStore
	log    *logger.Logger
	out    io.Writer
}

// New construye la consola.
func New(cliente *api.Client, sesion api.SessionStore, log *logger.Logger, out io.Writer) *Consola {
	return &Consola{api: cliente, sesion: sesion, log: log, out: out}
}

// comando es una entrada del menú. roles nil significa cualquier usuario
// autenticado; publico true no exige sesión.
type comando struct {
	uso     string
	ayuda   string
	roles   []string
	publico bool
	run     func(ctx context.Context, args []string) error
}

func (c *Consola) comandos() map[string]comando {
	return map[string]comando{
		"login":  {uso: "login -usuario <u> -password <p>", ayuda: "iniciar sesión", publico: true, run: c.cmdLogin},
		"logout": {uso: "logout", ayuda: "cerrar sesión", run: c.cmdLogout},
		"perfil": {uso: "perfil [-editar ...]", ayuda: "ver o editar el perfil propio", run: c.cmdPerfil},
		"password": {uso: "password -actual <p> -nueva <p>", ayuda: "cambiar la contraseña",
			run: c.cmdPassword},

		"clientes": {uso: "clientes listar|ver|crear|editar|eliminar ...", ayuda: "clientes del taller",
			roles: []string{"admin"}, run: c.cmdClientes},
		"vehiculos": {uso: "vehiculos listar|ver|crear|editar|eliminar ...", ayuda: "vehículos registrados",
			roles: []string{"admin", "mecanico"}, run: c.cmdVehiculos},
		"citas": {uso: "citas listar|ver|crear|editar|estado|eliminar ...", ayuda: "citas del taller",
			roles: []string{"admin", "mecanico"}, run: c.cmdCitas},
		"agenda": {uso: "agenda [-fecha YYYY-MM-DD] [-vista mes|semana|dia]", ayuda: "calendario de citas",
			roles: []string{"admin", "mecanico"}, run: c.cmdAgenda},
		"empleados": {uso: "empleados listar|ver|crear|editar|eliminar ...", ayuda: "empleados del taller",
			roles: []string{"admin"}, run: c.cmdEmpleados},
		"usuarios": {uso: "usuarios listar|ver|crear|editar|eliminar ...", ayuda: "cuentas de acceso",
			roles: []string{"admin"}, run: c.cmdUsuarios},
		"items": {uso: "items listar|ver|crear|editar|eliminar ...", ayuda: "inventario y servicios",
			roles: []string{"admin", "mecanico"}, run: c.cmdItems},
		"asistencia": {uso: "asistencia listar|marcar|reporte ...", ayuda: "asistencia de empleados",
			roles: []string{"admin", "mecanico"}, run: c.cmdAsistencia},
		"presupuestos": {uso: "presupuestos listar|ver|crear|estado|pdf|eliminar ...", ayuda: "cotizaciones",
			roles: []string{"admin", "mecanico"}, run: c.cmdPresupuestos},
		"ordenes": {uso: "ordenes listar|ver|estado|eliminar ...", ayuda: "órdenes de trabajo",
			roles: []string{"admin", "mecanico"}, run: c.cmdOrdenes},
		"catalogos": {uso: "catalogos areas|cargos|marcas|modelos ...", ayuda: "tablas de referencia",
			run: c.cmdCatalogos},
		"chat": {uso: "chat <mensaje>", ayuda: "asistente del taller", run: c.cmdChat},
	}
}

// Run despacha el comando. Sin argumentos imprime el menú del rol actual.
func (c *Consola) Run(ctx context.Context, args []string) error {
	cmds := c.comandos()
	if len(args) == 0 || args[0] == "ayuda" {
		c.imprimirMenu(cmds)
		return nil
	}

	cmd, ok := cmds[args[0]]
	if !ok {
		c.imprimirMenu(cmds)
		return fmt.Errorf("comando desconocido: %s", args[0])
	}
	if !cmd.publico && c.sesion.Get(api.ClaveAccess) == "" {
		return fmt.Errorf("inicia sesión primero: consola login -usuario <u> -password <p>")
	}
	return cmd.run(ctx, args[1:])
}

// imprimirMenu lista los comandos visibles para el rol en sesión. El rol
// sale de los claims guardados al hacer login; un rol desconocido ve el
// menú mínimo y el backend rechaza lo que no corresponda.
func (c *Consola) imprimirMenu(cmds map[string]comando) {
	rol := c.sesion.Get(api.ClaveUserRole)
	autenticado := c.sesion.Get(api.ClaveAccess) != ""

	if taller := c.sesion.Get(api.ClaveNombreTaller); taller != "" {
		fmt.Fprintf(c.out, "%s — consola de administración\n", taller)
	} else {
		fmt.Fprintln(c.out, "AutoFix — consola de administración")
	}
	if usuario := c.sesion.Get(api.ClaveUsername); usuario != "" {
		fmt.Fprintf(c.out, "sesión: %s (%s)\n", usuario, noVacio(rol, "sin rol"))
	}
	fmt.Fprintln(c.out)

	nombres := make([]string, 0, len(cmds))
	for nombre := range cmds {
		nombres = append(nombres, nombre)
	}
	sort.Strings(nombres)

	w := tabwriter.NewWriter(c.out, 2, 4, 2, ' ', 0)
	for _, nombre := range nombres {
		cmd := cmds[nombre]
		if !c.visible(cmd, autenticado, rol) {
			continue
		}
		fmt.Fprintf(w, "  %s\t%s\n", cmd.uso, cmd.ayuda)
	}
	w.Flush()
}

func (c *Consola) visible(cmd comando, autenticado bool, rol string) bool {
	if cmd.publico {
		return !autenticado // login no aparece si ya hay sesión
	}
	if !autenticado {
		return false
	}
	if len(cmd.roles) == 0 || rol == "admin" {
		return true
	}
	for _, r := range cmd.roles {
		if r == rol {
			return true
		}
	}
	return false
}

// ── helpers compartidos ───────────────────────────────────────────────────────

func noVacio(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// idDe interpreta el primer argumento posicional como id de recurso.
func idDe(args []string) (int64, error) {
	if len(args) == 0 {
		return 0, fmt.Errorf("falta el id del recurso")
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("id inválido: %s", args[0])
	}
	return id, nil
}

// tabla abre un tabwriter para listados.
func (c *Consola) tabla() *tabwriter.Writer {
	return tabwriter.NewWriter(c.out, 2, 4, 2, ' ', 0)
}
